// Package calculator holds the expression-entry state machine behind the
// calculator keypad.
//
// The engine keeps two strings: the committed total (operands and operators
// already entered) and the operand currently being typed. Failed operations
// never panic or leave the engine unusable; they put ErrorSentinel in the
// current expression and return a typed error describing what went wrong.
package calculator

import (
	"fmt"

	"calc-converter/internal/expr"
)

// Engine is not safe for concurrent use. Toolkits call it from their single
// dispatch goroutine.
type Engine struct {
	total   string
	current string
	history History
}

func NewEngine() *Engine {
	return &Engine{}
}

// Total returns the committed expression.
func (e *Engine) Total() string { return e.total }

// Current returns the full current expression.
func (e *Engine) Current() string { return e.current }

// History returns the engine's evaluation log.
func (e *Engine) History() *History { return &e.history }

// Display returns the current expression cut to DisplayWidth characters.
func (e *Engine) Display() string {
	r := []rune(e.current)
	if len(r) <= DisplayWidth {
		return e.current
	}
	return string(r[:DisplayWidth])
}

func (e *Engine) State() State {
	switch {
	case e.current == ErrorSentinel:
		return Failed
	case e.current == "":
		return Empty
	}
	return Accumulating
}

// AppendToken appends a digit or '.' to the current expression. Input after
// an error is appended to the sentinel as-is; Clear resets it.
func (e *Engine) AppendToken(token string) error {
	if len(token) != 1 || !(token[0] == '.' || (token[0] >= '0' && token[0] <= '9')) {
		return fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}
	e.current += token
	return nil
}

// AppendOperator commits the current operand and op to the total. An empty
// operand is allowed, so repeated operators stack up.
func (e *Engine) AppendOperator(op Operator) error {
	if !op.valid() {
		return fmt.Errorf("%w: %q", ErrInvalidOperator, string(op))
	}
	e.total += e.current + string(op)
	e.current = ""
	return nil
}

// ApplyUnary replaces the current expression with its square or square root.
func (e *Engine) ApplyUnary(kind Unary) error {
	operand := e.current
	v, err := expr.Eval(operand)
	if err == nil {
		switch kind {
		case Square:
			v, err = expr.Square(v)
		case Sqrt:
			v, err = expr.Sqrt(v)
		default:
			err = fmt.Errorf("unknown unary %s", kind)
		}
	}
	if err != nil {
		e.current = ErrorSentinel
		return fmt.Errorf("%w: %s of %q: %w", ErrUnaryDomain, kind, operand, err)
	}

	e.current = v.String()
	return nil
}

// Evaluate folds the current operand into the total and evaluates it. On
// success the result becomes the current expression and the entry is logged.
func (e *Engine) Evaluate() (HistoryEntry, error) {
	e.total += e.current
	source := e.total
	e.total = ""

	v, err := expr.Eval(source)
	if err != nil {
		e.current = ErrorSentinel
		return "", fmt.Errorf("%w: %q: %w", ErrExpression, source, err)
	}

	result := v.String()
	entry := newEntry(source, result)
	e.history.append(entry)
	e.current = result
	return entry, nil
}

// Clear empties both expressions. History is kept.
func (e *Engine) Clear() {
	e.total = ""
	e.current = ""
}
