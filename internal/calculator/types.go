package calculator

import "fmt"

// ErrorSentinel replaces the current expression after a failed operation.
const ErrorSentinel = "Error"

// DisplayWidth is how many characters of the current expression the main
// display shows.
const DisplayWidth = 11

// Operator is a binary operator key.
type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "*"
	Divide   Operator = "/"
)

func (o Operator) valid() bool {
	switch o {
	case Add, Subtract, Multiply, Divide:
		return true
	}
	return false
}

// Unary is a function applied to the current expression in place.
type Unary int

const (
	Square Unary = iota
	Sqrt
)

func (u Unary) String() string {
	switch u {
	case Square:
		return "square"
	case Sqrt:
		return "sqrt"
	}
	return fmt.Sprintf("Unary(%d)", int(u))
}

// State is the coarse engine state derived from the current expression.
type State int

const (
	Empty State = iota
	Accumulating
	Failed
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Accumulating:
		return "accumulating"
	case Failed:
		return "error"
	}
	return fmt.Sprintf("State(%d)", int(s))
}
