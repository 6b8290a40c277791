package calculator

import "errors"

var (
	// ErrExpression wraps any failure of Evaluate.
	ErrExpression = errors.New("expression error")
	// ErrUnaryDomain wraps any failure of ApplyUnary.
	ErrUnaryDomain = errors.New("unary operand error")

	ErrInvalidToken    = errors.New("invalid token")
	ErrInvalidOperator = errors.New("invalid operator")
)
