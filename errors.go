package calculator

import "errors"

// Calculator errors. All of them are recoverable: the dispatcher prints
// the message and the session continues. The messages are the exact
// single-line text shown to the user, so these are plain sentinel values
// rather than structs carrying detail.
var (
	// ErrInvalidExpression reports malformed parentheses or adjacent
	// multiplicative or exponent operators with no operand between.
	ErrInvalidExpression = errors.New("Invalid expression")
	// ErrUnknownCommand reports a line starting with / that names no
	// known command.
	ErrUnknownCommand = errors.New("Unknown command")
	// ErrInvalidIdentifier reports a variable name containing
	// non-alphabetic characters.
	ErrInvalidIdentifier = errors.New("Invalid identifier")
	// ErrUnknownVariable reports a reference to a variable that was
	// never assigned.
	ErrUnknownVariable = errors.New("Unknown variable")
	// ErrInvalidAssignment reports more than one = in a line, or an
	// assigned value that is neither an existing variable nor an
	// integer.
	ErrInvalidAssignment = errors.New("Invalid assignment")
	// ErrDivisionByZero reports a zero divisor, including a negative
	// exponent of zero.
	ErrDivisionByZero = errors.New("Division by zero")
)
