// Package calculator implements an interactive integer expression
// calculator with variables.
//
// A Session reads one line at a time and treats it as a command (/help,
// /exit), a variable assignment or lookup, or an arithmetic expression
// over + - * / ^ and parentheses. Expressions are tokenized, converted
// to postfix notation with an explicit operator stack, and evaluated
// with a value stack. Values are unbounded integers; division rounds
// toward negative infinity.
package calculator
