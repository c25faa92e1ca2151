package calculator

import (
	"math/big"
	"strings"
	"unicode"
)

// Help is the usage text printed by the /help command.
const Help = `Smart calculator: integer arithmetic with variables.

Commands:
    /help    print this message
    /exit    print a farewell and quit

Variables:
    name = value    assign a value; names consist of latin letters only
    name            print the current value of a variable

Expressions:
    Infix arithmetic over integers and previously assigned variables
    using + - * / ^ and parentheses. Spacing does not matter.
    Parentheses must be properly closed.`

// Session holds the state of one calculator run: the variables table,
// the last result, and the working storage for a single evaluation
// cycle. State lives until the session ends; nothing persists across
// runs. A Session is not safe for concurrent use.
type Session struct {
	// vars maps variable names to values in canonical decimal form.
	// Entries are created on first assignment, overwritten on
	// reassignment, and never deleted.
	vars map[string]string
	// total is the result of the most recent evaluation. It resets to
	// 0 once the dispatcher has consumed it.
	total *big.Int
	// postfix is held for exactly one evaluation cycle, then cleared.
	postfix []token
	stack   []*big.Int
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{vars: make(map[string]string), total: new(big.Int)}
}

// Total returns a copy of the last evaluation result.
func (s *Session) Total() *big.Int {
	return new(big.Int).Set(s.total)
}

// Lookup returns the stored value of a variable in decimal form.
func (s *Session) Lookup(name string) (string, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// EvalString evaluates one infix expression: whitespace is stripped,
// the line is tokenized and converted to postfix notation, and the
// postfix sequence is evaluated. On success the result also becomes the
// session total. Errors leave the session unchanged.
func (s *Session) EvalString(src string) (*big.Int, error) {
	infix, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	s.postfix, err = toPostfix(infix)
	if err != nil {
		return nil, err
	}
	v, err := s.evalPostfix()
	s.postfix = s.postfix[:0]
	if err != nil {
		return nil, err
	}
	s.total = v
	return v, nil
}

// EvalString is a shortcut to evaluate a single expression with a fresh
// session.
func EvalString(src string) (*big.Int, error) {
	return NewSession().EvalString(src)
}

// Handle dispatches one line of input. out is the text to print, if
// any; done reports that the session ended via /exit. Every returned
// error is recoverable: print its message and keep reading. No error
// mutates the variables table or the session total.
func (s *Session) Handle(line string) (out string, done bool, err error) {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return "", false, nil
	case strings.HasPrefix(line, "/"):
		return s.command(line)
	case strings.Contains(line, "=") || isAlpha(line):
		out, err = s.variable(line)
		return out, false, err
	default:
		v, err := s.EvalString(line)
		if err != nil {
			return "", false, err
		}
		out = v.String()
		s.total = new(big.Int)
		return out, false, nil
	}
}

func (s *Session) command(line string) (string, bool, error) {
	switch line {
	case "/exit":
		return "Bye!", true, nil
	case "/help":
		return Help, false, nil
	}
	return "", false, ErrUnknownCommand
}

// variable handles the assignment-or-lookup path: a line containing =
// or consisting solely of letters.
func (s *Session) variable(line string) (string, error) {
	parts := strings.Split(line, "=")
	switch len(parts) {
	case 1:
		name := strings.TrimSpace(parts[0])
		if !isAlpha(name) {
			return "", ErrInvalidIdentifier
		}
		v, ok := s.vars[name]
		if !ok {
			return "", ErrUnknownVariable
		}
		return v, nil
	case 2:
		name := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if !isAlpha(name) {
			return "", ErrInvalidIdentifier
		}
		// The assigned value may name an existing variable.
		if v, ok := s.vars[value]; ok {
			value = v
		}
		v, ok := new(big.Int).SetString(value, 10)
		if !ok {
			return "", ErrInvalidAssignment
		}
		s.vars[name] = v.String()
		return "", nil
	default:
		return "", ErrInvalidAssignment
	}
}

// isAlpha reports whether s is non-empty and all letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
