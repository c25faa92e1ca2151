package calculator

import (
	"strings"
	"unicode"
)

// token is a single element of an expression. Tokens are immutable once
// produced.
type token struct {
	text string
	kind tokenKind
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenOperand is a run of word characters: a number, a variable
	// name, or a mix of both that the evaluator will reject as an
	// unknown variable.
	tokenOperand
	// tokenOp is one of the operators + - * / ^.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenOperand:
		return "Operand"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + string(rune('0'+int(k))) + ")"
	}
}

// isWord reports whether r belongs to an operand run.
func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// stripSpace removes every whitespace rune from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// tokenize strips all whitespace from src and splits the rest into an
// ordered token sequence. Runs of word characters become single operand
// tokens. Runs of + and - fold into one sign: - when the run holds an
// odd count of -, + otherwise. Two or more adjacent * / ^ with no
// operand between, or any rune outside the four token classes, fail
// with ErrInvalidExpression.
func tokenize(src string) ([]token, error) {
	rs := []rune(stripSpace(src))
	var toks []token
	for i := 0; i < len(rs); {
		switch r := rs[i]; {
		case isWord(r):
			j := i
			for j < len(rs) && isWord(rs[j]) {
				j++
			}
			toks = append(toks, token{text: string(rs[i:j]), kind: tokenOperand})
			i = j
		case r == '+' || r == '-':
			minus := 0
			j := i
			for j < len(rs) && (rs[j] == '+' || rs[j] == '-') {
				if rs[j] == '-' {
					minus++
				}
				j++
			}
			sign := "+"
			if minus%2 == 1 {
				sign = "-"
			}
			toks = append(toks, token{text: sign, kind: tokenOp})
			i = j
		case r == '*' || r == '/' || r == '^':
			j := i
			for j < len(rs) && (rs[j] == '*' || rs[j] == '/' || rs[j] == '^') {
				j++
			}
			if j-i > 1 {
				return nil, ErrInvalidExpression
			}
			toks = append(toks, token{text: string(r), kind: tokenOp})
			i = j
		case r == '(':
			toks = append(toks, token{text: "(", kind: tokenOpen})
			i++
		case r == ')':
			toks = append(toks, token{text: ")", kind: tokenClose})
			i++
		default:
			return nil, ErrInvalidExpression
		}
	}
	return toks, nil
}
