package calculator

import (
	"errors"
	"testing"
)

func TestToPostfix(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1", "1"},
		{"1+2", "1 2 +"},
		{"1+2*3", "1 2 3 * +"},
		{"1*2+3", "1 2 * 3 +"},
		{"(1+2)*3", "1 2 + 3 *"},
		{"2*(3+4)", "2 3 4 + *"},
		// same-priority operators associate left
		{"1-2+3", "1 2 - 3 +"},
		{"8/4/2", "8 4 / 2 /"},
		{"2^3^2", "2 3 ^ 2 ^"},
		// ^ outranks * and /
		{"2*3^2", "2 3 2 ^ *"},
		{"2^3*4", "2 3 ^ 4 *"},
		// folded signs are ordinary operators
		{"1+-2", "1 2 -"},
		{"1--2", "1 2 +"},
		{"-5", "5 -"},
		// nested brackets
		{"((1+2))", "1 2 +"},
		{"(1+(2*(3-4)))", "1 2 3 4 - * +"},
		// variables travel like numbers
		{"x+y*z", "x y z * +"},
		// a matched empty pair converts to an empty sequence
		{"()", ""},
	}
	for _, c := range cases {
		got, err := PostfixString(c.src)
		if err != nil {
			t.Errorf("converting %q: unexpected error %v", c.src, err)
			continue
		}
		if got != c.want {
			t.Errorf("converting %q: want %q, got %q", c.src, c.want, got)
		}
	}
}

func TestToPostfixInvalid(t *testing.T) {
	cases := []string{
		// unmatched close bracket empties the stack
		"1+2)",
		")",
		"(1+2))",
		// unmatched open bracket survives into the output
		"(1+2",
		"(",
		"((1+2)",
		"2*(3+4",
	}
	for _, src := range cases {
		got, err := PostfixString(src)
		if !errors.Is(err, ErrInvalidExpression) {
			t.Errorf("converting %q: want ErrInvalidExpression, got %q, error %v", src, got, err)
		}
	}
}

func TestToPostfixStackEmpty(t *testing.T) {
	// The operator stack must be fully drained by a successful
	// conversion; brackets never reach the output.
	srcs := []string{"1+2*3", "(1+2)*3", "((1-2))^3"}
	for _, src := range srcs {
		infix, err := tokenize(src)
		if err != nil {
			t.Fatalf("tokenizing %q: %v", src, err)
		}
		postfix, err := toPostfix(infix)
		if err != nil {
			t.Fatalf("converting %q: %v", src, err)
		}
		for _, tok := range postfix {
			if tok.kind == tokenOpen || tok.kind == tokenClose {
				t.Errorf("converting %q: bracket %v in postfix output", src, tok)
			}
		}
	}
}
