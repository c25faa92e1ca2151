package calculator

import "strings"

// priority ranks operators for conversion: ^ binds tightest, then * /,
// then + -. An open bracket on the stack ranks below every operator so
// that nothing pops past it except a matching close bracket.
func priority(t token) int {
	switch t.text {
	case "^":
		return 3
	case "*", "/":
		return 2
	case "+", "-":
		return 1
	default: // (
		return 0
	}
}

// toPostfix converts an infix token sequence to postfix order using an
// explicit operator stack, left to right:
//
//   - operands go straight to the output;
//   - ( is pushed; ) pops to the output until the matching ( and
//     discards it, failing if the stack empties first;
//   - an operator pushes when the stack is empty or it outranks the top
//     of the stack, and otherwise pops operators of equal or higher
//     rank first. Same-rank operators therefore associate left,
//     including ^.
//
// Remaining stacked operators are popped at the end. An open bracket
// surviving into the output means an unmatched ( in the input.
func toPostfix(infix []token) ([]token, error) {
	var stack, postfix []token
	for _, t := range infix {
		switch t.kind {
		case tokenOperand:
			postfix = append(postfix, t)
		case tokenOpen:
			stack = append(stack, t)
		case tokenClose:
			for len(stack) > 0 && stack[len(stack)-1].kind != tokenOpen {
				postfix = append(postfix, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, ErrInvalidExpression
			}
			stack = stack[:len(stack)-1]
		default:
			if len(stack) == 0 || priority(t) > priority(stack[len(stack)-1]) {
				stack = append(stack, t)
				continue
			}
			for len(stack) > 0 && priority(t) <= priority(stack[len(stack)-1]) {
				postfix = append(postfix, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)
		}
	}
	for len(stack) > 0 {
		postfix = append(postfix, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}
	for _, t := range postfix {
		if t.kind == tokenOpen {
			return nil, ErrInvalidExpression
		}
	}
	return postfix, nil
}

// PostfixString converts an infix expression to postfix notation and
// renders it with single spaces between tokens. It is mainly useful for
// inspecting how an expression will be evaluated.
func PostfixString(src string) (string, error) {
	infix, err := tokenize(src)
	if err != nil {
		return "", err
	}
	postfix, err := toPostfix(infix)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, t := range postfix {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.text)
	}
	return b.String(), nil
}
