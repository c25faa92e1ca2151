package calculator

import "math/big"

var one = big.NewInt(1)

// push adds v to the top of the value stack.
func (s *Session) push(v *big.Int) {
	s.stack = append(s.stack, v)
}

// pop removes and returns the top of the value stack.
func (s *Session) pop() *big.Int {
	v := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return v
}

// isNumber reports whether an operand token is a digit sequence. Any
// other operand is treated as a variable name.
func isNumber(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// evalPostfix consumes the session's postfix sequence left to right
// with the value stack and returns the single remaining value. A
// missing second operand is taken as 0, so the postfix form of a folded
// leading sign, e.g. 5 -, evaluates as 0 - 5.
func (s *Session) evalPostfix() (*big.Int, error) {
	s.stack = s.stack[:0]
	for _, t := range s.postfix {
		if t.kind != tokenOp {
			v, err := s.operand(t.text)
			if err != nil {
				return nil, err
			}
			s.push(v)
			continue
		}
		if len(s.stack) == 0 {
			return nil, ErrInvalidExpression
		}
		b := s.pop()
		a := new(big.Int)
		if len(s.stack) > 0 {
			a = s.pop()
		}
		v, err := apply(t.text, a, b)
		if err != nil {
			return nil, err
		}
		s.push(v)
	}
	if len(s.stack) == 0 {
		return nil, ErrInvalidExpression
	}
	return s.pop(), nil
}

// operand resolves an operand token to its integer value.
func (s *Session) operand(text string) (*big.Int, error) {
	if isNumber(text) {
		v, _ := new(big.Int).SetString(text, 10)
		return v, nil
	}
	val, ok := s.vars[text]
	if !ok {
		return nil, ErrUnknownVariable
	}
	v, _ := new(big.Int).SetString(val, 10)
	return v, nil
}

func apply(op string, a, b *big.Int) (*big.Int, error) {
	switch op {
	case "+":
		return new(big.Int).Add(a, b), nil
	case "-":
		return new(big.Int).Sub(a, b), nil
	case "*":
		return new(big.Int).Mul(a, b), nil
	case "/":
		return floorDiv(a, b)
	case "^":
		return pow(a, b)
	default:
		return nil, ErrInvalidExpression
	}
}

// floorDiv divides rounding toward negative infinity, so -7/2 is -4.
// Neither big.Int.Quo (truncating) nor big.Int.Div (Euclidean) rounds
// that way for every sign combination.
func floorDiv(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	q, m := new(big.Int).QuoRem(a, b, new(big.Int))
	if m.Sign() != 0 && m.Sign() != b.Sign() {
		q.Sub(q, one)
	}
	return q, nil
}

// pow raises a to the power b. A negative exponent keeps the result
// integral by flooring the reciprocal of a^-b.
func pow(a, b *big.Int) (*big.Int, error) {
	if b.Sign() >= 0 {
		return new(big.Int).Exp(a, b, nil), nil
	}
	p := new(big.Int).Exp(a, new(big.Int).Neg(b), nil)
	if p.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return floorDiv(one, p)
}
