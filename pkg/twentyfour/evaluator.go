package twentyfour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrMalformedInput is wrapped by every evaluation failure.
var ErrMalformedInput = errors.New("malformed input")

// EvalError describes why an expression could not be evaluated.
type EvalError struct {
	Pos    int    // byte offset of the offending token, or len(text) at end of input
	Reason string // human readable cause
}

func newEvalError(pos int, format string, args ...any) *EvalError {
	return &EvalError{Pos: pos, Reason: fmt.Sprintf(format, args...)}
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", ErrMalformedInput, e.Pos, e.Reason)
}

// Unwrap lets errors.Is(err, ErrMalformedInput) match.
func (e *EvalError) Unwrap() error {
	return ErrMalformedInput
}

// Evaluate tokenizes and evaluates a calculator expression.
//
// Grammar (left associative, standard precedence):
//
//	expression := term (('+' | '-') term)*
//	term       := factor (('x' | '/' | '%') factor)*
//	factor     := ('+' | '-') factor | '%' term | '(' expression ')' | number
//
// "a % b" multiplies a by b/100. Division by zero follows IEEE semantics
// and produces ±Inf or NaN rather than an error; use IsFinite before
// comparing a result against a target.
func Evaluate(text string) (float64, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return 0, err
	}
	return evaluate(tokens, len(text))
}

// EvaluateTokens evaluates an already tokenized expression.
func EvaluateTokens(tokens []Token) (float64, error) {
	end := 0
	if n := len(tokens); n > 0 {
		end = tokens[n-1].Pos + 1
	}
	return evaluate(tokens, end)
}

// evaluate parses tokens as one complete expression; end is the offset
// reported when input runs out.
func evaluate(tokens []Token, end int) (float64, error) {
	if len(tokens) == 0 {
		return 0, newEvalError(0, "empty expression")
	}
	p := &parser{tokens: tokens, end: end}
	v, err := p.expression()
	if err != nil {
		return 0, err
	}
	if tok, ok := p.peek(); ok {
		if tok.Kind == TokenParenClose {
			return 0, newEvalError(tok.Pos, "unmatched ')'")
		}
		return 0, newEvalError(tok.Pos, "unexpected %s", tok)
	}
	return v, nil
}

// IsFinite reports whether v is neither infinite nor NaN.
func IsFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// FormatNumber renders an evaluation result for display: integral values
// without a fractional part, everything else in the shortest form that
// round-trips.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parser is a recursive-descent cursor over a token slice.
type parser struct {
	tokens []Token
	pos    int
	end    int
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) peekOperator(ops ...Operator) (Operator, bool) {
	tok, ok := p.peek()
	if !ok || tok.Kind != TokenOperator {
		return 0, false
	}
	for _, op := range ops {
		if tok.Op == op {
			return op, true
		}
	}
	return 0, false
}

func (p *parser) expression() (float64, error) {
	sum, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peekOperator(Add, Subtract)
		if !ok {
			return sum, nil
		}
		p.pos++
		rhs, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == Add {
			sum += rhs
		} else {
			sum -= rhs
		}
	}
}

func (p *parser) term() (float64, error) {
	acc, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peekOperator(Multiply, Divide, Percent)
		if !ok {
			return acc, nil
		}
		p.pos++
		rhs, err := p.factor()
		if err != nil {
			return 0, err
		}
		switch op {
		case Multiply:
			acc *= rhs
		case Divide:
			acc /= rhs
		case Percent:
			acc *= rhs / 100
		}
	}
}

func (p *parser) factor() (float64, error) {
	tok, ok := p.peek()
	if !ok {
		return 0, newEvalError(p.end, "expected a number")
	}
	switch tok.Kind {
	case TokenNumber:
		p.pos++
		return tok.Number, nil
	case TokenParenOpen:
		p.pos++
		v, err := p.expression()
		if err != nil {
			return 0, err
		}
		closing, ok := p.peek()
		if !ok || closing.Kind != TokenParenClose {
			return 0, newEvalError(tok.Pos, "unmatched '('")
		}
		p.pos++
		return v, nil
	case TokenOperator:
		switch tok.Op {
		case Add:
			p.pos++
			return p.factor()
		case Subtract:
			p.pos++
			v, err := p.factor()
			return -v, err
		case Percent:
			p.pos++
			return p.term()
		}
	}
	return 0, newEvalError(tok.Pos, "unexpected %s", tok)
}
