package twentyfour

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind identifies the kind of a lexical token.
type TokenKind int

const (
	TokenNumber     TokenKind = iota // numeric literal
	TokenOperator                    // + - x / %
	TokenParenOpen                   // (
	TokenParenClose                  // )
)

func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "NUMBER"
	case TokenOperator:
		return "OPERATOR"
	case TokenParenOpen:
		return "LPAREN"
	case TokenParenClose:
		return "RPAREN"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a single lexical token of a calculator expression.
type Token struct {
	Kind   TokenKind
	Number float64  // value for TokenNumber
	Op     Operator // operator for TokenOperator
	Pos    int      // byte offset in the source text
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return strconv.FormatFloat(t.Number, 'g', -1, 64)
	case TokenOperator:
		return string(t.Op.Symbol())
	case TokenParenOpen:
		return "("
	case TokenParenClose:
		return ")"
	}
	return t.Kind.String()
}

// Tokenize splits text into tokens, scanning left to right.
//
// A run of digits and points becomes one number token; a run holding more
// than one point is malformed. Whitespace is skipped. Any character that is
// not a digit, point, operator symbol or parenthesis yields an *EvalError
// wrapping ErrMalformedInput.
func Tokenize(text string) ([]Token, error) {
	tokens := make([]Token, 0, len(text))
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case isDigit(c) || c == '.':
			start := i
			for i < len(text) && (isDigit(text[i]) || text[i] == '.') {
				i++
			}
			run := text[start:i]
			if strings.Count(run, ".") > 1 {
				return nil, newEvalError(start, "number %q has more than one decimal point", run)
			}
			if run == "." {
				return nil, newEvalError(start, "decimal point without digits")
			}
			v, err := strconv.ParseFloat(run, 64)
			if err != nil {
				return nil, newEvalError(start, "bad number %q", run)
			}
			tokens = append(tokens, Token{Kind: TokenNumber, Number: v, Pos: start})
			continue
		case c == '(':
			tokens = append(tokens, Token{Kind: TokenParenOpen, Pos: i})
		case c == ')':
			tokens = append(tokens, Token{Kind: TokenParenClose, Pos: i})
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
		default:
			r, size := utf8.DecodeRuneInString(text[i:])
			if op, ok := OperatorFromSymbol(r); ok {
				tokens = append(tokens, Token{Kind: TokenOperator, Op: op, Pos: i})
				i += size
				continue
			}
			if unicode.IsSpace(r) {
				i += size
				continue
			}
			return nil, newEvalError(i, "unexpected character %q", r)
		}
		i++
	}
	return tokens, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
