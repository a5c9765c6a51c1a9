package twentyfour

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ActionKind identifies an edit applied to a Builder.
type ActionKind int

const (
	ActionDigit ActionKind = iota
	ActionOperator
	ActionDecimal
	ActionParenthesis
	ActionDelete
	ActionClear
	ActionCalculate
)

func (k ActionKind) String() string {
	switch k {
	case ActionDigit:
		return "Digit"
	case ActionOperator:
		return "Operator"
	case ActionDecimal:
		return "Decimal"
	case ActionParenthesis:
		return "Parenthesis"
	case ActionDelete:
		return "Delete"
	case ActionClear:
		return "Clear"
	case ActionCalculate:
		return "Calculate"
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// Action is a single keypad press.
type Action struct {
	Kind  ActionKind
	Digit int      // for ActionDigit
	Op    Operator // for ActionOperator
}

// Digit appends the decimal form of n (a keypad digit or a card value).
func Digit(n int) Action { return Action{Kind: ActionDigit, Digit: n} }

// Op appends an operator symbol when the buffer allows it.
func Op(op Operator) Action { return Action{Kind: ActionOperator, Op: op} }

// Decimal appends a decimal point when the current number has none.
func Decimal() Action { return Action{Kind: ActionDecimal} }

// Parenthesis opens or closes a group depending on the buffer.
func Parenthesis() Action { return Action{Kind: ActionParenthesis} }

// Delete removes the last character.
func Delete() Action { return Action{Kind: ActionDelete} }

// Clear empties the buffer.
func Clear() Action { return Action{Kind: ActionClear} }

// Calculate evaluates the buffer and replaces it with the result.
func Calculate() Action { return Action{Kind: ActionCalculate} }

func (a Action) String() string {
	switch a.Kind {
	case ActionDigit:
		return fmt.Sprintf("Digit(%d)", a.Digit)
	case ActionOperator:
		return fmt.Sprintf("Op(%c)", a.Op.Symbol())
	}
	return a.Kind.String()
}

// Builder maintains the display expression typed by the player.
//
// Every edit is validated against the last character of the buffer only, so
// the buffer is always a prefix of a well-formed expression. Calculate only
// has to trim a dangling tail and close open groups before evaluating it.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	expr   string
	result float64
	hasRes bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Expression returns the current display expression.
func (b *Builder) Expression() string {
	return b.expr
}

// Result returns the value produced by the most recent successful
// Calculate, if the buffer has not been edited since.
func (b *Builder) Result() (float64, bool) {
	return b.result, b.hasRes
}

// Reset empties the buffer.
func (b *Builder) Reset() {
	b.expr = ""
	b.hasRes = false
}

// Apply performs one edit and returns the new display expression.
// The only action that can fail is Calculate; on failure the buffer is
// cleared and the *EvalError is returned.
func (b *Builder) Apply(action Action) (string, error) {
	if action.Kind != ActionCalculate {
		b.hasRes = false
	}
	switch action.Kind {
	case ActionDigit:
		if action.Digit >= 0 {
			b.expr += strconv.Itoa(action.Digit)
		}
	case ActionOperator:
		if b.canEnterOperator(action.Op) {
			b.expr += string(action.Op.Symbol())
		}
	case ActionDecimal:
		if b.canEnterDecimal() {
			b.expr += "."
		}
	case ActionParenthesis:
		b.enterParenthesis()
	case ActionDelete:
		if b.expr != "" {
			b.expr = b.expr[:len(b.expr)-1]
		}
	case ActionClear:
		b.expr = ""
	case ActionCalculate:
		return b.calculate()
	}
	return b.expr, nil
}

func (b *Builder) calculate() (string, error) {
	v, err := Evaluate(b.prepareForCalculation())
	if err != nil {
		b.expr = ""
		b.hasRes = false
		return b.expr, err
	}
	b.expr = FormatNumber(v)
	b.result, b.hasRes = v, true
	return b.expr, nil
}

// prepareForCalculation drops a dangling tail of operators, open
// parentheses and decimal points, then closes any group left open. An empty
// expression evaluates as "0".
func (b *Builder) prepareForCalculation() string {
	trimmed := strings.TrimRightFunc(b.expr, func(r rune) bool {
		return r < utf8.RuneSelf && (isOperatorSymbol(byte(r)) || r == '(' || r == '.')
	})
	if trimmed == "" {
		return "0"
	}
	if open := strings.Count(trimmed, "(") - strings.Count(trimmed, ")"); open > 0 {
		trimmed += strings.Repeat(")", open)
	}
	return trimmed
}

func (b *Builder) last() (byte, bool) {
	if b.expr == "" {
		return 0, false
	}
	return b.expr[len(b.expr)-1], true
}

func (b *Builder) canEnterOperator(op Operator) bool {
	last, ok := b.last()
	switch op {
	case Add, Subtract:
		return !ok || isOperatorSymbol(last) || last == '(' || last == ')' || isDigit(last)
	case Multiply, Divide, Percent:
		return ok && (isDigit(last) || last == ')')
	}
	return false
}

func (b *Builder) canEnterDecimal() bool {
	last, ok := b.last()
	if !ok || !isDigit(last) {
		return false
	}
	for i := len(b.expr) - 1; i >= 0; i-- {
		c := b.expr[i]
		if c == '.' {
			return false
		}
		if !isDigit(c) {
			break
		}
	}
	return true
}

func (b *Builder) enterParenthesis() {
	last, ok := b.last()
	switch {
	case !ok || isOperatorSymbol(last) || last == '(':
		b.expr += "("
	case (isDigit(last) || last == ')') &&
		strings.Count(b.expr, "(") > strings.Count(b.expr, ")"):
		b.expr += ")"
	}
}
