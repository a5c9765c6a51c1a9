package twentyfour

import "fmt"

// Operator is one of the binary operators understood by the engine.
// The solver only uses SearchOperators; Percent exists for the calculator.
type Operator int

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
	Percent
)

// SearchOperators lists the operators the solver combines numbers with.
var SearchOperators = [...]Operator{Add, Subtract, Multiply, Divide}

// Precedence is the binding strength of an operator.
type Precedence int

const (
	// AdditivePrecedence binds Add and Subtract.
	AdditivePrecedence Precedence = iota + 1
	// MultiplicativePrecedence binds Multiply, Divide and Percent.
	MultiplicativePrecedence
	// AtomPrecedence is the precedence of a bare number.
	AtomPrecedence
)

// Symbol returns the display symbol of op.
// Multiplication is written as 'x', matching the game's keypad.
func (op Operator) Symbol() rune {
	switch op {
	case Add:
		return '+'
	case Subtract:
		return '-'
	case Multiply:
		return 'x'
	case Divide:
		return '/'
	case Percent:
		return '%'
	}
	panic(fmt.Sprintf("unknown operator %d", int(op)))
}

// Precedence returns the precedence tier of op.
func (op Operator) Precedence() Precedence {
	switch op {
	case Add, Subtract:
		return AdditivePrecedence
	case Multiply, Divide, Percent:
		return MultiplicativePrecedence
	}
	panic(fmt.Sprintf("unknown operator %d", int(op)))
}

// Commutative reports whether swapping the operands of op never changes
// the result.
func (op Operator) Commutative() bool {
	switch op {
	case Add, Multiply:
		return true
	case Subtract, Divide, Percent:
		return false
	}
	panic(fmt.Sprintf("unknown operator %d", int(op)))
}

// Apply combines two rationals with op. Percent is not a search operator
// and is rejected with ok == false.
func (op Operator) Apply(a, b Rational) (r Rational, ok bool) {
	switch op {
	case Add:
		return a.Add(b), true
	case Subtract:
		return a.Sub(b), true
	case Multiply:
		return a.Mul(b), true
	case Divide:
		return a.Div(b), true
	case Percent:
		return Rational{}, false
	}
	panic(fmt.Sprintf("unknown operator %d", int(op)))
}

func (op Operator) String() string {
	switch op {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	case Multiply:
		return "Multiply"
	case Divide:
		return "Divide"
	case Percent:
		return "Percent"
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// OperatorFromSymbol maps a symbol to its operator.
// '*' and '×' are accepted for Multiply, '÷' for Divide.
func OperatorFromSymbol(symbol rune) (Operator, bool) {
	switch symbol {
	case '+':
		return Add, true
	case '-', '−':
		return Subtract, true
	case 'x', '*', '×':
		return Multiply, true
	case '/', '÷':
		return Divide, true
	case '%':
		return Percent, true
	}
	return 0, false
}

// isOperatorSymbol reports whether c is one of the display symbols the
// builder writes into its buffer.
func isOperatorSymbol(c byte) bool {
	switch c {
	case '+', '-', 'x', '/', '%':
		return true
	}
	return false
}
