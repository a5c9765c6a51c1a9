package twentyfour

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Rational is an exact fraction used while searching for a target value.
//
// Arithmetic never normalizes; use Reduced for display. For a hand of four
// single digits the cross products stay far inside int64. Long inputs of
// large numbers can overflow.
//
// A zero denominator is representable. It appears whenever the search
// divides by a subexpression that evaluates to zero, and it makes the value
// unusable for comparison (see EqualsInt).
type Rational struct {
	Num int64 // numerator
	Den int64 // denominator (may be zero or negative)
}

// Frac returns num/den exactly as given.
func Frac(num, den int64) Rational {
	return Rational{Num: num, Den: den}
}

// Int returns the integer n as n/1.
func Int(n int) Rational {
	return Rational{Num: int64(n), Den: 1}
}

// Add returns r + other.
//
// Algorithm: a/b + c/d = (a*d + b*c) / (b*d)
func (r Rational) Add(other Rational) Rational {
	return Rational{
		Num: r.Num*other.Den + r.Den*other.Num,
		Den: r.Den * other.Den,
	}
}

// Sub returns r - other.
func (r Rational) Sub(other Rational) Rational {
	return Rational{
		Num: r.Num*other.Den - r.Den*other.Num,
		Den: r.Den * other.Den,
	}
}

// Mul returns r * other.
func (r Rational) Mul(other Rational) Rational {
	return Rational{
		Num: r.Num * other.Num,
		Den: r.Den * other.Den,
	}
}

// Div returns r / other.
//
// Algorithm: (a/b) / (c/d) = (a*d) / (b*c)
//
// A zero divisor is not rejected here; the result simply carries a zero
// denominator and fails every later EqualsInt test.
func (r Rational) Div(other Rational) Rational {
	return Rational{
		Num: r.Num * other.Den,
		Den: r.Den * other.Num,
	}
}

// Valid reports whether the denominator is non-zero.
func (r Rational) Valid() bool {
	return r.Den != 0
}

// EqualsInt reports whether r is exactly the integer target.
// Values with a zero denominator never match.
func (r Rational) EqualsInt(target int) bool {
	return r.Den != 0 && r.Num == int64(target)*r.Den
}

// Reduced returns r in lowest terms with a positive denominator.
// Degenerate values are returned unchanged.
//
// Examples:
//
//	Frac(6, 8).Reduced()   → 3/4
//	Frac(6, -8).Reduced()  → -3/4
//	Frac(0, 5).Reduced()   → 0/1
func (r Rational) Reduced() Rational {
	if r.Den == 0 {
		return r
	}
	if r.Num == 0 {
		return Rational{Num: 0, Den: 1}
	}
	num, den := r.Num, r.Den
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	return Rational{Num: num / g, Den: den / g}
}

// Float64 returns the floating-point approximation of r.
// A zero denominator yields ±Inf or NaN.
func (r Rational) Float64() float64 {
	return float64(r.Num) / float64(r.Den)
}

// String formats the reduced value as "n" or "n/d".
// Degenerate values print their raw form, e.g. "3/0".
func (r Rational) String() string {
	if r.Den == 0 {
		return fmt.Sprintf("%d/0", r.Num)
	}
	red := r.Reduced()
	if red.Den == 1 {
		return fmt.Sprintf("%d", red.Num)
	}
	return fmt.Sprintf("%d/%d", red.Num, red.Den)
}

// gcd computes the greatest common divisor using Euclid's algorithm.
// Assumes both a and b are non-negative.
func gcd[T constraints.Signed](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// between reports whether lo <= x <= hi.
func between[T constraints.Integer](x, lo, hi T) bool {
	return x >= lo && x <= hi
}
