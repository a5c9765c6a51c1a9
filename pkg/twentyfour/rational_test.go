package twentyfour

import (
	"math"
	"testing"
)

// TestRational_Arithmetic checks the raw cross-multiplied results; nothing is
// reduced.
func TestRational_Arithmetic(t *testing.T) {
	tests := []struct {
		name             string
		got              Rational
		wantNum, wantDen int64
	}{
		{"add", Frac(1, 2).Add(Frac(1, 3)), 5, 6},
		{"add keeps common factors", Frac(1, 4).Add(Frac(2, 4)), 12, 16},
		{"sub", Frac(3, 4).Sub(Frac(1, 2)), 2, 8},
		{"sub negative", Frac(1, 2).Sub(Frac(3, 4)), -2, 8},
		{"mul", Frac(2, 3).Mul(Frac(3, 4)), 6, 12},
		{"div", Frac(3, 4).Div(Frac(2, 3)), 9, 8},
		{"div by zero value", Frac(1, 2).Div(Int(0)), 1, 0},
		{"div by degenerate", Frac(1, 2).Div(Frac(3, 0)), 0, 6},
		{"integers", Int(7).Sub(Int(8).Div(Int(8))), 48, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Num != tt.wantNum || tt.got.Den != tt.wantDen {
				t.Errorf("got %d/%d, want %d/%d", tt.got.Num, tt.got.Den, tt.wantNum, tt.wantDen)
			}
		})
	}
}

func TestRational_EqualsInt(t *testing.T) {
	tests := []struct {
		name   string
		r      Rational
		target int
		want   bool
	}{
		{"exact", Int(24), 24, true},
		{"unreduced", Frac(48, 2), 24, true},
		{"both negative", Frac(-48, -2), 24, true},
		{"negative target", Frac(3, -1), -3, true},
		{"off by one", Frac(49, 2), 24, false},
		{"zero denominator", Frac(24, 0), 24, false},
		{"zero over zero", Frac(0, 0), 0, false},
		{"zero numerator", Frac(0, 5), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.EqualsInt(tt.target); got != tt.want {
				t.Errorf("%d/%d == %d: got %v, want %v", tt.r.Num, tt.r.Den, tt.target, got, tt.want)
			}
		})
	}
}

func TestRational_Reduced(t *testing.T) {
	tests := []struct {
		in               Rational
		wantNum, wantDen int64
	}{
		{Frac(6, 8), 3, 4},
		{Frac(-6, 8), -3, 4},
		{Frac(6, -8), -3, 4},
		{Frac(-6, -8), 3, 4},
		{Frac(0, 5), 0, 1},
		{Frac(48, 2), 24, 1},
		{Frac(3, 0), 3, 0},
	}

	for _, tt := range tests {
		got := tt.in.Reduced()
		if got.Num != tt.wantNum || got.Den != tt.wantDen {
			t.Errorf("Frac(%d, %d).Reduced() = %d/%d, want %d/%d",
				tt.in.Num, tt.in.Den, got.Num, got.Den, tt.wantNum, tt.wantDen)
		}
	}
}

func TestRational_String(t *testing.T) {
	tests := []struct {
		r    Rational
		want string
	}{
		{Frac(3, 4), "3/4"},
		{Frac(48, 2), "24"},
		{Frac(5, -10), "-1/2"},
		{Frac(3, 0), "3/0"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRational_Float64(t *testing.T) {
	if got := Frac(22, 7).Float64(); math.Abs(got-22.0/7.0) > 1e-12 {
		t.Errorf("Float64() = %v", got)
	}
	if !math.IsInf(Frac(1, 0).Float64(), 1) {
		t.Error("1/0 should be +Inf")
	}
	if !math.IsNaN(Frac(0, 0).Float64()) {
		t.Error("0/0 should be NaN")
	}
}

func TestGenericHelpers(t *testing.T) {
	if gcd(int64(48), int64(18)) != 6 {
		t.Error("gcd(48, 18) != 6")
	}
	if abs(-3) != 3 || abs(int64(4)) != 4 {
		t.Error("abs")
	}
	if !between(3, 0, 3) || between(4, 0, 3) || between(-1, 0, 3) {
		t.Error("between")
	}
}
