package twentyfour

import "fmt"

// ExampleSolve finds one way to make 24 from a hand.
func ExampleSolve() {
	expr, ok := Solve([4]int{4, 7, 8, 8}, Goal)
	fmt.Println(expr, ok)

	_, ok = Solve([4]int{1, 1, 1, 1}, Goal)
	fmt.Println(ok)
	// Output:
	// (4 + 7 - 8) x 8 true
	// false
}

// ExampleSearch runs the same search over five numbers and a custom target.
func ExampleSearch() {
	sol, err := Search([]int{1, 2, 3, 4, 5}, 100)
	if err != nil {
		panic(err)
	}
	fmt.Println(sol.Found, sol.Expression, sol.Value.Reduced())
	// Output:
	// true (1 x 2 + 3) x 4 x 5 100
}

// ExampleEvaluate shows the calculator. It works in float64, so answers
// that go through a fraction can land an ulp away from the target.
func ExampleEvaluate() {
	for _, expr := range []string{"(7-8/8)x4", "8 / (3 - 8 / 3)", "2+3*4", "8/0"} {
		v, err := Evaluate(expr)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s = %s\n", expr, FormatNumber(v))
	}

	_, err := Evaluate("(2+3")
	fmt.Println(err)
	// Output:
	// (7-8/8)x4 = 24
	// 8 / (3 - 8 / 3) = 23.99999999999999
	// 2+3*4 = 14
	// 8/0 = +Inf
	// malformed input at offset 0: unmatched '('
}

// ExampleBuilder types an answer key by key the way the game screen does.
func ExampleBuilder() {
	b := NewBuilder()
	for _, a := range []Action{
		Parenthesis(), Digit(7), Op(Subtract), Digit(8), Op(Divide), Digit(8),
		Parenthesis(), Op(Multiply), Digit(4),
	} {
		b.Apply(a)
	}
	fmt.Println(b.Expression())

	result, _ := b.Apply(Calculate())
	fmt.Println(result)
	// Output:
	// (7-8/8)x4
	// 24
}
