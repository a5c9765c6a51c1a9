// Package main demonstrates basic usage of the twentyfour engine.
//
// It walks through the same steps the game screen takes: solving a hand,
// checking a typed answer, dealing a new hand and settling a claim that a
// hand has no solution.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gitrdm/twentyfour/pkg/twentyfour"
)

func main() {
	fmt.Println("=== 24 Puzzle Examples ===")
	fmt.Println()

	solveHands()
	exactArithmetic()
	typedAnswer()
	dealHands()
	budgetedSearch()
}

// solveHands shows the solver on a few classic hands.
func solveHands() {
	fmt.Println("1. Solving hands:")

	for _, h := range [][4]int{{4, 7, 8, 8}, {1, 2, 3, 4}, {1, 5, 5, 5}, {1, 1, 1, 1}} {
		if expr, ok := twentyfour.Solve(h, twentyfour.Goal); ok {
			fmt.Printf("   %v => %s\n", h, expr)
		} else {
			fmt.Printf("   %v => %s\n", h, twentyfour.NoSolution)
		}
	}
	fmt.Println()
}

// exactArithmetic shows why the solver tracks fractions instead of floats.
func exactArithmetic() {
	fmt.Println("2. Exact arithmetic:")

	sol, _ := twentyfour.Search([]int{3, 3, 8, 8}, twentyfour.Goal)
	v, _ := twentyfour.Evaluate(sol.Expression)
	fmt.Printf("   solver:  %s = %s (exact)\n", sol.Expression, sol.Value.Reduced())
	fmt.Printf("   float64: %s = %s\n", sol.Expression, twentyfour.FormatNumber(v))
	fmt.Println()
}

// typedAnswer replays a player entering "(7-8/8)x4" on the keypad.
func typedAnswer() {
	fmt.Println("3. Typing an answer:")

	settings := twentyfour.NewMemorySettings(false)
	_ = settings.SetCurrentHand(twentyfour.Hand{4, 7, 8, 8})
	s, err := twentyfour.NewSession(settings)
	if err != nil {
		fmt.Println("   error:", err)
		return
	}

	s.Apply(twentyfour.Parenthesis())
	s.PressNumber(1)
	s.Apply(twentyfour.Op(twentyfour.Subtract))
	s.PressNumber(2)
	s.Apply(twentyfour.Op(twentyfour.Divide))
	s.PressNumber(3)
	s.Apply(twentyfour.Parenthesis())
	s.Apply(twentyfour.Op(twentyfour.Multiply))
	expr, _ := s.PressNumber(0)

	outcome, _ := s.Submit()
	fmt.Printf("   hand %v, typed %s => %s\n", s.Hand(), expr, outcome)
	fmt.Println()
}

// dealHands deals hands in both modes with a fixed seed.
func dealHands() {
	fmt.Println("4. Dealing hands:")

	for _, mode := range []twentyfour.Mode{twentyfour.Easy, twentyfour.Hard} {
		gen := twentyfour.NewGenerator(twentyfour.WithSeed(2024), twentyfour.WithMode(mode))
		hands, err := gen.GenerateBatch(context.Background(), 5, 0)
		if err != nil {
			fmt.Println("   error:", err)
			continue
		}
		fmt.Printf("   %-4s:", mode)
		for _, h := range hands {
			mark := ""
			if !twentyfour.Solvable(h, twentyfour.Goal) {
				mark = "*"
			}
			fmt.Printf(" [%s]%s", h, mark)
		}
		fmt.Println()
	}
	fmt.Println("   (* has no solution)")
	fmt.Println()
}

// budgetedSearch bounds the search and tells "gave up" apart from "none".
func budgetedSearch() {
	fmt.Println("5. Bounded search:")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for _, limit := range []int{100, 0} {
		sol, err := twentyfour.Search([]int{1, 1, 1, 1}, twentyfour.Goal,
			twentyfour.WithNodeLimit(limit), twentyfour.WithContext(ctx))
		switch {
		case err != nil:
			fmt.Printf("   limit %-4d => %v\n", limit, err)
		case !sol.Found:
			fmt.Printf("   limit %-4d => no solution after %d nodes\n", limit, sol.Stats.NodesExplored)
		}
	}
	fmt.Println()
}
