// Package twentyfour implements the engine behind the 24 puzzle: an exact
// exhaustive solver that decides whether four numbers can be combined with
// + - x / into a target value, and a small calculator (incremental builder,
// tokenizer and recursive-descent evaluator) for the player's own answer.
//
// # Search
//
// The solver keeps a list of live subexpressions, initially one leaf per
// input number. At each step it picks every pair of live entries, combines
// them with every operator (both operand orders for - and /), replaces the
// pair with the combined node and recurses until one node is left. That
// node's exact value is compared with the target.
//
// Nodes live in an index-based arena owned by a single search call; the live
// list is a scratch slice of arena indices that is saved and restored around
// every trial, so nothing escapes the call and concurrent searches on
// different inputs never share state.
//
// Values are tracked as unreduced Rationals, so 8 / (3 - 8/3) is recognised
// as exactly 24 where float64 arithmetic would be off by an ulp.
package twentyfour

import (
	"context"
	"errors"
	"time"
)

const (
	// NumCards is the number of values in a hand.
	NumCards = 4
	// Goal is the target value of the classic game.
	Goal = 24
	// MaxDigit is the largest card value drawn by default.
	MaxDigit = 9
)

// ErrSearchLimitReached indicates the search stopped because its node budget
// ran out. The hand may or may not have a solution.
var ErrSearchLimitReached = errors.New("search limit reached")

// ErrNoNumbers is returned by Search when called with an empty input.
var ErrNoNumbers = errors.New("no numbers to search")

// SearchStats reports how much work a search did.
type SearchStats struct {
	NodesExplored   int           // recursive search steps
	LeavesEvaluated int           // single-node states compared with the target
	Degenerate      int           // combinations discarded for a zero denominator
	Elapsed         time.Duration // wall time of the search
}

// Solution is the outcome of a search that ran to completion.
// Found == false means no arrangement reaches the target; that is a normal
// result, not an error.
type Solution struct {
	Found      bool
	Expression string // empty when not found or when rendering was disabled
	Value      Rational
	Stats      SearchStats
}

// SolveOption configures Search.
type SolveOption func(*solveConfig)

type solveConfig struct {
	ctx       context.Context
	nodeLimit int
	render    bool
}

// WithNodeLimit bounds the number of search steps. When the budget runs out
// Search returns ErrSearchLimitReached. Values <= 0 mean unlimited.
func WithNodeLimit(n int) SolveOption {
	return func(c *solveConfig) { c.nodeLimit = n }
}

// WithContext lets the caller cancel a long search. Cancellation is polled
// every few hundred steps and reported as ctx.Err().
func WithContext(ctx context.Context) SolveOption {
	return func(c *solveConfig) { c.ctx = ctx }
}

// WithoutExpression skips rendering of the winning expression.
func WithoutExpression() SolveOption {
	return func(c *solveConfig) { c.render = false }
}

// Solve returns an expression combining all four numbers into target, or
// false when none exists.
//
// Example:
//
//	Solve([4]int{4, 7, 8, 8}, 24) → "(4 + 7 - 8) x 8", true
func Solve(numbers [4]int, target int) (string, bool) {
	sol, err := Search(numbers[:], target)
	if err != nil {
		return "", false
	}
	return sol.Expression, sol.Found
}

// Solvable reports whether the four numbers can reach target. It runs the
// same search as Solve without building the expression string.
func Solvable(numbers [4]int, target int) bool {
	sol, err := Search(numbers[:], target, WithoutExpression())
	return err == nil && sol.Found
}

// Search runs the exhaustive search over any number of inputs. The input
// slice is never modified. The first arrangement found is returned; there is
// no attempt to enumerate every solution.
//
// A combination whose denominator is zero is discarded as soon as it is
// formed, together with every tree built on top of it, and counted in
// SearchStats.Degenerate. Checking only at the final comparison gives the
// same answers for four numbers, but with more inputs unreduced arithmetic
// can turn such a value back into a valid-looking one, e.g. x / (y / 0)
// becomes 0/y. Search never reports those as solutions.
func Search(numbers []int, target int, opts ...SolveOption) (Solution, error) {
	cfg := solveConfig{render: true}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	if len(numbers) == 0 {
		return Solution{}, ErrNoNumbers
	}

	s := newSearch(numbers, target, cfg)
	start := time.Now()
	found, err := s.run(s.live)
	s.stats.Elapsed = time.Since(start)

	if err != nil {
		tracef("solve", "%v target=%d stopped after %d nodes: %v", numbers, target, s.stats.NodesExplored, err)
		return Solution{Stats: s.stats}, err
	}
	sol := Solution{Found: found, Stats: s.stats}
	if found {
		sol.Value = s.arena[s.winner].value
		if cfg.render {
			sol.Expression = s.render(s.winner)
		}
	}
	tracef("solve", "%v target=%d found=%v expr=%q nodes=%d", numbers, target, found, sol.Expression, s.stats.NodesExplored)
	return sol, nil
}

// node is an arena entry: a leaf holding an input number or an interior
// node combining two other arena entries.
type node struct {
	leaf        bool
	op          Operator
	left, right int
	value       Rational
}

type search struct {
	target int
	cfg    solveConfig
	arena  []node
	live   []int
	winner int
	stats  SearchStats
}

func newSearch(numbers []int, target int, cfg solveConfig) *search {
	n := len(numbers)
	s := &search{
		target: target,
		cfg:    cfg,
		// n leaves plus at most n-1 interior nodes are alive at any depth
		arena: make([]node, 0, 2*n),
		live:  make([]int, n),
	}
	for i, v := range numbers {
		s.arena = append(s.arena, node{leaf: true, value: Int(v)})
		s.live[i] = i
	}
	return s
}

// pollInterval is how many steps pass between context checks.
const pollInterval = 256

func (s *search) step() error {
	s.stats.NodesExplored++
	if s.cfg.nodeLimit > 0 && s.stats.NodesExplored > s.cfg.nodeLimit {
		return ErrSearchLimitReached
	}
	if s.cfg.ctx != nil && s.stats.NodesExplored%pollInterval == 0 {
		if err := s.cfg.ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

// run searches the live entries in live. It returns true as soon as a
// single remaining entry equals the target; s.winner then holds its index
// and the arena is left intact for rendering.
func (s *search) run(live []int) (bool, error) {
	if err := s.step(); err != nil {
		return false, err
	}
	n := len(live)
	if n == 1 {
		s.stats.LeavesEvaluated++
		if s.arena[live[0]].value.EqualsInt(s.target) {
			s.winner = live[0]
			return true, nil
		}
		return false, nil
	}

	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			a, b := live[i], live[j]
			for _, op := range SearchOperators {
				if found, err := s.try(live, i, j, op, a, b); found || err != nil {
					return found, err
				}
			}
			for _, op := range SearchOperators {
				if op.Commutative() {
					continue
				}
				if found, err := s.try(live, i, j, op, b, a); found || err != nil {
					return found, err
				}
			}
		}
	}
	return false, nil
}

// try replaces live[i] and live[j] with op(left, right), recurses on the
// shrunk list and restores both entries before returning.
func (s *search) try(live []int, i, j int, op Operator, left, right int) (bool, error) {
	value, _ := op.Apply(s.arena[left].value, s.arena[right].value)
	if !value.Valid() {
		// Any tree containing a zero denominator is unusable, and
		// unreduced arithmetic could later turn it into a valid-looking 0.
		s.stats.Degenerate++
		return false, nil
	}

	mark := len(s.arena)
	s.arena = append(s.arena, node{op: op, left: left, right: right, value: value})

	n := len(live)
	savedI, savedJ := live[i], live[j]
	live[i] = mark
	copy(live[j:], live[j+1:])

	found, err := s.run(live[:n-1])

	copy(live[j+1:], live[j:n-1])
	live[i], live[j] = savedI, savedJ
	if found || err != nil {
		return found, err
	}
	s.arena = s.arena[:mark]
	return false, nil
}
