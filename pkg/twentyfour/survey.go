package twentyfour

import (
	"context"
	"fmt"
	"time"

	"github.com/gitrdm/twentyfour/internal/parallel"
)

// SurveyReport summarises solvability over every hand in a digit range.
type SurveyReport struct {
	MaxDigit   int
	Target     int
	Hands      int    // distinct multisets of four values in 1..MaxDigit
	Solvable   int    // hands with at least one solution
	Unsolvable []Hand // in ascending order
	Elapsed    time.Duration
}

// Ratio returns the solvable fraction of the surveyed hands.
func (r SurveyReport) Ratio() float64 {
	if r.Hands == 0 {
		return 0
	}
	return float64(r.Solvable) / float64(r.Hands)
}

// Survey checks every hand whose values are drawn from 1..maxDigit, ignoring
// card order, against target. Work is split by the smallest card across up
// to workers goroutines (0 means one per CPU).
func Survey(ctx context.Context, maxDigit, target, workers int) (SurveyReport, error) {
	if maxDigit < 1 {
		return SurveyReport{}, fmt.Errorf("survey: max digit %d out of range", maxDigit)
	}
	start := time.Now()

	type partial struct {
		hands      int
		unsolvable []Hand
		err        error
	}
	parts := make([]partial, maxDigit+1)

	pool := parallel.NewWorkerPool(workers)
	defer pool.Shutdown()

	var submitErr error
	for a := 1; a <= maxDigit; a++ {
		a := a
		err := pool.Submit(ctx, func() {
			p := &parts[a]
			for b := a; b <= maxDigit; b++ {
				for c := b; c <= maxDigit; c++ {
					for d := c; d <= maxDigit; d++ {
						if err := ctx.Err(); err != nil {
							p.err = err
							return
						}
						h := Hand{a, b, c, d}
						p.hands++
						if !Solvable(h, target) {
							p.unsolvable = append(p.unsolvable, h)
						}
					}
				}
			}
		})
		if err != nil {
			submitErr = err
			break
		}
	}
	pool.Wait()

	if submitErr != nil {
		return SurveyReport{}, fmt.Errorf("survey: %w", submitErr)
	}
	report := SurveyReport{MaxDigit: maxDigit, Target: target}
	for _, p := range parts[1:] {
		if p.err != nil {
			return SurveyReport{}, fmt.Errorf("survey: %w", p.err)
		}
		report.Hands += p.hands
		report.Unsolvable = append(report.Unsolvable, p.unsolvable...)
	}
	report.Solvable = report.Hands - len(report.Unsolvable)
	report.Elapsed = time.Since(start)
	tracef("survey", "1..%d target=%d: %d/%d solvable in %v", maxDigit, target, report.Solvable, report.Hands, report.Elapsed)
	return report, nil
}
