// Command twentyfour solves, checks and deals hands of the 24 puzzle.
//
// Usage:
//
//	twentyfour solve [-target 24] [-limit N] 4 7 8 8
//	twentyfour eval "(7-8/8)x4"
//	twentyfour generate [-n 10] [-hard] [-seed S] [-workers W]
//	twentyfour survey [-max 9] [-target 24] [-list]
//	twentyfour version
//
// Set TWENTYFOUR_TRACE=1 to log solver and generator activity.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/gitrdm/twentyfour/pkg/twentyfour"
)

// errUsage marks errors caused by bad arguments; they exit with status 2.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "twentyfour:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return fmt.Errorf("%w: missing command", errUsage)
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "solve":
		return runSolve(ctx, rest, stdout, stderr)
	case "eval":
		return runEval(rest, stdout, stderr)
	case "generate":
		return runGenerate(ctx, rest, stdout, stderr)
	case "survey":
		return runSurvey(ctx, rest, stdout, stderr)
	case "version":
		info := twentyfour.GetVersionInfo()
		fmt.Fprintf(stdout, "twentyfour %s (%s)\n", info.Version, info.GoVersion)
		return nil
	case "help", "-h", "-help", "--help":
		printUsage(stdout)
		return nil
	}
	printUsage(stderr)
	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `usage: twentyfour <command> [flags] [args]

commands:
  solve     find an expression that reaches the target
  eval      evaluate a calculator expression
  generate  deal random hands
  survey    count solvable hands over a digit range
  version   print version information
`)
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// parseFlags wraps flag errors so they exit with status 2.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

func runSolve(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("solve", stderr)
	target := fs.Int("target", twentyfour.Goal, "value to reach")
	limit := fs.Int("limit", 0, "node budget, 0 for unlimited")
	stats := fs.Bool("stats", false, "print search statistics")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	numbers, err := parseNumbers(fs.Args())
	if err != nil {
		return err
	}
	sol, err := twentyfour.Search(numbers, *target,
		twentyfour.WithNodeLimit(*limit), twentyfour.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("solve %v: %w", numbers, err)
	}

	if sol.Found {
		fmt.Fprintf(stdout, "%s = %d\n", sol.Expression, *target)
	} else {
		fmt.Fprintln(stdout, twentyfour.NoSolution)
	}
	if *stats {
		s := sol.Stats
		fmt.Fprintf(stdout, "nodes=%d leaves=%d degenerate=%d elapsed=%v\n",
			s.NodesExplored, s.LeavesEvaluated, s.Degenerate, s.Elapsed)
	}
	return nil
}

// parseNumbers accepts "4 7 8 8", "4,7,8,8" or the packed "4788".
func parseNumbers(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: solve needs numbers", errUsage)
	}
	if len(args) == 1 {
		if h, err := twentyfour.ParseHand(args[0]); err == nil {
			return h[:], nil
		}
	}
	var numbers []int
	for _, a := range args {
		for _, f := range strings.Split(a, ",") {
			if f == "" {
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not an integer", errUsage, f)
			}
			numbers = append(numbers, v)
		}
	}
	if len(numbers) == 0 {
		return nil, fmt.Errorf("%w: solve needs numbers", errUsage)
	}
	return numbers, nil
}

func runEval(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("eval", stderr)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: eval needs an expression", errUsage)
	}
	expr := strings.Join(fs.Args(), " ")
	v, err := twentyfour.Evaluate(expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, twentyfour.FormatNumber(v))
	return nil
}

func runGenerate(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("generate", stderr)
	n := fs.Int("n", 1, "number of hands")
	hard := fs.Bool("hard", false, "allow hands with no solution")
	seed := fs.Uint64("seed", 0, "random seed, 0 for a random one")
	workers := fs.Int("workers", 0, "worker goroutines, 0 for one per CPU")
	target := fs.Int("target", twentyfour.Goal, "value easy hands must reach")
	maxDigit := fs.Int("max", twentyfour.MaxDigit, "largest card value")
	solve := fs.Bool("solve", false, "print a solution next to each hand")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *n < 0 || *maxDigit < 1 {
		return fmt.Errorf("%w: -n must be >= 0 and -max >= 1", errUsage)
	}

	mode := twentyfour.Easy
	if *hard {
		mode = twentyfour.Hard
	}
	gen := twentyfour.NewGenerator(
		twentyfour.WithSeed(*seed),
		twentyfour.WithMode(mode),
		twentyfour.WithTarget(*target),
		twentyfour.WithMaxDigit(*maxDigit),
	)
	hands, err := gen.GenerateBatch(ctx, *n, *workers)
	if err != nil {
		return err
	}
	for _, h := range hands {
		if !*solve {
			fmt.Fprintln(stdout, h)
			continue
		}
		expr, ok := twentyfour.Solve(h, *target)
		if !ok {
			expr = twentyfour.NoSolution
		}
		fmt.Fprintf(stdout, "%s\t%s\n", h, expr)
	}
	return nil
}

func runSurvey(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("survey", stderr)
	maxDigit := fs.Int("max", twentyfour.MaxDigit, "largest card value")
	target := fs.Int("target", twentyfour.Goal, "value to reach")
	workers := fs.Int("workers", 0, "worker goroutines, 0 for one per CPU")
	list := fs.Bool("list", false, "list the unsolvable hands")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *maxDigit < 1 {
		return fmt.Errorf("%w: -max must be >= 1", errUsage)
	}

	r, err := twentyfour.Survey(ctx, *maxDigit, *target, *workers)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "values 1..%d, target %d: %d of %d hands solvable (%.1f%%) in %v\n",
		r.MaxDigit, r.Target, r.Solvable, r.Hands, 100*r.Ratio(), r.Elapsed)
	if *list {
		for _, h := range r.Unsolvable {
			fmt.Fprintln(stdout, h)
		}
	}
	return nil
}
