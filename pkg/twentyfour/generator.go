package twentyfour

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"pgregory.net/rand"

	"github.com/gitrdm/twentyfour/internal/parallel"
)

// ErrInvalidHand is returned when a hand cannot be parsed.
var ErrInvalidHand = errors.New("invalid hand")

// ErrNoSolvableHand is returned when an Easy generator exhausts its attempt
// budget without drawing a solvable hand.
var ErrNoSolvableHand = errors.New("no solvable hand drawn")

// Hand is the four numbers of one puzzle.
type Hand [NumCards]int

// String formats the hand as space separated values, e.g. "4 7 8 8".
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, v := range h {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// ParseHand reads four integers separated by commas and/or whitespace.
// A run of exactly four digits with no separator ("4788") is also accepted,
// which is how a hand is stored as a single preference string.
func ParseHand(s string) (Hand, error) {
	var h Hand
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) == 1 && len(fields[0]) == NumCards {
		packed := fields[0]
		fields = fields[:0]
		for i := 0; i < len(packed); i++ {
			fields = append(fields, packed[i:i+1])
		}
	}
	if len(fields) != NumCards {
		return h, fmt.Errorf("%w: want %d numbers, got %d in %q", ErrInvalidHand, NumCards, len(fields), s)
	}
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return h, fmt.Errorf("%w: %q is not an integer", ErrInvalidHand, f)
		}
		h[i] = v
	}
	return h, nil
}

// Mode selects how the generator treats unsolvable draws.
type Mode int

const (
	// Easy redraws until the hand has a solution.
	Easy Mode = iota
	// Hard accepts any draw; the hand may have no solution.
	Hard
)

func (m Mode) String() string {
	switch m {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// GeneratorConfig holds configuration for puzzle generation.
type GeneratorConfig struct {
	// Target is the value a hand must reach in Easy mode.
	Target int

	// MaxDigit is the largest value drawn; draws are uniform in 1..MaxDigit.
	MaxDigit int

	// Mode selects retry-until-solvable (Easy) or accept-any (Hard).
	Mode Mode

	// Seed seeds the random source. Zero picks a random seed.
	Seed uint64

	// MaxAttempts bounds the number of draws in Easy mode.
	// Zero means unlimited, which is safe for the default target and digits.
	MaxAttempts int
}

// DefaultGeneratorConfig returns the configuration of the classic game.
func DefaultGeneratorConfig() *GeneratorConfig {
	return &GeneratorConfig{
		Target:   Goal,
		MaxDigit: MaxDigit,
		Mode:     Easy,
	}
}

// GeneratorOption configures NewGenerator.
type GeneratorOption func(*GeneratorConfig)

// WithSeed makes the draw sequence reproducible.
func WithSeed(seed uint64) GeneratorOption {
	return func(c *GeneratorConfig) { c.Seed = seed }
}

// WithTarget changes the value Easy hands must reach.
func WithTarget(target int) GeneratorOption {
	return func(c *GeneratorConfig) { c.Target = target }
}

// WithMode selects Easy or Hard generation.
func WithMode(m Mode) GeneratorOption {
	return func(c *GeneratorConfig) { c.Mode = m }
}

// WithMaxDigit changes the largest value drawn.
func WithMaxDigit(n int) GeneratorOption {
	return func(c *GeneratorConfig) { c.MaxDigit = n }
}

// WithMaxAttempts bounds the number of draws in Easy mode.
func WithMaxAttempts(n int) GeneratorOption {
	return func(c *GeneratorConfig) { c.MaxAttempts = n }
}

// Generator draws random hands. A Generator is not safe for concurrent
// use; GenerateBatch gives every worker its own.
type Generator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewGenerator creates a generator from DefaultGeneratorConfig and opts.
func NewGenerator(opts ...GeneratorOption) *Generator {
	cfg := DefaultGeneratorConfig()
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	return newGenerator(*cfg)
}

func newGenerator(cfg GeneratorConfig) *Generator {
	if cfg.MaxDigit < 1 {
		cfg.MaxDigit = MaxDigit
	}
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(cfg.Seed)
	} else {
		rng = rand.New()
	}
	return &Generator{config: cfg, rng: rng}
}

// Config returns a copy of the generator's configuration.
func (g *Generator) Config() GeneratorConfig {
	return g.config
}

// Draw returns four values drawn uniformly from 1..MaxDigit, regardless of
// mode.
func (g *Generator) Draw() Hand {
	var h Hand
	for i := range h {
		h[i] = 1 + g.rng.Intn(g.config.MaxDigit)
	}
	return h
}

// Next returns the next hand. In Hard mode that is simply the next draw; in
// Easy mode draws are repeated until Solvable succeeds.
func (g *Generator) Next() (Hand, error) {
	return g.NextContext(context.Background())
}

// NextContext is Next with cancellation between draws.
func (g *Generator) NextContext(ctx context.Context) (Hand, error) {
	if err := ctx.Err(); err != nil {
		return Hand{}, err
	}
	if g.config.Mode == Hard {
		return g.Draw(), nil
	}
	for attempt := 1; ; attempt++ {
		if attempt > 1 {
			if err := ctx.Err(); err != nil {
				return Hand{}, err
			}
		}
		h := g.Draw()
		if Solvable(h, g.config.Target) {
			tracef("generate", "hand %v solvable after %d draw(s)", h, attempt)
			return h, nil
		}
		if g.config.MaxAttempts > 0 && attempt >= g.config.MaxAttempts {
			return Hand{}, fmt.Errorf("%w: %d draws for target %d", ErrNoSolvableHand, attempt, g.config.Target)
		}
	}
}

// GenerateBatch produces n hands using up to workers goroutines (0 means
// one per CPU). Every task gets its own generator seeded from g, so a seeded
// parent yields the same batch on every run regardless of scheduling.
func (g *Generator) GenerateBatch(ctx context.Context, n, workers int) ([]Hand, error) {
	if n <= 0 {
		return nil, nil
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := parallel.NewWorkerPool(workers)
	defer pool.Shutdown()

	hands := make([]Hand, n)
	var (
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	for i := 0; i < n; i++ {
		i := i
		cfg := g.config
		cfg.Seed = g.rng.Uint64() | 1
		err := pool.Submit(ctx, func() {
			h, err := newGenerator(cfg).NextContext(ctx)
			if err != nil {
				fail(err)
				return
			}
			hands[i] = h
		})
		if err != nil {
			fail(err)
			break
		}
	}
	pool.Wait()

	if firstErr != nil {
		return nil, fmt.Errorf("generate batch: %w", firstErr)
	}
	tracef("generate", "batch of %d hands on %d workers", n, pool.Workers())
	return hands, nil
}
