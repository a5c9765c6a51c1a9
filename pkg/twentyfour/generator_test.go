package twentyfour

import (
	"context"
	"errors"
	"testing"
)

func TestGenerator_SeedIsDeterministic(t *testing.T) {
	a := NewGenerator(WithSeed(42), WithMode(Hard))
	b := NewGenerator(WithSeed(42), WithMode(Hard))
	for i := 0; i < 20; i++ {
		ha, _ := a.Next()
		hb, _ := b.Next()
		if ha != hb {
			t.Fatalf("draw %d: %v != %v", i, ha, hb)
		}
	}
}

func TestGenerator_EasyHandsAreSolvable(t *testing.T) {
	g := NewGenerator(WithSeed(7))
	for i := 0; i < 50; i++ {
		h, err := g.Next()
		if err != nil {
			t.Fatal(err)
		}
		assertInRange(t, h, MaxDigit)
		if !Solvable(h, Goal) {
			t.Fatalf("easy hand %v has no solution", h)
		}
	}
}

func TestGenerator_HardHandsInRange(t *testing.T) {
	g := NewGenerator(WithSeed(3), WithMode(Hard), WithMaxDigit(6))
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		h, err := g.Next()
		if err != nil {
			t.Fatal(err)
		}
		assertInRange(t, h, 6)
		for _, v := range h {
			seen[v] = true
		}
	}
	if len(seen) != 6 {
		t.Errorf("200 hands covered values %v, want all of 1..6", seen)
	}
}

func TestGenerator_HardAcceptsUnsolvable(t *testing.T) {
	// No hand reaches 100000, so only a mode that never retries succeeds.
	g := NewGenerator(WithMode(Hard), WithTarget(100000), WithMaxAttempts(1))
	h, err := g.Next()
	if err != nil {
		t.Fatalf("Hard Next: %v", err)
	}
	assertInRange(t, h, MaxDigit)

	// A seeded Hard generator returns the raw draws, unsolvable ones included.
	hard := NewGenerator(WithSeed(13), WithMode(Hard))
	raw := NewGenerator(WithSeed(13), WithMode(Hard))
	unsolvable := 0
	for i := 0; i < 200; i++ {
		got, err := hard.Next()
		if err != nil {
			t.Fatal(err)
		}
		if want := raw.Draw(); got != want {
			t.Fatalf("draw %d: Next = %v, Draw = %v", i, got, want)
		}
		if !Solvable(got, Goal) {
			unsolvable++
		}
	}
	if unsolvable == 0 {
		t.Error("200 hard hands and none unsolvable")
	}
}

func TestGenerator_MaxAttempts(t *testing.T) {
	// 9^4 is the largest reachable value, so 100000 is never hit.
	g := NewGenerator(WithSeed(1), WithTarget(100000), WithMaxAttempts(5))
	_, err := g.Next()
	if !errors.Is(err, ErrNoSolvableHand) {
		t.Fatalf("err = %v, want ErrNoSolvableHand", err)
	}
}

func TestGenerator_Config(t *testing.T) {
	cfg := NewGenerator(WithTarget(10), WithMaxDigit(0)).Config()
	if cfg.Target != 10 || cfg.MaxDigit != MaxDigit || cfg.Mode != Easy {
		t.Errorf("Config() = %+v", cfg)
	}
	if Easy.String() != "easy" || Hard.String() != "hard" {
		t.Error("Mode.String")
	}
}

func TestGenerator_NextContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, m := range []Mode{Easy, Hard} {
		if _, err := NewGenerator(WithMode(m)).NextContext(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("%v: err = %v, want context.Canceled", m, err)
		}
	}
}

func TestGenerateBatch(t *testing.T) {
	first, err := NewGenerator(WithSeed(99)).GenerateBatch(context.Background(), 50, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 50 {
		t.Fatalf("got %d hands, want 50", len(first))
	}
	for _, h := range first {
		assertInRange(t, h, MaxDigit)
		if !Solvable(h, Goal) {
			t.Errorf("batch hand %v has no solution", h)
		}
	}

	// Same seed, different worker count: identical batch.
	second, err := NewGenerator(WithSeed(99)).GenerateBatch(context.Background(), 50, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("hand %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestGenerateBatch_EdgeCases(t *testing.T) {
	g := NewGenerator(WithSeed(5))
	hands, err := g.GenerateBatch(context.Background(), 0, 2)
	if err != nil || hands != nil {
		t.Errorf("n=0: got %v, %v", hands, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := g.GenerateBatch(ctx, 10, 2); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: err = %v, want context.Canceled", err)
	}

	bad := NewGenerator(WithSeed(5), WithTarget(100000), WithMaxAttempts(3))
	if _, err := bad.GenerateBatch(context.Background(), 4, 2); !errors.Is(err, ErrNoSolvableHand) {
		t.Errorf("err = %v, want ErrNoSolvableHand", err)
	}
}

func TestParseHand(t *testing.T) {
	tests := []struct {
		in      string
		want    Hand
		wantErr bool
	}{
		{"4 7 8 8", Hand{4, 7, 8, 8}, false},
		{"4,7,8,8", Hand{4, 7, 8, 8}, false},
		{" 4, 7,\t8 8\n", Hand{4, 7, 8, 8}, false},
		{"4788", Hand{4, 7, 8, 8}, false},
		{"10 2 3 4", Hand{10, 2, 3, 4}, false},
		{"1 2 3", Hand{}, true},
		{"1 2 3 4 5", Hand{}, true},
		{"a b c d", Hand{}, true},
		{"12a4", Hand{}, true},
		{"", Hand{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHand(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHand) {
					t.Fatalf("err = %v, want ErrInvalidHand", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ParseHand(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHand_String(t *testing.T) {
	h := Hand{4, 7, 8, 8}
	if h.String() != "4 7 8 8" {
		t.Errorf("String() = %q", h.String())
	}
	back, err := ParseHand(h.String())
	if err != nil || back != h {
		t.Errorf("round trip: %v, %v", back, err)
	}
}

func assertInRange(t *testing.T, h Hand, maxDigit int) {
	t.Helper()
	for _, v := range h {
		if !between(v, 1, maxDigit) {
			t.Fatalf("hand %v has value outside 1..%d", h, maxDigit)
		}
	}
}
