package twentyfour

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

var (
	// ErrSlotRange is returned for a card index outside 0..NumCards-1.
	ErrSlotRange = errors.New("card slot out of range")
	// ErrSlotUsed is returned when a card has already been entered.
	ErrSlotUsed = errors.New("card slot already used")
	// ErrNotACard is returned when a number is typed directly into a
	// session; numbers enter only through PressNumber.
	ErrNotACard = errors.New("numbers must come from the hand")
)

// NoSolution is the answer GiveUp reveals for an unsolvable hand.
const NoSolution = "No Solution"

// resultTolerance absorbs float64 rounding in a player's exact answer,
// e.g. 8/(3-8/3).
const resultTolerance = 1e-9

// Outcome is the verdict on a player's move.
type Outcome int

const (
	// Incorrect: the expression evaluated to something other than the target.
	Incorrect Outcome = iota
	// Correct: the expression hit the target, or the player rightly claimed
	// that no solution exists.
	Correct
	// Invalid: the expression could not be evaluated.
	Invalid
	// HasSolution: the player claimed no solution but one exists.
	HasSolution
)

func (o Outcome) String() string {
	switch o {
	case Incorrect:
		return "Incorrect"
	case Correct:
		return "Correct!"
	case Invalid:
		return "Invalid Input"
	case HasSolution:
		return "There is a solution."
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Session is one player's game: the dealt hand, the expression being typed
// and which cards have been used. It is the headless counterpart of the
// game screen and is not safe for concurrent use.
type Session struct {
	ID uuid.UUID

	settings Settings
	gen      *Generator
	builder  *Builder
	hand     Hand
	target   int

	used  [NumCards]bool
	order []slotEntry
}

// slotEntry records where a card's digits start in the buffer so Delete can
// give the card back once they are gone.
type slotEntry struct {
	slot  int
	start int
}

// NewSession starts a session. The hand stored in settings is resumed when
// present; otherwise a new one is dealt and stored. Generator options set
// the target, digit range and seed; the mode always follows settings.
func NewSession(settings Settings, opts ...GeneratorOption) (*Session, error) {
	if settings == nil {
		settings = NewMemorySettings(false)
	}
	s := &Session{
		ID:       uuid.New(),
		settings: settings,
		gen:      NewGenerator(opts...),
		builder:  NewBuilder(),
	}
	s.target = s.gen.config.Target
	if h, ok := settings.CurrentHand(); ok {
		s.hand = h
		tracef("session", "%s resumed %v", s.ID, h)
		return s, nil
	}
	if err := s.deal(); err != nil {
		return nil, err
	}
	return s, nil
}

// Hand returns the hand being played.
func (s *Session) Hand() Hand { return s.hand }

// Target returns the value the hand must reach.
func (s *Session) Target() int { return s.target }

// Expression returns the display expression.
func (s *Session) Expression() string { return s.builder.Expression() }

// Used reports which cards have been entered.
func (s *Session) Used() [NumCards]bool { return s.used }

// PressNumber enters the card in slot. Each card can be used once until it
// is given back by Delete or Clear.
func (s *Session) PressNumber(slot int) (string, error) {
	if !between(slot, 0, NumCards-1) {
		return s.Expression(), fmt.Errorf("%w: %d", ErrSlotRange, slot)
	}
	if s.used[slot] {
		return s.Expression(), fmt.Errorf("%w: %d", ErrSlotUsed, slot)
	}
	start := len(s.builder.Expression())
	expr, err := s.builder.Apply(Digit(s.hand[slot]))
	if err != nil {
		return expr, err
	}
	s.used[slot] = true
	s.order = append(s.order, slotEntry{slot: slot, start: start})
	return expr, nil
}

// Apply forwards a keypad action to the expression builder. Digits are
// rejected with ErrNotACard. Clear gives every card back; Delete gives back
// the most recent card once its digits have been removed. Calculate behaves
// as in Submit: on success the cards stay spent in the displayed result
// until Clear, on failure they are all given back.
func (s *Session) Apply(action Action) (string, error) {
	switch action.Kind {
	case ActionDigit:
		return s.Expression(), fmt.Errorf("%w: %d", ErrNotACard, action.Digit)
	case ActionCalculate:
		_, err := s.calculate()
		return s.Expression(), err
	}
	expr, err := s.builder.Apply(action)
	switch action.Kind {
	case ActionClear:
		s.releaseAll()
	case ActionDelete:
		for len(s.order) > 0 {
			last := s.order[len(s.order)-1]
			if len(expr) > last.start {
				break
			}
			s.used[last.slot] = false
			s.order = s.order[:len(s.order)-1]
		}
	}
	return expr, err
}

// Submit evaluates the typed expression and compares it with the target.
func (s *Session) Submit() (Outcome, error) {
	v, err := s.calculate()
	if err != nil {
		tracef("session", "%s submit %v: invalid: %v", s.ID, s.hand, err)
		return Invalid, err
	}
	out := Incorrect
	if IsFinite(v) && math.Abs(v-float64(s.target)) < resultTolerance {
		out = Correct
	}
	tracef("session", "%s submit %v: %s = %s", s.ID, s.hand, FormatNumber(v), out)
	return out, nil
}

// calculate evaluates the buffer. The result replaces the typed cards, so
// their slot records are dropped and Delete can no longer hand them back.
func (s *Session) calculate() (float64, error) {
	if _, err := s.builder.Apply(Calculate()); err != nil {
		s.releaseAll()
		return 0, err
	}
	s.order = s.order[:0]
	v, _ := s.builder.Result()
	return v, nil
}

// GiveUp reveals one solution of the hand, or NoSolution.
func (s *Session) GiveUp() string {
	if expr, ok := Solve(s.hand, s.target); ok {
		return expr
	}
	return NoSolution
}

// ClaimNoSolution checks the player's claim that the hand cannot be solved.
func (s *Session) ClaimNoSolution() Outcome {
	if Solvable(s.hand, s.target) {
		return HasSolution
	}
	return Correct
}

// Restart deals a new hand, stores it and clears the expression.
func (s *Session) Restart() error {
	s.builder.Reset()
	s.releaseAll()
	return s.deal()
}

func (s *Session) deal() error {
	s.gen.config.Mode = Easy
	if s.settings.HardMode() {
		s.gen.config.Mode = Hard
	}
	h, err := s.gen.Next()
	if err != nil {
		return fmt.Errorf("deal: %w", err)
	}
	if err := s.settings.SetCurrentHand(h); err != nil {
		return fmt.Errorf("store hand: %w", err)
	}
	s.hand = h
	tracef("session", "%s dealt %v (%s)", s.ID, h, s.gen.config.Mode)
	return nil
}

func (s *Session) releaseAll() {
	s.used = [NumCards]bool{}
	s.order = s.order[:0]
}
