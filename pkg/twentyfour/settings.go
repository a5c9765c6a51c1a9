package twentyfour

import "sync"

// Settings is the preference store a Session reads and writes. The game
// shell supplies its own implementation (a preferences file, browser
// storage); the engine only depends on this interface.
type Settings interface {
	// CurrentHand returns the stored hand, if any.
	CurrentHand() (Hand, bool)
	// SetCurrentHand persists the hand being played.
	SetCurrentHand(Hand) error
	// HardMode reports whether unsolvable hands may be dealt.
	HardMode() bool
}

// MemorySettings is an in-memory Settings, safe for concurrent use.
type MemorySettings struct {
	mu      sync.RWMutex
	hand    Hand
	hasHand bool
	hard    bool
}

// NewMemorySettings returns settings with no stored hand.
func NewMemorySettings(hardMode bool) *MemorySettings {
	return &MemorySettings{hard: hardMode}
}

// CurrentHand implements Settings.
func (m *MemorySettings) CurrentHand() (Hand, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hand, m.hasHand
}

// SetCurrentHand implements Settings.
func (m *MemorySettings) SetCurrentHand(h Hand) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hand, m.hasHand = h, true
	return nil
}

// HardMode implements Settings.
func (m *MemorySettings) HardMode() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hard
}

// SetHardMode toggles hard mode.
func (m *MemorySettings) SetHardMode(hard bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hard = hard
}
