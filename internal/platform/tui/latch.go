package tui

import "time"

// DefaultHoldWindow is how long a single key press keeps jump held. It spans
// the first auto-repeat delay of common terminals (250-500ms), so a held key
// never drops out before its repeats arrive. A tap therefore holds for longer
// than the jump hold ticks and always gives a full-height jump.
const DefaultHoldWindow = 500 * time.Millisecond

// JumpLatch turns key presses into a held state. Terminals report no key
// releases, so the key counts as held while presses (auto-repeat included)
// keep arriving within the window.
type JumpLatch struct {
	window time.Duration
	last   time.Time
	held   bool
}

// NewJumpLatch creates a released latch.
func NewJumpLatch(window time.Duration) *JumpLatch {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &JumpLatch{window: window}
}

// Press records a key press at now.
func (l *JumpLatch) Press(now time.Time) {
	l.last = now
	l.held = true
}

// Held reports whether the key still counts as held at now.
func (l *JumpLatch) Held(now time.Time) bool {
	if l.held && now.Sub(l.last) > l.window {
		l.held = false
	}
	return l.held
}

// Clear releases the latch, e.g. when the terminal loses focus.
func (l *JumpLatch) Clear() {
	l.held = false
}
