package tui

import (
	"time"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// DefaultHold is the release window used when none is configured.
// It outlasts the usual key-repeat delay of terminals.
const DefaultHold = 600 * time.Millisecond

// holdTracker turns repeated terminal key presses into press/release pairs.
// Terminals report no key-up, so a direction counts as released once it
// has not repeated within the hold window.
type holdTracker struct {
	window time.Duration
	seen   map[core.Action]time.Time
}

func newHoldTracker(window time.Duration) *holdTracker {
	if window <= 0 {
		window = DefaultHold
	}
	return &holdTracker{window: window, seen: make(map[core.Action]time.Time)}
}

// press records a direction key. Only the first sighting becomes a Press.
func (h *holdTracker) press(a core.Action, now time.Time, f *core.InputFrame) {
	if _, held := h.seen[a]; !held {
		f.Press(a)
	}
	h.seen[a] = now
}

// expire releases every direction not repeated within the window,
// in Up, Down, Left, Right order.
func (h *holdTracker) expire(now time.Time, f *core.InputFrame) {
	for a := core.ActionUp; a <= core.ActionRight; a++ {
		last, held := h.seen[a]
		if held && now.Sub(last) > h.window {
			delete(h.seen, a)
			f.Release(a)
		}
	}
}

// releaseAll releases every held direction.
func (h *holdTracker) releaseAll(f *core.InputFrame) {
	for a := core.ActionUp; a <= core.ActionRight; a++ {
		if _, held := h.seen[a]; held {
			delete(h.seen, a)
			f.Release(a)
		}
	}
}

func (h *holdTracker) held(a core.Action) bool {
	_, ok := h.seen[a]
	return ok
}
