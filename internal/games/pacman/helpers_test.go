package pacman

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

const ts = 32

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func mustLayout(t *testing.T, rows ...string) *Layout {
	t.Helper()
	l, err := ParseLayout(rows, ts)
	require.NoError(t, err)
	return l
}

// scriptedRand replays fixed values; once exhausted it never turns.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 1
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	i := r.ints[0] % n
	r.ints = r.ints[1:]
	return i
}

// cueLog records cues in order.
type cueLog struct {
	cues []core.Cue
}

func (l *cueLog) Play(c core.Cue) { l.cues = append(l.cues, c) }

func (l *cueLog) count(c core.Cue) int {
	n := 0
	for _, got := range l.cues {
		if got == c {
			n++
		}
	}
	return n
}

func testRules() Rules {
	r := DefaultRules()
	r.TurnChance = 0
	return r
}
