package pacman

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoverHeadsRight(t *testing.T) {
	m := NewMover(KindPlayer, 64, 32, ts, nil)
	assert.Equal(t, DirRight, m.Dir)
	assert.Equal(t, DirRight, m.Facing)
	assert.Equal(t, 8, m.VX, "step is a quarter of the size")
	assert.Equal(t, 0, m.VY)
}

func TestMoveBlockedByWall(t *testing.T) {
	l := mustLayout(t,
		"XXXX",
		"XP X",
		"XXXX",
	)
	m := NewMover(KindPlayer, l.PlayerX, l.PlayerY, ts, nil)

	for i := 0; i < 4; i++ {
		require.True(t, m.Move(l.Walls, l.Width(), l.Height()), "step %d should be free", i)
	}
	assert.Equal(t, 64, m.X)

	// The next step would overlap the right wall: nothing changes.
	before := m
	assert.False(t, m.Move(l.Walls, l.Width(), l.Height()))
	assert.Equal(t, before, m)
}

func TestMoveWrapsAround(t *testing.T) {
	l := classicLayout(t)
	row := 9 * ts

	m := NewMover(KindGhost, 0, row, ts, nil)
	require.True(t, m.UpdateDirection(DirLeft, l.Walls))
	require.True(t, m.Move(l.Walls, l.Width(), l.Height()))
	assert.Equal(t, l.Width()-ts, m.X, "leaving the left edge enters from the right")

	require.True(t, m.UpdateDirection(DirRight, l.Walls))
	for i := 0; i < 3; i++ {
		require.True(t, m.Move(l.Walls, l.Width(), l.Height()))
	}
	assert.Equal(t, l.Width()-8, m.X)
	require.True(t, m.Move(l.Walls, l.Width(), l.Height()))
	assert.Equal(t, 0, m.X, "reaching the right edge wraps to zero")
}

func TestUpdateDirection(t *testing.T) {
	l := mustLayout(t,
		"XXXXX",
		"X P X",
		"XX XX",
		"XXXXX",
	)
	m := NewMover(KindPlayer, l.PlayerX, l.PlayerY, ts, nil)

	// Up is a wall: nothing changes.
	assert.False(t, m.UpdateDirection(DirUp, l.Walls))
	assert.Equal(t, DirRight, m.Dir)
	assert.Equal(t, DirRight, m.Facing)
	assert.Equal(t, 8, m.VX)
	assert.Equal(t, 0, m.VY)

	// Down is open.
	assert.True(t, m.UpdateDirection(DirDown, l.Walls))
	assert.Equal(t, DirDown, m.Dir)
	assert.Equal(t, DirDown, m.Facing)
	assert.Equal(t, 0, m.VX)
	assert.Equal(t, 8, m.VY)

	assert.False(t, m.UpdateDirection(DirNone, l.Walls))
}

func TestResetRestoresStart(t *testing.T) {
	l := mustLayout(t,
		"XXXXX",
		"X P X",
		"XX XX",
		"XXXXX",
	)
	m := NewMover(KindPlayer, l.PlayerX, l.PlayerY, ts, nil)
	require.True(t, m.UpdateDirection(DirDown, l.Walls))
	require.True(t, m.Move(l.Walls, l.Width(), l.Height()))

	m.Reset()
	assert.Equal(t, l.PlayerX, m.X)
	assert.Equal(t, l.PlayerY, m.Y)
	assert.Equal(t, DirRight, m.Dir)
	assert.Equal(t, DirRight, m.Facing)
	assert.Equal(t, 8, m.VX)
	assert.Equal(t, 0, m.VY)
}

func TestMoveNeverEndsInsideWall(t *testing.T) {
	l := classicLayout(t)
	rng := rand.New(rand.NewSource(7))
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	m := NewMover(KindPlayer, l.PlayerX, l.PlayerY, ts, nil)
	for i := 0; i < 5000; i++ {
		if rng.Intn(4) == 0 {
			m.UpdateDirection(dirs[rng.Intn(len(dirs))], l.Walls)
		}
		m.Move(l.Walls, l.Width(), l.Height())

		require.False(t, l.Walls.Collides(m.Rect()), "step %d ended inside a wall at (%d,%d)", i, m.X, m.Y)
		require.True(t, m.X >= 0 && m.X < l.Width(), "x out of board: %d", m.X)
		require.True(t, m.Y >= 0 && m.Y < l.Height(), "y out of board: %d", m.Y)

		dx, dy := m.Dir.Delta()
		require.Equal(t, dx*m.Size/4, m.VX, "velocity must follow direction")
		require.Equal(t, dy*m.Size/4, m.VY, "velocity must follow direction")
	}
}

func TestPlayerBlockedKeepsDirection(t *testing.T) {
	l := mustLayout(t,
		"XXXXXX",
		"XP   X",
		"XXXXXX",
	)
	buf := &DirectionBuffer{}
	m := NewMover(KindPlayer, l.PlayerX, l.PlayerY, ts, BufferSteering{Buffer: buf})

	buf.Press(DirUp)
	assert.False(t, m.Steer(l.Walls), "turning into a wall is refused")
	assert.True(t, m.Move(l.Walls, l.Width(), l.Height()))
	assert.Equal(t, DirRight, m.Dir)
	assert.Equal(t, l.PlayerX+8, m.X)
}
