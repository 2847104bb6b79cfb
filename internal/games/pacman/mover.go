package pacman

import "github.com/vovakirdan/tui-pacman/internal/core"

// Kind tells the player and ghosts apart.
type Kind int

const (
	KindPlayer Kind = iota
	KindGhost
)

// Mover is a square entity that moves a quarter of its size per tick.
// Outside of UpdateDirection its velocity always matches Dir.
type Mover struct {
	Kind   Kind
	X, Y   int
	Size   int
	VX, VY int
	Dir    Direction
	Facing Direction // Last direction successfully taken, for rendering

	StartX, StartY int

	steering Steering
}

// NewMover creates a mover at its start position heading right.
func NewMover(kind Kind, x, y, size int, steering Steering) Mover {
	m := Mover{
		Kind:     kind,
		X:        x,
		Y:        y,
		Size:     size,
		StartX:   x,
		StartY:   y,
		steering: steering,
	}
	m.Reset()
	return m
}

// Rect returns the mover's bounding box.
func (m *Mover) Rect() core.Rect {
	return core.NewRect(m.X, m.Y, m.Size, m.Size)
}

// Next returns the bounding box after one step at the current velocity.
func (m *Mover) Next() core.Rect {
	return m.Rect().Translate(m.VX, m.VY)
}

// UpdateVelocity derives the velocity from Dir.
func (m *Mover) UpdateVelocity() {
	dx, dy := m.Dir.Delta()
	step := m.Size / 4
	m.VX, m.VY = dx*step, dy*step
}

// Move advances one step unless the step would enter a wall.
// A blocked step leaves the mover untouched. After a step, a mover that left
// the board reappears on the opposite edge.
func (m *Mover) Move(walls *WallSet, boardW, boardH int) bool {
	if walls.Collides(m.Next()) {
		return false
	}
	m.X += m.VX
	m.Y += m.VY

	if m.X < 0 {
		m.X = boardW - m.Size
	} else if m.X >= boardW {
		m.X = 0
	}
	if m.Y < 0 {
		m.Y = boardH - m.Size
	} else if m.Y >= boardH {
		m.Y = 0
	}
	return true
}

// UpdateDirection turns to d if the first step in that direction is clear.
// On a blocked turn Dir, velocity and Facing keep their previous values.
func (m *Mover) UpdateDirection(d Direction, walls *WallSet) bool {
	if d == DirNone {
		return false
	}
	prev := m.Dir
	m.Dir = d
	m.UpdateVelocity()
	if walls.Collides(m.Next()) {
		m.Dir = prev
		m.UpdateVelocity()
		return false
	}
	m.Facing = d
	return true
}

// Steer asks the steering strategy for a turn and tries to take it.
func (m *Mover) Steer(walls *WallSet) bool {
	if m.steering == nil {
		return false
	}
	d := m.steering.Turn(m, walls)
	if d == DirNone {
		return false
	}
	return m.UpdateDirection(d, walls)
}

// Reset puts the mover back on its start tile heading right.
func (m *Mover) Reset() {
	m.X, m.Y = m.StartX, m.StartY
	m.Dir = DirRight
	m.Facing = DirRight
	m.UpdateVelocity()
}
