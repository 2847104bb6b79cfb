package pacman

import "github.com/vovakirdan/tui-pacman/internal/core"

// Direction is one of the four grid directions, or none.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit vector of d in screen coordinates (y grows downward).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Perpendicular returns the two directions at right angles to d.
// Horizontal directions yield {Up, Down}; vertical ones yield {Left, Right}.
func (d Direction) Perpendicular() [2]Direction {
	switch d {
	case DirLeft, DirRight:
		return [2]Direction{DirUp, DirDown}
	case DirUp, DirDown:
		return [2]Direction{DirLeft, DirRight}
	default:
		return [2]Direction{DirNone, DirNone}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// DirectionFromAction maps a movement action to its direction.
func DirectionFromAction(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirNone
	}
}
