package pacman

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Layout characters.
const (
	TileWall        = 'X'
	TilePellet      = ' '
	TilePowerPellet = '.'
	TilePlayer      = 'P'
	TileEmpty       = 'O'
)

// GhostName identifies one of the four adversaries.
type GhostName string

const (
	GhostBlue   GhostName = "blue"
	GhostOrange GhostName = "orange"
	GhostPink   GhostName = "pink"
	GhostRed    GhostName = "red"
)

// ghostTiles maps layout characters to ghost names.
var ghostTiles = map[rune]GhostName{
	'b': GhostBlue,
	'o': GhostOrange,
	'p': GhostPink,
	'r': GhostRed,
}

// PelletKind distinguishes ordinary pellets from power pellets.
type PelletKind int

const (
	PelletSmall PelletKind = iota
	PelletPower
)

// Pellet is a collectible placed in a tile.
type Pellet struct {
	Kind     PelletKind
	Col, Row int
	Rect     core.Rect
}

// GhostStart is the spawn tile of a ghost.
type GhostStart struct {
	Name GhostName
	X, Y int // Pixel position
}

// Layout is a parsed maze: walls, pellet template and spawn points.
// It is immutable once built and may be shared by many rounds.
type Layout struct {
	Cols, Rows int
	TileSize   int
	Walls      *WallSet
	Pellets    []Pellet
	PlayerX    int
	PlayerY    int
	Ghosts     []GhostStart
}

// Width returns the board width in pixels.
func (l *Layout) Width() int {
	return l.Cols * l.TileSize
}

// Height returns the board height in pixels.
func (l *Layout) Height() int {
	return l.Rows * l.TileSize
}

// LayoutError describes an unusable maze layout.
// Row and Col are zero-based; they are -1 when the problem has no position.
type LayoutError struct {
	Row, Col int
	Char     rune
	Reason   string
}

func (e *LayoutError) Error() string {
	if e.Row < 0 {
		return "layout: " + e.Reason
	}
	if e.Col < 0 {
		return fmt.Sprintf("layout: row %d: %s", e.Row+1, e.Reason)
	}
	return fmt.Sprintf("layout: row %d, column %d: %s %q", e.Row+1, e.Col+1, e.Reason, e.Char)
}

// pelletRects returns the small and power pellet rectangles for a tile origin.
// With 32 px tiles the small pellet is 4 px at +14 and the power pellet 16 px at +6.
func pelletRects(x, y, tileSize int) (small, power core.Rect) {
	smallSize := tileSize / 8
	off := (tileSize - smallSize) / 2
	powerSize := tileSize / 2
	powerOff := off - tileSize/4
	return core.NewRect(x+off, y+off, smallSize, smallSize),
		core.NewRect(x+powerOff, y+powerOff, powerSize, powerSize)
}

// ParseLayout builds a layout from rows of layout characters.
// Unknown characters, ragged rows, a missing or repeated player start and
// mazes without pellets are rejected with a *LayoutError.
func ParseLayout(rows []string, tileSize int) (*Layout, error) {
	if tileSize < 8 || tileSize%8 != 0 {
		return nil, &LayoutError{Row: -1, Col: -1, Reason: fmt.Sprintf("tile size %d is not a positive multiple of 8", tileSize)}
	}
	if len(rows) == 0 {
		return nil, &LayoutError{Row: -1, Col: -1, Reason: "no rows"}
	}

	cols := len([]rune(rows[0]))
	if cols == 0 {
		return nil, &LayoutError{Row: 0, Col: -1, Reason: "empty row"}
	}

	l := &Layout{
		Cols:     cols,
		Rows:     len(rows),
		TileSize: tileSize,
		Walls:    newWallSet(cols, len(rows), tileSize),
	}

	players := 0
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, &LayoutError{Row: r, Col: -1, Reason: fmt.Sprintf("has %d columns, expected %d", len(runes), cols)}
		}
		for c, ch := range runes {
			x, y := c*tileSize, r*tileSize
			small, power := pelletRects(x, y, tileSize)

			switch ch {
			case TileWall:
				l.Walls.add(c, r)
			case TilePellet:
				l.Pellets = append(l.Pellets, Pellet{Kind: PelletSmall, Col: c, Row: r, Rect: small})
			case TilePowerPellet:
				l.Pellets = append(l.Pellets, Pellet{Kind: PelletPower, Col: c, Row: r, Rect: power})
			case TilePlayer:
				players++
				if players > 1 {
					return nil, &LayoutError{Row: r, Col: c, Char: ch, Reason: "second player start"}
				}
				l.PlayerX, l.PlayerY = x, y
			case TileEmpty:
			default:
				name, ok := ghostTiles[ch]
				if !ok {
					return nil, &LayoutError{Row: r, Col: c, Char: ch, Reason: "unknown tile"}
				}
				l.Ghosts = append(l.Ghosts, GhostStart{Name: name, X: x, Y: y})
			}
		}
	}

	if players == 0 {
		return nil, &LayoutError{Row: -1, Col: -1, Reason: "no player start"}
	}
	if len(l.Pellets) == 0 {
		return nil, &LayoutError{Row: -1, Col: -1, Reason: "no pellets"}
	}
	return l, nil
}

// MustParseLayout is like ParseLayout but panics on error.
// Only for layouts compiled into the binary.
func MustParseLayout(rows []string, tileSize int) *Layout {
	l, err := ParseLayout(rows, tileSize)
	if err != nil {
		panic(err)
	}
	return l
}
