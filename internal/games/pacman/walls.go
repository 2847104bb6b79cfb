package pacman

import "github.com/vovakirdan/tui-pacman/internal/core"

// WallSet is the immutable set of wall tiles of a maze.
// Queries only inspect the tiles a rectangle overlaps, so a collision test
// costs O(overlapped tiles) instead of O(walls).
type WallSet struct {
	cols, rows int
	tileSize   int
	cells      []bool
}

func newWallSet(cols, rows, tileSize int) *WallSet {
	return &WallSet{
		cols:     cols,
		rows:     rows,
		tileSize: tileSize,
		cells:    make([]bool, cols*rows),
	}
}

func (w *WallSet) add(col, row int) {
	w.cells[row*w.cols+col] = true
}

// IsWall reports whether the tile at (col, row) is a wall.
// Tiles outside the grid are never walls.
func (w *WallSet) IsWall(col, row int) bool {
	if !core.NewRect(0, 0, w.cols, w.rows).Contains(col, row) {
		return false
	}
	return w.cells[row*w.cols+col]
}

// TileRect returns the pixel rectangle of the tile at (col, row).
func (w *WallSet) TileRect(col, row int) core.Rect {
	return core.NewRect(col*w.tileSize, row*w.tileSize, w.tileSize, w.tileSize)
}

// Collides reports whether r intersects any wall.
// Touching edges do not count as an intersection.
func (w *WallSet) Collides(r core.Rect) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	c0 := core.FloorDiv(r.X, w.tileSize)
	c1 := core.FloorDiv(r.Right()-1, w.tileSize)
	r0 := core.FloorDiv(r.Y, w.tileSize)
	r1 := core.FloorDiv(r.Bottom()-1, w.tileSize)

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if w.IsWall(col, row) && r.Intersects(w.TileRect(col, row)) {
				return true
			}
		}
	}
	return false
}
