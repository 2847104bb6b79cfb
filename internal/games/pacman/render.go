package pacman

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// cellW is the number of screen columns per maze tile.
// Terminal cells are about twice as tall as wide.
const cellW = 2

// flashPeriod is the blink period of ghosts about to recover.
const flashPeriod = 250 * time.Millisecond

var ghostColors = map[GhostName]core.Color{
	GhostBlue:   core.ColorCyan,
	GhostOrange: core.ColorOrange,
	GhostPink:   core.ColorBrightMagenta,
	GhostRed:    core.ColorRed,
}

// ScreenSize returns the smallest screen that fits the maze and HUD.
func ScreenSize(l *Layout) (width, height int) {
	return l.Cols * cellW, l.Rows + hudHeight
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.TooSmall() {
		w, h := ScreenSize(g.round.Layout())
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	g.renderHUD(dst)
	ox := (dst.Width() - g.round.Layout().Cols*cellW) / 2
	oy := hudHeight
	g.renderMaze(dst, ox, oy)
	g.renderGhosts(dst, ox, oy)
	g.renderPlayer(dst, ox, oy)

	switch {
	case g.round.GameOver():
		g.renderOverlay(dst, "GAME OVER",
			fmt.Sprintf("Score %d  High %d", g.round.Score(), g.round.HighScore()),
			"Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "PAUSED", "Press P to continue")
	case g.Ready():
		g.renderOverlay(dst, "READY!")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	r := g.round
	lives := strings.Repeat("C ", r.Lives())
	level := fmt.Sprintf("%d", r.Level())
	if r.FixedSpeed() {
		level += " (fixed)"
	}
	hud := fmt.Sprintf(" %s  Score: %d  High: %d  Level: %s  Lives: %s",
		g.Title(), r.Score(), r.HighScore(), level, lives)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMaze draws walls and remaining pellets.
func (g *Game) renderMaze(dst *core.Screen, ox, oy int) {
	l := g.round.Layout()
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			if l.Walls.IsWall(col, row) {
				dst.DrawTextColor(ox+col*cellW, oy+row, "██", core.ColorBlue)
			}
		}
	}

	for i, p := range l.Pellets {
		if g.round.Eaten(i) {
			continue
		}
		x, y := ox+p.Col*cellW, oy+p.Row
		if p.Kind == PelletPower {
			dst.SetColor(x, y, '●', core.ColorBrightYellow)
		} else {
			dst.SetColor(x, y, '·', core.ColorYellow)
		}
	}
}

// cellOf maps a mover's center to screen coordinates.
// Columns use half-tile resolution so that movement looks smooth.
func (g *Game) cellOf(m *Mover, ox, oy int) (int, int) {
	ts := g.round.Layout().TileSize
	cx, cy := m.Rect().Center()
	return ox + core.FloorDiv(cx*cellW-ts/2, ts), oy + core.FloorDiv(cy, ts)
}

func (g *Game) renderGhosts(dst *core.Screen, ox, oy int) {
	now := g.round.Now()
	flash := g.round.Rules().Flash
	for _, gh := range g.round.Ghosts() {
		color := ghostColors[gh.Name]
		switch gh.Visual(now, flash) {
		case VisualRespawning:
			continue
		case VisualVulnerable:
			color = core.ColorBrightBlue
		case VisualFlashing:
			color = core.ColorBrightBlue
			if (gh.VulnerableLeft(now)/flashPeriod)%2 == 0 {
				color = core.ColorBrightWhite
			}
		}
		x, y := g.cellOf(&gh.Mover, ox, oy)
		dst.SetColor(x, y, 'Ω', color)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, ox, oy int) {
	p := g.round.Player()
	glyph := 'C'
	switch p.Facing {
	case DirLeft:
		glyph = 'Ɔ'
	case DirUp:
		glyph = 'U'
	case DirDown:
		glyph = '∩'
	}
	x, y := g.cellOf(&p, ox, oy)
	dst.SetColor(x, y, glyph, core.ColorBrightYellow)
}

// renderOverlay draws a centered box with one line per message.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawTextCentered(box.Y+1+i, line)
	}
}
