package pacman

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

func newTestGame(t *testing.T, cfg config.PacmanConfig, rows ...string) *Game {
	t.Helper()
	maze := levels.Maze{ID: "test", Name: "Test", Rows: rows}
	layout, err := LayoutFor(maze)
	require.NoError(t, err)
	return New(maze, layout).WithConfig(cfg)
}

func instantConfig() config.PacmanConfig {
	cfg := config.DefaultPacmanConfig()
	cfg.Gameplay.ReadyDelayMS = 0
	return cfg
}

func classicGame(t *testing.T) *Game {
	t.Helper()
	g, err := registry.Create("classic")
	require.NoError(t, err)
	return g.(*Game).WithConfig(config.DefaultPacmanConfig())
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Press(a)
	}
	return in
}

func TestBuiltinMazesRegistered(t *testing.T) {
	for _, id := range []string{"classic", "mini"} {
		assert.True(t, registry.Exists(id), "maze %s should be registered", id)
	}
	g, err := registry.Create("mini")
	require.NoError(t, err)
	assert.Equal(t, "Pac-Man (Mini)", g.Title())
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		clock := core.NewManualClock(epoch)
		g := classicGame(t)
		g.Reset(core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24, Clock: clock})

		keys := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%40 == 0 {
				in.Press(keys[(i/40)%len(keys)])
			}
			g.Step(in)
			clock.Advance(g.TickInterval())
		}
		return g.Snapshot()
	}

	first := run()
	second := run()
	assert.Equal(t, first, second)
	assert.Greater(t, first.RoundTicks, uint64(0))
}

func TestReadyDelay(t *testing.T) {
	clock := core.NewManualClock(epoch)
	g := classicGame(t)
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, Clock: clock})

	res := g.Step(core.NewInputFrame())
	assert.Equal(t, []core.Cue{CueStart}, res.Cues)
	assert.Equal(t, StateReady, g.Snapshot().State)
	assert.Equal(t, uint64(0), g.Round().Ticks())

	clock.Advance(1999 * time.Millisecond)
	g.Step(core.NewInputFrame())
	assert.Equal(t, uint64(0), g.Round().Ticks())

	clock.Advance(time.Millisecond)
	g.Step(core.NewInputFrame())
	assert.Equal(t, uint64(1), g.Round().Ticks())
	assert.Equal(t, StatePlaying, g.Snapshot().State)
}

func TestPauseFreezesGameTime(t *testing.T) {
	clock := core.NewManualClock(epoch)
	g := newTestGame(t, instantConfig(), huntRows...)
	g.Reset(core.RuntimeConfig{Seed: 1, Clock: clock})

	g.Step(core.NewInputFrame())
	require.Equal(t, uint64(1), g.Round().Ticks())
	ghost := g.Round().Ghosts()[0]
	require.True(t, ghost.IsVulnerable(g.Round().Now()))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	assert.True(t, res.State.Paused)

	frozen := g.Round().Now()
	clock.Advance(time.Minute)
	g.Step(core.NewInputFrame())
	assert.Equal(t, uint64(1), g.Round().Ticks(), "no ticks while paused")
	assert.Equal(t, frozen, g.Round().Now())
	assert.True(t, ghost.IsVulnerable(g.Round().Now()), "timers do not run while paused")

	res = g.Step(pause)
	assert.False(t, res.State.Paused)
	assert.Equal(t, uint64(2), g.Round().Ticks())
}

func TestKeysAppliedInOrderWhilePaused(t *testing.T) {
	g := newTestGame(t, instantConfig(), huntRows...)
	g.Reset(core.RuntimeConfig{Seed: 1, Clock: core.NewManualClock(epoch)})

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	in := press(core.ActionLeft, core.ActionUp)
	in.Release(core.ActionUp)
	in.Press(core.ActionConfirm) // not a direction
	g.Step(in)

	assert.Equal(t, DirLeft, g.Round().Buffer().Current())
	assert.Equal(t, 1, g.Round().Buffer().Held())
}

func TestRestartKeepsHighScore(t *testing.T) {
	cfg := instantConfig()
	cfg.Gameplay.Lives = 1
	session := core.NewSession()
	clock := core.NewManualClock(epoch)
	g := newTestGame(t, cfg,
		"XXXXXXXX",
		"XP  bXXX",
		"XXXXXX X",
		"XXXXXXXX",
	)
	g.Reset(core.RuntimeConfig{Seed: 1, Clock: clock, Session: session})

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	assert.Equal(t, uint64(1), g.Round().Ticks(), "restart is ignored while playing")

	var res core.StepResult
	for i := 0; i < 20 && !res.State.GameOver; i++ {
		res = g.Step(core.NewInputFrame())
	}
	require.True(t, res.State.GameOver)
	assert.Equal(t, 20, res.State.Score)
	assert.Contains(t, res.Cues, CueGameOver)

	res = g.Step(restart)
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 0, res.State.Score)
	assert.Equal(t, 1, res.State.Lives)
	assert.Equal(t, 20, res.State.HighScore)
	assert.Equal(t, 20, session.HighScore())
}

func TestCuesReachSink(t *testing.T) {
	sink := &cueLog{}
	g := newTestGame(t, instantConfig(), huntRows...)
	g.Reset(core.RuntimeConfig{Seed: 1, Clock: core.NewManualClock(epoch), Cues: sink})

	res := g.Step(core.NewInputFrame())
	assert.Equal(t, []core.Cue{CueStart, CuePellet}, res.Cues)
	assert.Equal(t, []core.Cue{CueStart, CuePellet}, sink.cues)

	res = g.Step(core.NewInputFrame())
	assert.Empty(t, res.Cues)
}

func TestTooSmallWindow(t *testing.T) {
	clock := core.NewManualClock(epoch)
	g := newTestGame(t, instantConfig(), huntRows...)
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 10, ScreenH: 4, Clock: clock})

	assert.True(t, g.TooSmall())
	g.Step(core.NewInputFrame())
	assert.Equal(t, uint64(0), g.Round().Ticks())
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)

	screen := core.NewScreen(10, 4)
	g.Render(screen)
	assert.Contains(t, screen.String(), "too")

	g.Resize(80, 24)
	assert.False(t, g.TooSmall())
	g.Step(core.NewInputFrame())
	assert.Equal(t, uint64(1), g.Round().Ticks())
}

func TestRenderClassic(t *testing.T) {
	clock := core.NewManualClock(epoch)
	g := classicGame(t)
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, Clock: clock})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	assert.Contains(t, screen.Row(0), "Score: 0")
	assert.Contains(t, screen.Row(0), "Lives: C C C")
	assert.Contains(t, out, "██")
	assert.Contains(t, out, "READY!")
	assert.Contains(t, out, "●")

	// Walls are blue, the player is yellow.
	ox := (80 - 19*cellW) / 2
	assert.Equal(t, core.ColorBlue, screen.GetCell(ox, hudHeight).Color)
	px, py := ox+9*cellW, hudHeight+15
	assert.Equal(t, core.Cell{Rune: 'C', Color: core.ColorBrightYellow}, screen.GetCell(px, py))

	clock.Advance(2 * time.Second)
	g.Step(core.NewInputFrame())
	g.Render(screen)
	assert.NotContains(t, screen.String(), "READY!")
}

func TestRenderFixedSpeed(t *testing.T) {
	cfg := instantConfig()
	cfg.Speed.Enabled = false
	g := newTestGame(t, cfg, "XXXX", "XP X", "XXXX")
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, Clock: core.NewManualClock(epoch)})
	require.True(t, g.Round().FixedSpeed())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.Row(0), "Level: 1 (fixed)")

	g2 := newTestGame(t, instantConfig(), "XXXX", "XP X", "XXXX")
	g2.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, Clock: core.NewManualClock(epoch)})
	g2.Render(screen)
	assert.NotContains(t, screen.Row(0), "fixed")
}

func TestRenderGameOver(t *testing.T) {
	cfg := instantConfig()
	cfg.Gameplay.Lives = 1
	g := newTestGame(t, cfg,
		"XXXXXXXX",
		"XP  bXXX",
		"XXXXXX X",
		"XXXXXXXX",
	)
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 40, ScreenH: 12, Clock: core.NewManualClock(epoch)})
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(40, 12)
	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "Score 20  High 20")
}

func TestRenderVulnerableGhost(t *testing.T) {
	g := newTestGame(t, instantConfig(), huntRows...)
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 40, ScreenH: 12, Clock: core.NewManualClock(epoch)})
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(40, 12)
	g.Render(screen)
	ox := (40 - 8*cellW) / 2
	cell := screen.GetCell(ox+4*cellW, hudHeight+1)
	assert.Equal(t, 'Ω', cell.Rune)
	assert.Equal(t, core.ColorBrightBlue, cell.Color)
}

func TestRegisterMazeFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("id: file-maze\nname: File\nrows:\n  - \"XXXX\"\n  - \"XP X\"\n  - \"XXXX\"\n"), 0o644))
	id, err := RegisterMazeFile(good)
	require.NoError(t, err)
	assert.Equal(t, "file-maze", id)
	assert.True(t, registry.Exists("file-maze"))

	_, err = RegisterMazeFile(good)
	assert.Error(t, err, "duplicate IDs are rejected")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("id: bad-maze\nrows:\n  - \"XPZ\"\n  - \"X X\"\n"), 0o644))
	_, err = RegisterMazeFile(bad)
	require.Error(t, err)
	var le *LayoutError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 'Z', le.Char)
	assert.True(t, strings.Contains(err.Error(), "bad.yaml"))
	assert.False(t, registry.Exists("bad-maze"))
}

func TestRegisterMazeDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("id: dir-maze-a\nrows:\n  - \"XPX\"\n  - \"X X\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("id: dir-maze-b\nrows:\n  - \"XP\"\n  - \"X X\"\n"), 0o644))

	ids, err := RegisterMazeDir(dir)
	assert.Equal(t, []string{"dir-maze-a"}, ids)
	require.Error(t, err)
	var le *LayoutError
	assert.True(t, errors.As(err, &le), "joined errors still expose the layout error")
}

func TestLoadConfigRejectsUnknownPreset(t *testing.T) {
	t.Cleanup(func() { SetDifficultyPreset("") })
	SetDifficultyPreset("nightmare")
	_, err := LoadConfig()
	assert.Error(t, err)

	SetDifficultyPreset("easy")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Gameplay.Lives)
}
