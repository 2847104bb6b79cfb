// Package pacman implements a tile-grid chase game: the player eats pellets
// while random-walking ghosts hunt it, and power pellets briefly turn the
// tables. Every built-in maze registers as its own game.
package pacman

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
)

// hudHeight is the number of screen rows above the maze.
const hudHeight = 2

// Package-level settings applied on every Reset (set by the CLI).
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// LoadConfig loads the configuration selected with SetConfigPath and
// SetDifficultyPreset.
func LoadConfig() (config.PacmanConfig, error) {
	cfg, err := config.LoadPacman(configPath)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(difficultyPreset)
	if err != nil {
		return cfg, err
	}
	config.ApplyPacmanPreset(&cfg, preset)
	return cfg, nil
}

// Game adapts a Round to the platform's game interface.
// It adds the intro delay, pausing, restarting and rendering.
type Game struct {
	maze     levels.Maze
	layout   *Layout
	override *config.PacmanConfig

	cfg     config.PacmanConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	clock   *core.PausableClock
	session *core.Session
	sink    core.CueSink
	pending []core.Cue
	round   *Round

	tick       uint64
	readyUntil time.Time
	paused     bool
	screenW    int
	screenH    int
}

// New creates a game for a parsed maze.
func New(maze levels.Maze, layout *Layout) *Game {
	return &Game{maze: maze, layout: layout}
}

// WithConfig makes the game use cfg instead of loading configuration files.
func (g *Game) WithConfig(cfg config.PacmanConfig) *Game {
	g.override = &cfg
	return g
}

// ID returns the maze identifier.
func (g *Game) ID() string {
	return g.maze.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return fmt.Sprintf("Pac-Man (%s)", g.maze.Name)
}

// Reset starts a new round. A session already attached survives the reset
// unless cfg carries another one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.cfg = g.loadConfig()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.clock = core.NewPausableClock(cfg.Clock)

	switch {
	case cfg.Session != nil:
		g.session = cfg.Session
	case g.session == nil:
		g.session = core.NewSession()
	}
	g.sink = cfg.Cues
	if g.sink == nil {
		g.sink = core.Mute
	}

	g.pending = nil
	g.tick = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.round = NewRound(g.layoutFor(g.cfg), RulesFromConfig(g.cfg), g.clock, g.rng, g.session, core.CueFunc(g.emit))
	g.readyUntil = g.clock.Now().Add(g.cfg.Gameplay.ReadyDelay())
	g.syncClock()
	g.emit(CueStart)
}

func (g *Game) loadConfig() config.PacmanConfig {
	if g.override != nil {
		return *g.override
	}
	cfg, err := LoadConfig()
	if err != nil {
		// The CLI validates the configuration before any game starts.
		return config.DefaultPacmanConfig()
	}
	return cfg
}

// layoutFor re-parses the maze when the configured tile size differs from
// the registered layout and the maze does not fix its own.
func (g *Game) layoutFor(cfg config.PacmanConfig) *Layout {
	if g.maze.TileSize != 0 || cfg.Board.TileSize == g.layout.TileSize {
		return g.layout
	}
	l, err := ParseLayout(g.maze.Rows, cfg.Board.TileSize)
	if err != nil {
		return g.layout
	}
	return l
}

func (g *Game) emit(c core.Cue) {
	g.pending = append(g.pending, c)
	g.sink.Play(c)
}

// Step applies input and runs at most one round tick.
// Key events are always fed to the direction buffer, even while paused,
// so that releases are never lost.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.round.GameOver() {
		rc := g.runtime
		rc.Seed = g.rng.Int63()
		g.Reset(rc)
		return g.result()
	}

	if in.Has(core.ActionPause) && !g.round.GameOver() {
		g.paused = !g.paused
		g.syncClock()
	}

	buf := g.round.Buffer()
	for _, ev := range in.Keys {
		d := DirectionFromAction(ev.Action)
		if d == DirNone {
			continue
		}
		if ev.Down {
			buf.Press(d)
		} else {
			buf.Release(d)
		}
	}

	if g.paused || g.round.GameOver() || g.TooSmall() || g.Ready() {
		return g.result()
	}

	g.round.Tick()
	return g.result()
}

func (g *Game) result() core.StepResult {
	cues := g.pending
	g.pending = nil
	return core.StepResult{State: g.State(), Cues: cues}
}

// syncClock stops game time while the round cannot advance.
func (g *Game) syncClock() {
	if g.paused || g.TooSmall() {
		g.clock.Pause()
	} else {
		g.clock.Resume()
	}
}

// Resize adapts to a new screen size without restarting the round.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	if g.round != nil {
		g.syncClock()
	}
}

// TooSmall reports whether the screen cannot fit the maze and HUD.
// A zero screen size means no display and is never too small.
func (g *Game) TooSmall() bool {
	if g.screenW == 0 && g.screenH == 0 {
		return false
	}
	w, h := ScreenSize(g.round.Layout())
	return g.screenW < w || g.screenH < h
}

// Ready reports whether the intro delay is still running.
func (g *Game) Ready() bool {
	return g.clock.Now().Before(g.readyUntil)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.round.Score(),
		HighScore: g.round.HighScore(),
		Lives:     g.round.Lives(),
		Level:     g.round.Level(),
		GameOver:  g.round.GameOver(),
		Paused:    g.paused,
	}
}

// TickInterval returns the delay before the next Step.
func (g *Game) TickInterval() time.Duration {
	return g.round.Interval()
}

// Round exposes the running round.
func (g *Game) Round() *Round {
	return g.round
}

// Config returns the configuration of the running round.
func (g *Game) Config() config.PacmanConfig {
	return g.cfg
}
