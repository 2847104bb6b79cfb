package pacman

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Sound cues emitted by a round.
const (
	CueStart        core.Cue = "start"
	CuePellet       core.Cue = "pellet"
	CueGhostEaten   core.Cue = "ghost_eaten"
	CueLifeLost     core.Cue = "life_lost"
	CueRoundCleared core.Cue = "round_cleared"
	CueGameOver     core.Cue = "game_over"
)

// Rules are the tunable numbers of a round.
type Rules struct {
	Lives        int
	PelletPoints int
	GhostPoints  int
	TurnChance   float64
	Vulnerable   time.Duration
	Respawn      time.Duration
	Flash        time.Duration
	Speed        config.SpeedConfig
}

// RulesFromConfig extracts the round rules from a loaded configuration.
func RulesFromConfig(cfg config.PacmanConfig) Rules {
	return Rules{
		Lives:        cfg.Gameplay.Lives,
		PelletPoints: cfg.Gameplay.PelletPoints,
		GhostPoints:  cfg.Gameplay.GhostPoints,
		TurnChance:   cfg.Ghosts.TurnChance,
		Vulnerable:   cfg.Ghosts.Vulnerable(),
		Respawn:      cfg.Ghosts.Respawn(),
		Flash:        cfg.Ghosts.Flash(),
		Speed:        cfg.Speed,
	}
}

// DefaultRules returns the rules of the default configuration.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultPacmanConfig())
}

// Round is one game from the first life to game over.
// It is not safe for concurrent use; a single driver calls Tick.
type Round struct {
	layout  *Layout
	rules   Rules
	clock   core.Clock
	cues    core.CueSink
	session *core.Session
	ramp    *config.SpeedRamp

	buffer *DirectionBuffer
	player Mover
	ghosts []*Ghost
	eaten  []bool
	left   int

	tick     uint64
	score    int
	lives    int
	level    int
	gameOver bool
}

// NewRound creates a round on layout. Nil cues mute the round, a nil
// session keeps the high score private and a nil rng is seeded from the clock.
func NewRound(layout *Layout, rules Rules, clock core.Clock, rng Rand, session *core.Session, cues core.CueSink) *Round {
	if clock == nil {
		clock = core.SystemClock{}
	}
	if cues == nil {
		cues = core.Mute
	}
	if session == nil {
		session = core.NewSession()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(clock.Now().UnixNano()))
	}

	r := &Round{
		layout:  layout,
		rules:   rules,
		clock:   clock,
		cues:    cues,
		session: session,
		ramp:    config.NewSpeedRamp(rules.Speed),
		buffer:  &DirectionBuffer{},
		eaten:   make([]bool, len(layout.Pellets)),
		left:    len(layout.Pellets),
		lives:   rules.Lives,
		level:   1,
	}

	size := layout.TileSize
	r.player = NewMover(KindPlayer, layout.PlayerX, layout.PlayerY, size, BufferSteering{Buffer: r.buffer})
	steer := RandomSteering{Rand: rng, TurnChance: rules.TurnChance}
	for _, gs := range layout.Ghosts {
		r.ghosts = append(r.ghosts, NewGhost(gs.Name, gs.X, gs.Y, size, steer))
	}
	return r
}

// Buffer returns the player's direction buffer.
func (r *Round) Buffer() *DirectionBuffer {
	return r.buffer
}

// Tick runs one simulation step. After game over it does nothing.
func (r *Round) Tick() {
	if r.gameOver {
		return
	}
	r.tick++
	now := r.clock.Now()
	walls := r.layout.Walls
	w, h := r.layout.Width(), r.layout.Height()

	r.player.Steer(walls)
	r.player.Move(walls, w, h)

	body := r.player.Rect()
	for i, p := range r.layout.Pellets {
		if r.eaten[i] || !body.Intersects(p.Rect) {
			continue
		}
		r.eaten[i] = true
		r.left--
		r.score += r.rules.PelletPoints
		r.cues.Play(CuePellet)
		if p.Kind == PelletPower {
			for _, g := range r.ghosts {
				g.Frighten(now, r.rules.Vulnerable)
			}
		}
	}

	for _, g := range r.ghosts {
		if g.IsRespawning(now) {
			continue
		}
		g.Steer(walls)
		g.Move(walls, w, h)
	}

	for _, g := range r.ghosts {
		if !body.Intersects(g.Rect()) {
			continue
		}
		if g.IsVulnerable(now) {
			g.Capture(now, r.rules.Respawn)
			r.score += r.rules.GhostPoints
			r.cues.Play(CueGhostEaten)
			continue
		}
		// One life per tick, however many ghosts overlap.
		r.loseLife()
		break
	}

	if r.left == 0 && !r.gameOver {
		r.cues.Play(CueRoundCleared)
		r.level++
		r.restorePellets()
		r.resetEntities()
	}
}

func (r *Round) loseLife() {
	r.lives--
	if r.lives <= 0 {
		r.lives = 0
		r.gameOver = true
		r.session.Submit(r.score)
		r.cues.Play(CueGameOver)
		return
	}
	r.resetEntities()
	r.cues.Play(CueLifeLost)
}

func (r *Round) restorePellets() {
	for i := range r.eaten {
		r.eaten[i] = false
	}
	r.left = len(r.eaten)
}

func (r *Round) resetEntities() {
	r.player.Reset()
	for _, g := range r.ghosts {
		g.Reset()
	}
}

// Interval returns the delay until the next tick at the current level.
func (r *Round) Interval() time.Duration {
	return r.ramp.Interval(r.level)
}

// FixedSpeed reports whether the tick interval ignores the level.
func (r *Round) FixedSpeed() bool { return !r.ramp.IsEnabled() }

// Layout returns the maze of the round.
func (r *Round) Layout() *Layout { return r.layout }

// Player returns a copy of the player mover.
func (r *Round) Player() Mover { return r.player }

// Ghosts returns the ghosts. Callers must not modify them.
func (r *Round) Ghosts() []*Ghost { return r.ghosts }

// Eaten reports whether pellet i of the layout has been consumed.
func (r *Round) Eaten(i int) bool { return r.eaten[i] }

// PelletsLeft returns the number of unconsumed pellets.
func (r *Round) PelletsLeft() int { return r.left }

// Score returns the current score.
func (r *Round) Score() int { return r.score }

// Lives returns the remaining lives.
func (r *Round) Lives() int { return r.lives }

// Level returns the speed level, starting at 1.
func (r *Round) Level() int { return r.level }

// GameOver reports whether the last life has been lost.
func (r *Round) GameOver() bool { return r.gameOver }

// Ticks returns the number of ticks run.
func (r *Round) Ticks() uint64 { return r.tick }

// Rules returns the rules of the round.
func (r *Round) Rules() Rules { return r.rules }

// Now returns the round's clock reading.
func (r *Round) Now() time.Time { return r.clock.Now() }

// HighScore returns the session high score, counting the running score.
func (r *Round) HighScore() int {
	return max(r.session.HighScore(), r.score)
}
