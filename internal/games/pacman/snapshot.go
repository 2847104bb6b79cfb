package pacman

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateReady       GameStateType = "ready"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// GhostSnapshot captures one ghost.
type GhostSnapshot struct {
	Name       GhostName
	X, Y       int
	Dir        Direction
	Vulnerable bool
	Respawning bool
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64 // Steps taken by the game
	RoundTicks  uint64 // Ticks run by the round
	Score       int
	HighScore   int
	Lives       int
	Level       int
	IntervalMS  int64
	PlayerX     int
	PlayerY     int
	PlayerDir   Direction
	PelletsLeft int
	Ghosts      []GhostSnapshot
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	r := g.round
	state := StatePlaying
	switch {
	case r.GameOver():
		state = StateGameOver
	case g.TooSmall():
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.Ready():
		state = StateReady
	}

	now := r.Now()
	ghosts := make([]GhostSnapshot, 0, len(r.Ghosts()))
	for _, gh := range r.Ghosts() {
		v := gh.Visual(now, 0)
		ghosts = append(ghosts, GhostSnapshot{
			Name:       gh.Name,
			X:          gh.X,
			Y:          gh.Y,
			Dir:        gh.Dir,
			Vulnerable: v == VisualVulnerable || v == VisualFlashing,
			Respawning: v == VisualRespawning,
		})
	}

	p := r.Player()
	return Snapshot{
		Tick:        g.tick,
		RoundTicks:  r.Ticks(),
		Score:       r.Score(),
		HighScore:   r.HighScore(),
		Lives:       r.Lives(),
		Level:       r.Level(),
		IntervalMS:  r.Interval().Milliseconds(),
		PlayerX:     p.X,
		PlayerY:     p.Y,
		PlayerDir:   p.Dir,
		PelletsLeft: r.PelletsLeft(),
		Ghosts:      ghosts,
		State:       state,
	}
}
