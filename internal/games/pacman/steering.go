package pacman

// Steering picks the direction a mover should try to turn to this tick.
// DirNone means keep going.
type Steering interface {
	Turn(m *Mover, walls *WallSet) Direction
}

// Rand is the subset of *math/rand.Rand used for ghost movement.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// BufferSteering turns the player toward the most recent held direction.
type BufferSteering struct {
	Buffer *DirectionBuffer
}

// Turn returns the buffered direction when it differs from the current one.
func (s BufferSteering) Turn(m *Mover, _ *WallSet) Direction {
	if s.Buffer.Held() == 0 {
		return DirNone
	}
	d := s.Buffer.Current()
	if d == m.Dir {
		return DirNone
	}
	return d
}

// RandomSteering turns a ghost at random.
// A ghost facing a wall always turns; otherwise it turns with TurnChance.
// The new direction is one of the two perpendiculars, picked uniformly.
type RandomSteering struct {
	Rand       Rand
	TurnChance float64
}

// Turn returns a perpendicular direction or DirNone.
func (s RandomSteering) Turn(m *Mover, walls *WallSet) Direction {
	if !walls.Collides(m.Next()) && s.Rand.Float64() >= s.TurnChance {
		return DirNone
	}
	return m.Dir.Perpendicular()[s.Rand.Intn(2)]
}
