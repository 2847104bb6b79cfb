package core

// Cue names a sound effect requested by game logic.
type Cue string

// CueSink plays cues. Implementations must not block the simulation.
type CueSink interface {
	Play(Cue)
}

// CueFunc adapts a function to CueSink.
type CueFunc func(Cue)

// Play calls f(c).
func (f CueFunc) Play(c Cue) { f(c) }

// Mute is a CueSink that discards every cue.
var Mute CueSink = CueFunc(func(Cue) {})
