// Package audio plays game sound cues through the speaker with beep.
// Tones are synthesised, so no sound files are needed.
package audio

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

const sampleRate = beep.SampleRate(22050)

// Note is one tone of a tune. A zero frequency is a rest.
type Note struct {
	Freq float64
	Dur  time.Duration
}

// tunes maps every cue to its notes.
var tunes = map[core.Cue][]Note{
	pacman.CueStart: {
		{523.25, 120 * time.Millisecond},
		{659.25, 120 * time.Millisecond},
		{783.99, 120 * time.Millisecond},
		{1046.50, 240 * time.Millisecond},
	},
	pacman.CuePellet: {
		{660, 40 * time.Millisecond},
	},
	pacman.CueGhostEaten: {
		{400, 50 * time.Millisecond},
		{800, 50 * time.Millisecond},
		{1200, 80 * time.Millisecond},
	},
	pacman.CueLifeLost: {
		{880, 90 * time.Millisecond},
		{784, 90 * time.Millisecond},
		{698, 90 * time.Millisecond},
		{587, 90 * time.Millisecond},
		{494, 90 * time.Millisecond},
		{392, 180 * time.Millisecond},
	},
	pacman.CueRoundCleared: {
		{783.99, 100 * time.Millisecond},
		{1046.50, 100 * time.Millisecond},
		{1318.51, 100 * time.Millisecond},
		{1567.98, 200 * time.Millisecond},
	},
	pacman.CueGameOver: {
		{392, 200 * time.Millisecond},
		{0, 100 * time.Millisecond},
		{330, 200 * time.Millisecond},
		{262, 400 * time.Millisecond},
	},
}

// Tune returns the notes played for c, or nil for an unknown cue.
func Tune(c core.Cue) []Note {
	return tunes[c]
}

// Player is a core.CueSink backed by the system speaker.
// When the speaker cannot be opened it stays muted.
type Player struct {
	volume float64
	ready  bool
}

// NewPlayer opens the speaker unless audio is disabled.
// A speaker failure is logged and the player continues muted.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	p := &Player{volume: cfg.Volume}
	if !cfg.Enabled {
		return p
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, continuing muted", "error", err)
		}
		return p
	}
	p.ready = true
	return p
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	return p.ready
}

// Play starts the tune for c without blocking. Overlapping tunes are mixed.
func (p *Player) Play(c core.Cue) {
	if !p.ready {
		return
	}
	notes := tunes[c]
	if len(notes) == 0 {
		return
	}
	speaker.Play(render(notes, p.volume))
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}

// render builds a finite streamer playing notes in order.
func render(notes []Note, volume float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		length := sampleRate.N(n.Dur)
		if n.Freq <= 0 {
			parts = append(parts, beep.Silence(length))
			continue
		}
		parts = append(parts, beep.Take(length, newSine(n.Freq, length)))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volume,
	}
}

// sine is an endless sine wave that fades out linearly over length samples
// and is silent afterwards.
type sine struct {
	step   float64
	phase  float64
	pos    int
	length int
}

func newSine(freq float64, length int) *sine {
	return &sine{step: freq / float64(sampleRate), length: length}
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		var v float64
		if s.pos < s.length {
			fade := 1 - float64(s.pos)/float64(s.length)
			v = 0.5 * fade * math.Sin(2*math.Pi*s.phase)
		}
		samples[i][0] = v
		samples[i][1] = v

		s.phase += s.step
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }
