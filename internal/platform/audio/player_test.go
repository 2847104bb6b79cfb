package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

// drain streams s to the end and returns the samples.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer did not end")
	return nil
}

func TestEveryCueHasATune(t *testing.T) {
	cues := []core.Cue{
		pacman.CueStart,
		pacman.CuePellet,
		pacman.CueGhostEaten,
		pacman.CueLifeLost,
		pacman.CueRoundCleared,
		pacman.CueGameOver,
	}
	for _, c := range cues {
		if len(Tune(c)) == 0 {
			t.Errorf("cue %q has no tune", c)
		}
	}
	if Tune("unknown") != nil {
		t.Error("unknown cue should have no tune")
	}
}

func TestPelletTuneIsShorterThanATick(t *testing.T) {
	var total time.Duration
	for _, n := range Tune(pacman.CuePellet) {
		total += n.Dur
	}
	if total > 50*time.Millisecond {
		t.Errorf("pellet tune lasts %v, longer than one 50ms tick", total)
	}
}

func TestRenderLength(t *testing.T) {
	notes := []Note{
		{440, 20 * time.Millisecond},
		{0, 10 * time.Millisecond},
		{880, 30 * time.Millisecond},
	}
	want := 0
	for _, n := range notes {
		want += sampleRate.N(n.Dur)
	}

	got := drain(t, render(notes, 0))
	if len(got) != want {
		t.Errorf("rendered %d samples, expected %d", len(got), want)
	}
}

func TestRenderRestIsSilent(t *testing.T) {
	samples := drain(t, render([]Note{{0, 10 * time.Millisecond}}, 0))
	for i, s := range samples {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d = %v, expected silence", i, s)
		}
	}
}

func TestRenderVolume(t *testing.T) {
	notes := []Note{{440, 20 * time.Millisecond}}
	loud := drain(t, render(notes, 0))
	quiet := drain(t, render(notes, -1))

	peak := func(ss [][2]float64) float64 {
		p := 0.0
		for _, s := range ss {
			p = math.Max(p, math.Abs(s[0]))
		}
		return p
	}
	if peak(loud) == 0 {
		t.Fatal("tone should not be silent")
	}
	if math.Abs(peak(quiet)-peak(loud)/2) > 1e-9 {
		t.Errorf("volume -1 peak = %v, expected half of %v", peak(quiet), peak(loud))
	}
	if peak(loud) > 0.5 {
		t.Errorf("peak = %v, expected at most 0.5", peak(loud))
	}
}

func TestDisabledPlayerIsMuted(t *testing.T) {
	p := NewPlayer(config.AudioConfig{Enabled: false}, nil)
	if p.Enabled() {
		t.Error("disabled player should not be enabled")
	}
	// Must not touch the speaker.
	p.Play(pacman.CueStart)
	p.Close()

	var _ core.CueSink = p
}
