package headless

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func miniGame(t *testing.T) *pacman.Game {
	t.Helper()
	g, err := registry.Create("mini")
	require.NoError(t, err)
	return g.(*pacman.Game).WithConfig(config.DefaultPacmanConfig())
}

// endingGame is over after a fixed number of steps.
type endingGame struct {
	steps, after int
}

func (g *endingGame) ID() string                  { return "ending" }
func (g *endingGame) Title() string               { return "Ending" }
func (g *endingGame) Reset(core.RuntimeConfig)    { g.steps = 0 }
func (g *endingGame) Render(*core.Screen)         {}
func (g *endingGame) TickInterval() time.Duration { return 10 * time.Millisecond }
func (g *endingGame) State() core.GameState       { return core.GameState{GameOver: g.steps >= g.after} }

func (g *endingGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func TestRunDeterministic(t *testing.T) {
	run := func() (Result, pacman.Snapshot) {
		g := miniGame(t)
		res, err := Run(context.Background(), g, core.NewManualClock(epoch), Options{
			Config:   core.RuntimeConfig{Seed: 7},
			Seed:     11,
			MaxTicks: 3000,
		})
		require.NoError(t, err)
		return res, g.Snapshot()
	}

	res1, snap1 := run()
	res2, snap2 := run()

	assert.Equal(t, res1, res2)
	assert.Equal(t, snap1, snap2)
	assert.Positive(t, res1.Ticks)
}

func TestRunAdvancesVirtualClock(t *testing.T) {
	g := miniGame(t)
	clock := core.NewManualClock(epoch)

	res, err := Run(context.Background(), g, clock, Options{Seed: 1, MaxTicks: 10})
	require.NoError(t, err)

	assert.Equal(t, 10, res.Ticks)
	assert.False(t, res.Finished)
	assert.Equal(t, 500*time.Millisecond, res.Elapsed)
	assert.Equal(t, epoch.Add(500*time.Millisecond), clock.Now())
	assert.Equal(t, 1, res.Cues[pacman.CueStart])
}

func TestRunStopsAtGameOver(t *testing.T) {
	g := &endingGame{after: 3}
	res, err := Run(context.Background(), g, core.NewManualClock(epoch), Options{MaxTicks: 100})
	require.NoError(t, err)

	assert.True(t, res.Finished)
	assert.Equal(t, 3, res.Ticks)
	assert.True(t, res.State.GameOver)
	// No advance after the final step
	assert.Equal(t, 20*time.Millisecond, res.Elapsed)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, &endingGame{after: 3}, core.NewManualClock(epoch), Options{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Ticks)
}

func TestRunPlaysThroughTheReadyDelay(t *testing.T) {
	g := miniGame(t)
	ready := config.DefaultPacmanConfig().Gameplay.ReadyDelay()

	steps := int(ready/(50*time.Millisecond)) + 20
	_, err := Run(context.Background(), g, core.NewManualClock(epoch), Options{Seed: 3, MaxTicks: steps})
	require.NoError(t, err)

	assert.False(t, g.Ready())
	assert.Positive(t, g.Round().Ticks(), "round should tick once the intro delay has passed")
}
