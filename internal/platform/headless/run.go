// Package headless drives a game without a terminal. Time is virtual: the
// clock advances by the game's tick interval after every step, so a run is
// fully determined by its seeds.
package headless

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// DefaultMaxTicks bounds a run when Options.MaxTicks is not set.
const DefaultMaxTicks = 100_000

// Options configures a headless run.
type Options struct {
	Config    core.RuntimeConfig // Passed to Reset; Clock is replaced by the run's clock
	Seed      int64              // Seed of the random input
	MaxTicks  int                // Step limit; zero means DefaultMaxTicks
	TurnEvery int                // Ticks between random direction changes; zero means 8
	Logger    *log.Logger        // Progress logging; nil disables it
	LogEvery  int                // Ticks between progress lines; zero means 1000
}

// Result summarises a finished run.
type Result struct {
	Ticks    int
	State    core.GameState
	Elapsed  time.Duration // Virtual time spent
	Cues     map[core.Cue]int
	Finished bool // The game reached game over before the tick limit
}

// Run resets game on clock and steps it with random held directions until
// game over, the tick limit, or ctx is done. A step in progress always
// completes; on cancellation the partial result is returned with ctx.Err().
func Run(ctx context.Context, game registry.Game, clock *core.ManualClock, opts Options) (Result, error) {
	if opts.MaxTicks <= 0 {
		opts.MaxTicks = DefaultMaxTicks
	}
	if opts.TurnEvery <= 0 {
		opts.TurnEvery = 8
	}
	if opts.LogEvery <= 0 {
		opts.LogEvery = 1000
	}

	cfg := opts.Config
	cfg.Clock = clock
	game.Reset(cfg)

	rng := rand.New(rand.NewSource(opts.Seed))
	start := clock.Now()
	res := Result{Cues: make(map[core.Cue]int), State: game.State()}
	held := core.ActionNone

	for res.Ticks < opts.MaxTicks {
		if err := ctx.Err(); err != nil {
			res.Elapsed = clock.Now().Sub(start)
			return res, err
		}

		frame := core.NewInputFrame()
		if res.Ticks%opts.TurnEvery == 0 {
			next := core.ActionUp + core.Action(rng.Intn(4))
			if next != held {
				if held != core.ActionNone {
					frame.Release(held)
				}
				frame.Press(next)
				held = next
			}
		}

		step := game.Step(frame)
		res.Ticks++
		res.State = step.State
		for _, c := range step.Cues {
			res.Cues[c]++
		}

		if opts.Logger != nil && res.Ticks%opts.LogEvery == 0 {
			opts.Logger.Debug("progress",
				"tick", res.Ticks,
				"score", step.State.Score,
				"lives", step.State.Lives,
				"level", step.State.Level,
			)
		}

		if step.State.GameOver {
			res.Finished = true
			break
		}
		clock.Advance(game.TickInterval())
	}

	res.Elapsed = clock.Now().Sub(start)
	return res, nil
}
