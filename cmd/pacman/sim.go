package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/headless"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var (
	flagSimTicks   int
	flagInputSeed  int64
	flagSimVerbose bool
	flagSimRender  bool
)

// simEpoch is the virtual start time of every simulated game.
var simEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var simCmd = &cobra.Command{
	Use:   "sim [maze]",
	Short: "Run a seeded game without a terminal",
	Long: `Run a game with random input on a virtual clock and print the result.

Time does not pass in the real world: after every tick the clock jumps
by the game's tick interval. The same --seed and --input-seed always
produce the same game.

Examples:
  pacman sim
  pacman sim mini --seed 42 --input-seed 7
  pacman sim --ticks 500 --render`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", headless.DefaultMaxTicks, "Maximum number of ticks")
	simCmd.Flags().Int64Var(&flagInputSeed, "input-seed", 1, "Seed of the random input")
	simCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log progress")
	simCmd.Flags().BoolVar(&flagSimRender, "render", false, "Print the final board")
}

func runSim(cmd *cobra.Command, args []string) error {
	id, err := selectMaze(args)
	if err != nil {
		return err
	}
	game, err := registry.Create(id)
	if err != nil {
		return err
	}

	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := headless.Run(ctx, game, core.NewManualClock(simEpoch), headless.Options{
		Config:   core.RuntimeConfig{Seed: flagSeed, Cues: core.Mute},
		Seed:     flagInputSeed,
		MaxTicks: flagSimTicks,
		Logger:   logger,
	})
	if err != nil {
		logger.Warn("run interrupted", "ticks", res.Ticks)
	}

	logger.Info("finished",
		"maze", id,
		"ticks", res.Ticks,
		"virtual_time", res.Elapsed,
		"game_over", res.Finished,
	)

	if pg, ok := game.(*pacman.Game); ok {
		printSnapshot(pg.Snapshot())
		if flagSimRender {
			printBoard(pg)
		}
	}
	for cue, n := range res.Cues {
		logger.Debug("cue", "name", cue, "count", n)
	}
	return err
}

func printSnapshot(s pacman.Snapshot) {
	fmt.Printf("State:        %s\n", s.State)
	fmt.Printf("Score:        %d (high %d)\n", s.Score, s.HighScore)
	fmt.Printf("Lives:        %d\n", s.Lives)
	fmt.Printf("Level:        %d (interval %dms)\n", s.Level, s.IntervalMS)
	fmt.Printf("Pellets left: %d\n", s.PelletsLeft)
	fmt.Printf("Round ticks:  %d\n", s.RoundTicks)
}

func printBoard(g *pacman.Game) {
	w, h := pacman.ScreenSize(g.Round().Layout())
	screen := core.NewScreen(w, h)
	g.Render(screen)
	fmt.Println(screen.String())
}
