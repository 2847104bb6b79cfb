package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/audio"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var (
	flagMaze string
	flagMute bool
)

var playCmd = &cobra.Command{
	Use:   "play [maze]",
	Short: "Play a maze",
	Long: `Start playing the given maze, or the configured default.

Controls:
  Arrows/WASD/hjkl  - Move (hold to keep turning at the next junction)
  P/Space           - Pause
  R                 - Restart (after game over)
  Esc/B             - Leave
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Five lives, longer blue ghosts
  normal - Default settings
  hard   - Two lives, shorter blue ghosts, faster start
  fixed  - No speed-up between rounds

Examples:
  pacman play
  pacman play mini
  pacman play --difficulty hard
  pacman play --maze ./my-maze.yaml
  pacman play --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMaze, "maze", "", "Path to a maze YAML file to play")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, args []string) error {
	id, err := selectMaze(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(id)
	if err != nil {
		return err
	}

	player := newCuePlayer()
	defer player.Close()

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
		Session: core.NewSession(),
		Cues:    player,
	}

	_, err = tui.Run(game, cfg, tui.Options{
		Player: playerName(),
		Hold:   gameConfig.Input.Hold(),
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// selectMaze resolves the maze to play: --maze file, then the argument,
// then the configured default.
func selectMaze(args []string) (string, error) {
	if flagMaze != "" {
		return pacman.RegisterMazeFile(flagMaze)
	}

	id := gameConfig.Board.Maze
	if len(args) == 1 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown maze %q, run 'pacman list' to see available mazes", id)
	}
	return id, nil
}

// newCuePlayer opens the speaker unless sound is muted.
func newCuePlayer() *audio.Player {
	cfg := gameConfig.Audio
	if flagMute {
		cfg = config.AudioConfig{}
	}
	return audio.NewPlayer(cfg, logger)
}

// terminalSize returns the current terminal size, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
