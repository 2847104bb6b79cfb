package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick mazes interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a maze and Tab for the
high scores of this run. Leaving a game with Esc returns to the menu.
Scores live only as long as the program.

Examples:
  pacman menu
  pacman menu --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runMenu(_ *cobra.Command, _ []string) error {
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("scores disabled", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	player := newCuePlayer()
	defer player.Close()

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
		Cues:    player,
	}

	err = tui.RunSession(cfg, tui.SessionOptions{
		Store:    store,
		Sessions: core.NewSessions(),
		Player:   playerName(),
		Hold:     gameConfig.Input.Hold(),
	})
	if err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
