// pacman is a tile-grid chase game for the terminal.
//
// Usage:
//
//	pacman list              - List available mazes
//	pacman play [maze]       - Play a maze
//	pacman menu              - Pick mazes interactively, with a scoreboard
//	pacman serve             - Start SSH server for remote play
//	pacman sim [maze]        - Run a seeded game without a terminal
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--mazes <dir>         - Register every maze file under dir
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagMazes      string

	// gameConfig is loaded and validated before any command runs.
	gameConfig config.PacmanConfig

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "pacman"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var layoutErr *pacman.LayoutError
		if errors.As(err, &layoutErr) {
			fmt.Fprintln(os.Stderr, "Invalid maze layout:", err)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man - eat pellets, dodge ghosts, in your terminal",
	Long: `Pac-Man is a tile-grid chase game played in the terminal.

Eat every pellet while four ghosts wander the maze. A power pellet turns
the ghosts blue for a few seconds, and blue ghosts can be eaten.

Available commands:
  list     - Show all available mazes
  play     - Play a maze directly
  menu     - Interactive maze picker with high scores
  serve    - Start SSH server for remote play
  sim      - Headless seeded run

Examples:
  pacman play
  pacman play mini --difficulty easy
  pacman play --maze ./my-maze.yaml
  pacman serve --ssh :2222
  pacman sim classic --seed 42`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagMazes, "mazes", "", "Directory of extra maze files (default ~/.pacman/mazes)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// setup loads the configuration and extra mazes. Any error stops the
// command before a game starts.
func setup(_ *cobra.Command, _ []string) error {
	pacman.SetConfigPath(flagConfig)
	pacman.SetDifficultyPreset(flagDifficulty)

	cfg, err := pacman.LoadConfig()
	if err != nil {
		return err
	}
	gameConfig = cfg

	return registerExtraMazes()
}

func registerExtraMazes() error {
	if flagMazes != "" {
		_, err := pacman.RegisterMazeDir(flagMazes)
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dir := filepath.Join(home, ".pacman", "mazes")
	if _, err := os.Stat(dir); err != nil {
		return nil
	}
	if _, err := pacman.RegisterMazeDir(dir); err != nil {
		logger.Warn("some mazes were skipped", "dir", dir, "error", err)
	}
	return nil
}

// playerName names the local player in the score book.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
