package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available mazes",
	Long:  `Shows every built-in maze plus those loaded with --mazes.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	mazes := registry.List()

	if len(mazes) == 0 {
		fmt.Println("No mazes available.")
		return
	}

	fmt.Println("Available mazes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, m := range mazes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, m := range mazes {
		marker := ""
		if m.ID == gameConfig.Board.Maze {
			marker = "  (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, m.ID, m.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'pacman play <id>' to play a maze.")
}
