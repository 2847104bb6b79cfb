package pacman

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

func init() {
	for _, m := range levels.MustBuiltin() {
		if err := registerMaze(m); err != nil {
			panic(err)
		}
	}
}

// LayoutFor parses a maze, using the default tile size when the maze has none.
func LayoutFor(m levels.Maze) (*Layout, error) {
	size := m.TileSize
	if size == 0 {
		size = config.DefaultPacmanConfig().Board.TileSize
	}
	l, err := ParseLayout(m.Rows, size)
	if err != nil {
		return nil, fmt.Errorf("maze %s: %w", m.ID, err)
	}
	return l, nil
}

func registerMaze(m levels.Maze) error {
	layout, err := LayoutFor(m)
	if err != nil {
		return err
	}
	return registry.TryRegister(m.ID, func() registry.Game {
		return New(m, layout)
	})
}

// RegisterMazeFile loads a maze file and registers it as a game.
// It returns the maze ID. Layout problems are reported as *LayoutError.
func RegisterMazeFile(path string) (string, error) {
	m, err := levels.LoadFile(path)
	if err != nil {
		return "", err
	}
	if err := registerMaze(m); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return m.ID, nil
}

// RegisterMazeDir registers every maze file under root.
// Mazes that fail to register are reported together; the rest stay registered.
func RegisterMazeDir(root string) ([]string, error) {
	mazes, err := levels.NewLoader(root).LoadAll()
	if err != nil {
		return nil, err
	}

	var ids []string
	var errs []error
	for _, m := range mazes {
		if err := registerMaze(m); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", m.FilePath, err))
			continue
		}
		ids = append(ids, m.ID)
	}
	return ids, errors.Join(errs...)
}
