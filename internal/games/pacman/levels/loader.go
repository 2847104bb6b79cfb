// Package levels loads maze definitions from YAML.
// This package knows nothing about the game rules; the pacman package
// turns a Maze into a playable layout.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed mazes/*.yaml
var builtinFS embed.FS

// Maze is a maze definition as read from a file.
type Maze struct {
	ID       string
	Name     string
	TileSize int // Zero means the configured default
	Rows     []string
	FilePath string // Empty for built-in mazes
}

// yamlMaze is the on-disk representation of a maze.
type yamlMaze struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	TileSize int      `yaml:"tile_size,omitempty"`
	Rows     []string `yaml:"rows"`
}

// ParseYAML parses a maze file. The layout itself is validated later by
// the game; here only the envelope is checked.
func ParseYAML(data []byte) (Maze, error) {
	var ym yamlMaze
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Maze{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ym.ID == "" {
		return Maze{}, fmt.Errorf("maze has no id")
	}
	if len(ym.Rows) == 0 {
		return Maze{}, fmt.Errorf("maze %q has no rows", ym.ID)
	}

	name := ym.Name
	if name == "" {
		name = ym.ID
	}
	return Maze{
		ID:       ym.ID,
		Name:     name,
		TileSize: ym.TileSize,
		Rows:     ym.Rows,
	}, nil
}

// Builtin returns the mazes compiled into the binary, sorted by ID.
func Builtin() ([]Maze, error) {
	entries, err := fs.ReadDir(builtinFS, "mazes")
	if err != nil {
		return nil, fmt.Errorf("reading built-in mazes: %w", err)
	}

	mazes := make([]Maze, 0, len(entries))
	for _, e := range entries {
		data, err := builtinFS.ReadFile("mazes/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("reading built-in maze %s: %w", e.Name(), err)
		}
		m, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing built-in maze %s: %w", e.Name(), err)
		}
		mazes = append(mazes, m)
	}

	sort.Slice(mazes, func(i, j int) bool {
		return mazes[i].ID < mazes[j].ID
	})
	return mazes, nil
}

// MustBuiltin is like Builtin but panics on error.
func MustBuiltin() []Maze {
	mazes, err := Builtin()
	if err != nil {
		panic(err)
	}
	return mazes
}

// LoadFile loads a single maze file.
func LoadFile(path string) (Maze, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !isSupportedExtension(ext) {
		return Maze{}, fmt.Errorf("unsupported extension: %s", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Maze{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	m, err := ParseYAML(data)
	if err != nil {
		return Maze{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	m.FilePath = path
	return m, nil
}

// Loader handles loading mazes from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new maze loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all maze files.
// Invalid files are skipped. Returns mazes sorted by ID.
func (l *Loader) LoadAll() ([]Maze, error) {
	var mazes []Maze

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		m, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		mazes = append(mazes, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(mazes, func(i, j int) bool {
		return mazes[i].ID < mazes[j].ID
	})
	return mazes, nil
}

// LoadByID loads a specific maze by ID.
func (l *Loader) LoadByID(id string) (Maze, error) {
	mazes, err := l.LoadAll()
	if err != nil {
		return Maze{}, err
	}
	for _, m := range mazes {
		if m.ID == id {
			return m, nil
		}
	}
	return Maze{}, fmt.Errorf("maze not found: %s", id)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
