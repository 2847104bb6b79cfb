// Package config provides YAML-based game configuration loading and
// difficulty management for the pacman engine.
package config

import (
	"fmt"
	"time"
)

// PacmanConfig contains all tunable parameters of a round.
type PacmanConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Ghosts   GhostConfig    `yaml:"ghosts"`
	Speed    SpeedConfig    `yaml:"speed"`
	Input    InputConfig    `yaml:"input"`
	Audio    AudioConfig    `yaml:"audio"`
}

// BoardConfig selects the maze and its tile size.
type BoardConfig struct {
	TileSize int    `yaml:"tile_size"` // Pixels per tile, a multiple of 8; mover step is a quarter of this
	Maze     string `yaml:"maze"`      // Default maze ID for the play command
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives        int `yaml:"lives"`
	PelletPoints int `yaml:"pellet_points"`
	GhostPoints  int `yaml:"ghost_points"`
	ReadyDelayMS int `yaml:"ready_delay_ms"` // Pause before the first tick of a round
}

// GhostConfig defines adversary behaviour.
type GhostConfig struct {
	TurnChance   float64 `yaml:"turn_chance"`   // Per-tick probability of a random turn
	VulnerableMS int     `yaml:"vulnerable_ms"` // Duration after a power pellet
	RespawnMS    int     `yaml:"respawn_ms"`    // Time off-board after capture
	FlashMS      int     `yaml:"flash_ms"`      // Final part of vulnerability drawn flashing
}

// SpeedConfig defines how the tick interval shrinks per cleared round.
type SpeedConfig struct {
	Enabled           bool `yaml:"enabled"`
	InitialIntervalMS int  `yaml:"initial_interval_ms"`
	StepMS            int  `yaml:"step_ms"`
	MinIntervalMS     int  `yaml:"min_interval_ms"`
}

// InputConfig tunes key release emulation for terminals.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // A direction not repeated within this window is released
}

// AudioConfig controls sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Relative volume in beep's exponential scale, 0 is unchanged
}

// ReadyDelay returns the intro delay as a duration.
func (c GameplayConfig) ReadyDelay() time.Duration {
	return time.Duration(c.ReadyDelayMS) * time.Millisecond
}

// Vulnerable returns the vulnerability window as a duration.
func (c GhostConfig) Vulnerable() time.Duration {
	return time.Duration(c.VulnerableMS) * time.Millisecond
}

// Respawn returns the respawn delay as a duration.
func (c GhostConfig) Respawn() time.Duration {
	return time.Duration(c.RespawnMS) * time.Millisecond
}

// Flash returns the flashing window as a duration.
func (c GhostConfig) Flash() time.Duration {
	return time.Duration(c.FlashMS) * time.Millisecond
}

// Hold returns the key hold window as a duration.
func (c InputConfig) Hold() time.Duration {
	return time.Duration(c.HoldMS) * time.Millisecond
}

// Validate reports the first out-of-range value.
func (c PacmanConfig) Validate() error {
	switch {
	case c.Board.TileSize < 8 || c.Board.TileSize%8 != 0:
		return fmt.Errorf("board.tile_size must be a positive multiple of 8, got %d", c.Board.TileSize)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("gameplay.lives must be at least 1, got %d", c.Gameplay.Lives)
	case c.Gameplay.PelletPoints < 0 || c.Gameplay.GhostPoints < 0:
		return fmt.Errorf("gameplay points must not be negative")
	case c.Gameplay.ReadyDelayMS < 0:
		return fmt.Errorf("gameplay.ready_delay_ms must not be negative, got %d", c.Gameplay.ReadyDelayMS)
	case c.Ghosts.TurnChance < 0 || c.Ghosts.TurnChance > 1:
		return fmt.Errorf("ghosts.turn_chance must be within [0, 1], got %g", c.Ghosts.TurnChance)
	case c.Ghosts.VulnerableMS <= 0 || c.Ghosts.RespawnMS <= 0:
		return fmt.Errorf("ghosts timers must be positive")
	case c.Ghosts.FlashMS < 0:
		return fmt.Errorf("ghosts.flash_ms must not be negative, got %d", c.Ghosts.FlashMS)
	case c.Speed.InitialIntervalMS <= 0 || c.Speed.MinIntervalMS <= 0:
		return fmt.Errorf("speed intervals must be positive")
	case c.Speed.StepMS < 0:
		return fmt.Errorf("speed.step_ms must not be negative, got %d", c.Speed.StepMS)
	case c.Input.HoldMS <= 0:
		return fmt.Errorf("input.hold_ms must be positive, got %d", c.Input.HoldMS)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// IsFixedPreset returns true if the preset disables the speed ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
