package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default configuration.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Board: BoardConfig{
			TileSize: 32,
			Maze:     "classic",
		},
		Gameplay: GameplayConfig{
			Lives:        3,
			PelletPoints: 10,
			GhostPoints:  200,
			ReadyDelayMS: 2000,
		},
		Ghosts: GhostConfig{
			TurnChance:   0.10,
			VulnerableMS: 6000,
			RespawnMS:    3000,
			FlashMS:      2000,
		},
		Speed: SpeedConfig{
			Enabled:           true,
			InitialIntervalMS: 50,
			StepMS:            5,
			MinIntervalMS:     5,
		},
		Input: InputConfig{
			HoldMS: 600,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  -1.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "pacman":
		return defaultPacmanYAML
	default:
		return nil
	}
}
