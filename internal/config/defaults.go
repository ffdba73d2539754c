package config

import (
	_ "embed"
)

//go:embed defaults/idlespace.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors
// defaults/idlespace.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Idle: IdleConfig{
			MsPerPoint:     1000,
			TickIntervalMs: 1000,
			ScoreKey:       "score",
			LastUpdateKey:  "lastUpdateEpochMs",
		},
		Scene: SceneConfig{
			MinFrameMs:   16,
			HazardRate:   0.012,
			HazardRadius: 1.5,
			PlayerStep:   2,
			PlayerWidth:  5,
			PlayerHeight: 3,
			StarCount:    100,
			StarRate:     0.004,
			Button: ButtonConfig{
				Label:        "+1",
				Width:        8,
				Height:       3,
				MarginRight:  2,
				MarginBottom: 1,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
