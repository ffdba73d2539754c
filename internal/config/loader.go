package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// HomeDirName is the per-user data directory under $HOME.
const HomeDirName = ".idlespace"

// Load loads the game configuration.
// Search order: customPath -> ~/.idlespace/config.yaml -> ./configs/idlespace.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := UserPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "idlespace.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and fixes up values
// that would stall or break the simulation.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	def := Default()

	if c.Idle.MsPerPoint <= 0 {
		c.Idle.MsPerPoint = def.Idle.MsPerPoint
	}
	if c.Idle.TickIntervalMs <= 0 {
		c.Idle.TickIntervalMs = def.Idle.TickIntervalMs
	}
	if c.Idle.ScoreKey == "" {
		c.Idle.ScoreKey = def.Idle.ScoreKey
	}
	if c.Idle.LastUpdateKey == "" {
		c.Idle.LastUpdateKey = def.Idle.LastUpdateKey
	}

	if c.Scene.MinFrameMs <= 0 {
		c.Scene.MinFrameMs = def.Scene.MinFrameMs
	}
	if c.Scene.HazardRadius <= 0 {
		c.Scene.HazardRadius = def.Scene.HazardRadius
	}
	if c.Scene.PlayerWidth <= 0 {
		c.Scene.PlayerWidth = def.Scene.PlayerWidth
	}
	if c.Scene.PlayerHeight <= 0 {
		c.Scene.PlayerHeight = def.Scene.PlayerHeight
	}
	if c.Scene.StarCount < 0 {
		c.Scene.StarCount = 0
	}
	if c.Scene.Button.Width <= 0 || c.Scene.Button.Height <= 0 {
		c.Scene.Button = def.Scene.Button
	}
}

// UserPath returns a path inside ~/.idlespace, or empty if home is unavailable.
func UserPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, HomeDirName, filename)
}
