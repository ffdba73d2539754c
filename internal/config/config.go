// Package config provides YAML-based configuration loading and difficulty
// management for Idle Space.
package config

// Config contains all tunable parameters of the game.
type Config struct {
	Idle       IdleConfig       `yaml:"idle"`
	Scene      SceneConfig      `yaml:"scene"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// IdleConfig defines the idle accrual parameters.
type IdleConfig struct {
	MsPerPoint     int64  `yaml:"ms_per_point"`     // Elapsed milliseconds per point
	TickIntervalMs int64  `yaml:"tick_interval_ms"` // Cadence of the passive accrual timer
	ScoreKey       string `yaml:"score_key"`
	LastUpdateKey  string `yaml:"last_update_key"`
	KeyPrefix      string `yaml:"key_prefix"` // Optional namespace, e.g. "idle-space"
}

// SceneConfig defines the simulation parameters. Rates are in cells per
// millisecond of frame time.
type SceneConfig struct {
	MinFrameMs   int64        `yaml:"min_frame_ms"`
	HazardRate   float64      `yaml:"hazard_rate"`
	HazardRadius float64      `yaml:"hazard_radius"`
	PlayerStep   float64      `yaml:"player_step"`
	PlayerWidth  float64      `yaml:"player_width"`
	PlayerHeight float64      `yaml:"player_height"`
	StarCount    int          `yaml:"star_count"`
	StarRate     float64      `yaml:"star_rate"`
	Button       ButtonConfig `yaml:"button"`
}

// ButtonConfig places the primary-action button relative to the bottom-right
// corner of the screen.
type ButtonConfig struct {
	Label        string `yaml:"label"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	MarginRight  int    `yaml:"margin_right"`
	MarginBottom int    `yaml:"margin_bottom"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a flight.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "distance", "time", or "none"
	MaxAt int64  `yaml:"max_at"` // Distance or elapsed ms at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to hazard rate at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string onto a preset. Unknown strings return "" so
// the config file decides.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// PresetFor returns the preset closest to a difficulty config. Disabled
// progression reads as "fixed".
func PresetFor(d DifficultyConfig) DifficultyPreset {
	switch {
	case !d.Enabled:
		return DifficultyFixed
	case d.InitialLevel >= InitialLevelForPreset(DifficultyHard):
		return DifficultyHard
	case d.InitialLevel >= InitialLevelForPreset(DifficultyNormal):
		return DifficultyNormal
	default:
		return DifficultyEasy
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// "fixed" disables progression so the hazard falls at the base rate.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// StorageKeys returns the persisted key names with the prefix applied.
func (c IdleConfig) StorageKeys() (score, lastUpdate string) {
	score, lastUpdate = c.ScoreKey, c.LastUpdateKey
	if c.KeyPrefix != "" {
		score = c.KeyPrefix + ":" + score
		lastUpdate = c.KeyPrefix + ":" + lastUpdate
	}
	return score, lastUpdate
}
