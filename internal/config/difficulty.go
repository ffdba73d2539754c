package config

import "math"

// DifficultyManager scales the hazard speed as a flight goes on.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for the distance
// travelled and the flight time so far.
func (d *DifficultyManager) Level(distance int64, flightMs int64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "distance":
		progress = float64(distance) / maxAt
	case "time":
		progress = float64(flightMs) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Rate returns the hazard rate for the current level. With progression
// disabled the base rate is returned unchanged.
func (d *DifficultyManager) Rate(baseRate float64, distance int64, flightMs int64) float64 {
	if !d.IsEnabled() {
		return baseRate
	}
	level := d.Level(distance, flightMs)
	return baseRate * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
