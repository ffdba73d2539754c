package tui

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/vovakirdan/idle-space/internal/config"
)

// difficultyOptions lists the presets offered before a flight.
func difficultyOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Easy    calm start, slow ramp", string(config.DifficultyEasy)),
		huh.NewOption("Normal  the intended pace", string(config.DifficultyNormal)),
		huh.NewOption("Hard    fast rocks from the start", string(config.DifficultyHard)),
		huh.NewOption("Fixed   constant speed, no ramp", string(config.DifficultyFixed)),
	}
}

// PickDifficulty asks the player for a difficulty preset, starting on current.
// Aborting the form keeps the configured difficulty and returns an empty preset.
func PickDifficulty(current config.DifficultyPreset) (config.DifficultyPreset, error) {
	choice := initialChoice(current)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose your difficulty").
				Options(difficultyOptions()...).
				Value(&choice),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", err
	}
	return config.ParsePreset(choice), nil
}

// initialChoice is the option the picker starts on. Unknown presets fall
// back to "fixed", which leaves progression off.
func initialChoice(current config.DifficultyPreset) string {
	if config.ParsePreset(string(current)) == "" {
		return string(config.DifficultyFixed)
	}
	return string(current)
}
