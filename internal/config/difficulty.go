package config

import "fmt"

// ParseDifficultyPreset converts a preset name. An empty name means normal.
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(name)
	if !p.Valid() {
		return "", fmt.Errorf("%w: difficulty %q (valid: easy, normal, hard, fixed)", ErrInvalidValue, name)
	}
	return p, nil
}

// ApplyTetressPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values; fixed pins gravity to the speed setting.
func ApplyTetressPreset(cfg *TetressConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.GameSpeed = 3
		cfg.Gameplay.LockDelayMs = 800
		cfg.Gameplay.MaxLockResets = 25
		cfg.Display.NextPieces = max(cfg.Display.NextPieces, 5)
	case DifficultyHard:
		cfg.Gameplay.GameSpeed = 8
		cfg.Gameplay.LockDelayMs = 300
		cfg.Gameplay.MaxLockResets = 5
		cfg.Display.NextPieces = min(cfg.Display.NextPieces, 1)
	case DifficultyFixed:
		cfg.Gameplay.FixedSpeed = true
	}
}
