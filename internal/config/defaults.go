package config

import (
	_ "embed"
)

//go:embed defaults/tetress.yaml
var defaultTetressYAML []byte

// DefaultTetressConfig returns the hardcoded Tetress configuration. It
// matches defaults/tetress.yaml.
func DefaultTetressConfig() TetressConfig {
	return TetressConfig{
		Gameplay: TetressGameplay{
			GameSpeed:     5,
			LockDelayMs:   500,
			MaxLockResets: 15,
			Use7Bag:       true,
			WallKicks:     true,
			EnableTSpin:   true,
			HardDropLock:  true,
			HoldEnabled:   true,
		},
		Timing: TetressTiming{
			DASMs:          167,
			ARRMs:          33,
			SDFFactor:      20,
			LineClearFlash: true,
			FlashSpeed:     1.0,
		},
		Modes: TetressModes{
			SprintLines:             40,
			UltraSeconds:            120,
			SurvivalIntervalSeconds: 30,
		},
		Scoring: TetressScoring{
			System:            "Modern",
			TSpinReward:       1.0,
			PerfectClearBonus: true,
			ComboBonus:        true,
		},
		Display: TetressDisplay{
			NextPieces:        3,
			ShowGhost:         true,
			ShowHold:          true,
			ColorSchemeChange: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetress":
		return defaultTetressYAML
	default:
		return nil
	}
}
