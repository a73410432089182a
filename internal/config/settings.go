package config

import (
	"time"

	tetress "github.com/vovakirdan/tetress/internal/games/tetress/core"
)

// ToSettings converts the configuration into engine settings. Call Validate
// first; values are passed through unchanged.
func (c TetressConfig) ToSettings() tetress.Settings {
	return tetress.Settings{
		Use7Bag:     c.Gameplay.Use7Bag,
		WallKicks:   c.Gameplay.WallKicks,
		EnableTSpin: c.Gameplay.EnableTSpin,

		LockDelay:     time.Duration(c.Gameplay.LockDelayMs) * time.Millisecond,
		MaxLockResets: c.Gameplay.MaxLockResets,

		GameSpeed:  c.Gameplay.GameSpeed,
		FixedSpeed: c.Gameplay.FixedSpeed,
		SDFFactor:  c.Timing.SDFFactor,

		NextPieces:   c.Display.NextPieces,
		HoldEnabled:  c.Gameplay.HoldEnabled,
		HardDropLock: c.Gameplay.HardDropLock,

		Scoring:           tetress.ScoringSystem(c.Scoring.System),
		TSpinReward:       c.Scoring.TSpinReward,
		PerfectClearBonus: c.Scoring.PerfectClearBonus,
		ComboBonus:        c.Scoring.ComboBonus,

		LineClearFlash: c.Timing.LineClearFlash,
		FlashSpeed:     c.Timing.FlashSpeed,

		SprintLines:      c.Modes.SprintLines,
		UltraTime:        time.Duration(c.Modes.UltraSeconds) * time.Second,
		SurvivalInterval: time.Duration(c.Modes.SurvivalIntervalSeconds) * time.Second,

		ColorSchemeChange: c.Display.ColorSchemeChange,
	}
}
