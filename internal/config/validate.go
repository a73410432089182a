package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/tetress/internal/core"
	tetress "github.com/vovakirdan/tetress/internal/games/tetress/core"
)

// ErrInvalidValue marks a configuration value outside its allowed range.
var ErrInvalidValue = errors.New("invalid config value")

var (
	sprintGoals  = []int{20, 40, 100}
	ultraLimits  = []int{60, 120, 180, 300}
	fallbackConfig = DefaultTetressConfig()
)

// Validate clamps every out-of-range value into range and returns one
// error per adjustment. Each error wraps ErrInvalidValue.
func (c *TetressConfig) Validate() []error {
	var problems []error
	report := func(key string, got, used any) {
		problems = append(problems, fmt.Errorf("%w: %s = %v, using %v", ErrInvalidValue, key, got, used))
	}

	clampInt := func(key string, v *int, lo, hi int) {
		if got := *v; got < lo || got > hi {
			*v = core.Clamp(got, lo, hi)
			report(key, got, *v)
		}
	}
	clampFloat := func(key string, v *float64, lo, hi float64) {
		if got := *v; got < lo || got > hi {
			*v = core.Clamp(got, lo, hi)
			report(key, got, *v)
		}
	}
	oneOf := func(key string, v *int, allowed []int, fallback int) {
		if got := *v; !slices.Contains(allowed, got) {
			*v = fallback
			report(key, got, fallback)
		}
	}

	clampInt("gameplay.game_speed", &c.Gameplay.GameSpeed, 1, 10)
	clampInt("gameplay.lock_delay_ms", &c.Gameplay.LockDelayMs, 0, 1000)
	clampInt("gameplay.max_lock_resets", &c.Gameplay.MaxLockResets, 5, 25)

	clampInt("timing.das_ms", &c.Timing.DASMs, 0, 1000)
	clampInt("timing.arr_ms", &c.Timing.ARRMs, 0, 500)
	clampInt("timing.sdf_factor", &c.Timing.SDFFactor, 1, 30)
	clampFloat("timing.flash_speed", &c.Timing.FlashSpeed, 0.25, 4.0)

	oneOf("modes.sprint_lines", &c.Modes.SprintLines, sprintGoals, fallbackConfig.Modes.SprintLines)
	oneOf("modes.ultra_seconds", &c.Modes.UltraSeconds, ultraLimits, fallbackConfig.Modes.UltraSeconds)
	clampInt("modes.survival_interval_seconds", &c.Modes.SurvivalIntervalSeconds, 10, 60)

	if !slices.Contains(tetress.ScoringSystems, tetress.ScoringSystem(c.Scoring.System)) {
		report("scoring.system", c.Scoring.System, fallbackConfig.Scoring.System)
		c.Scoring.System = fallbackConfig.Scoring.System
	}
	clampFloat("scoring.t_spin_reward", &c.Scoring.TSpinReward, 0.5, 3.0)

	clampInt("display.next_pieces", &c.Display.NextPieces, 1, 6)

	return problems
}
