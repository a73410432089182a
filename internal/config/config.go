// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for the arcade platform.
package config

// TetressConfig contains all configuration for the Tetress game.
type TetressConfig struct {
	Gameplay TetressGameplay `yaml:"gameplay"`
	Timing   TetressTiming   `yaml:"timing"`
	Modes    TetressModes    `yaml:"modes"`
	Scoring  TetressScoring  `yaml:"scoring"`
	Display  TetressDisplay  `yaml:"display"`
}

// TetressGameplay defines the core rules.
type TetressGameplay struct {
	GameSpeed     int  `yaml:"game_speed"`      // 1 (slowest) to 10; 5 enables the Marathon level curve
	FixedSpeed    bool `yaml:"fixed_speed"`     // ignore level for gravity
	LockDelayMs   int  `yaml:"lock_delay_ms"`   // grace period on the stack
	MaxLockResets int  `yaml:"max_lock_resets"` // moves/rotations that restart the lock delay
	Use7Bag       bool `yaml:"use_7_bag"`
	WallKicks     bool `yaml:"wall_kicks"`
	EnableTSpin   bool `yaml:"enable_t_spin"`
	HardDropLock  bool `yaml:"hard_drop_lock"`
	HoldEnabled   bool `yaml:"hold_enabled"`
}

// TetressTiming defines input and effect timing.
type TetressTiming struct {
	DASMs          int     `yaml:"das_ms"` // delayed auto-shift
	ARRMs          int     `yaml:"arr_ms"` // auto-repeat rate, 0 = instant
	SDFFactor      int     `yaml:"sdf_factor"`
	LineClearFlash bool    `yaml:"line_clear_flash"`
	FlashSpeed     float64 `yaml:"flash_speed"`
}

// TetressModes defines mode goals.
type TetressModes struct {
	SprintLines             int `yaml:"sprint_lines"`
	UltraSeconds            int `yaml:"ultra_seconds"`
	SurvivalIntervalSeconds int `yaml:"survival_interval_seconds"`
}

// TetressScoring selects the scoring preset and bonuses.
type TetressScoring struct {
	System            string  `yaml:"system"` // Classic, Modern or T-Spin Focused
	TSpinReward       float64 `yaml:"t_spin_reward"`
	PerfectClearBonus bool    `yaml:"perfect_clear_bonus"`
	ComboBonus        bool    `yaml:"combo_bonus"`
}

// TetressDisplay defines what the renderer shows.
type TetressDisplay struct {
	NextPieces        int  `yaml:"next_pieces"`
	ShowGhost         bool `yaml:"show_ghost"`
	ShowHold          bool `yaml:"show_hold"`
	ColorSchemeChange bool `yaml:"color_scheme_change"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Valid reports whether p names a known preset.
func (p DifficultyPreset) Valid() bool {
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}
