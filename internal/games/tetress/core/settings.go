package core

import "time"

// ScoringSystem names a base score table.
type ScoringSystem string

const (
	ScoringClassic      ScoringSystem = "Classic"
	ScoringModern       ScoringSystem = "Modern"
	ScoringTSpinFocused ScoringSystem = "T-Spin Focused"
)

// ScoringSystems lists the supported presets.
var ScoringSystems = []ScoringSystem{ScoringClassic, ScoringModern, ScoringTSpinFocused}

// DefaultGameSpeed is the speed setting that enables the authentic Marathon
// gravity curve.
const DefaultGameSpeed = 5

// Settings is the immutable configuration of one session. It is validated
// by the config layer before an engine is built.
type Settings struct {
	Use7Bag     bool
	WallKicks   bool
	EnableTSpin bool

	LockDelay     time.Duration
	MaxLockResets int

	// GameSpeed selects a flat gravity interval (1 slowest, 10 fastest).
	GameSpeed int
	// FixedSpeed disables the level-based Marathon curve.
	FixedSpeed bool
	SDFFactor  int

	NextPieces   int
	HoldEnabled  bool
	HardDropLock bool

	Scoring           ScoringSystem
	TSpinReward       float64
	PerfectClearBonus bool
	ComboBonus        bool

	LineClearFlash bool
	FlashSpeed     float64

	SprintLines      int
	UltraTime        time.Duration
	SurvivalInterval time.Duration

	ColorSchemeChange bool
}

// DefaultSettings returns the stock configuration.
func DefaultSettings() Settings {
	return Settings{
		Use7Bag:           true,
		WallKicks:         true,
		EnableTSpin:       true,
		LockDelay:         500 * time.Millisecond,
		MaxLockResets:     15,
		GameSpeed:         DefaultGameSpeed,
		SDFFactor:         20,
		NextPieces:        3,
		HoldEnabled:       true,
		HardDropLock:      true,
		Scoring:           ScoringModern,
		TSpinReward:       1.0,
		PerfectClearBonus: true,
		ComboBonus:        true,
		LineClearFlash:    true,
		FlashSpeed:        1.0,
		SprintLines:       40,
		UltraTime:         120 * time.Second,
		SurvivalInterval:  30 * time.Second,
		ColorSchemeChange: true,
	}
}

// Sanitize returns a copy with every timer and divisor forced into a
// positive range so the engine never divides by zero or runs a negative
// timer. It does not enforce the config layer's tighter ranges.
func (s Settings) Sanitize() Settings {
	if s.LockDelay < 0 {
		s.LockDelay = 0
	}
	if s.MaxLockResets < 0 {
		s.MaxLockResets = 0
	}
	s.GameSpeed = min(max(s.GameSpeed, 1), len(flatIntervals))
	if s.SDFFactor < 1 {
		s.SDFFactor = 1
	}
	s.NextPieces = min(max(s.NextPieces, 1), 6)
	if s.TSpinReward <= 0 {
		s.TSpinReward = 1.0
	}
	if s.FlashSpeed <= 0 {
		s.FlashSpeed = 1.0
	}
	if s.SprintLines < 1 {
		s.SprintLines = 40
	}
	if s.UltraTime <= 0 {
		s.UltraTime = 120 * time.Second
	}
	if s.SurvivalInterval <= 0 {
		s.SurvivalInterval = 30 * time.Second
	}
	switch s.Scoring {
	case ScoringClassic, ScoringModern, ScoringTSpinFocused:
	default:
		s.Scoring = ScoringModern
	}
	return s
}
