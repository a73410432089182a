package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearScore(t *testing.T) {
	modern := DefaultSettings()
	classic := DefaultSettings()
	classic.Scoring = ScoringClassic
	focused := DefaultSettings()
	focused.Scoring = ScoringTSpinFocused
	doubleReward := DefaultSettings()
	doubleReward.TSpinReward = 2.0
	noCombo := DefaultSettings()
	noCombo.ComboBonus = false

	tests := []struct {
		name     string
		settings Settings
		lines    int
		level    int
		combo    int
		spin     TSpin
		perfect  bool
		want     int
	}{
		{"modern single", modern, 1, 1, 0, TSpinNone, false, 100},
		{"modern tetris level 3", modern, 4, 3, 0, TSpinNone, false, 2400},
		{"classic tetris", classic, 4, 1, 0, TSpinNone, false, 1200},
		{"t-spin focused triple", focused, 3, 2, 0, TSpinNone, false, 800},
		{"full t-spin double", modern, 2, 1, 0, TSpinFull, false, 1200},
		{"full t-spin triple with reward", doubleReward, 3, 1, 0, TSpinFull, false, 3200},
		{"mini t-spin single", modern, 1, 1, 0, TSpinMini, false, 200},
		{"mini t-spin double", modern, 2, 2, 0, TSpinMini, false, 800},
		{"perfect clear", modern, 4, 1, 0, TSpinNone, true, 1800},
		{"combo bonus", modern, 2, 1, 3, TSpinNone, false, 400},
		{"combo bonus capped at base", modern, 1, 1, 10, TSpinNone, false, 200},
		{"combo bonus disabled", noCombo, 1, 1, 10, TSpinNone, false, 100},
		{"first combo step has no bonus", modern, 1, 1, 1, TSpinNone, false, 100},
		{"high level surcharge", modern, 1, 11, 0, TSpinNone, false, 1210},
		{"high level surcharge level 15", modern, 4, 15, 0, TSpinNone, false, 18000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clearScore(tt.settings, tt.lines, tt.level, tt.combo, tt.spin, tt.perfect)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBaseScoreUnknownSystem(t *testing.T) {
	assert.Equal(t, 800, BaseScore(ScoringSystem("bogus"), 4))
	assert.Zero(t, BaseScore(ScoringModern, 5))
}

func TestClearEventLabel(t *testing.T) {
	tests := []struct {
		event ClearEvent
		want  string
	}{
		{ClearEvent{}, ""},
		{ClearEvent{Lines: 1}, "SINGLE"},
		{ClearEvent{Lines: 3}, "TRIPLE"},
		{ClearEvent{Lines: 4}, "TETRIS!"},
		{ClearEvent{Lines: 2, TSpin: TSpinFull}, "T-SPIN DOUBLE"},
		{ClearEvent{Lines: 1, TSpin: TSpinMini}, "MINI T-SPIN SINGLE"},
		{ClearEvent{Lines: 4, Perfect: true}, "PERFECT CLEAR"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.Label())
		})
	}
}

func TestIntervals(t *testing.T) {
	assert.Equal(t, 2000*time.Millisecond, FlatInterval(1))
	assert.Equal(t, 100*time.Millisecond, FlatInterval(10))
	assert.Equal(t, 100*time.Millisecond, FlatInterval(99))
	assert.Equal(t, 2000*time.Millisecond, FlatInterval(0))

	assert.Equal(t, time.Second, MarathonInterval(1))
	assert.Equal(t, 64*time.Millisecond, MarathonInterval(10))
	assert.Equal(t, time.Millisecond, MarathonInterval(19))
	assert.Equal(t, time.Millisecond, MarathonInterval(500))

	assert.Equal(t, 50*time.Millisecond, SoftDropInterval(time.Second, 20))
	assert.Equal(t, 16*time.Millisecond, SoftDropInterval(100*time.Millisecond, 20))
	assert.Equal(t, time.Second, SoftDropInterval(time.Second, 0))
}

func TestSurvivalSpeed(t *testing.T) {
	tests := []struct {
		base    int
		elapsed time.Duration
		want    int
	}{
		{5, 0, 5},
		{5, 29 * time.Second, 5},
		{5, 30 * time.Second, 6},
		{5, 95 * time.Second, 8},
		{5, time.Hour, 10},
		{1, 60 * time.Second, 3},
	}
	for _, tt := range tests {
		got := SurvivalSpeed(tt.base, tt.elapsed, 30*time.Second)
		assert.Equal(t, tt.want, got, "base %d after %s", tt.base, tt.elapsed)
	}
}

func TestSchemeForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  ColorScheme
	}{
		{1, SchemeClassic},
		{5, SchemeClassic},
		{6, SchemeNeon},
		{11, SchemeIce},
		{16, SchemeFire},
		{40, SchemeFire},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SchemeForLevel(tt.level), "level %d", tt.level)
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("  Sprint ")
	require.NoError(t, err)
	assert.Equal(t, ModeSprint, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeMarathon, m)

	_, err = ParseMode("blitz")
	assert.Error(t, err)
}

func TestSanitize(t *testing.T) {
	s := Settings{
		LockDelay:   -time.Second,
		GameSpeed:   42,
		SDFFactor:   0,
		NextPieces:  0,
		FlashSpeed:  -1,
		TSpinReward: 0,
		Scoring:     "nope",
	}.Sanitize()

	assert.Zero(t, s.LockDelay)
	assert.Equal(t, 10, s.GameSpeed)
	assert.Equal(t, 1, s.SDFFactor)
	assert.Equal(t, 1, s.NextPieces)
	assert.Equal(t, 1.0, s.FlashSpeed)
	assert.Equal(t, 1.0, s.TSpinReward)
	assert.Equal(t, ScoringModern, s.Scoring)
	assert.Equal(t, 40, s.SprintLines)
	assert.Equal(t, 120*time.Second, s.UltraTime)
	assert.Equal(t, 30*time.Second, s.SurvivalInterval)
}
