package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tetress "github.com/vovakirdan/tetress/internal/games/tetress/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseTetress(GetDefaultYAML("tetress"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTetressConfig(), cfg)
	assert.Nil(t, GetDefaultYAML("snake"))
}

func TestParseTetressKeepsMissingKeys(t *testing.T) {
	cfg, err := ParseTetress([]byte("gameplay:\n  game_speed: 8\nscoring:\n  system: Classic\n"))
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Gameplay.GameSpeed)
	assert.Equal(t, "Classic", cfg.Scoring.System)
	assert.Equal(t, 500, cfg.Gameplay.LockDelayMs)
	assert.Equal(t, 3, cfg.Display.NextPieces)
	assert.True(t, cfg.Gameplay.Use7Bag)
}

func TestParseTetressInvalidYAML(t *testing.T) {
	cfg, err := ParseTetress([]byte("gameplay: [unterminated"))
	assert.Error(t, err)
	assert.Equal(t, DefaultTetressConfig(), cfg)
}

func TestLoadTetressCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("modes:\n  sprint_lines: 20\n"), 0o644))

	cfg, err := LoadTetress(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Modes.SprintLines)
	assert.Equal(t, path, TetressSource(path))
}

func TestLoadTetressMissingCustomPath(t *testing.T) {
	_, err := LoadTetress(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadTetressSearchPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfg, err := LoadTetress("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTetressConfig(), cfg)
	assert.Equal(t, "embedded", TetressSource(""))

	user := filepath.Join(home, ".arcade", "configs", "tetress.yaml")
	custom := DefaultTetressConfig()
	custom.Gameplay.GameSpeed = 2
	require.NoError(t, SaveTetress(user, custom))

	cfg, err = LoadTetress("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Gameplay.GameSpeed)
	assert.Equal(t, user, TetressSource(""))
	assert.Equal(t, user, UserTetressPath())
}

func TestValidateClamps(t *testing.T) {
	cfg := DefaultTetressConfig()
	cfg.Gameplay.GameSpeed = 42
	cfg.Gameplay.LockDelayMs = -5
	cfg.Gameplay.MaxLockResets = 1
	cfg.Timing.SDFFactor = 0
	cfg.Modes.SprintLines = 33
	cfg.Modes.UltraSeconds = 90
	cfg.Modes.SurvivalIntervalSeconds = 120
	cfg.Scoring.System = "Arcade"
	cfg.Scoring.TSpinReward = 10
	cfg.Display.NextPieces = 9

	problems := cfg.Validate()
	assert.Len(t, problems, 10)
	for _, p := range problems {
		assert.True(t, errors.Is(p, ErrInvalidValue))
	}

	assert.Equal(t, 10, cfg.Gameplay.GameSpeed)
	assert.Equal(t, 0, cfg.Gameplay.LockDelayMs)
	assert.Equal(t, 5, cfg.Gameplay.MaxLockResets)
	assert.Equal(t, 1, cfg.Timing.SDFFactor)
	assert.Equal(t, 40, cfg.Modes.SprintLines)
	assert.Equal(t, 120, cfg.Modes.UltraSeconds)
	assert.Equal(t, 60, cfg.Modes.SurvivalIntervalSeconds)
	assert.Equal(t, "Modern", cfg.Scoring.System)
	assert.InDelta(t, 3.0, cfg.Scoring.TSpinReward, 1e-9)
	assert.Equal(t, 6, cfg.Display.NextPieces)
}

func TestValidateDefaultsClean(t *testing.T) {
	cfg := DefaultTetressConfig()
	assert.Empty(t, cfg.Validate())
}

func TestApplyTetressPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		speed      int
		lockDelay  int
		fixedSpeed bool
	}{
		{DifficultyEasy, 3, 800, false},
		{DifficultyNormal, 5, 500, false},
		{DifficultyHard, 8, 300, false},
		{DifficultyFixed, 5, 500, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultTetressConfig()
			ApplyTetressPreset(&cfg, tt.preset)
			assert.Equal(t, tt.speed, cfg.Gameplay.GameSpeed)
			assert.Equal(t, tt.lockDelay, cfg.Gameplay.LockDelayMs)
			assert.Equal(t, tt.fixedSpeed, cfg.Gameplay.FixedSpeed)
			assert.Empty(t, cfg.Validate())
		})
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	p, err := ParseDifficultyPreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	p, err = ParseDifficultyPreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParseDifficultyPreset("insane")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestToSettingsMatchesEngineDefaults(t *testing.T) {
	assert.Equal(t, tetress.DefaultSettings(), DefaultTetressConfig().ToSettings())
}

func TestToSettingsConvertsUnits(t *testing.T) {
	cfg := DefaultTetressConfig()
	cfg.Gameplay.LockDelayMs = 250
	cfg.Modes.UltraSeconds = 60
	cfg.Modes.SurvivalIntervalSeconds = 10
	cfg.Scoring.System = "T-Spin Focused"

	s := cfg.ToSettings()
	assert.Equal(t, 250*time.Millisecond, s.LockDelay)
	assert.Equal(t, time.Minute, s.UltraTime)
	assert.Equal(t, 10*time.Second, s.SurvivalInterval)
	assert.Equal(t, tetress.ScoringTSpinFocused, s.Scoring)
}
