package tetress

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tetress/internal/config"
	"github.com/vovakirdan/tetress/internal/core"
	engine "github.com/vovakirdan/tetress/internal/games/tetress/core"
	"github.com/vovakirdan/tetress/internal/registry"
)

func newTestGame(mode engine.Mode) *Game {
	g := NewWithConfig(mode, config.DefaultTetressConfig())
	g.Reset(core.RuntimeConfig{Seed: 42, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("game %q not registered", ID)
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Tetress" {
		t.Errorf("Title = %q, expected Tetress", g.Title())
	}
}

func TestNewWithConfigUnknownMode(t *testing.T) {
	g := NewWithConfig("blitz", config.DefaultTetressConfig())
	if g.Mode() != engine.ModeMarathon {
		t.Errorf("Mode = %q, expected marathon", g.Mode())
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(engine.ModeMarathon)
	g2 := newTestGame(engine.ModeMarathon)

	script := map[int][]core.Action{
		5:  {core.ActionLeft},
		10: {core.ActionRotateCW},
		20: {core.ActionHardDrop},
		30: {core.ActionRight},
		31: {core.ActionHold},
		40: {core.ActionHardDrop},
		50: {core.ActionRotate180},
		70: {core.ActionHardDrop},
	}

	for i := range 300 {
		in := frame(script[i]...)
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Score != s2.Score || s1.TotalPieces != s2.TotalPieces {
		t.Errorf("Snapshots differ: %+v vs %+v", s1, s2)
	}

	scr1, scr2 := core.NewScreen(80, 24), core.NewScreen(80, 24)
	g1.Render(scr1)
	g2.Render(scr2)
	if scr1.String() != scr2.String() {
		t.Error("Rendered frames differ for identical seeds and input")
	}
}

func TestHardDropInput(t *testing.T) {
	g := newTestGame(engine.ModeZen)
	g.Step(frame(core.ActionHardDrop))

	snap := g.Snapshot()
	if snap.TotalPieces != 1 {
		t.Errorf("TotalPieces = %d, expected 1", snap.TotalPieces)
	}
	if snap.Score < 2*(visibleRows-2) {
		t.Errorf("Score = %d, expected hard drop points", snap.Score)
	}
}

func TestPauseFreezesTimers(t *testing.T) {
	g := newTestGame(engine.ModeUltra)
	for range 60 {
		g.Step(frame())
	}
	before := g.Snapshot().Elapsed

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}
	for range 600 {
		g.Step(frame(core.ActionHardDrop))
	}
	if got := g.Snapshot().Elapsed; got != before {
		t.Errorf("Elapsed while paused = %v, expected %v", got, before)
	}
	if g.Snapshot().TotalPieces != 0 {
		t.Error("input applied while paused")
	}

	g.Step(frame(core.ActionPause))
	g.Step(frame())
	if g.Snapshot().Elapsed <= before {
		t.Error("timer did not resume after unpause")
	}
}

func TestUltraEndsOnTickTime(t *testing.T) {
	cfg := config.DefaultTetressConfig()
	cfg.Modes.UltraSeconds = 60
	g := NewWithConfig(engine.ModeUltra, cfg)
	g.Reset(core.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 24, TickRate: 60})

	if _, err := g.Result(); !errors.Is(err, ErrNotFinished) {
		t.Errorf("Result before end: err = %v, expected ErrNotFinished", err)
	}

	for i := 0; i < 60*70 && !g.State().GameOver; i++ {
		g.Step(frame())
	}

	snap := g.Snapshot()
	if snap.EndReason != engine.EndTimeUp {
		t.Fatalf("EndReason = %v, expected time up", snap.EndReason)
	}
	res, err := g.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if res.Mode != "ultra" || !res.Completed {
		t.Errorf("Result = %+v, expected completed ultra run", res)
	}
	if res.Duration < 60*time.Second || res.Duration > 61*time.Second {
		t.Errorf("Duration = %v, expected about 60s", res.Duration)
	}
}

func TestTopOutAndRestart(t *testing.T) {
	g := newTestGame(engine.ModeMarathon)
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(frame(core.ActionHardDrop))
	}
	if !g.State().GameOver {
		t.Fatal("expected top out from repeated hard drops")
	}
	res, err := g.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if res.Completed {
		t.Error("top out should not count as completed")
	}

	g.Step(frame(core.ActionRestart))
	if g.State().GameOver {
		t.Error("expected a fresh game after restart")
	}
	if g.Snapshot().Score != 0 {
		t.Errorf("Score after restart = %d, expected 0", g.Snapshot().Score)
	}
}

func TestAutoShift(t *testing.T) {
	const dt = 10 * time.Millisecond
	a := autoShift{das: 167 * time.Millisecond, arr: 30 * time.Millisecond}

	if got := a.Step(1, dt); got != 1 {
		t.Errorf("first press = %d, expected 1", got)
	}
	for range 4 {
		if got := a.Step(0, dt); got != 0 {
			t.Errorf("idle tick = %d, expected 0", got)
		}
	}
	if got := a.Step(1, dt); got != 1 {
		t.Errorf("tap inside DAS = %d, expected 1", got)
	}
	for range 15 {
		a.Step(0, dt)
	}

	moved := 0
	for range 10 {
		moved += a.Step(1, dt)
	}
	if moved != 3 {
		t.Errorf("auto-repeat moves = %d, expected 3", moved)
	}

	moved = 0
	for range 20 {
		moved += a.Step(0, dt)
	}
	if moved != 3 {
		t.Errorf("moves before release = %d, expected 3", moved)
	}
	if a.state != keyUp {
		t.Errorf("state = %d, expected released", a.state)
	}

	if got := a.Step(-1, dt); got != -1 {
		t.Errorf("press after release = %d, expected -1", got)
	}
}

func TestAutoShiftInstantRepeat(t *testing.T) {
	const dt = 10 * time.Millisecond
	a := autoShift{das: 50 * time.Millisecond}

	a.Step(1, dt)
	for range 5 {
		a.Step(0, dt)
	}
	if got := a.Step(1, dt); got != engine.BoardWidth {
		t.Errorf("instant repeat = %d, expected %d", got, engine.BoardWidth)
	}
}

func TestSoftDropKey(t *testing.T) {
	const dt = 10 * time.Millisecond
	var s softDropKey

	drop, held := s.Step(true, dt)
	if !drop || held {
		t.Errorf("first press: drop=%v held=%v, expected true false", drop, held)
	}
	drop, held = s.Step(true, dt)
	if drop || !held {
		t.Errorf("repeat: drop=%v held=%v, expected false true", drop, held)
	}
	for range 11 {
		_, held = s.Step(false, dt)
	}
	if held {
		t.Error("soft drop still held after release window")
	}
	if drop, _ = s.Step(true, dt); !drop {
		t.Error("press after release should drop once")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(engine.ModeSprint)
	g.Step(frame())

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"TETRESS · Sprint", "HOLD", "NEXT", "SCORE", "TO GO", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(engine.ModeMarathon)
	g.Step(frame(core.ActionPause))

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("pause overlay not drawn")
	}

	small := core.NewScreen(40, 12)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Error("too-small message not drawn")
	}
}

func TestPieceColors(t *testing.T) {
	for _, s := range []engine.ColorScheme{engine.SchemeClassic, engine.SchemeNeon, engine.SchemeIce, engine.SchemeFire} {
		seen := make(map[core.Color]bool)
		for _, k := range engine.AllKinds {
			c := PieceColor(s, k)
			if c == core.ColorDefault {
				t.Errorf("%v/%v has no color", s, k)
			}
			seen[c] = true
		}
		if len(seen) != engine.KindCount {
			t.Errorf("scheme %v reuses colors: %d distinct", s, len(seen))
		}
	}
	if PieceColor(engine.SchemeClassic, engine.KindNone) != core.ColorDefault {
		t.Error("empty cell should use the default color")
	}
}

func TestBannerFor(t *testing.T) {
	got := bannerFor(engine.ClearEvent{Seq: 1, Lines: 4, Combo: 3})
	if len(got) != 2 || got[0] != "TETRIS!" || got[1] != "2 COMBO" {
		t.Errorf("bannerFor = %q", got)
	}
	if got := bannerFor(engine.ClearEvent{Seq: 2, Lines: 1, Combo: 1}); len(got) != 1 {
		t.Errorf("first clear should have no combo line, got %q", got)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "0:00.00"},
		{83450 * time.Millisecond, "1:23.45"},
		{-time.Second, "0:00.00"},
	}
	for _, tt := range tests {
		if got := formatClock(tt.d); got != tt.expected {
			t.Errorf("formatClock(%v) = %q, expected %q", tt.d, got, tt.expected)
		}
	}
}

func TestResolveConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, problems := ResolveConfig("", "hard")
	if len(problems) != 0 {
		t.Errorf("unexpected problems: %v", problems)
	}
	if cfg.Gameplay.GameSpeed != 8 {
		t.Errorf("GameSpeed = %d, expected 8", cfg.Gameplay.GameSpeed)
	}

	cfg, problems = ResolveConfig("", "insane")
	if len(problems) != 1 || !errors.Is(problems[0], config.ErrInvalidValue) {
		t.Errorf("problems = %v, expected one invalid preset", problems)
	}
	if cfg.Gameplay.GameSpeed != 5 {
		t.Errorf("GameSpeed = %d, expected normal preset", cfg.Gameplay.GameSpeed)
	}
}

func TestNewUsesPackageSelections(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
		SetMode(engine.ModeMarathon)
	})

	SetMode(engine.ModeUltra)
	SetDifficultyPreset("easy")
	g := New()
	if g.Mode() != engine.ModeUltra {
		t.Errorf("Mode = %v, expected ultra", g.Mode())
	}
	if g.cfg.Gameplay.GameSpeed != 3 {
		t.Errorf("GameSpeed = %d, expected the easy preset", g.cfg.Gameplay.GameSpeed)
	}
	if len(g.ConfigProblems()) != 0 {
		t.Errorf("unexpected problems: %v", g.ConfigProblems())
	}

	SetConfigPath("missing.yaml")
	g = New()
	if len(g.ConfigProblems()) != 1 {
		t.Errorf("problems = %v, expected the missing config file", g.ConfigProblems())
	}
}
