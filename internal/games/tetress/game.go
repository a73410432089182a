// Package tetress adapts the Tetress engine to the arcade platform: it maps
// input actions to engine calls, infers held keys for auto-shift, owns
// pause and restart, and renders the engine state into a screen buffer.
package tetress

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/tetress/internal/config"
	"github.com/vovakirdan/tetress/internal/core"
	engine "github.com/vovakirdan/tetress/internal/games/tetress/core"
	"github.com/vovakirdan/tetress/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "tetress"

// bannerDuration is how long a clear banner stays on screen.
const bannerDuration = 1500 * time.Millisecond

// Package-level selections applied to games created through the registry.
var (
	configPath       string
	difficultyPreset string
	selectedMode     = engine.ModeMarathon
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetMode selects the mode for the next game created by New.
func SetMode(m engine.Mode) {
	selectedMode = m
}

// SelectedMode returns the mode New will use.
func SelectedMode() engine.Mode {
	return selectedMode
}

// ResolveConfig loads the configuration from path (or the search path),
// applies the difficulty preset and clamps invalid values. The returned
// problems are informational: the config is always usable.
func ResolveConfig(path, preset string) (config.TetressConfig, []error) {
	var problems []error

	cfg, err := config.LoadTetress(path)
	if err != nil {
		problems = append(problems, err)
	}

	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		problems = append(problems, err)
		p = config.DifficultyNormal
	}
	config.ApplyTetressPreset(&cfg, p)

	return cfg, append(problems, cfg.Validate()...)
}

// Game implements registry.Game for Tetress.
type Game struct {
	mode engine.Mode
	cfg  config.TetressConfig

	eng   *engine.Engine
	clock *tickClock
	rng   *rand.Rand
	dt    time.Duration

	shifter  autoShift
	softDrop softDropKey

	paused   bool
	tooSmall bool
	screenW  int
	screenH  int

	banner     []string
	bannerLeft time.Duration
	lastSeq    uint64

	problems []error
}

// New creates a game using the package-level mode, config path and
// difficulty preset. Problems found in the configuration are kept for
// ConfigProblems.
func New() *Game {
	cfg, problems := ResolveConfig(configPath, difficultyPreset)
	g := NewWithConfig(selectedMode, cfg)
	g.problems = problems
	return g
}

// NewWithConfig creates a game for an explicit mode and configuration. It
// reads no package state, so concurrent sessions can each build their own.
func NewWithConfig(mode engine.Mode, cfg config.TetressConfig) *Game {
	if _, err := engine.ParseMode(string(mode)); err != nil {
		mode = engine.ModeMarathon
	}
	return &Game{mode: mode, cfg: cfg}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetress"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return "Modern falling blocks: SRS kicks, T-spins, hold and five modes"
}

// ConfigProblems returns the issues found while loading the configuration
// of a game built by New. The game runs with corrected values regardless.
func (g *Game) ConfigProblems() []error {
	return g.problems
}

// Mode returns the session mode.
func (g *Game) Mode() engine.Mode {
	return g.mode
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.dt = cfg.TickDuration()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < layoutWidth || g.screenH < layoutHeight

	g.clock = newTickClock()
	g.eng = engine.NewEngine(g.mode, g.cfg.ToSettings(), g.rng, g.clock)
	g.shifter = autoShift{
		das: time.Duration(g.cfg.Timing.DASMs) * time.Millisecond,
		arr: time.Duration(g.cfg.Timing.ARRMs) * time.Millisecond,
	}
	g.softDrop = softDropKey{}
	g.paused = false
	g.banner = nil
	g.bannerLeft = 0
	g.lastSeq = g.eng.LastClear().Seq
}

// Resize updates the screen size after a terminal resize.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < layoutWidth || h < layoutHeight
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.eng == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Has(core.ActionRestart) && (g.eng.Over() || g.paused) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.eng.Over() {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.eng.Over() {
		return core.StepResult{State: g.State()}
	}

	held := g.applyInput(in)

	if g.eng.Phase() != engine.PhaseFlashing {
		g.clock.Advance(g.dt)
	}
	g.eng.Update(g.dt, held)

	g.updateBanner()

	return core.StepResult{State: g.State()}
}

// applyInput maps this tick's actions to engine calls and reports whether
// soft drop is being held.
func (g *Game) applyInput(in core.InputFrame) bool {
	if in.Has(core.ActionHold) {
		g.eng.Hold()
	}
	if in.Has(core.ActionRotateCW) {
		g.eng.RotateCW()
	}
	if in.Has(core.ActionRotateCCW) {
		g.eng.RotateCCW()
	}
	if in.Has(core.ActionRotate180) {
		g.eng.Rotate180()
	}

	dir := 0
	switch {
	case in.Has(core.ActionLeft) && !in.Has(core.ActionRight):
		dir = -1
	case in.Has(core.ActionRight) && !in.Has(core.ActionLeft):
		dir = 1
	}
	shift := g.shifter.Step(dir, g.dt)
	for ; shift < 0; shift++ {
		if !g.eng.MoveLeft() {
			break
		}
	}
	for ; shift > 0; shift-- {
		if !g.eng.MoveRight() {
			break
		}
	}

	drop, held := g.softDrop.Step(in.Has(core.ActionSoftDrop), g.dt)
	if drop {
		g.eng.SoftDrop()
	}

	if in.Has(core.ActionHardDrop) {
		g.eng.HardDrop()
	}
	return held
}

func (g *Game) restart() {
	g.Reset(core.RuntimeConfig{
		Seed:     g.rng.Int63(),
		ScreenW:  g.screenW,
		ScreenH:  g.screenH,
		TickRate: int(time.Second / g.dt),
	})
}

// updateBanner starts a banner for a new clear and counts the current one
// down.
func (g *Game) updateBanner() {
	if ev := g.eng.LastClear(); ev.Seq != g.lastSeq {
		g.lastSeq = ev.Seq
		g.banner = bannerFor(ev)
		g.bannerLeft = bannerDuration
		return
	}
	if g.bannerLeft > 0 {
		g.bannerLeft -= g.dt
		if g.bannerLeft <= 0 {
			g.banner = nil
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.eng.Snapshot().Score,
		GameOver: g.eng.Over(),
		Paused:   g.paused,
	}
}

// Snapshot returns the engine counters.
func (g *Game) Snapshot() engine.Snapshot {
	return g.eng.Snapshot()
}

// ErrNotFinished is returned by Result while the session is still running.
var ErrNotFinished = errors.New("tetress: game not finished")

// Result returns the outcome of a finished game for the scoreboard.
func (g *Game) Result() (core.GameResult, error) {
	if g.eng == nil || !g.eng.Over() {
		return core.GameResult{}, ErrNotFinished
	}
	snap := g.eng.Snapshot()
	return core.GameResult{
		Mode:      string(snap.Mode),
		Score:     snap.Score,
		Lines:     snap.Lines,
		Level:     snap.Level,
		Duration:  snap.Elapsed,
		Completed: snap.EndReason == engine.EndGoalReached || snap.EndReason == engine.EndTimeUp,
	}, nil
}
