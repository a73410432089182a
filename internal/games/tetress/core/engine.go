package core

import (
	"math/rand"
	"time"
)

// flashDuration is how long a four-line clear stays on screen at
// FlashSpeed 1.0.
const flashDuration = 800 * time.Millisecond

// flashBlink is the on/off period of the flashing rows.
const flashBlink = 100 * time.Millisecond

// Engine runs one Tetress session. It is not safe for concurrent use: a
// single loop owns it and calls Update and the action methods in turn.
type Engine struct {
	mode     Mode
	settings Settings
	rng      *rand.Rand
	clock    Clock
	random   *Randomizer

	board   Board
	active  Piece
	queue   []Kind
	hold    Kind
	canHold bool

	phase Phase
	end   EndReason

	score  int
	lines  int
	level  int
	combo  int
	pieces int
	stats  Stats

	dropCounter time.Duration
	lockTimer   time.Duration
	lockResets  int
	lockSpent   bool
	lowestRow   int
	pendingSpin TSpin

	flashRows  []int
	flashTimer time.Duration

	lastClear ClearEvent
	startedAt time.Time
	endedAt   time.Time
}

// NewEngine creates an engine and starts a session. A nil rng is seeded
// from the current time and a nil clock reads the system clock.
func NewEngine(mode Mode, settings Settings, rng *rand.Rand, clock Clock) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if _, err := ParseMode(string(mode)); err != nil {
		mode = ModeMarathon
	}

	e := &Engine{
		mode:     mode,
		settings: settings.Sanitize(),
		rng:      rng,
		clock:    clock,
	}
	e.Reset()
	return e
}

// Reset discards the current session and starts a new one with the same
// mode and settings.
func (e *Engine) Reset() {
	e.random = NewRandomizer(e.rng, e.settings.Use7Bag)
	e.board = Board{}
	e.queue = nil
	e.hold = KindNone
	e.canHold = true

	e.phase = PhaseSpawning
	e.end = EndNone

	e.score = 0
	e.lines = 0
	e.level = 1
	e.combo = 0
	e.pieces = 0
	e.stats = Stats{}

	e.dropCounter = 0
	e.lockTimer = 0
	e.lockResets = 0
	e.pendingSpin = TSpinNone
	e.flashRows = nil
	e.flashTimer = 0

	e.lastClear = ClearEvent{Seq: e.lastClear.Seq}
	e.startedAt = e.clock.Now()
	e.endedAt = time.Time{}

	e.spawn()
}

// Update advances timers by dt. softDropHeld selects the soft-drop gravity
// interval for this call. At most one gravity step happens per call.
func (e *Engine) Update(dt time.Duration, softDropHeld bool) {
	if dt < 0 {
		dt = 0
	}

	switch e.phase {
	case PhaseGameOver, PhaseSpawning:
		return
	case PhaseFlashing:
		e.flashTimer += time.Duration(float64(dt) * e.settings.FlashSpeed)
		if e.flashTimer >= flashDuration {
			e.endFlash()
		}
		return
	}

	if e.mode == ModeUltra && e.Elapsed() >= e.settings.UltraTime {
		e.finish(EndTimeUp)
		return
	}

	e.dropCounter += dt
	interval := e.GravityInterval()
	if softDropHeld {
		interval = SoftDropInterval(interval, e.settings.SDFFactor)
	}
	if e.dropCounter > interval {
		e.dropCounter = 0
		e.fall(softDropHeld)
	}

	if row := e.active.Bottom(); row > e.lowestRow {
		e.lowestRow = row
		e.lockTimer = 0
		e.lockResets = 0
		e.lockSpent = false
	}

	// Once the resets are used up on the ground, lifting the piece no
	// longer stops the lock timer.
	if !e.grounded() {
		e.phase = PhaseActive
		if e.lockSpent {
			e.lockTimer += dt
		} else {
			e.lockTimer = 0
		}
		return
	}
	e.phase = PhaseLocking
	if e.lockResets >= e.settings.MaxLockResets {
		e.lockSpent = true
	}
	e.lockTimer += dt
	if e.lockTimer >= e.settings.LockDelay {
		e.lock()
	}
}

// GravityInterval returns the current time between gravity steps.
func (e *Engine) GravityInterval() time.Duration {
	switch e.mode {
	case ModeMarathon:
		if e.settings.GameSpeed == DefaultGameSpeed && !e.settings.FixedSpeed {
			return MarathonInterval(e.level)
		}
	case ModeSurvival:
		speed := SurvivalSpeed(e.settings.GameSpeed, e.Elapsed(), e.settings.SurvivalInterval)
		return FlatInterval(speed)
	}
	return FlatInterval(e.settings.GameSpeed)
}

// MoveLeft shifts the active piece one column left.
func (e *Engine) MoveLeft() bool { return e.shift(-1) }

// MoveRight shifts the active piece one column right.
func (e *Engine) MoveRight() bool { return e.shift(1) }

// RotateCW rotates the active piece clockwise.
func (e *Engine) RotateCW() bool { return e.rotate(1) }

// RotateCCW rotates the active piece counter-clockwise.
func (e *Engine) RotateCCW() bool { return e.rotate(-1) }

// Rotate180 turns the active piece half way round. It needs wall kicks.
func (e *Engine) Rotate180() bool {
	if !e.settings.WallKicks {
		return false
	}
	return e.rotate(2)
}

// SoftDrop moves the active piece down one row for one point. A grounded
// piece locks instead when HardDropLock is set.
func (e *Engine) SoftDrop() bool {
	if !e.controllable() {
		return false
	}
	next := e.active.Moved(0, 1)
	if e.board.Collides(next) {
		if e.settings.HardDropLock {
			e.lock()
		}
		return false
	}
	e.active = next
	e.score += softDropPoints
	e.dropCounter = 0
	return true
}

// HardDrop drops the active piece to its landing row for two points per
// row and returns the distance dropped.
func (e *Engine) HardDrop() int {
	if !e.controllable() {
		return 0
	}
	landing := e.Ghost()
	dist := landing.Y - e.active.Y
	e.active = landing
	e.score += dist * hardDropPoints
	if e.settings.HardDropLock {
		e.lock()
	} else {
		e.dropCounter = 0
	}
	return dist
}

// Hold stores the active piece and brings out the previously held one, or
// the next queued piece on the first hold. Allowed once per locked piece.
func (e *Engine) Hold() bool {
	if !e.controllable() || !e.settings.HoldEnabled || !e.canHold {
		return false
	}
	next := e.hold
	if next == KindNone {
		next = e.nextKind()
	}
	e.hold = e.active.Kind
	e.canHold = false
	e.place(next)
	return true
}

// Ghost returns the active piece moved to where a hard drop would land it.
func (e *Engine) Ghost() Piece {
	g := e.active
	for !e.board.Collides(g.Moved(0, 1)) {
		g = g.Moved(0, 1)
	}
	return g
}

// Phase returns the lifecycle state.
func (e *Engine) Phase() Phase { return e.phase }

// Mode returns the session mode.
func (e *Engine) Mode() Mode { return e.mode }

// Settings returns the sanitized settings in use.
func (e *Engine) Settings() Settings { return e.settings }

// Over reports whether the session has ended.
func (e *Engine) Over() bool { return e.phase == PhaseGameOver }

// LastClear returns the most recent line clear.
func (e *Engine) LastClear() ClearEvent { return e.lastClear }

// Scheme returns the palette for the current level.
func (e *Engine) Scheme() ColorScheme {
	if !e.settings.ColorSchemeChange {
		return SchemeClassic
	}
	return SchemeForLevel(e.level)
}

// Elapsed returns the session time, frozen once the game is over.
func (e *Engine) Elapsed() time.Duration {
	end := e.endedAt
	if end.IsZero() {
		end = e.clock.Now()
	}
	return max(end.Sub(e.startedAt), 0)
}

// Snapshot returns the current counters and statistics.
func (e *Engine) Snapshot() Snapshot {
	elapsed := e.Elapsed()
	snap := Snapshot{
		Score:       e.score,
		Lines:       e.lines,
		Level:       e.level,
		Combo:       e.combo,
		TotalPieces: e.pieces,
		Stats:       e.stats,
		Mode:        e.mode,
		GameOver:    e.phase == PhaseGameOver,
		EndReason:   e.end,
		Phase:       e.phase,
		Elapsed:     elapsed,
	}
	if secs := elapsed.Seconds(); secs > 0 {
		snap.Stats.PiecesPerSecond = roundTo(float64(e.pieces)/secs, 2)
	}
	switch e.mode {
	case ModeUltra:
		snap.Remaining = max(e.settings.UltraTime-elapsed, 0)
	case ModeSprint:
		snap.LinesToGo = max(e.settings.SprintLines-e.lines, 0)
	}
	return snap
}

// View returns a copy of everything a renderer needs.
func (e *Engine) View() View {
	v := View{
		Board:   e.board.Rows(),
		Hold:    e.hold,
		CanHold: e.canHold && e.settings.HoldEnabled,
		Next:    append([]Kind(nil), e.queue[:min(len(e.queue), e.settings.NextPieces)]...),
		Scheme:  e.Scheme(),
	}
	if e.controllable() {
		v.Active = e.active
		v.HasActive = true
		v.GhostY = e.Ghost().Y
	}
	if e.phase == PhaseFlashing {
		v.FlashRows = append([]int(nil), e.flashRows...)
		v.FlashOn = (e.flashTimer/flashBlink)%2 == 0
	}
	return v
}

func (e *Engine) controllable() bool {
	return e.phase == PhaseActive || e.phase == PhaseLocking
}

func (e *Engine) grounded() bool {
	return e.board.Collides(e.active.Moved(0, 1))
}

func (e *Engine) shift(dx int) bool {
	if !e.controllable() {
		return false
	}
	next := e.active.Moved(dx, 0)
	if e.board.Collides(next) {
		return false
	}
	e.active = next
	e.pendingSpin = TSpinNone
	e.resetLockDelay()
	return true
}

func (e *Engine) rotate(turn int) bool {
	if !e.controllable() {
		return false
	}
	from := e.active.Rotation
	candidate := e.active.Rotated(from + turn)
	if e.board.Collides(candidate) {
		if !e.settings.WallKicks {
			return false
		}
		kicked := false
		for _, k := range KickOffsets(e.active.Kind, from, candidate.Rotation) {
			trial := candidate.Moved(k.X, k.Y)
			if !e.board.Collides(trial) {
				candidate = trial
				kicked = true
				break
			}
		}
		if !kicked {
			return false
		}
	}

	e.active = candidate
	e.pendingSpin = TSpinNone
	if e.settings.EnableTSpin && turn != 2 {
		e.pendingSpin = DetectTSpin(&e.board, e.active)
	}
	e.resetLockDelay()
	return true
}

// resetLockDelay restarts the lock timer of a grounded piece, at most
// MaxLockResets times per lowest row reached.
func (e *Engine) resetLockDelay() {
	if e.phase != PhaseLocking && !e.grounded() {
		return
	}
	if e.lockResets >= e.settings.MaxLockResets {
		e.lockSpent = true
		return
	}
	e.lockTimer = 0
	e.lockResets++
}

func (e *Engine) fall(softDrop bool) {
	next := e.active.Moved(0, 1)
	if e.board.Collides(next) {
		return
	}
	e.active = next
	if softDrop {
		e.score += softDropPoints
	}
}

func (e *Engine) nextKind() Kind {
	for len(e.queue) <= e.settings.NextPieces {
		e.queue = append(e.queue, e.random.Next())
	}
	k := e.queue[0]
	e.queue = append(e.queue[:0], e.queue[1:]...)
	return k
}

func (e *Engine) spawn() {
	e.phase = PhaseSpawning
	e.canHold = true
	e.place(e.nextKind())
}

// place puts k at the spawn position as the new active piece.
func (e *Engine) place(k Kind) {
	e.active = SpawnPiece(k)
	e.dropCounter = 0
	e.lockTimer = 0
	e.lockResets = 0
	e.lockSpent = false
	e.lowestRow = e.active.Bottom()
	e.pendingSpin = TSpinNone
	if e.board.Collides(e.active) {
		e.finish(EndTopOut)
		return
	}
	e.phase = PhaseActive
}

func (e *Engine) lock() {
	e.board.Merge(e.active)
	e.pieces++
	spin := e.pendingSpin
	e.pendingSpin = TSpinNone

	rows := e.board.FullRows()
	if len(rows) == 0 {
		e.combo = 0
		e.spawn()
		return
	}

	e.scoreClear(rows, spin)

	if e.mode == ModeSprint && e.lines >= e.settings.SprintLines {
		e.board.RemoveRows(rows)
		e.finish(EndGoalReached)
		return
	}
	if e.settings.LineClearFlash && len(rows) == 4 {
		e.phase = PhaseFlashing
		e.flashRows = rows
		e.flashTimer = 0
		return
	}
	e.board.RemoveRows(rows)
	e.spawn()
}

func (e *Engine) endFlash() {
	e.board.RemoveRows(e.flashRows)
	e.flashRows = nil
	e.flashTimer = 0
	e.spawn()
}

func (e *Engine) scoreClear(rows []int, spin TSpin) {
	n := len(rows)
	perfect := n == 4 && e.board.EmptyExcept(rows)
	points := clearScore(e.settings, n, e.level, e.combo, spin, perfect)

	e.score += points
	e.lines += n

	switch {
	case spin == TSpinFull && n <= 3:
		switch n {
		case 1:
			e.stats.TSpins.Single++
		case 2:
			e.stats.TSpins.Double++
		case 3:
			e.stats.TSpins.Triple++
		}
	case spin == TSpinMini:
		e.stats.TSpins.Mini++
	default:
		switch n {
		case 1:
			e.stats.LinesCleared.Single++
		case 2:
			e.stats.LinesCleared.Double++
		case 3:
			e.stats.LinesCleared.Triple++
		case 4:
			e.stats.LinesCleared.Tetris++
		}
	}
	if perfect {
		e.stats.PerfectClears++
	}

	e.combo++
	e.stats.MaxCombo = max(e.stats.MaxCombo, e.combo)

	if e.mode.LevelProgression() {
		e.level = e.lines/10 + 1
	}

	e.lastClear = ClearEvent{
		Seq:     e.lastClear.Seq + 1,
		Lines:   n,
		TSpin:   spin,
		Perfect: perfect,
		Combo:   e.combo,
		Points:  points,
	}
}

func (e *Engine) finish(reason EndReason) {
	e.phase = PhaseGameOver
	e.end = reason
	e.endedAt = e.clock.Now()
}
