package tetress

import (
	"time"

	engine "github.com/vovakirdan/tetress/internal/games/tetress/core"
)

// Terminals report key presses but no releases. A held key shows up as one
// press followed, after the OS repeat delay, by a stream of repeats. The
// windows below decide how long a key counts as held after its last press.
const (
	// tapWindow covers the OS repeat delay between the first press and the
	// first repeat.
	tapWindow = 550 * time.Millisecond
	// releaseWindow covers the gap between two OS repeats.
	releaseWindow = 100 * time.Millisecond
)

type keyState uint8

const (
	keyUp keyState = iota
	keyTapped
	keyRepeating
)

func (k keyState) window() time.Duration {
	if k == keyRepeating {
		return releaseWindow
	}
	return tapWindow
}

// autoShift implements delayed auto-shift for the horizontal keys. The
// first press moves once; presses inside the DAS delay are taps; a press
// after DAS starts auto-repeat every ARR until the key goes quiet.
type autoShift struct {
	das time.Duration
	arr time.Duration

	state keyState
	dir   int
	held  time.Duration
	idle  time.Duration
	carry time.Duration
}

// Step consumes this tick's direction (-1, 0 or 1) and returns the signed
// number of columns to shift.
func (a *autoShift) Step(dir int, dt time.Duration) int {
	moves := 0
	switch {
	case dir != 0 && (dir != a.dir || a.state == keyUp):
		a.dir, a.state = dir, keyTapped
		a.held, a.idle, a.carry = 0, 0, 0
		moves = 1
	case dir != 0 && a.state == keyTapped && a.held < a.das:
		a.idle = 0
		moves = 1
	case dir != 0:
		a.state = keyRepeating
		a.idle = 0
	}
	if a.state == keyUp {
		return 0
	}

	a.held += dt
	a.idle += dt
	if a.idle > a.state.window() {
		a.state = keyUp
		return moves * a.dir
	}

	if a.state == keyRepeating {
		if a.arr <= 0 {
			return engine.BoardWidth * a.dir
		}
		a.carry += dt
		n := a.carry / a.arr
		a.carry -= n * a.arr
		moves += int(n)
	}
	return moves * a.dir
}

// softDropKey tracks the soft drop key. The first press drops one row;
// repeats mark the key as held so gravity switches to the soft drop rate.
type softDropKey struct {
	state keyState
	idle  time.Duration
}

// Step consumes this tick's press and reports whether to drop one row now
// and whether the key is held.
func (s *softDropKey) Step(pressed bool, dt time.Duration) (drop, held bool) {
	if pressed {
		if s.state == keyUp {
			s.state = keyTapped
			drop = true
		} else {
			s.state = keyRepeating
		}
		s.idle = 0
	}
	if s.state == keyUp {
		return drop, false
	}

	s.idle += dt
	if s.idle > s.state.window() {
		s.state = keyUp
	}
	return drop, s.state == keyRepeating
}

// tickClock is the engine clock of a session. It only advances when the
// game steps, so pausing freezes mode timers.
type tickClock struct {
	now time.Time
}

func newTickClock() *tickClock {
	return &tickClock{now: time.Unix(0, 0)}
}

// Now returns the simulated time.
func (c *tickClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *tickClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
