package core

import (
	"math"
	"time"
)

// Phase is the lifecycle state of the session.
type Phase uint8

const (
	// PhaseSpawning is the transient state while the next piece is placed.
	PhaseSpawning Phase = iota
	// PhaseActive means a piece is falling freely.
	PhaseActive
	// PhaseLocking means the piece rests on a surface and the lock delay runs.
	PhaseLocking
	// PhaseFlashing holds cleared rows on screen before removal.
	PhaseFlashing
	// PhaseGameOver is terminal.
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseActive:
		return "active"
	case PhaseLocking:
		return "locking"
	case PhaseFlashing:
		return "flashing"
	default:
		return "game over"
	}
}

// EndReason explains why a session ended.
type EndReason uint8

const (
	EndNone EndReason = iota
	// EndTopOut means a new piece could not spawn.
	EndTopOut
	// EndGoalReached means the Sprint line goal was met.
	EndGoalReached
	// EndTimeUp means the Ultra time limit expired.
	EndTimeUp
)

// String returns a human readable reason.
func (r EndReason) String() string {
	switch r {
	case EndTopOut:
		return "Top out"
	case EndGoalReached:
		return "Goal reached"
	case EndTimeUp:
		return "Time up"
	default:
		return ""
	}
}

// Clock supplies wall-clock time for mode timers.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// LineClears counts ordinary clears by size.
type LineClears struct {
	Single, Double, Triple, Tetris int
}

// TSpinClears counts T-spin clears by type.
type TSpinClears struct {
	Mini, Single, Double, Triple int
}

// Stats is the statistics bundle of a session.
type Stats struct {
	LinesCleared    LineClears
	TSpins          TSpinClears
	PerfectClears   int
	MaxCombo        int
	PiecesPerSecond float64
}

// Snapshot is the read-only game state reported to the UI and scoreboard.
type Snapshot struct {
	Score       int
	Lines       int
	Level       int
	Combo       int
	TotalPieces int
	Stats       Stats
	Mode        Mode
	GameOver    bool
	EndReason   EndReason
	Phase       Phase

	Elapsed time.Duration
	// Remaining is the Ultra time left; zero in other modes.
	Remaining time.Duration
	// LinesToGo is the Sprint distance to the goal; zero in other modes.
	LinesToGo int
}

// View is the drawable state. All slices are copies.
type View struct {
	Board     [][]Kind
	Active    Piece
	HasActive bool
	GhostY    int
	Hold      Kind
	CanHold   bool
	Next      []Kind
	FlashRows []int
	FlashOn   bool
	Scheme    ColorScheme
}

// ClearEvent summarizes the most recent clearing lock.
type ClearEvent struct {
	// Seq increases by one for every clear so callers can spot new events.
	Seq     uint64
	Lines   int
	TSpin   TSpin
	Perfect bool
	Combo   int
	Points  int
}

// Label returns the banner text for the clear.
func (c ClearEvent) Label() string {
	if c.Lines == 0 {
		return ""
	}
	if c.Perfect {
		return "PERFECT CLEAR"
	}
	names := [...]string{"", "SINGLE", "DOUBLE", "TRIPLE", "TETRIS"}
	name := ""
	if c.Lines < len(names) {
		name = names[c.Lines]
	}
	switch c.TSpin {
	case TSpinFull:
		return "T-SPIN " + name
	case TSpinMini:
		return "MINI T-SPIN " + name
	}
	if c.Lines == 4 {
		return "TETRIS!"
	}
	return name
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
