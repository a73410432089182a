package core

import (
	"fmt"
	"strings"
)

// Mode selects the termination and speed rules of a session.
type Mode string

const (
	ModeMarathon Mode = "marathon"
	ModeSprint   Mode = "sprint"
	ModeUltra    Mode = "ultra"
	ModeZen      Mode = "zen"
	ModeSurvival Mode = "survival"
)

// Modes lists every mode in menu order.
var Modes = []Mode{ModeMarathon, ModeSprint, ModeUltra, ModeZen, ModeSurvival}

// ParseMode converts a case-insensitive mode name. An empty name selects
// Marathon.
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ModeMarathon, nil
	}
	for _, m := range Modes {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q (valid: marathon, sprint, ultra, zen, survival)", name)
}

// Title returns the display name of the mode.
func (m Mode) Title() string {
	switch m {
	case ModeSprint:
		return "Sprint"
	case ModeUltra:
		return "Ultra"
	case ModeZen:
		return "Zen"
	case ModeSurvival:
		return "Survival"
	default:
		return "Marathon"
	}
}

// Description returns a one-line summary of the mode's rules.
func (m Mode) Description() string {
	switch m {
	case ModeSprint:
		return "Clear the line goal as fast as possible"
	case ModeUltra:
		return "Score as much as possible before time runs out"
	case ModeZen:
		return "No timer, no goal, no level progression"
	case ModeSurvival:
		return "Gravity speeds up on a timer. Hold on"
	default:
		return "Classic endless play with level progression"
	}
}

// LevelProgression reports whether the level rises with cleared lines.
func (m Mode) LevelProgression() bool {
	return m == ModeMarathon
}
