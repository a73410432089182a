package core

import "time"

// flatIntervals is the gravity interval per speed setting 1..10.
var flatIntervals = [...]time.Duration{
	2000 * time.Millisecond,
	1500 * time.Millisecond,
	1200 * time.Millisecond,
	1000 * time.Millisecond,
	800 * time.Millisecond,
	600 * time.Millisecond,
	450 * time.Millisecond,
	300 * time.Millisecond,
	200 * time.Millisecond,
	100 * time.Millisecond,
}

// marathonCurve is the level-indexed gravity interval used by Marathon at
// the default speed setting. Levels past the end use the last entry.
var marathonCurve = [...]time.Duration{
	1000 * time.Millisecond,
	793 * time.Millisecond,
	618 * time.Millisecond,
	473 * time.Millisecond,
	355 * time.Millisecond,
	262 * time.Millisecond,
	190 * time.Millisecond,
	135 * time.Millisecond,
	94 * time.Millisecond,
	64 * time.Millisecond,
	43 * time.Millisecond,
	28 * time.Millisecond,
	18 * time.Millisecond,
	11 * time.Millisecond,
	7 * time.Millisecond,
	4 * time.Millisecond,
	3 * time.Millisecond,
	2 * time.Millisecond,
	1 * time.Millisecond,
}

// minSoftDropInterval floors the soft-drop gravity interval.
const minSoftDropInterval = 16 * time.Millisecond

// FlatInterval returns the gravity interval for speed setting 1..10.
func FlatInterval(speed int) time.Duration {
	speed = min(max(speed, 1), len(flatIntervals))
	return flatIntervals[speed-1]
}

// MarathonInterval returns the authentic curve interval for level (1-based).
func MarathonInterval(level int) time.Duration {
	idx := min(max(level-1, 0), len(marathonCurve)-1)
	return marathonCurve[idx]
}

// SurvivalSpeed returns the speed setting reached after elapsed time: it
// starts at base and rises by one step every interval, topping out at 10.
func SurvivalSpeed(base int, elapsed, interval time.Duration) int {
	base = min(max(base, 1), len(flatIntervals))
	if interval <= 0 {
		return len(flatIntervals)
	}
	steps := int(elapsed / interval)
	return min(base+steps, len(flatIntervals))
}

// SoftDropInterval divides a gravity interval by the soft-drop factor.
func SoftDropInterval(interval time.Duration, factor int) time.Duration {
	if factor < 1 {
		factor = 1
	}
	return max(interval/time.Duration(factor), minSoftDropInterval)
}
