package core

import "math"

var baseScores = map[ScoringSystem][5]int{
	ScoringClassic:      {0, 40, 100, 300, 1200},
	ScoringModern:       {0, 100, 300, 500, 800},
	ScoringTSpinFocused: {0, 80, 200, 400, 600},
}

var tSpinScores = [4]int{0, 800, 1200, 1600}

const (
	miniSingleScore   = 200
	miniMultiScore    = 400
	perfectClearScore = 1000
	comboStep         = 50
	softDropPoints    = 1
	hardDropPoints    = 2
)

// BaseScore returns the preset value for clearing lines (0-4) at level 1.
func BaseScore(system ScoringSystem, lines int) int {
	table, ok := baseScores[system]
	if !ok {
		table = baseScores[ScoringModern]
	}
	if lines < 0 || lines >= len(table) {
		return 0
	}
	return table[lines]
}

// clearScore computes the points awarded for one clearing lock. combo is
// the streak length before this clear is counted.
func clearScore(s Settings, lines, level, combo int, spin TSpin, perfect bool) int {
	reward := s.TSpinReward

	score := BaseScore(s.Scoring, lines) * level
	switch spin {
	case TSpinFull:
		if lines < len(tSpinScores) {
			score = int(math.Floor(float64(tSpinScores[lines]*level) * reward))
		}
	case TSpinMini:
		base := miniMultiScore
		if lines == 1 {
			base = miniSingleScore
		}
		score = int(math.Floor(float64(base*level) * reward))
	}

	if perfect && s.PerfectClearBonus {
		score += int(math.Floor(float64(perfectClearScore*level) * reward))
	}

	if s.ComboBonus && combo > 1 {
		score += min((combo-1)*comboStep*level, score)
	}

	if level > 10 {
		score += int(math.Floor(float64(score) * float64(level-10) * 0.1))
	}
	return score
}
