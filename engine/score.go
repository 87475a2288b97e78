package engine

import "math"

// Scoring constants. A correct placement earns a difficulty-scaled base, a
// linear speed bonus that runs out at 5 seconds, and loses 25 points per
// retry, but never drops below the floor.
const (
	basePointsPerDifficulty = 100
	maxTimeBonus            = 50.0
	timeBonusDecayPerSecond = 10.0
	retryPenalty            = 25
	minCorrectScore         = 10
)

// Score converts a placement outcome into points. An incorrect placement is
// always worth 0. Difficulty is expected in [1,5] and attempts >= 1; the
// scorer does not clamp either, that contract is enforced at the boundary.
func Score(isCorrect bool, timeToPlaceSeconds float64, attempts, difficulty int) int {
	if !isCorrect {
		return 0
	}

	base := basePointsPerDifficulty * difficulty
	timeBonus := maxTimeBonus - timeToPlaceSeconds*timeBonusDecayPerSecond
	if timeBonus < 0 {
		timeBonus = 0
	}
	attemptPenalty := (attempts - 1) * retryPenalty

	raw := float64(base) + timeBonus - float64(attemptPenalty)
	score := int(math.Round(raw))
	if score < minCorrectScore {
		score = minCorrectScore
	}
	return score
}
