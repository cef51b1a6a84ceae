package scoring

import "math"

const (
	multiplierBase = 1.0
	multiplierMid  = 1.5
	multiplierTop  = 2.0

	midTierStreak = 3
	topTierStreak = 7
)

// Multiplier maps a streak length to a point multiplier tier. Only positive
// habits earn streak bonuses; a streak never amplifies the penalty for a bad
// habit.
func Multiplier(streak int, positive bool) float64 {
	if !positive {
		return multiplierBase
	}
	switch {
	case streak >= topTierStreak:
		return multiplierTop
	case streak >= midTierStreak:
		return multiplierMid
	default:
		return multiplierBase
	}
}

// PointsPerCompletion is the integer point value of a single completion at
// the given multiplier, rounded down.
func PointsPerCompletion(basePoints int, multiplier float64) int {
	return int(math.Floor(float64(basePoints) * multiplier))
}
