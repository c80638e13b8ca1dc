package common

import "math"

// RoundHalfUp rounds to the nearest integer with halves going toward +Inf,
// so -0.5 becomes 0 rather than -1.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
