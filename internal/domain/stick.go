package domain

// StickCount is the number of sticks in the oracle container.
const StickCount = 100

// DrawStick shakes the container and returns a stick number in [1, StickCount].
func DrawStick(rng RNG) int {
	return rng.Intn(StickCount) + 1
}

// ClampScore maps a raw suitability score into [0, 100] for display.
// The underlying value is left untouched.
func ClampScore(v float64) int {
	switch {
	case v != v: // NaN
		return 0
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return int(v + 0.5)
}
