package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ClampMin returns value, or min when value is below it.
func ClampMin(value, min float64) float64 {
	if value < min {
		return min
	}
	return value
}
