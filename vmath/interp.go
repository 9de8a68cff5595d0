package vmath

// Remap linearly maps v from [minA, maxA] to [minB, maxB]
// Ranges may be inverted (minA > maxA), the mapping is not clamped
func Remap(v, minA, maxA, minB, maxB float64) float64 {
	if maxA == minA {
		return minB
	}
	return (v-minA)*(maxB-minB)/(maxA-minA) + minB
}

// Clamp restricts v to [lo, hi], lo wins when the range is inverted
func Clamp(v, lo, hi float64) float64 {
	v = min(v, hi)
	return max(v, lo)
}

// Lerp interpolates between a and b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseInOut is the cubic ease-in-ease-out curve for t in [0, 1]
func EaseInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return 4 * t * t * t
	default:
		f := -2*t + 2
		return 1 - f*f*f/2
	}
}
