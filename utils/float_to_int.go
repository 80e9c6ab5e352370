// SPDX-License-Identifier: EPL-2.0

package utils

// Clamp limits x to [-1, 1].
func Clamp(x float32) float32 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}
	return x
}

// Float32ToInt16 clamps x to [-1, 1], scales by 32767 and truncates toward
// zero, so -1 maps to -32767 rather than math.MinInt16.
func Float32ToInt16(x float32) int16 {
	// Scale in float64 so results match a double-precision reference bit-for-bit.
	return int16(float64(Clamp(x)) * 32767.0)
}
