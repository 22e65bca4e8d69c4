// SPDX-License-Identifier: EPL-2.0

package utils

// PCMScale returns 2^(bitDepth-1), the divisor used to normalise signed
// integer PCM of the given depth. Unknown depths fall back to 16-bit.
func PCMScale(bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// PCMToFloat converts a signed integer PCM sample to [-1, 1).
func PCMToFloat(v int, bitDepth int) float64 {
	return float64(v) / PCMScale(bitDepth)
}

// FloatToPCM clamps x to [-1, 1] and scales it to a signed integer sample.
// The positive maximum is 2^(bitDepth-1)-1 to avoid overflow.
func FloatToPCM(x float64, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int(x * (PCMScale(bitDepth) - 1))
}
