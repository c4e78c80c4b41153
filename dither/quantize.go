// Package dither narrows floating point channel triplets to fixed-width
// integers, adding sub-step pseudorandom noise so smooth gradients do not
// band when quantized.
//
// The noise source is always a caller-owned, explicitly passed *rand.Rand.
// There is no package-level random state; seeding the generator makes every
// sequence reproducible. A generator must not be shared across goroutines
// without external synchronization.
package dither

import (
	"math"
	"math/rand"

	"github.com/mmuldo/pigmix/colorspace"
)

// Triplet quantizes a channel triplet to the integer grid defined by one,
// the value representing 1.0, clamping each channel to [min, max].
//
// A single uniform draw in [-0.5, 0.5) is taken per call and shared by all
// three channels: the noise shifts luminance only, never hue, which
// per-channel draws would not guarantee.
func Triplet(v [3]float64, one, min, max float64, rng *rand.Rand) [3]float64 {
	d := rng.Float64() - 0.5
	return [3]float64{
		clamp(math.Round(v[0]*one+d), min, max),
		clamp(math.Round(v[1]*one+d), min, max),
		clamp(math.Round(v[2]*one+d), min, max),
	}
}

// Quantize8 narrows a normalized encoded triplet to 8 bits with dither.
func Quantize8(c colorspace.EncodedRGB, rng *rand.Rand) [3]uint8 {
	q := Triplet([3]float64(c), 255, 0, 255, rng)
	return [3]uint8{uint8(q[0]), uint8(q[1]), uint8(q[2])}
}

// Quantize16 narrows a normalized encoded triplet to 16 bits with dither.
func Quantize16(c colorspace.EncodedRGB, rng *rand.Rand) [3]uint16 {
	q := Triplet([3]float64(c), 65535, 0, 65535, rng)
	return [3]uint16{uint16(q[0]), uint16(q[1]), uint16(q[2])}
}

// QuantizeLinear16 narrows a linear triplet to 16 bits with dither, without
// gamma encoding it first.
func QuantizeLinear16(c colorspace.LinearRGB, rng *rand.Rand) [3]uint16 {
	q := Triplet([3]float64(c), 65535, 0, 65535, rng)
	return [3]uint16{uint16(q[0]), uint16(q[1]), uint16(q[2])}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
