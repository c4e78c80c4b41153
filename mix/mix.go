// Package mix bundles colorspace conversion, the pigment transform and
// quantization into single-call color mixing.
//
// The family is a fixed enumeration over input width (8 or 16 bit), input
// encoding (gamma-encoded or linear) and output narrowing (plain rounding
// or dithered). Every variant clamps the mixing ratio, the weight of the
// second color, to [0, 1].
package mix

import (
	"math/rand"

	"github.com/mmuldo/pigmix/colorspace"
	"github.com/mmuldo/pigmix/dither"
	"github.com/mmuldo/pigmix/pigment"
)

// Linear mixes two linear sRGB colors through pigment space.
func Linear(a, b colorspace.LinearRGB, ratio float64) colorspace.LinearRGB {
	return pigment.Default.LerpRGB(a, b, ratio)
}

// SRGB8 mixes two gamma-encoded 8-bit sRGB colors. The inputs are
// linearized before mixing and the result is re-encoded and rounded.
func SRGB8(a, b [3]uint8, ratio float64) [3]uint8 {
	m := Linear(colorspace.Linearize8(a), colorspace.Linearize8(b), ratio)
	return colorspace.Encode8(m)
}

// SRGB8Dithered is SRGB8 with a dithered narrowing step.
func SRGB8Dithered(a, b [3]uint8, ratio float64, rng *rand.Rand) [3]uint8 {
	m := Linear(colorspace.Linearize8(a), colorspace.Linearize8(b), ratio)
	return dither.Quantize8(m.Encode(), rng)
}

// SRGB16 mixes two gamma-encoded 16-bit sRGB colors. The inputs are
// linearized before mixing and the result is re-encoded and rounded.
func SRGB16(a, b [3]uint16, ratio float64) [3]uint16 {
	m := Linear(colorspace.Linearize16(a), colorspace.Linearize16(b), ratio)
	return colorspace.Encode16(m)
}

// SRGB16Dithered is SRGB16 with a dithered narrowing step.
func SRGB16Dithered(a, b [3]uint16, ratio float64, rng *rand.Rand) [3]uint16 {
	m := Linear(colorspace.Linearize16(a), colorspace.Linearize16(b), ratio)
	return dither.Quantize16(m.Encode(), rng)
}

// Linear16 mixes two 16-bit linear sRGB colors. Input and output stay
// linear; no gamma encoding is involved.
func Linear16(a, b [3]uint16, ratio float64) [3]uint16 {
	m := Linear(colorspace.NormalizeLinear16(a), colorspace.NormalizeLinear16(b), ratio)
	return colorspace.DenormalizeLinear16(m)
}

// Linear16Dithered is Linear16 with a dithered narrowing step.
func Linear16Dithered(a, b [3]uint16, ratio float64, rng *rand.Rand) [3]uint16 {
	m := Linear(colorspace.NormalizeLinear16(a), colorspace.NormalizeLinear16(b), ratio)
	return dither.QuantizeLinear16(m, rng)
}
