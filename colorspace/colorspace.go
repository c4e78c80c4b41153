// Package colorspace converts between integer sRGB samples and normalized
// floating point triplets, keeping gamma-encoded and linear-light values
// apart at the type level so one can never be passed where the other is
// expected without an explicit conversion.
package colorspace

import (
	"math"

	"github.com/jkl1337/go-chromath"
)

const (
	max8  = 255.0
	max16 = 65535.0
)

// the sRGB transfer function pair, supplied by go-chromath
var srgb = chromath.SRGBCompander.Init(&chromath.SpaceSRGB)

// EncodedRGB is a gamma-encoded (display) sRGB triplet normalized to [0, 1].
type EncodedRGB [3]float64

// LinearRGB is a linear-light sRGB triplet. Displayable colors sit in
// [0, 1] but the type itself is unbounded.
type LinearRGB [3]float64

// Linearize removes the sRGB gamma encoding.
func (c EncodedRGB) Linearize() LinearRGB {
	p := srgb.Linearize(chromath.Point{c[0], c[1], c[2]})
	return LinearRGB{p[0], p[1], p[2]}
}

// Encode applies the sRGB gamma encoding.
func (c LinearRGB) Encode() EncodedRGB {
	p := srgb.Compand(chromath.Point{c[0], c[1], c[2]})
	return EncodedRGB{p[0], p[1], p[2]}
}

// Normalize8 scales an 8-bit encoded sRGB triplet to [0, 1].
func Normalize8(c [3]uint8) EncodedRGB {
	return EncodedRGB{float64(c[0]) / max8, float64(c[1]) / max8, float64(c[2]) / max8}
}

// Normalize16 scales a 16-bit encoded sRGB triplet to [0, 1].
func Normalize16(c [3]uint16) EncodedRGB {
	return EncodedRGB{float64(c[0]) / max16, float64(c[1]) / max16, float64(c[2]) / max16}
}

// NormalizeLinear16 scales a 16-bit linear sRGB triplet to [0, 1].
func NormalizeLinear16(c [3]uint16) LinearRGB {
	return LinearRGB{float64(c[0]) / max16, float64(c[1]) / max16, float64(c[2]) / max16}
}

// Linearize8 decodes an 8-bit encoded sRGB triplet to linear light.
func Linearize8(c [3]uint8) LinearRGB {
	return Normalize8(c).Linearize()
}

// Linearize16 decodes a 16-bit encoded sRGB triplet to linear light.
func Linearize16(c [3]uint16) LinearRGB {
	return Normalize16(c).Linearize()
}

// Denormalize8 scales a normalized encoded triplet back to the 8-bit range,
// rounding to nearest and clamping before narrowing.
func Denormalize8(c EncodedRGB) [3]uint8 {
	return [3]uint8{narrow8(c[0]), narrow8(c[1]), narrow8(c[2])}
}

// Denormalize16 scales a normalized encoded triplet back to the 16-bit
// range, rounding to nearest and clamping before narrowing.
func Denormalize16(c EncodedRGB) [3]uint16 {
	return [3]uint16{narrow16(c[0]), narrow16(c[1]), narrow16(c[2])}
}

// DenormalizeLinear16 scales a linear triplet to the 16-bit range, rounding
// to nearest and clamping before narrowing. The result stays linear; no
// gamma encoding is applied.
func DenormalizeLinear16(c LinearRGB) [3]uint16 {
	return [3]uint16{narrow16(c[0]), narrow16(c[1]), narrow16(c[2])}
}

// Encode8 gamma-encodes a linear triplet and narrows it to 8 bits.
func Encode8(c LinearRGB) [3]uint8 {
	return Denormalize8(c.Encode())
}

// Encode16 gamma-encodes a linear triplet and narrows it to 16 bits.
func Encode16(c LinearRGB) [3]uint16 {
	return Denormalize16(c.Encode())
}

func narrow8(v float64) uint8 {
	return uint8(clamp(math.Floor(v*max8+0.5), 0, max8))
}

func narrow16(v float64) uint16 {
	return uint16(clamp(math.Floor(v*max16+0.5), 0, max16))
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
