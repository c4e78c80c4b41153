// Package pigment represents colors in a latent space in which linear
// interpolation behaves like mixing real paints, following the Kubelka-Munk
// theory of pigment layers, rather than like averaging light.
package pigment

import (
	"github.com/mmuldo/pigmix/colorspace"
)

// NumLatents is the length of the latent representation: five basis pigment
// concentrations plus a three-channel linear residual.
const NumLatents = 8

// Latent is a color expressed over a transform's internal pigment basis.
// Components are model-internal and unconstrained; they may be negative or
// exceed 1.
type Latent [NumLatents]float64

// Transform maps colors between linear sRGB and latent pigment space.
//
// Implementations must be pure and stateless, must reproduce a color across
// a forward/inverse round trip, and must keep LerpRGB numerically equivalent
// to composing RGBToLatent, a componentwise lerp and LatentToRGB.
//
// All RGB values are linear sRGB. Non-finite inputs are a caller error with
// unspecified results.
type Transform interface {
	// RGBToLatent is the forward transform.
	RGBToLatent(c colorspace.LinearRGB) Latent
	// LatentToRGB is the inverse transform.
	LatentToRGB(z Latent) colorspace.LinearRGB
	// LerpRGB mixes two colors at the given ratio (the weight of b,
	// clamped to [0, 1]) through latent space in one call.
	LerpRGB(a, b colorspace.LinearRGB, ratio float64) colorspace.LinearRGB
}

// Default is the transform used by the Pigment constructors and the mix
// package.
var Default Transform = KubelkaMunk{}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
