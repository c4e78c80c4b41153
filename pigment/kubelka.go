package pigment

import (
	"math"

	"github.com/mmuldo/pigmix/colorspace"
)

// Linear sRGB reflectances of the five basis pigments: titanium-white-,
// cyan-, phthalo-blue-, magenta- and yellow-like primaries. Fixed model
// data.
var basisReflectance = [5][3]float64{
	{0.95, 0.95, 0.95},
	{0.10, 0.75, 0.70},
	{0.06, 0.20, 0.75},
	{0.62, 0.07, 0.37},
	{0.86, 0.70, 0.07},
}

// absorption/scattering ratios derived from the reflectances
var basisKS [5][3]float64

func init() {
	for i, p := range basisReflectance {
		for ch, r := range p {
			basisKS[i][ch] = (1 - r) * (1 - r) / (2 * r)
		}
	}
}

// KubelkaMunk is the built-in reference Transform.
//
// The forward pass decomposes a color into concentrations of the five basis
// pigments: white covers the smallest channel, blue the absorption shared by
// red and green, cyan and magenta the red and green absorption beyond
// blue's share, yellow the blue absorption. The difference between the
// color and the Kubelka-Munk prediction for that mixture is stored as a
// linear residual, so the inverse pass, prediction plus residual, round
// trips exactly.
type KubelkaMunk struct{}

func (KubelkaMunk) RGBToLatent(c colorspace.LinearRGB) Latent {
	r := clamp01(c[0])
	g := clamp01(c[1])
	b := clamp01(c[2])

	var z Latent
	z[0] = math.Min(r, math.Min(g, b))
	z[2] = math.Min(1-r, 1-g)
	z[1] = (1 - r) - z[2]
	z[3] = (1 - g) - z[2]
	z[4] = 1 - b

	p := mixReflectance(z)
	z[5] = c[0] - p[0]
	z[6] = c[1] - p[1]
	z[7] = c[2] - p[2]
	return z
}

func (KubelkaMunk) LatentToRGB(z Latent) colorspace.LinearRGB {
	p := mixReflectance(z)
	return colorspace.LinearRGB{p[0] + z[5], p[1] + z[6], p[2] + z[7]}
}

func (t KubelkaMunk) LerpRGB(a, b colorspace.LinearRGB, ratio float64) colorspace.LinearRGB {
	ratio = clamp01(ratio)
	za := t.RGBToLatent(a)
	zb := t.RGBToLatent(b)

	var z Latent
	for i := range z {
		z[i] = za[i]*(1-ratio) + zb[i]*ratio
	}
	return t.LatentToRGB(z)
}

// mixReflectance predicts the reflectance of a pigment mixture per channel.
// The K/S ratios of the basis pigments combine weighted by concentration;
// the Kubelka-Munk equation turns the combined ratio back into reflectance.
func mixReflectance(z Latent) [3]float64 {
	var out [3]float64

	total := z[0] + z[1] + z[2] + z[3] + z[4]
	if total < 1e-12 {
		return out
	}
	for ch := 0; ch < 3; ch++ {
		ks := 0.0
		for i := 0; i < 5; i++ {
			ks += z[i] * basisKS[i][ch]
		}
		ks /= total
		out[ch] = 1 + ks - math.Sqrt(ks*ks+2*ks)
	}
	return out
}
