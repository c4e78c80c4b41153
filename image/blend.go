package image

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/mmuldo/pigmix/mix"
)

// Blend mixes two same-sized images pixel by pixel through pigment space.
// ratio is the weight of b, clamped to [0, 1]. When rng is non-nil the
// 8-bit narrowing of each pixel is dithered; otherwise plain rounding is
// used. Alpha blends linearly.
func Blend(a, b image.Image, ratio float64, rng *rand.Rand) (*image.NRGBA, error) {
	if a.Bounds() != b.Bounds() {
		return nil, fmt.Errorf("image: bounds mismatch: %v vs %v", a.Bounds(), b.Bounds())
	}

	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}

	bounds := a.Bounds()
	o := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ca := color.NRGBAModel.Convert(a.At(x, y)).(color.NRGBA)
			cb := color.NRGBAModel.Convert(b.At(x, y)).(color.NRGBA)

			var m [3]uint8
			if rng != nil {
				m = mix.SRGB8Dithered([3]uint8{ca.R, ca.G, ca.B}, [3]uint8{cb.R, cb.G, cb.B}, ratio, rng)
			} else {
				m = mix.SRGB8([3]uint8{ca.R, ca.G, ca.B}, [3]uint8{cb.R, cb.G, cb.B}, ratio)
			}

			alpha := float64(ca.A)*(1-ratio) + float64(cb.A)*ratio
			o.SetNRGBA(x, y, color.NRGBA{m[0], m[1], m[2], uint8(alpha + 0.5)})
		}
	}

	return o, nil
}
