// Package palette builds mixing ladders: evenly weighted pigment mixes
// between two anchor colors, with a perceptual spacing report for judging
// how even a ladder actually looks.
package palette

import (
	"fmt"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"

	"github.com/mmuldo/pigmix/mix"
)

var (
	// for RGB-to-Lab conversion
	targetIlluminant = &chromath.IlluminantRefD50
	rgb2Xyz          = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		targetIlluminant,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	lab2Xyz = chromath.NewLabTransformer(targetIlluminant)
	klch    = &deltae.KLChDefault
)

// RGB2Lab converts an RGB color on the 0-255 scale to its Lab equivalent.
func RGB2Lab(rgb chromath.RGB) chromath.Lab {
	xyz := rgb2Xyz.Convert(rgb)
	return lab2Xyz.Invert(xyz)
}

// Ladder returns steps pigment mixes from a to b inclusive, with mixing
// ratios spaced evenly over [0, 1]. steps must be at least 2.
func Ladder(a, b [3]uint8, steps int) ([][3]uint8, error) {
	if steps < 2 {
		return nil, fmt.Errorf("palette: a ladder needs at least 2 steps, got %d", steps)
	}

	out := make([][3]uint8, steps)
	for i := range out {
		out[i] = mix.SRGB8(a, b, float64(i)/float64(steps-1))
	}
	return out, nil
}

// Spacing returns the CIEDE2000 distance between each pair of adjacent
// ladder steps. A perceptually even ladder has near-constant spacing.
func Spacing(ladder [][3]uint8) []float64 {
	if len(ladder) < 2 {
		return nil
	}

	labs := make([]chromath.Lab, len(ladder))
	for i, c := range ladder {
		labs[i] = RGB2Lab(chromath.RGB{float64(c[0]), float64(c[1]), float64(c[2])})
	}

	ds := make([]float64, len(labs)-1)
	for i := 1; i < len(labs); i++ {
		ds[i-1] = deltae.CIE2000(labs[i-1], labs[i], klch)
	}
	return ds
}
