package image

import (
	"fmt"
	"image"

	"github.com/esimov/colorquant"
)

// error diffusion filter used when posterizing with dithering
var floydSteinberg = colorquant.Dither{
	Filter: [][]float32{
		{0.0, 0.0, 0.0, 7.0 / 16.0, 0.0},
		{3.0 / 16.0, 5.0 / 16.0, 1.0 / 16.0, 0.0, 0.0},
	},
}

// Posterize reduces img to at most the given number of colors, diffusing
// the quantization error Floyd-Steinberg style when dithered is set.
func Posterize(img image.Image, colors int, dithered bool) (image.Image, error) {
	if colors < 2 {
		return nil, fmt.Errorf("image: cannot posterize to %d colors", colors)
	}

	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	if dithered {
		floydSteinberg.Quantize(img, o, colors, true, true)
	} else {
		colorquant.NoDither.Quantize(img, o, colors, false, true)
	}

	return o, nil
}
