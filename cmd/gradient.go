package cmd

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmuldo/pigmix/colorspace"
	"github.com/mmuldo/pigmix/dither"
	"github.com/mmuldo/pigmix/mix"
)

var (
	gradWidth  int
	gradHeight int
	gradOut    string
	gradDither bool
	gradSeed   int64
)

// gradientCmd represents the gradient command
var gradientCmd = &cobra.Command{
	Use:   "gradient <color-a> <color-b>",
	Short: "Write a PNG ramp between two colors",
	Long: `Writes a horizontal PNG ramp mixing two RRGGBB colors through
pigment space. Without --dither smooth ramps tend to band; with it the
quantization noise breaks the bands up.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		a, e := parseHex(args[0])
		if e != nil {
			log.Fatal(e)
		}
		b, e := parseHex(args[1])
		if e != nil {
			log.Fatal(e)
		}

		if gradWidth < 2 || gradHeight < 1 {
			log.Fatalf("cannot render a %dx%d ramp", gradWidth, gradHeight)
		}

		la := colorspace.Linearize8(a)
		lb := colorspace.Linearize8(b)
		rng := rand.New(rand.NewSource(gradSeed))

		img := image.NewNRGBA(image.Rect(0, 0, gradWidth, gradHeight))
		for x := 0; x < gradWidth; x++ {
			t := float64(x) / float64(gradWidth-1)
			enc := mix.Linear(la, lb, t).Encode()

			if !gradDither {
				c := colorspace.Denormalize8(enc)
				for y := 0; y < gradHeight; y++ {
					img.SetNRGBA(x, y, color.NRGBA{c[0], c[1], c[2], 255})
				}
				continue
			}
			for y := 0; y < gradHeight; y++ {
				c := dither.Quantize8(enc, rng)
				img.SetNRGBA(x, y, color.NRGBA{c[0], c[1], c[2], 255})
			}
		}

		outFile, e := os.Create(gradOut)
		if e != nil {
			log.Fatal(e)
		}
		defer outFile.Close()

		if e := png.Encode(outFile, img); e != nil {
			log.Fatal(e)
		}
	},
}

func init() {
	rootCmd.AddCommand(gradientCmd)

	gradientCmd.Flags().IntVarP(&gradWidth, "width", "w", 512, "ramp width in pixels")
	gradientCmd.Flags().IntVar(&gradHeight, "height", 64, "ramp height in pixels")
	gradientCmd.Flags().StringVarP(&gradOut, "out", "o", "gradient.png", "output file")
	gradientCmd.Flags().BoolVar(&gradDither, "dither", false, "dither the quantized ramp")
	gradientCmd.Flags().Int64Var(&gradSeed, "seed", 1, "dither noise seed")
}
