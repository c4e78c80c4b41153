package cmd

import (
	"image"
	"image/png"
	"log"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	pimage "github.com/mmuldo/pigmix/image"
)

var (
	blendRatio  float64
	blendOut    string
	blendDither bool
	blendSeed   int64
	blendColors int
)

// blendCmd represents the blend command
var blendCmd = &cobra.Command{
	Use:   "blend <image-a> <image-b>",
	Short: "Blend two images as pigments",
	Long: `Blends two same-sized images pixel by pixel through pigment space
and writes the result as a PNG. With --colors the result is additionally
posterized down to a fixed palette.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ia, e := pimage.Load(args[0])
		if e != nil {
			log.Fatal(e)
		}
		ib, e := pimage.Load(args[1])
		if e != nil {
			log.Fatal(e)
		}

		var rng *rand.Rand
		if blendDither {
			rng = rand.New(rand.NewSource(blendSeed))
		}

		blended, e := pimage.Blend(*ia, *ib, blendRatio, rng)
		if e != nil {
			log.Fatal(e)
		}

		var out image.Image = blended
		if blendColors > 0 {
			out, e = pimage.Posterize(blended, blendColors, blendDither)
			if e != nil {
				log.Fatal(e)
			}
		}

		outFile, e := os.Create(blendOut)
		if e != nil {
			log.Fatal(e)
		}
		defer outFile.Close()

		if e := png.Encode(outFile, out); e != nil {
			log.Fatal(e)
		}
	},
}

func init() {
	rootCmd.AddCommand(blendCmd)

	blendCmd.Flags().Float64VarP(&blendRatio, "ratio", "r", 0.5, "weight of the second image, 0 to 1")
	blendCmd.Flags().StringVarP(&blendOut, "out", "o", "blend.png", "output file")
	blendCmd.Flags().BoolVar(&blendDither, "dither", false, "dither the quantized result")
	blendCmd.Flags().Int64Var(&blendSeed, "seed", 1, "dither noise seed")
	blendCmd.Flags().IntVar(&blendColors, "colors", 0, "posterize the result to n colors")
}
