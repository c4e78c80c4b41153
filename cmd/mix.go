package cmd

import (
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmuldo/pigmix/mix"
	"github.com/mmuldo/pigmix/palette"
)

var (
	mixRatio  float64
	mixSteps  int
	mixDither bool
	mixSeed   int64
)

// mixCmd represents the mix command
var mixCmd = &cobra.Command{
	Use:   "mix <color-a> <color-b>",
	Short: "Mix two hex colors as pigments",
	Long: `Mixes two RRGGBB colors through pigment space and prints the result
as a truecolor swatch. With --steps a whole mixing ladder is printed
instead of a single mix.`,
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

		if mixSteps > 1 {
			ladder, e := palette.Ladder(a, b, mixSteps)
			if e != nil {
				log.Fatal(e)
			}
			for i, c := range ladder {
				fmt.Printf("%2d %s\n", i, swatch(c))
			}
			return
		}

		var m [3]uint8
		if mixDither {
			rng := rand.New(rand.NewSource(mixSeed))
			m = mix.SRGB8Dithered(a, b, mixRatio, rng)
		} else {
			m = mix.SRGB8(a, b, mixRatio)
		}
		fmt.Println(swatch(m))
	},
}

func init() {
	rootCmd.AddCommand(mixCmd)

	mixCmd.Flags().Float64VarP(&mixRatio, "ratio", "r", 0.5, "weight of the second color, 0 to 1")
	mixCmd.Flags().IntVarP(&mixSteps, "steps", "n", 0, "print a ladder of n mixes instead of one")
	mixCmd.Flags().BoolVar(&mixDither, "dither", false, "dither the quantized result")
	mixCmd.Flags().Int64Var(&mixSeed, "seed", 1, "dither noise seed")
}

// parses an RRGGBB color, with or without a leading '#'
func parseHex(s string) ([3]uint8, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return [3]uint8{}, fmt.Errorf("'%s' is not an RRGGBB color", s)
	}

	v, e := strconv.ParseUint(h, 16, 32)
	if e != nil {
		return [3]uint8{}, fmt.Errorf("'%s' is not an RRGGBB color", s)
	}

	return [3]uint8{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

func swatch(c [3]uint8) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm██████\033[0m %s", c[0], c[1], c[2], rgb2Hex(c))
}

func rgb2Hex(c [3]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
