package cmd

import (
	"fmt"
	"io/ioutil"
	"log"
	"strconv"

	"github.com/flosch/pongo2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/pigmix/palette"
)

var (
	exportSteps    int
	exportTemplate string
	exportOut      string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <color-a> <color-b>",
	Short: "Render a template from a mixing ladder",
	Long: `Builds a mixing ladder between two RRGGBB colors and renders a
pongo2 template with the ladder bound as color0..colorN hex strings, for
dropping pigment palettes into config files and stylesheets.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setExportDefaults()

		a, e := parseHex(args[0])
		if e != nil {
			log.Fatal(e)
		}
		b, e := parseHex(args[1])
		if e != nil {
			log.Fatal(e)
		}

		ladder, e := palette.Ladder(a, b, exportSteps)
		if e != nil {
			log.Fatal(e)
		}

		ctxt := pongo2.Context{"steps": exportSteps}
		for i, c := range ladder {
			ctxt["color"+strconv.Itoa(i)] = rgb2Hex(c)
		}

		tpl, e := pongo2.FromFile(exportTemplate)
		if e != nil {
			log.Fatal(e)
		}

		o, e := tpl.Execute(ctxt)
		if e != nil {
			log.Fatal(e)
		}

		if exportOut == "" {
			fmt.Print(o)
			return
		}
		if e := ioutil.WriteFile(exportOut, []byte(o), 0644); e != nil {
			log.Fatal(e)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().IntVarP(&exportSteps, "steps", "n", 8, "number of ladder steps")
	exportCmd.Flags().StringVar(&exportTemplate, "template", "", "pongo2 template file")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
}

func setExportDefaults() {
	if exportTemplate == "" {
		exportTemplate = viper.GetString("template")
	}
}
