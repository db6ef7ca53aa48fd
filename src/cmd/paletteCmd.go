package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/simivar/dpf-sprite-browser/src/app"
	"github.com/spf13/cobra"
)

var paletteFlags struct {
	littleEndian bool
	window       paletteFlagSet
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().BoolVar(&paletteFlags.littleEndian, "little-endian", false, "byte-swap every palette word before decoding")
	paletteFlags.window.register(paletteCmd)
}

var paletteCmd = &cobra.Command{
	Use:   "palette <palette dump>",
	Short: "Decodes a palette dump and writes a swatch strip",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir := app.ExpandPath(stringSetting("output", OutputPath))
		log.Info().
			Str("palette", args[0]).
			Str("output", outputDir).
			Msg("DPF palette running")

		req, err := paletteFlags.window.request(cmd, app.ExpandPath(args[0]), paletteFlags.littleEndian)
		if err != nil {
			return err
		}
		res, err := app.ExportPalette(req, outputDir, stringSetting("image-format", ImageFormat))
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries (%s layout, %s)\n", args[0], res.Entries, res.Layout, req.Mode)
		fmt.Fprintf(cmd.OutOrStdout(), "Unique colors: %d, dark: %d, bright: %d\n", res.Stats.Unique, res.Stats.Dark, res.Stats.Bright)

		log.Info().Str("file", res.File).Msg("DPF palette finished")
		return nil
	},
}
