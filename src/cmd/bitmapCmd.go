package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/simivar/dpf-sprite-browser/src/app"
	"github.com/spf13/cobra"
)

var bitmapFlags struct {
	width   int
	height  int
	format  string
	force   bool
	colors  int
	upscale int
}

func init() {
	rootCmd.AddCommand(bitmapCmd)

	f := bitmapCmd.Flags()
	f.IntVar(&bitmapFlags.width, "width", 0, "image width (guessed with height when 0)")
	f.IntVar(&bitmapFlags.height, "height", 0, "image height (guessed with width when 0)")
	f.StringVarP(&bitmapFlags.format, "format", "f", "", "pixel format: mono, gray, rgb565 or rgb24 (inferred when empty)")
	f.BoolVar(&bitmapFlags.force, "force", false, "render the nearest guess even when it is not close")
	f.IntVar(&bitmapFlags.colors, "colors", 0, "reduce the output to this many colors (median cut)")
	f.IntVarP(&bitmapFlags.upscale, "upscale", "u", 1, "nearest-neighbor magnification factor")
}

var bitmapCmd = &cobra.Command{
	Use:   "bitmap <dump>",
	Short: "Decodes a raw full-screen bitmap dump",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir := app.ExpandPath(stringSetting("output", OutputPath))
		log.Info().
			Str("dump", args[0]).
			Str("output", outputDir).
			Msg("DPF bitmap running")

		res, err := app.ExportBitmap(app.BitmapRequest{
			Path:         app.ExpandPath(args[0]),
			OutputDir:    outputDir,
			Width:        bitmapFlags.width,
			Height:       bitmapFlags.height,
			Format:       bitmapFlags.format,
			Force:        bitmapFlags.force,
			Colors:       bitmapFlags.colors,
			Scale:        bitmapFlags.upscale,
			OutputFormat: stringSetting("image-format", ImageFormat),
		})
		if err != nil {
			return err
		}

		log.Info().Str("file", res.File).Msg("DPF bitmap finished")
		return nil
	},
}
