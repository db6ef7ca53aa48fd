package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/simivar/dpf-sprite-browser/src/app"
	"github.com/simivar/dpf-sprite-browser/src/dump"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var renderFlags struct {
	bpp          string
	candidate    int
	all          bool
	sheet        bool
	littleEndian bool
	invertColors bool
	invertIndex  bool
	shift        string
	subtract     string
	scale        string
	palette      string
	noPalette    bool
	window       paletteFlagSet
	upscale      int
}

// paletteFlagSet is shared by every command that decodes a palette.
type paletteFlagSet struct {
	mode   string
	offset int
	count  int
}

func (p *paletteFlagSet) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.mode, "palette-mode", "yuv", "palette color mode (direct, bgr or yuv)")
	cmd.Flags().IntVar(&p.offset, "palette-offset", 0, "first palette entry to use")
	cmd.Flags().IntVar(&p.count, "palette-count", dump.PaletteSize, "number of palette entries to use")
}

// request builds the palette request. An explicit --palette-mode beats the
// configured default.
func (p paletteFlagSet) request(cmd *cobra.Command, path string, littleEndian bool) (app.PaletteRequest, error) {
	name := p.mode
	if !cmd.Flags().Changed("palette-mode") {
		name = stringSetting("palette-mode", p.mode)
	}
	mode, err := dump.ParseColorMode(name)
	if err != nil {
		return app.PaletteRequest{}, err
	}
	return app.PaletteRequest{
		Path:         path,
		Mode:         mode,
		Offset:       p.offset,
		Count:        p.count,
		LittleEndian: littleEndian,
	}, nil
}

func init() {
	rootCmd.AddCommand(renderCmd)

	f := renderCmd.Flags()
	f.StringVarP(&renderFlags.bpp, "bpp", "b", "8bpp_indexed", "pixel format (1bpp_mono, 2bpp_indexed, 4bpp_indexed or 8bpp_indexed)")
	f.IntVarP(&renderFlags.candidate, "candidate", "n", 0, "candidate to render")
	f.BoolVar(&renderFlags.all, "all", false, "render every candidate")
	f.BoolVar(&renderFlags.sheet, "sheet", false, "also write a contact sheet of every candidate")
	f.BoolVar(&renderFlags.littleEndian, "little-endian", false, "byte-swap every word before decoding")
	f.BoolVar(&renderFlags.invertColors, "invert-colors", false, "invert palette colors (bit complement for 1bpp)")
	f.BoolVar(&renderFlags.invertIndex, "invert-index", false, "invert pixel indices")
	f.StringVar(&renderFlags.shift, "shift", "0", "8bpp brightness: right shift")
	f.StringVar(&renderFlags.subtract, "subtract", "0", "8bpp brightness: value subtracted after the shift")
	f.StringVar(&renderFlags.scale, "scale", "1.0", "8bpp brightness: multiplier applied last")
	f.StringVarP(&renderFlags.palette, "palette", "p", "", "palette dump (discovered next to the dump when empty)")
	f.BoolVar(&renderFlags.noPalette, "no-palette", false, "render with the default grayscale palette")
	renderFlags.window.register(renderCmd)
	f.IntVarP(&renderFlags.upscale, "upscale", "u", 1, "nearest-neighbor magnification factor")

	_ = viper.BindPFlag("bpp", f.Lookup("bpp"))
	_ = viper.BindPFlag("palette-mode", f.Lookup("palette-mode"))
	_ = viper.BindPFlag("upscale", f.Lookup("upscale"))
	_ = viper.BindPFlag("little-endian", f.Lookup("little-endian"))
}

var renderCmd = &cobra.Command{
	Use:   "render <dump>",
	Short: "Renders candidates of a sprite dump to images",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir := app.ExpandPath(stringSetting("output", OutputPath))
		littleEndian := boolSetting("little-endian", renderFlags.littleEndian)
		log.Info().
			Str("dump", args[0]).
			Str("output", outputDir).
			Bool("little_endian", littleEndian).
			Msg("DPF render running")

		bpp, err := dump.ParseBPP(stringSetting("bpp", renderFlags.bpp))
		if err != nil {
			return err
		}
		pal, err := renderFlags.window.request(cmd, app.ExpandPath(renderFlags.palette), littleEndian)
		if err != nil {
			return err
		}

		opts := dump.DefaultOptions()
		opts.BPP = bpp
		opts.LittleEndian = littleEndian
		opts.InvertColors = renderFlags.invertColors
		opts.InvertIndex = renderFlags.invertIndex
		opts.Brightness = dump.ParseBrightness(renderFlags.shift, renderFlags.subtract, renderFlags.scale)
		if !opts.Brightness.IsIdentity() {
			log.Debug().Str("brightness", opts.Brightness.String()).Msg("brightness mapping")
		}

		res, err := app.RenderDump(app.RenderRequest{
			DumpPath:  app.ExpandPath(args[0]),
			OutputDir: outputDir,
			Palette:   pal,
			NoPalette: renderFlags.noPalette,
			Candidate: renderFlags.candidate,
			All:       renderFlags.all,
			Sheet:     renderFlags.sheet,
			Options:   opts,
			Scale:     intSetting("upscale", renderFlags.upscale),
			Format:    stringSetting("image-format", ImageFormat),
		})
		if err != nil {
			return err
		}

		log.Info().Int("files", len(res.Files)).Msg("DPF render finished")
		return nil
	},
}
