package app

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/simivar/dpf-sprite-browser/src/dump"
	"golang.org/x/image/draw"
)

const swatchSize = 50

// PaletteExport describes a decoded palette and the swatch written for it.
type PaletteExport struct {
	Palette dump.Palette
	Layout  dump.Layout
	Entries int
	Stats   dump.PaletteStats
	File    string
}

// ExportPalette decodes the palette in req and writes a strip of square
// swatches, one per entry of the selected window.
func ExportPalette(req PaletteRequest, outputDir, format string) (PaletteExport, error) {
	ext, err := imageExt(format)
	if err != nil {
		return PaletteExport{}, err
	}
	words, err := ReadWords(req.Path)
	if err != nil {
		return PaletteExport{}, fmt.Errorf("load palette: %w", err)
	}

	window, layout := dump.PaletteWindow(words, req.Offset, req.Count)
	n := min(len(window), dump.PaletteSize)
	if n == 0 {
		return PaletteExport{}, fmt.Errorf("%w: palette window of %s is empty (offset %d, count %d)",
			dump.ErrFormat, filepath.Base(req.Path), req.Offset, req.Count)
	}

	p := dump.DecodePalette(words, req.Mode, req.Offset, req.Count, req.LittleEndian)
	logPaletteEntries(window[:n], &p, req.LittleEndian)

	dst := image.NewRGBA(image.Rect(0, 0, n*swatchSize, swatchSize))
	for i := 0; i < n; i++ {
		c := p[i]
		r := image.Rect(i*swatchSize, 0, (i+1)*swatchSize, swatchSize)
		draw.Draw(dst, r, image.NewUniform(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}), image.Point{}, draw.Src)
	}

	out := PaletteExport{
		Palette: p,
		Layout:  layout,
		Entries: n,
		Stats:   dump.DescribePalette(&p),
	}
	name := fmt.Sprintf("%s_%s_%d%s", sanitizeFileName(dumpBaseName(req.Path)), req.Mode, req.Offset, ext)
	out.File = filepath.Join(outputDir, name)
	if err := writeImage(out.File, dst); err != nil {
		return out, fmt.Errorf("write %q: %w", out.File, err)
	}

	log.Info().
		Str("palette", filepath.Base(req.Path)).
		Str("mode", req.Mode.String()).
		Str("layout", layout.String()).
		Int("entries", n).
		Int("unique", out.Stats.Unique).
		Int("dark", out.Stats.Dark).
		Int("bright", out.Stats.Bright).
		Str("output", out.File).
		Msg("Palette exported")
	return out, nil
}

func logPaletteEntries(window []uint32, p *dump.Palette, littleEndian bool) {
	for i, w := range window {
		if littleEndian {
			w = dump.Swap32(w)
		}
		c := p[i]
		log.Debug().
			Int("index", i).
			Str("raw", fmt.Sprintf("0x%06X", w&0xFFFFFF)).
			Dict("yuv", zerolog.Dict().
				Uint32("y", w>>16&0xFF).
				Uint32("u", w>>8&0xFF).
				Uint32("v", w&0xFF)).
			Str("rgb", fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)).
			Msg("palette entry")
	}
}
