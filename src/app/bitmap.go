package app

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/rs/zerolog/log"
	"github.com/simivar/dpf-sprite-browser/src/dump"
	"golang.org/x/image/draw"
)

// ErrNoGeometry is returned when the geometry was guessed and the best guess
// is not close to the data size.
var ErrNoGeometry = errors.New("no close geometry match")

const maxQuantizeColors = 256

// BitmapRequest describes a fixed-geometry export. A zero Width or Height
// guesses the geometry from the data size; an empty Format takes the bit
// depth from the guess or from the data size.
type BitmapRequest struct {
	Path         string
	OutputDir    string
	Width        int
	Height       int
	Format       string
	Force        bool
	Colors       int
	Scale        int
	OutputFormat string
}

// BitmapResult is what ExportBitmap decided and wrote.
type BitmapResult struct {
	Width  int
	Height int
	Format dump.BitmapFormat
	Guess  *dump.Geometry
	File   string
}

// ExportBitmap decodes a raw full-screen bitmap dump and writes it as an
// image, optionally reduced to Colors colors.
func ExportBitmap(req BitmapRequest) (BitmapResult, error) {
	ext, err := imageExt(req.OutputFormat)
	if err != nil {
		return BitmapResult{}, err
	}

	src, err := ReadSource(req.Path)
	if err != nil {
		return BitmapResult{}, fmt.Errorf("load bitmap: %w", err)
	}
	data, err := src.Bytes()
	if err != nil {
		return BitmapResult{}, fmt.Errorf("load bitmap: %w", err)
	}

	res, err := resolveBitmapGeometry(req, len(data))
	if err != nil {
		return res, err
	}

	rgba, err := dump.DecodeBitmap(data, res.Width, res.Height, res.Format)
	if err != nil {
		return res, err
	}

	var img image.Image = rgba
	if req.Colors > 0 {
		img = quantizeImage(rgba, min(req.Colors, maxQuantizeColors))
	}
	img = dump.Upscale(img, req.Scale)

	name := fmt.Sprintf("%s_%dx%d_%dbit%s", sanitizeFileName(dumpBaseName(req.Path)), res.Width, res.Height, res.Format.Bits(), ext)
	res.File = filepath.Join(req.OutputDir, name)
	if err := writeImage(res.File, img); err != nil {
		return res, fmt.Errorf("write %q: %w", res.File, err)
	}

	log.Info().
		Str("file", src.Name).
		Int("bytes", len(data)).
		Int("width", res.Width).
		Int("height", res.Height).
		Str("format", res.Format.String()).
		Str("output", res.File).
		Msg("Bitmap exported")
	return res, nil
}

func resolveBitmapGeometry(req BitmapRequest, byteLen int) (BitmapResult, error) {
	var res BitmapResult
	if req.Format != "" {
		f, err := dump.ParseBitmapFormat(req.Format)
		if err != nil {
			return res, err
		}
		res.Format = f
	}

	if req.Width > 0 && req.Height > 0 {
		res.Width, res.Height = req.Width, req.Height
		if req.Format == "" {
			bits := byteLen * 8 / req.Width / req.Height
			f, err := dump.BitmapFormatForBits(bits)
			if err != nil {
				return res, fmt.Errorf("cannot infer depth of %dx%d from %d bytes: %w", req.Width, req.Height, byteLen, err)
			}
			res.Format = f
		}
		return res, nil
	}

	g := dump.GuessGeometry(byteLen)
	res.Guess = &g
	log.Debug().
		Int("bytes", byteLen).
		Int("width", g.Width).
		Int("height", g.Height).
		Int("bits", g.Bits).
		Int("score", g.Score).
		Msg("geometry guess")

	if !g.Close(byteLen) && !req.Force {
		return res, fmt.Errorf("%w for %d bytes: nearest is %dx%d %d-bit, %d bytes off",
			ErrNoGeometry, byteLen, g.Width, g.Height, g.Bits, g.Score)
	}
	res.Width, res.Height = g.Width, g.Height
	if req.Format == "" {
		f, err := dump.BitmapFormatForBits(g.Bits)
		if err != nil {
			return res, err
		}
		res.Format = f
	}
	return res, nil
}

// quantizeImage reduces img to at most colors colors with a median cut
// palette.
func quantizeImage(img image.Image, colors int) *image.Paletted {
	b := img.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, colors), img))
	draw.Draw(pm, b, img, b.Min, draw.Src)
	return pm
}
