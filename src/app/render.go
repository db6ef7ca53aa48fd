package app

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/rs/zerolog/log"
	bar "github.com/schollz/progressbar/v3"
	"github.com/simivar/dpf-sprite-browser/src/dump"
	"golang.org/x/image/draw"
)

const sheetGap = 4

// RenderRequest describes one render of a sprite dump. An empty
// Palette.Path triggers palette discovery next to the dump unless
// NoPalette is set.
type RenderRequest struct {
	DumpPath  string
	OutputDir string
	Palette   PaletteRequest
	NoPalette bool
	Candidate int
	All       bool
	Sheet     bool
	Options   dump.Options
	Scale     int
	Format    string
}

// RenderResult reports the session that was rendered and the files written.
type RenderResult struct {
	Session dump.Session
	Files   []string
}

// LoadSession reads a dump and attaches the requested or discovered palette.
func LoadSession(dumpPath string, pal PaletteRequest, noPalette bool) (dump.Session, error) {
	words, err := ReadWords(dumpPath)
	if err != nil {
		return dump.Session{}, fmt.Errorf("load dump: %w", err)
	}
	session := dump.NewSession(filepath.Base(dumpPath), words)
	if noPalette {
		return session, nil
	}

	if pal.Path == "" {
		pal.Path = FindPalette(dumpPath)
		if pal.Path == "" {
			log.Debug().Str("dump", dumpPath).Msg("no palette found, using grayscale")
			return session, nil
		}
	}
	p, err := LoadPalette(pal)
	if err != nil {
		return dump.Session{}, err
	}
	return session.WithPalette(filepath.Base(pal.Path), p), nil
}

// RenderDump decodes the selected candidate, or every candidate with All,
// and writes one image per candidate. Sheet additionally writes all
// candidates side by side into a single contact sheet.
func RenderDump(req RenderRequest) (RenderResult, error) {
	ext, err := imageExt(req.Format)
	if err != nil {
		return RenderResult{}, err
	}
	session, err := LoadSession(req.DumpPath, req.Palette, req.NoPalette)
	if err != nil {
		return RenderResult{}, err
	}
	report := session.Analyze()
	log.Info().
		Str("dump", session.Name).
		Int("words", len(session.Words)).
		Int("candidates", len(session.Candidates)).
		Str("palette", session.PaletteName).
		Msg(report.Summary())

	selected := map[int]bool{}
	if req.All {
		for i := range session.Candidates {
			selected[i] = true
		}
	} else {
		_, i := session.Candidate(req.Candidate)
		if i != req.Candidate {
			log.Warn().Int("requested", req.Candidate).Int("using", i).Msg("candidate index out of range")
		}
		selected[i] = true
	}

	indices := make([]int, 0, len(session.Candidates))
	for i := range session.Candidates {
		if selected[i] || req.Sheet {
			indices = append(indices, i)
		}
	}

	var progress *bar.ProgressBar
	if len(indices) > 1 {
		progress = bar.NewOptions(
			len(indices),
			bar.OptionSetDescription("Rendering candidates"),
			bar.OptionShowCount(),
			bar.OptionShowIts(),
			bar.OptionSetItsString("sprites"),
			bar.OptionThrottle(100),
			bar.OptionClearOnFinish(),
		)
	}

	base := sanitizeFileName(dumpBaseName(req.DumpPath))
	result := RenderResult{Session: session}
	var tiles []image.Image
	for _, i := range indices {
		c := session.Candidates[i]
		img, err := renderCandidate(c, req.Options, session.Palette, req.Scale)
		if progress != nil {
			_ = progress.Add(1)
		}
		if err != nil {
			return result, fmt.Errorf("render %s: %w", c.Label(i), err)
		}
		tiles = append(tiles, img)
		if !selected[i] {
			continue
		}

		name := fmt.Sprintf("%s_%d_%s_%s%s", base, i, c.Tag(), dump.FormatName(req.Options.BPP), ext)
		out := filepath.Join(req.OutputDir, name)
		if err := writeImage(out, img); err != nil {
			return result, fmt.Errorf("write %q: %w", out, err)
		}
		log.Debug().Str("candidate", c.Label(i)).Str("file", out).Msg("wrote candidate")
		result.Files = append(result.Files, out)
	}
	if progress != nil {
		_ = progress.Finish()
	}

	if req.Sheet {
		sheet, err := composeSheet(tiles)
		if err != nil {
			return result, err
		}
		out := filepath.Join(req.OutputDir, base+"_sheet"+ext)
		if err := writeImage(out, sheet); err != nil {
			return result, fmt.Errorf("write %q: %w", out, err)
		}
		result.Files = append(result.Files, out)
	}

	log.Info().
		Str("dump", session.Name).
		Str("format", dump.FormatName(req.Options.BPP)).
		Int("files", len(result.Files)).
		Str("output", req.OutputDir).
		Msg("Rendering finished")
	return result, nil
}

func renderCandidate(c dump.Candidate, opts dump.Options, pal *dump.Palette, scale int) (image.Image, error) {
	indices, err := dump.DecodePixels(c, opts)
	if err != nil {
		return nil, err
	}
	img := dump.Render(indices, int(c.Width), int(c.Height), opts.BPP, pal, opts.InvertColors)
	return dump.Upscale(img, scale), nil
}

// composeSheet lays tiles out left to right, top aligned, with a small gap.
func composeSheet(tiles []image.Image) (image.Image, error) {
	if len(tiles) == 0 {
		return nil, errors.New("no candidates to compose")
	}

	width, height := 0, 0
	for _, t := range tiles {
		b := t.Bounds()
		width += b.Dx()
		height = max(height, b.Dy())
	}
	width += sheetGap * (len(tiles) - 1)

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	x := 0
	for _, t := range tiles {
		b := t.Bounds()
		pt := image.Pt(x, 0)
		draw.Draw(dst, image.Rectangle{Min: pt, Max: pt.Add(b.Size())}, t, b.Min, draw.Src)
		x += b.Dx() + sheetGap
	}
	return dst, nil
}
