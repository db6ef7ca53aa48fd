package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	bar "github.com/schollz/progressbar/v3"
	"github.com/simivar/dpf-sprite-browser/src/dump"
)

const (
	noPaletteName       = "none"
	defaultPaletteMode  = "yuv"
	defaultPaletteCount = dump.PaletteSize
)

// BatchSummary counts the outcome of a batch run.
type BatchSummary struct {
	Rendered int
	Failed   int
	Files    []string
}

// RunBatch renders every job of the manifest into outputDir. A failing job
// is logged and skipped; only a broken manifest aborts the run.
func RunBatch(manifestPath, outputDir string) (BatchSummary, error) {
	var summary BatchSummary
	baseDir := filepath.Dir(manifestPath)

	progress := bar.NewOptions(
		-1,
		bar.OptionSetDescription("Rendering batch"),
		bar.OptionShowCount(),
		bar.OptionShowIts(),
		bar.OptionSetItsString("jobs"),
		bar.OptionThrottle(100),
		bar.OptionClearOnFinish(),
	)

	jobs, errs := StreamManifest(manifestPath)
	idx := 0
	for job := range jobs {
		req, err := job.request(baseDir, outputDir)
		if err == nil {
			var res RenderResult
			res, err = RenderDump(req)
			summary.Files = append(summary.Files, res.Files...)
		}
		if err != nil {
			summary.Failed++
			log.Error().Err(err).Int("job", idx).Str("file", job.File).Msg("batch job failed")
		} else {
			summary.Rendered++
		}
		idx++
		_ = progress.Add(1)
	}
	_ = progress.Finish()

	if err, ok := <-errs; ok && err != nil {
		return summary, fmt.Errorf("read manifest %q: %w", manifestPath, err)
	}

	log.Info().
		Int("rendered", summary.Rendered).
		Int("failed", summary.Failed).
		Int("files", len(summary.Files)).
		Str("output", outputDir).
		Msg("Batch finished")
	return summary, nil
}

func (j BatchJob) request(baseDir, outputDir string) (RenderRequest, error) {
	if j.File == "" {
		return RenderRequest{}, fmt.Errorf("%w: job has no file", dump.ErrFormat)
	}

	opts := dump.DefaultOptions()
	if j.BPP != "" {
		bpp, err := dump.ParseBPP(j.BPP)
		if err != nil {
			return RenderRequest{}, err
		}
		opts.BPP = bpp
	}
	opts.LittleEndian = j.LittleEndian
	opts.InvertColors = j.InvertColors
	opts.InvertIndex = j.InvertIndex
	opts.Brightness = dump.ParseBrightness(orDefault(j.Shift, "0"), orDefault(j.Subtract, "0"), orDefault(j.Scale, "1"))

	mode, err := dump.ParseColorMode(orDefault(j.Mode, defaultPaletteMode))
	if err != nil {
		return RenderRequest{}, err
	}

	count := j.Count
	if count <= 0 {
		count = defaultPaletteCount
	}

	req := RenderRequest{
		DumpPath:  resolvePath(baseDir, j.File),
		OutputDir: outputDir,
		Palette: PaletteRequest{
			Mode:         mode,
			Offset:       j.Offset,
			Count:        count,
			LittleEndian: j.LittleEndian,
		},
		Candidate: j.Candidate,
		All:       j.All,
		Sheet:     j.Sheet,
		Options:   opts,
		Scale:     j.Upscale,
		Format:    j.Format,
	}
	switch {
	case strings.EqualFold(j.Palette, noPaletteName):
		req.NoPalette = true
	case j.Palette != "":
		req.Palette.Path = resolvePath(baseDir, j.Palette)
	}
	return req, nil
}

func resolvePath(baseDir, path string) string {
	path = ExpandPath(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
