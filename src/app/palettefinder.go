package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/simivar/dpf-sprite-browser/src/dump"
)

// firmwarePalettes are palette dumps that ship with most frame firmwares.
var firmwarePalettes = []string{
	"palcar.txt", "palmenu.txt", "palradiobg.txt",
	"palbg.txt", "palframe.txt", "palicon.txt", "palette.txt",
	"palPowerOnMenu.txt", "palMenu.txt",
}

// PaletteRequest selects how a palette dump is windowed and interpreted.
type PaletteRequest struct {
	Path         string
	Mode         dump.ColorMode
	Offset       int
	Count        int
	LittleEndian bool
}

// LoadPalette reads and decodes the palette described by req.
func LoadPalette(req PaletteRequest) (dump.Palette, error) {
	words, err := ReadWords(req.Path)
	if err != nil {
		return dump.Palette{}, fmt.Errorf("load palette: %w", err)
	}
	return dump.DecodePalette(words, req.Mode, req.Offset, req.Count, req.LittleEndian), nil
}

// paletteCandidates lists the files tried for a dump, in order: names derived
// from the dump, the firmware names, then any other .txt in the same
// directory with "pal" in its name.
func paletteCandidates(dumpPath string) []string {
	dir := filepath.Dir(dumpPath)
	base := strings.ToLower(dumpBaseName(dumpPath))

	names := []string{
		"pal" + base + ".txt",
		base + "pal.txt",
		base + "_pal.txt",
		"pal_" + base + ".txt",
	}
	names = append(names, firmwarePalettes...)

	// the listing resolves names case-insensitively
	listing := map[string]string{}
	var extra []string
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Debug().Err(err).Str("dir", dir).Msg("cannot list palette directory")
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lower := strings.ToLower(e.Name())
		listing[lower] = e.Name()
		if strings.HasSuffix(lower, ".txt") && strings.Contains(lower, "pal") {
			extra = append(extra, e.Name())
		}
	}

	seen := make(map[string]bool, len(names)+len(extra))
	out := make([]string, 0, len(names)+len(extra))
	for _, n := range append(names, extra...) {
		lower := strings.ToLower(n)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		if actual, ok := listing[lower]; ok {
			n = actual
		}
		out = append(out, filepath.Join(dir, n))
	}
	return out
}

// FindPalette returns the first palette next to dumpPath that exists and
// parses, or "" when there is none.
func FindPalette(dumpPath string) string {
	self := filepath.Clean(dumpPath)
	for _, path := range paletteCandidates(dumpPath) {
		if path == self {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if _, err := ReadWords(path); err != nil {
			log.Debug().Err(err).Str("file", path).Msg("skipping unreadable palette")
			continue
		}
		log.Debug().Str("dump", dumpPath).Str("palette", path).Msg("palette discovered")
		return path
	}
	return ""
}
