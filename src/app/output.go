package app

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/simivar/dpf-sprite-browser/src/dump"
	"golang.org/x/image/bmp"
)

// writeImage encodes img as BMP when path ends in .bmp and as PNG otherwise,
// creating parent directories as needed.
func writeImage(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		return bmp.Encode(out, img)
	}
	return png.Encode(out, img)
}

// imageExt normalizes an output format selector to a file extension.
func imageExt(format string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), ".")) {
	case "", "png":
		return ".png", nil
	case "bmp":
		return ".bmp", nil
	default:
		return "", fmt.Errorf("%w: output format %q", dump.ErrUnknownFormat, format)
	}
}
