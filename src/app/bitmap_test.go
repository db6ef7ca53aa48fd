package app

import (
	"errors"
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"github.com/simivar/dpf-sprite-browser/src/dump"
)

func TestExportBitmapInfersDepthFromExplicitGeometry(t *testing.T) {
	dir := t.TempDir()
	outputDir := t.TempDir()
	path := writeTempBytes(t, dir, "screen.bin", []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 10, 20, 30,
	})

	res, err := ExportBitmap(BitmapRequest{Path: path, OutputDir: outputDir, Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("ExportBitmap error: %v", err)
	}
	if res.Format != dump.RGB24 || res.Guess != nil {
		t.Fatalf("result = %+v", res)
	}
	if want := filepath.Join(outputDir, "screen_2x2_24bit.png"); res.File != want {
		t.Fatalf("File = %q, want %q", res.File, want)
	}

	img := decodePNG(t, res.File)
	if got := pixelAt(img, 1, 1); got != (color.NRGBA{10, 20, 30, 255}) {
		t.Fatalf("(1,1) = %v", got)
	}
}

func TestExportBitmapReadsHexBytes(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "splash.txt", "0xFF, 0x00,\n")

	res, err := ExportBitmap(BitmapRequest{Path: path, OutputDir: t.TempDir(), Width: 2, Height: 1, Format: "gray"})
	if err != nil {
		t.Fatalf("ExportBitmap error: %v", err)
	}
	img := decodePNG(t, res.File)
	if got := pixelAt(img, 0, 0); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Fatalf("(0,0) = %v", got)
	}
}

func TestExportBitmapGuessesGeometry(t *testing.T) {
	dir := t.TempDir()
	path := writeTempBytes(t, dir, "screen.bin", make([]byte, 320*240))

	res, err := ExportBitmap(BitmapRequest{Path: path, OutputDir: t.TempDir()})
	if err != nil {
		t.Fatalf("ExportBitmap error: %v", err)
	}
	if res.Guess == nil || res.Width != 320 || res.Height != 240 || res.Format != dump.Gray8 {
		t.Fatalf("result = %+v", res)
	}
}

func TestExportBitmapRefusesDistantGuessUnlessForced(t *testing.T) {
	dir := t.TempDir()
	path := writeTempBytes(t, dir, "tiny.bin", make([]byte, 100))

	_, err := ExportBitmap(BitmapRequest{Path: path, OutputDir: t.TempDir()})
	if !errors.Is(err, ErrNoGeometry) {
		t.Fatalf("error = %v, want ErrNoGeometry", err)
	}

	// forcing the 320x240 mono guess still needs 9600 bytes
	_, err = ExportBitmap(BitmapRequest{Path: path, OutputDir: t.TempDir(), Force: true})
	if !errors.Is(err, dump.ErrInsufficientData) {
		t.Fatalf("forced error = %v, want ErrInsufficientData", err)
	}
}

func TestExportBitmapRejectsUnsupportedDepth(t *testing.T) {
	dir := t.TempDir()
	path := writeTempBytes(t, dir, "odd.bin", make([]byte, 16))

	// 16 bytes over 2x2 pixels is 32 bits per pixel
	_, err := ExportBitmap(BitmapRequest{Path: path, OutputDir: t.TempDir(), Width: 2, Height: 2})
	if !errors.Is(err, dump.ErrUnknownFormat) {
		t.Fatalf("error = %v, want ErrUnknownFormat", err)
	}
}

func TestResolveBitmapGeometryHandlesHugeDimensions(t *testing.T) {
	// Width*Height wraps to 0 on every int size
	side := math.MaxInt/2 + 1

	_, err := resolveBitmapGeometry(BitmapRequest{Width: side, Height: side}, 100)
	if !errors.Is(err, dump.ErrUnknownFormat) {
		t.Fatalf("error = %v, want ErrUnknownFormat", err)
	}

	dir := t.TempDir()
	path := writeTempBytes(t, dir, "screen.bin", make([]byte, 4))
	_, err = ExportBitmap(BitmapRequest{Path: path, OutputDir: t.TempDir(), Width: side, Height: side, Format: "rgb565"})
	if !errors.Is(err, dump.ErrInsufficientData) {
		t.Fatalf("explicit format error = %v, want ErrInsufficientData", err)
	}
}

func TestExportBitmapQuantizesColors(t *testing.T) {
	const w, h = 8, 8
	data := make([]byte, 0, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			data = append(data, uint8(x*32), uint8(y*32), uint8((x+y)*16))
		}
	}
	dir := t.TempDir()
	path := writeTempBytes(t, dir, "photo.bin", data)

	res, err := ExportBitmap(BitmapRequest{Path: path, OutputDir: t.TempDir(), Width: w, Height: h, Format: "rgb24", Colors: 4})
	if err != nil {
		t.Fatalf("ExportBitmap error: %v", err)
	}

	img := decodePNG(t, res.File)
	seen := map[color.NRGBA]bool{}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			seen[pixelAt(img, x, y)] = true
		}
	}
	if len(seen) > 4 {
		t.Fatalf("quantized image has %d colors, want at most 4", len(seen))
	}
}
