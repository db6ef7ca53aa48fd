package dump

import (
	"fmt"
	"image/color"
	"strings"
)

// PaletteSize is the number of entries in every decoded Palette.
const PaletteSize = 256

// countedLimit separates a leading color count from a color value in the
// first palette word.
const countedLimit = 1000

// RGB is one palette entry.
type RGB struct {
	R, G, B uint8
}

// Palette always holds exactly 256 entries (768 component bytes).
type Palette [PaletteSize]RGB

// Bytes flattens the palette to R,G,B,R,G,B... (768 bytes).
func (p *Palette) Bytes() []byte {
	out := make([]byte, 0, PaletteSize*3)
	for _, c := range p {
		out = append(out, c.R, c.G, c.B)
	}
	return out
}

// Inverted returns a copy with every component replaced by 255-c.
func (p Palette) Inverted() Palette {
	for i, c := range p {
		p[i] = RGB{255 - c.R, 255 - c.G, 255 - c.B}
	}
	return p
}

// ColorPalette converts p for use with image.Paletted.
func (p *Palette) ColorPalette() color.Palette {
	cp := make(color.Palette, PaletteSize)
	for i, c := range p {
		cp[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	}
	return cp
}

// DefaultPalette is the grayscale ramp used when no palette is loaded:
// 256 levels for 8bpp, 16 levels (i*17) for 4bpp, 4 levels (i*85) for 2bpp
// and black/white for 1bpp. Unused slots are black.
func DefaultPalette(bpp int) Palette {
	var p Palette
	levels := PaletteSize
	if bpp >= 1 && bpp < 8 {
		levels = 1 << bpp
	}
	step := 255 / (levels - 1)
	for i := 0; i < levels; i++ {
		v := uint8(i * step)
		p[i] = RGB{v, v, v}
	}
	return p
}

// ColorMode is the interpretation of a 0x00XXYYZZ palette word.
type ColorMode int

const (
	// ModeDirect reads 0x00RRGGBB.
	ModeDirect ColorMode = iota
	// ModeBGR reads 0x00BBGGRR.
	ModeBGR
	// ModeYUV reads 0x00YYUUVV and converts with BT.601 full range.
	ModeYUV
)

var colorModeNames = map[string]ColorMode{
	"direct": ModeDirect,
	"rgb":    ModeDirect,
	"bgr":    ModeBGR,
	"yuv":    ModeYUV,
}

// ParseColorMode resolves a mode name; matching ignores case.
func ParseColorMode(name string) (ColorMode, error) {
	if m, ok := colorModeNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: color mode %q", ErrUnknownFormat, name)
}

func (m ColorMode) String() string {
	switch m {
	case ModeDirect:
		return "direct"
	case ModeBGR:
		return "bgr"
	case ModeYUV:
		return "yuv"
	}
	return fmt.Sprintf("ColorMode(%d)", int(m))
}

// Decode converts one palette word.
func (m ColorMode) Decode(v uint32) RGB {
	hi, mid, lo := uint8(v>>16), uint8(v>>8), uint8(v)
	switch m {
	case ModeBGR:
		return RGB{lo, mid, hi}
	case ModeYUV:
		return YUVToRGB(hi, mid, lo)
	default:
		return RGB{hi, mid, lo}
	}
}

// YUVToRGB converts full-range BT.601 YUV. Each channel is truncated
// toward zero and then clamped to [0,255].
func YUVToRGB(y, u, v uint8) RGB {
	fy := float64(y)
	fu := float64(u) - 128
	fv := float64(v) - 128

	r := fy + 1.402*fv
	g := fy - 0.344136*fu - 0.714136*fv
	b := fy + 1.772*fu
	return RGB{clampChannel(r), clampChannel(g), clampChannel(b)}
}

func clampChannel(f float64) uint8 {
	return uint8(min(255, max(0, int(f))))
}

// Layout says where the palette entries of a word sequence start.
type Layout int

const (
	// LayoutDirect: entries start at words[offset].
	LayoutDirect Layout = iota
	// LayoutCounted: words[0] is a color count below 1000 and entries start
	// at words[1+offset].
	LayoutCounted
)

func (l Layout) String() string {
	if l == LayoutCounted {
		return "counted"
	}
	return "direct"
}

// PaletteWindow selects the words DecodePalette will convert. Offsets and
// counts past the end produce a shorter slice; negative values count as 0.
func PaletteWindow(words []uint32, offset, count int) ([]uint32, Layout) {
	offset, count = max(0, offset), max(0, count)

	layout := LayoutDirect
	start := offset
	if len(words) > 0 && words[0] < countedLimit {
		layout = LayoutCounted
		start = 1 + offset
		count = min(count, int(words[0]))
	}

	if start >= len(words) {
		return nil, layout
	}
	end := min(len(words), start+count)
	return words[start:end:end], layout
}

// DecodePalette converts a window of words into a 256-entry palette. Entries
// past 256 are dropped, missing entries stay black. It never fails.
func DecodePalette(words []uint32, mode ColorMode, offset, count int, littleEndian bool) Palette {
	var p Palette
	window, _ := PaletteWindow(words, offset, count)
	for i, v := range window {
		if i >= PaletteSize {
			break
		}
		if littleEndian {
			v = Swap32(v)
		}
		p[i] = mode.Decode(v)
	}
	return p
}

// PaletteStats summarises the colors of a palette.
type PaletteStats struct {
	Unique int
	Dark   int
	Bright int
}

// DescribePalette counts distinct colors and how many entries have a mean
// component below 64 (dark) or above 192 (bright).
func DescribePalette(p *Palette) PaletteStats {
	var st PaletteStats
	seen := make(map[RGB]struct{}, PaletteSize)
	for _, c := range p {
		seen[c] = struct{}{}
		mean := (int(c.R) + int(c.G) + int(c.B)) / 3
		switch {
		case mean < 64:
			st.Dark++
		case mean > 192:
			st.Bright++
		}
	}
	st.Unique = len(seen)
	return st
}
