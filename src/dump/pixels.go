package dump

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
)

// Brightness remaps 8-bit source values before they are used as palette
// indices: v>>Shift, minus Subtract (floored at 0), times Scale, clamped to
// [0,255].
type Brightness struct {
	Shift    int
	Subtract int
	Scale    float64
}

// IdentityBrightness leaves every value untouched.
var IdentityBrightness = Brightness{Scale: 1}

// ParseBrightness builds a mapping from its textual parameters. Any value
// that does not parse or a non-finite scale yields the identity mapping. A
// negative shift is treated as no shift.
func ParseBrightness(shift, subtract, scale string) Brightness {
	sh, err := strconv.Atoi(strings.TrimSpace(shift))
	if err != nil {
		return IdentityBrightness
	}
	sh = max(0, sh)
	sub, err := strconv.Atoi(strings.TrimSpace(subtract))
	if err != nil {
		return IdentityBrightness
	}
	sc, err := strconv.ParseFloat(strings.TrimSpace(scale), 64)
	if err != nil || math.IsNaN(sc) || math.IsInf(sc, 0) {
		return IdentityBrightness
	}
	return Brightness{Shift: sh, Subtract: sub, Scale: sc}
}

// IsIdentity reports whether Apply is a no-op for every input.
func (b Brightness) IsIdentity() bool {
	return b.Shift <= 0 && b.Subtract == 0 && b.Scale == 1
}

func (b Brightness) String() string {
	var parts []string
	if b.Shift > 0 {
		parts = append(parts, fmt.Sprintf(">>%d", b.Shift))
	}
	if b.Subtract > 0 {
		parts = append(parts, fmt.Sprintf("-%d", b.Subtract))
	}
	if b.Scale != 1 {
		parts = append(parts, fmt.Sprintf("*%.1f", b.Scale))
	}
	return strings.Join(parts, " ")
}

// Apply maps a single 8-bit value.
func (b Brightness) Apply(v uint8) uint8 {
	x := int(v)
	if b.Shift > 0 {
		x >>= uint(b.Shift)
	}
	x = max(0, x-b.Subtract)
	if b.Scale != 1 {
		// Clamp first: out-of-range float-to-int conversion is implementation-dependent.
		x = int(min(255, max(0, float64(x)*b.Scale)))
	}
	return uint8(min(255, max(0, x)))
}

// Options are the caller-chosen rendering parameters for DecodePixels.
// Start from DefaultOptions: the zero Brightness scales everything to 0.
type Options struct {
	BPP          int
	LittleEndian bool
	InvertColors bool
	InvertIndex  bool
	Brightness   Brightness
}

// DefaultOptions decodes 8bpp big-endian with no transforms.
func DefaultOptions() Options {
	return Options{BPP: 8, Brightness: IdentityBrightness}
}

// ParseBPP accepts "8", "8bpp", "8bpp_indexed", "1bpp_mono" and friends.
func ParseBPP(name string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimSuffix(s, "_indexed")
	s = strings.TrimSuffix(s, "_mono")
	s = strings.TrimSuffix(s, "bpp")
	switch s {
	case "1", "2", "4", "8":
		return int(s[0] - '0'), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatName is the long name of a bpp value, e.g. "4bpp_indexed".
func FormatName(bpp int) string {
	if bpp == 1 {
		return "1bpp_mono"
	}
	return fmt.Sprintf("%dbpp_indexed", bpp)
}

// DecodePixels expands the candidate's words into exactly width*height
// values, most significant bits first. Short input is zero padded and long
// input truncated. The only error is an unsupported bpp.
//
// For bpp 1 InvertColors complements each bit. For the indexed depths it
// is ignored here and applied to the palette by Render instead, so that
// index inversion and color inversion stay independent.
func DecodePixels(c Candidate, opts Options) ([]uint8, error) {
	bpp := opts.BPP
	switch bpp {
	case 1, 2, 4, 8:
	default:
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrUnknownFormat, bpp)
	}

	mask := uint32(1)<<bpp - 1
	total := c.Pixels()

	out := make([]uint8, total)
	i := 0
	for _, w := range c.Words {
		if i >= total {
			break
		}
		if opts.LittleEndian {
			w = Swap32(w)
		}
		for shift := 32 - bpp; shift >= 0 && i < total; shift -= bpp {
			v := uint8(w >> shift & mask)
			switch {
			case bpp == 8:
				v = opts.Brightness.Apply(v)
				if opts.InvertIndex {
					v = uint8(mask) - v
				}
			case bpp == 1:
				if opts.InvertColors {
					v ^= 1
				}
			case opts.InvertIndex:
				v = uint8(mask) - v
			}
			out[i] = v
			i++
		}
	}
	return out, nil
}

// Render places decoded indices on a paletted image. A nil palette selects
// the default grayscale ramp for bpp. invertColors flips every palette
// component; it never touches the indices. bpp 1 always renders black and
// white since inversion already happened during decoding.
func Render(indices []uint8, width, height, bpp int, pal *Palette, invertColors bool) *image.Paletted {
	var cp color.Palette
	if bpp == 1 {
		cp = color.Palette{color.Gray{Y: 0}, color.Gray{Y: 255}}
	} else {
		p := DefaultPalette(bpp)
		if pal != nil {
			p = *pal
		}
		if invertColors {
			p = p.Inverted()
		}
		cp = p.ColorPalette()
	}

	img := image.NewPaletted(image.Rect(0, 0, width, height), cp)
	n := min(len(indices), len(img.Pix))
	copy(img.Pix, indices[:n])
	if bpp == 1 {
		for i, v := range img.Pix[:n] {
			img.Pix[i] = v & 1
		}
	}
	return img
}

// Upscale magnifies img by an integer factor with nearest-neighbor
// sampling. Factors below 2 return img unchanged.
func Upscale(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
