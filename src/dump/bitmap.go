package dump

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
)

// BitmapFormat is the pixel encoding of a fixed-geometry byte dump.
type BitmapFormat int

const (
	Mono1 BitmapFormat = iota
	Gray8
	RGB565
	RGB24
)

var bitmapFormatNames = [...]string{
	Mono1:  "1-bit monochrome",
	Gray8:  "8-bit grayscale",
	RGB565: "16-bit RGB565",
	RGB24:  "24-bit RGB",
}

func (f BitmapFormat) String() string {
	if f < 0 || int(f) >= len(bitmapFormatNames) {
		return fmt.Sprintf("BitmapFormat(%d)", int(f))
	}
	return bitmapFormatNames[f]
}

// Bits is the number of bits per pixel.
func (f BitmapFormat) Bits() int {
	switch f {
	case Mono1:
		return 1
	case Gray8:
		return 8
	case RGB565:
		return 16
	default:
		return 24
	}
}

// ParseBitmapFormat accepts the long names ("16-bit RGB565") as well as
// "mono", "gray", "rgb565", "rgb24" and bare bit counts.
func ParseBitmapFormat(name string) (BitmapFormat, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for f, long := range bitmapFormatNames {
		if s == strings.ToLower(long) {
			return BitmapFormat(f), nil
		}
	}
	switch s {
	case "mono", "1", "1bit":
		return Mono1, nil
	case "gray", "grey", "8", "8bit":
		return Gray8, nil
	case "rgb565", "565", "16", "16bit":
		return RGB565, nil
	case "rgb24", "rgb", "24", "24bit":
		return RGB24, nil
	}
	return 0, fmt.Errorf("%w: bitmap format %q", ErrUnknownFormat, name)
}

// BitmapFormatForBits maps a guessed bit depth to its format.
func BitmapFormatForBits(bits int) (BitmapFormat, error) {
	switch bits {
	case 1:
		return Mono1, nil
	case 8:
		return Gray8, nil
	case 16:
		return RGB565, nil
	case 24:
		return RGB24, nil
	}
	return 0, fmt.Errorf("%w: %d-bit bitmap", ErrUnknownFormat, bits)
}

// frameResolutions are the panel sizes of common picture frames.
var frameResolutions = [...][2]int{
	{320, 240}, {480, 272}, {800, 480}, {1024, 600},
	{640, 480}, {480, 320}, {272, 480}, {240, 320},
}

var frameDepths = [...]int{1, 8, 16, 24}

// Geometry is a guessed width, height and bit depth together with the
// distance between its byte size and the actual one.
type Geometry struct {
	Width  int
	Height int
	Bits   int
	Score  int
}

// Close reports whether the guess is within 10% of byteLen.
func (g Geometry) Close(byteLen int) bool {
	return float64(g.Score) < float64(byteLen)*0.1
}

// GuessGeometry picks the resolution and depth whose byte size is nearest
// to byteLen. Ties keep the first minimum: earlier resolutions, then lower
// depths. That order is arbitrary but kept stable.
func GuessGeometry(byteLen int) Geometry {
	best := Geometry{Score: -1}
	for _, res := range frameResolutions {
		for _, bits := range frameDepths {
			expected := res[0] * res[1] * bits / 8
			score := expected - byteLen
			if score < 0 {
				score = -score
			}
			if best.Score < 0 || score < best.Score {
				best = Geometry{Width: res[0], Height: res[1], Bits: bits, Score: score}
			}
		}
	}
	return best
}

// RequiredBytes is the minimum input size for a width x height image.
// Geometries too large to address saturate at math.MaxInt.
func (f BitmapFormat) RequiredBytes(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	if width > math.MaxInt/height/3 {
		return math.MaxInt
	}
	pixels := width * height
	switch f {
	case Mono1:
		return (pixels + 7) / 8
	case Gray8:
		return pixels
	case RGB565:
		return pixels * 2
	default:
		return pixels * 3
	}
}

// DecodeBitmap decodes a raw byte dump of known geometry. Unlike the
// sprite path it does not pad: too few bytes is ErrInsufficientData.
func DecodeBitmap(data []byte, width, height int, format BitmapFormat) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid geometry %dx%d", ErrFormat, width, height)
	}
	if format < Mono1 || format > RGB24 {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if need := format.RequiredBytes(width, height); len(data) < need {
		return nil, fmt.Errorf("%w: not enough data for %dx%d %d-bit image (have %d bytes, need %d)",
			ErrInsufficientData, width, height, format.Bits(), len(data), need)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		var c color.RGBA
		switch format {
		case Mono1:
			if data[i/8]>>(7-i%8)&1 == 1 {
				c = color.RGBA{255, 255, 255, 255}
			} else {
				c = color.RGBA{0, 0, 0, 255}
			}
		case Gray8:
			c = color.RGBA{data[i], data[i], data[i], 255}
		case RGB565:
			v := uint16(data[2*i]) | uint16(data[2*i+1])<<8
			c = color.RGBA{
				R: uint8(v>>11&0x1f) << 3,
				G: uint8(v>>5&0x3f) << 2,
				B: uint8(v&0x1f) << 3,
				A: 255,
			}
		case RGB24:
			c = color.RGBA{data[3*i], data[3*i+1], data[3*i+2], 255}
		}
		img.SetRGBA(i%width, i/width, c)
	}
	return img, nil
}
