package dump

import (
	"errors"
	"testing"
)

func TestDecodePaletteAlwaysHas256Entries(t *testing.T) {
	words := make([]uint32, 20000)
	for i := range words {
		words[i] = 0x00FFFFFF
	}
	for _, count := range []int{0, 1, 100, 10000} {
		p := DecodePalette(words, ModeDirect, 0, count, false)
		if n := len(p.Bytes()); n != 768 {
			t.Fatalf("count=%d: %d bytes, want 768", count, n)
		}
		filled := min(count, PaletteSize)
		if filled > 0 && p[filled-1] != (RGB{255, 255, 255}) {
			t.Fatalf("count=%d: last filled entry = %v", count, p[filled-1])
		}
		if filled < PaletteSize && p[filled] != (RGB{}) {
			t.Fatalf("count=%d: first padded entry = %v, want black", count, p[filled])
		}
	}
}

func TestDecodePaletteColorModes(t *testing.T) {
	words := []uint32{0x00112233}
	tests := []struct {
		mode ColorMode
		want RGB
	}{
		{ModeDirect, RGB{0x11, 0x22, 0x33}},
		{ModeBGR, RGB{0x33, 0x22, 0x11}},
		{ModeYUV, YUVToRGB(0x11, 0x22, 0x33)},
	}
	for _, tt := range tests {
		p := DecodePalette(words, tt.mode, 0, 256, false)
		// 0x00112233 is >= 1000 so the layout is direct
		if p[0] != tt.want {
			t.Fatalf("%v: entry 0 = %v, want %v", tt.mode, p[0], tt.want)
		}
	}
}

func TestDecodePaletteLittleEndian(t *testing.T) {
	p := DecodePalette([]uint32{0x33221100}, ModeDirect, 0, 1, true)
	if p[0] != (RGB{0x11, 0x22, 0x33}) {
		t.Fatalf("entry 0 = %v", p[0])
	}
}

func TestYUVToRGB(t *testing.T) {
	if got := YUVToRGB(128, 128, 128); got != (RGB{128, 128, 128}) {
		t.Fatalf("YUVToRGB(128,128,128) = %v, want gray", got)
	}
	// Y=0x10 U=0x80 V=0x80 from the firmware palettes: near black
	if got := YUVToRGB(0x10, 0x80, 0x80); got != (RGB{16, 16, 16}) {
		t.Fatalf("YUVToRGB(16,128,128) = %v", got)
	}
	// saturated inputs clamp
	if got := YUVToRGB(255, 255, 255); got.R != 255 || got.B != 255 {
		t.Fatalf("YUVToRGB(255,255,255) = %v", got)
	}
	if got := YUVToRGB(0, 0, 0); got.R != 0 || got.B != 0 || got.G != 135 {
		t.Fatalf("YUVToRGB(0,0,0) = %v", got)
	}
	// 0x69CADD: R = 105 + 1.402*93 = 235.386 -> 235
	if got := YUVToRGB(0x69, 0xCA, 0xDD); got.R != 235 {
		t.Fatalf("YUVToRGB(0x69,0xCA,0xDD).R = %d, want 235", got.R)
	}
}

func TestPaletteWindowCountedLayout(t *testing.T) {
	words := []uint32{3, 0x00A00000, 0x00B00000, 0x00C00000, 0x00D00000}

	got, layout := PaletteWindow(words, 0, 256)
	if layout != LayoutCounted || len(got) != 3 || got[0] != 0x00A00000 {
		t.Fatalf("PaletteWindow = %#x (%v)", got, layout)
	}

	got, _ = PaletteWindow(words, 1, 256)
	if len(got) != 3 || got[0] != 0x00B00000 || got[2] != 0x00D00000 {
		t.Fatalf("PaletteWindow offset 1 = %#x", got)
	}

	got, _ = PaletteWindow(words, 0, 2)
	if len(got) != 2 {
		t.Fatalf("PaletteWindow count 2 = %#x", got)
	}

	p := DecodePalette(words, ModeDirect, 0, 256, false)
	if p[0] != (RGB{0xA0, 0, 0}) || p[3] != (RGB{}) {
		t.Fatalf("counted palette = %v %v", p[0], p[3])
	}
}

func TestPaletteWindowDirectLayout(t *testing.T) {
	words := []uint32{0x00FF0000, 0x0000FF00, 0x000000FF}

	got, layout := PaletteWindow(words, 1, 1)
	if layout != LayoutDirect || len(got) != 1 || got[0] != 0x0000FF00 {
		t.Fatalf("PaletteWindow = %#x (%v)", got, layout)
	}
}

func TestPaletteWindowOutOfRange(t *testing.T) {
	words := []uint32{0x00FF0000, 0x0000FF00}
	for _, tt := range []struct{ offset, count, want int }{
		{5, 10, 0},
		{1, 10, 1},
		{-3, 1, 1},
		{0, -1, 0},
	} {
		got, _ := PaletteWindow(words, tt.offset, tt.count)
		if len(got) != tt.want {
			t.Fatalf("PaletteWindow(offset=%d,count=%d) len = %d, want %d", tt.offset, tt.count, len(got), tt.want)
		}
	}
	if got, _ := PaletteWindow(nil, 0, 256); len(got) != 0 {
		t.Fatalf("PaletteWindow(nil) = %v", got)
	}
}

func TestParseColorMode(t *testing.T) {
	for name, want := range map[string]ColorMode{"direct": ModeDirect, "RGB": ModeDirect, "bgr": ModeBGR, " YUV ": ModeYUV} {
		got, err := ParseColorMode(name)
		if err != nil || got != want {
			t.Fatalf("ParseColorMode(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseColorMode("hsv"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("ParseColorMode(hsv) error = %v", err)
	}
}

func TestDefaultPalette(t *testing.T) {
	tests := []struct {
		bpp   int
		index int
		want  uint8
	}{
		{8, 200, 200},
		{4, 15, 255},
		{4, 1, 17},
		{4, 16, 0},
		{2, 2, 170},
		{2, 4, 0},
		{1, 1, 255},
	}
	for _, tt := range tests {
		p := DefaultPalette(tt.bpp)
		if got := p[tt.index]; got != (RGB{tt.want, tt.want, tt.want}) {
			t.Fatalf("DefaultPalette(%d)[%d] = %v, want %d", tt.bpp, tt.index, got, tt.want)
		}
	}
}

func TestPaletteInvertedAndStats(t *testing.T) {
	var p Palette
	p[0] = RGB{255, 255, 255}
	p[1] = RGB{100, 100, 100}

	st := DescribePalette(&p)
	if st.Unique != 3 || st.Bright != 1 || st.Dark != 254 {
		t.Fatalf("DescribePalette = %+v", st)
	}

	inv := p.Inverted()
	if inv[0] != (RGB{}) || inv[2] != (RGB{255, 255, 255}) {
		t.Fatalf("Inverted = %v %v", inv[0], inv[2])
	}
	if p[0] != (RGB{255, 255, 255}) {
		t.Fatalf("Inverted mutated the receiver")
	}
}
