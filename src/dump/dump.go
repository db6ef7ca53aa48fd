/*
Package dump decodes raw pixel and palette dumps pulled out of digital
picture frame firmware.

A dump is an unlabeled sequence of 32-bit words (or bytes). Nothing in the
data says how wide the picture is, how many bits each pixel uses, in which
order the bytes sit or what color space the palette is in, so the package
offers heuristics that rank candidate interpretations and decoders that
render any chosen interpretation. Picking the right answer is left to a
human looking at the output.

Two tolerance policies coexist. Pixel and palette decoding never fail on
short or oversized input: results are padded with zeros or truncated to
their fixed size. Loading hex/binary sources and decoding fixed-geometry
bitmaps are strict and return ErrFormat or ErrInsufficientData.
*/
package dump

import "errors"

var (
	// ErrFormat reports a source with no parsable tokens or the wrong size
	// granularity.
	ErrFormat = errors.New("dump: format error")
	// ErrInsufficientData reports a declared geometry that exceeds the
	// available bytes.
	ErrInsufficientData = errors.New("dump: insufficient data")
	// ErrUnknownFormat reports an unrecognized format or mode selector.
	ErrUnknownFormat = errors.New("dump: unknown format")
)

const (
	maxDimension  = 512
	headerWords   = 4
	fallbackSize  = 32
	fallbackWords = 256
)

// commonSizes are the sprite sizes tried when a dump carries no header.
var commonSizes = [...][2]uint32{
	{8, 8}, {16, 16}, {24, 24}, {32, 32}, {48, 48}, {64, 64},
	{16, 8}, {32, 16}, {64, 32}, {48, 40}, {80, 60}, {96, 64},
}
