package dump

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	hexWordPattern = regexp.MustCompile(`0x([0-9A-Fa-f]{8})`)
	hexBytePattern = regexp.MustCompile(`0x([0-9A-Fa-f]{2})`)
)

// LoadHexWords scans text for "0x" tokens followed by digits hex digits and
// returns one value per token in order of appearance. digits must be 8
// (32-bit words) or 2 (bytes). Characters outside tokens are ignored.
func LoadHexWords(text string, digits int) ([]uint32, error) {
	var pattern *regexp.Regexp
	switch digits {
	case 8:
		pattern = hexWordPattern
	case 2:
		pattern = hexBytePattern
	default:
		return nil, fmt.Errorf("%w: %d-digit hex tokens", ErrUnknownFormat, digits)
	}

	matches := pattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no matching tokens", ErrFormat)
	}

	words := make([]uint32, len(matches))
	for i, m := range matches {
		v, err := strconv.ParseUint(m[1], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: token %q: %v", ErrFormat, m[0], err)
		}
		words[i] = uint32(v)
	}
	return words, nil
}

// LoadHexBytes is LoadHexWords for 2-digit tokens, narrowed to bytes.
func LoadHexBytes(text string) ([]byte, error) {
	words, err := LoadHexWords(text, 2)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(words))
	for i, w := range words {
		out[i] = byte(w)
	}
	return out, nil
}

// LoadBinaryWords groups data into wordSize-byte words, most significant
// byte first.
func LoadBinaryWords(data []byte, wordSize int) ([]uint32, error) {
	if wordSize < 1 || wordSize > 4 {
		return nil, fmt.Errorf("%w: word size %d", ErrUnknownFormat, wordSize)
	}
	if len(data)%wordSize != 0 {
		return nil, fmt.Errorf("%w: size %d not a multiple of %d", ErrFormat, len(data), wordSize)
	}

	words := make([]uint32, 0, len(data)/wordSize)
	for i := 0; i < len(data); i += wordSize {
		var w uint32
		for _, b := range data[i : i+wordSize] {
			w = w<<8 | uint32(b)
		}
		words = append(words, w)
	}
	return words, nil
}

// Swap32 reverses the byte order of w.
func Swap32(w uint32) uint32 {
	return w<<24 | (w<<8)&0x00ff0000 | (w>>8)&0x0000ff00 | w>>24
}
