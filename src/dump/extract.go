package dump

import "fmt"

// Candidate is one hypothesized interpretation of a dump. Words is a view
// into the source sequence, not a copy.
type Candidate struct {
	Magic          uint32
	VersionOrCount uint32
	Width          uint32
	Height         uint32
	Words          []uint32
	Origin         Origin
	PixelsPerWord  int
}

// Tag labels how the candidate was derived.
func (c Candidate) Tag() string {
	switch c.Origin {
	case FromHeader:
		return fmt.Sprintf("header_%dpix_per_word", c.PixelsPerWord)
	case FromRawSize:
		return fmt.Sprintf("raw_%dx%d_%dpix", c.Width, c.Height, c.PixelsPerWord)
	default:
		return "fallback"
	}
}

// Label is the menu text for the candidate at index i.
func (c Candidate) Label(i int) string {
	return fmt.Sprintf("%d: %dx%d (%s)", i, c.Width, c.Height, c.Tag())
}

// Pixels is width*height.
func (c Candidate) Pixels() int {
	return int(c.Width) * int(c.Height)
}

// Extract returns every candidate the header and raw-size heuristics
// support, in that order. When neither produces anything a single 32x32
// fallback over the first 256 words is returned, so the result is never
// empty.
func Extract(words []uint32) []Candidate {
	var out []Candidate

	if w, h, ok := headerDimensions(words); ok {
		payload := words[headerWords:]
		total := int(w * h)
		for _, ppw := range []int{4, 8} {
			need := total / ppw
			if len(payload) < need {
				continue
			}
			out = append(out, Candidate{
				Magic:          words[0],
				VersionOrCount: words[1],
				Width:          w,
				Height:         h,
				Words:          payload[:need:need],
				Origin:         FromHeader,
				PixelsPerWord:  ppw,
			})
		}
	}

	n := len(words)
	for _, size := range commonSizes {
		total := int(size[0] * size[1])
		for _, ppw := range []int{4, 8} {
			if n != total/ppw {
				continue
			}
			out = append(out, Candidate{
				Width:         size[0],
				Height:        size[1],
				Words:         words[:n:n],
				Origin:        FromRawSize,
				PixelsPerWord: ppw,
			})
		}
	}

	if len(out) == 0 {
		n := min(len(words), fallbackWords)
		out = append(out, Candidate{
			Width:         fallbackSize,
			Height:        fallbackSize,
			Words:         words[:n:n],
			Origin:        FromFallback,
			PixelsPerWord: 4,
		})
	}
	return out
}
