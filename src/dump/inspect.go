package dump

import (
	"fmt"
	"strings"
)

const inspectWords = 16

// ValueStats describes a population of pixel values.
type ValueStats struct {
	Unique int
	Min    int
	Max    int
}

// CandidateReport is a debugging view over the raw words of a candidate.
type CandidateReport struct {
	Candidate       Candidate
	Leading         []uint32
	Bytes           ValueStats
	Nibbles         ValueStats
	Recommendations []string
}

// InspectCandidate breaks the candidate's words into 8-bit and 4-bit values
// and suggests which depths are worth trying.
func InspectCandidate(c Candidate) CandidateReport {
	r := CandidateReport{Candidate: c}
	r.Leading = c.Words[:min(len(c.Words), inspectWords)]

	var bytes, nibbles valueCounter
	for _, w := range c.Words {
		for shift := 24; shift >= 0; shift -= 8 {
			bytes.add(int(w >> shift & 0xff))
		}
		for shift := 28; shift >= 0; shift -= 4 {
			nibbles.add(int(w >> shift & 0xf))
		}
	}
	r.Bytes = bytes.stats()
	r.Nibbles = nibbles.stats()

	if len(c.Words) == 0 {
		return r
	}
	if r.Nibbles.Unique <= 16 && r.Nibbles.Max <= 15 {
		r.Recommendations = append(r.Recommendations, "Try 4bpp_indexed format - pixel values fit in 4-bit range")
	}
	if r.Bytes.Unique <= 256 && r.Bytes.Max <= 255 {
		r.Recommendations = append(r.Recommendations, "Try 8bpp_indexed format - pixel values fit in 8-bit range")
	}
	if r.Bytes.Max > 200 {
		r.Recommendations = append(r.Recommendations, "High pixel values detected - might need palette offset adjustment")
	}
	if r.Nibbles.Unique <= 4 {
		r.Recommendations = append(r.Recommendations, fmt.Sprintf("Try 2bpp_indexed format - only %d unique 4-bit values", r.Nibbles.Unique))
	}
	return r
}

// Lines renders the report as text.
func (r CandidateReport) Lines() []string {
	c := r.Candidate
	lines := []string{
		fmt.Sprintf("Dimensions: %dx%d", c.Width, c.Height),
		fmt.Sprintf("Format: %s", c.Tag()),
		fmt.Sprintf("Magic: 0x%08X", c.Magic),
		fmt.Sprintf("Data length: %d words", len(c.Words)),
	}
	for i, w := range r.Leading {
		nib := make([]string, 0, 8)
		for shift := 28; shift >= 0; shift -= 4 {
			nib = append(nib, fmt.Sprintf("%2d", w>>shift&0xf))
		}
		lines = append(lines,
			fmt.Sprintf("Word %2d: 0x%08X", i, w),
			fmt.Sprintf("  8-bit: [%3d,%3d,%3d,%3d]", w>>24, w>>16&0xff, w>>8&0xff, w&0xff),
			fmt.Sprintf("  4-bit: [%s]", strings.Join(nib, ",")),
		)
	}
	lines = append(lines,
		fmt.Sprintf("8-bit values: unique=%d min=%d max=%d", r.Bytes.Unique, r.Bytes.Min, r.Bytes.Max),
		fmt.Sprintf("4-bit values: unique=%d min=%d max=%d", r.Nibbles.Unique, r.Nibbles.Min, r.Nibbles.Max),
	)
	return append(lines, r.Recommendations...)
}

type valueCounter struct {
	seen   map[int]struct{}
	lo, hi int
}

func (v *valueCounter) add(x int) {
	if v.seen == nil {
		v.seen = make(map[int]struct{})
		v.lo, v.hi = x, x
	}
	v.seen[x] = struct{}{}
	v.lo = min(v.lo, x)
	v.hi = max(v.hi, x)
}

func (v *valueCounter) stats() ValueStats {
	return ValueStats{Unique: len(v.seen), Min: v.lo, Max: v.hi}
}
