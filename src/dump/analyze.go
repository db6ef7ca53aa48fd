package dump

import (
	"fmt"
	"sort"
)

// Confidence ranks a Finding.
type Confidence int

const (
	Likely Confidence = iota
	Possible
)

func (c Confidence) String() string {
	if c == Likely {
		return "LIKELY"
	}
	return "POSSIBLE"
}

// Origin says how a width/height hypothesis was derived.
type Origin int

const (
	FromHeader Origin = iota
	FromRawSize
	FromFallback
)

// Finding is one ranked interpretation produced by Analyze.
type Finding struct {
	Confidence    Confidence
	Origin        Origin
	Width         uint32
	Height        uint32
	PixelsPerWord int
}

func (f Finding) String() string {
	kind := "Header"
	if f.Origin == FromRawSize {
		kind = "Raw"
	}
	return fmt.Sprintf("%s: %s + %d-pixels/word (%dx%d)", f.Confidence, kind, f.PixelsPerWord, f.Width, f.Height)
}

// Stats summarises the raw values of a word sequence.
type Stats struct {
	TotalWords   int
	UniqueValues int
	MaxValue     uint32
}

// Report is the output of Analyze.
type Report struct {
	Findings []Finding
	Stats    Stats
}

// Analyze runs the header and raw-size heuristics over words. All
// applicable findings are reported, LIKELY before POSSIBLE.
func Analyze(words []uint32) Report {
	var findings []Finding

	if w, h, ok := headerDimensions(words); ok {
		expected := int(w * h)
		available := len(words) - headerWords
		if available >= expected/4 {
			findings = append(findings, Finding{Likely, FromHeader, w, h, 4})
		}
		if available >= expected/8 {
			findings = append(findings, Finding{Possible, FromHeader, w, h, 8})
		}
	}

	n := len(words)
	for _, size := range commonSizes {
		pixels := int(size[0] * size[1])
		switch n {
		case pixels / 4:
			findings = append(findings, Finding{Possible, FromRawSize, size[0], size[1], 4})
		case pixels / 8:
			findings = append(findings, Finding{Possible, FromRawSize, size[0], size[1], 8})
		}
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Confidence < findings[j].Confidence
	})

	return Report{Findings: findings, Stats: wordStats(words)}
}

// Summary is the one-line verdict shown next to a loaded dump.
func (r Report) Summary() string {
	if len(r.Findings) == 0 {
		return "No interpretation found"
	}
	if r.Findings[0].Confidence == Likely {
		return r.Findings[0].String()
	}
	return "Multiple possibilities found"
}

// Lines renders the report as text, findings first.
func (r Report) Lines() []string {
	lines := make([]string, 0, len(r.Findings)+4)
	for _, f := range r.Findings {
		lines = append(lines, f.String())
	}
	return append(lines,
		"--- Data Analysis ---",
		fmt.Sprintf("Total words: %d", r.Stats.TotalWords),
		fmt.Sprintf("Unique values: %d", r.Stats.UniqueValues),
		fmt.Sprintf("Max value: 0x%08X", r.Stats.MaxValue),
	)
}

func headerDimensions(words []uint32) (uint32, uint32, bool) {
	if len(words) < headerWords {
		return 0, 0, false
	}
	w, h := words[2], words[3]
	if w < 1 || h < 1 || w > maxDimension || h > maxDimension {
		return 0, 0, false
	}
	return w, h, true
}

func wordStats(words []uint32) Stats {
	seen := make(map[uint32]struct{}, len(words))
	var top uint32
	for _, w := range words {
		seen[w] = struct{}{}
		if w > top {
			top = w
		}
	}
	return Stats{TotalWords: len(words), UniqueValues: len(seen), MaxValue: top}
}
