package dump

// Session is the state of one loaded dump: its words, the candidates
// extracted from them and the active palette. Loads return a new Session;
// nothing is mutated in place.
type Session struct {
	Name        string
	Words       []uint32
	Candidates  []Candidate
	Palette     *Palette
	PaletteName string
}

// NewSession extracts candidates from words. The palette starts empty.
func NewSession(name string, words []uint32) Session {
	return Session{
		Name:       name,
		Words:      words,
		Candidates: Extract(words),
	}
}

// WithPalette returns a copy of s using p as the active palette.
func (s Session) WithPalette(name string, p Palette) Session {
	s.Palette = &p
	s.PaletteName = name
	return s
}

// Candidate returns the candidate at index i, falling back to the first one
// when i is out of range.
func (s Session) Candidate(i int) (Candidate, int) {
	if i < 0 || i >= len(s.Candidates) {
		i = 0
	}
	return s.Candidates[i], i
}

// Analyze runs the format heuristics over the session's words.
func (s Session) Analyze() Report {
	return Analyze(s.Words)
}
