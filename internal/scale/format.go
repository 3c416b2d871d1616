package scale

import (
	"fmt"
	"strings"

	"github.com/catoryutarow/guitar-scale-app/internal/pitch"
)

// DisplayMode selects how tone spellings are shown.
type DisplayMode int

const (
	// Strict shows the exact spelling, double accidentals included.
	Strict DisplayMode = iota

	// Friendly shows the simplest enharmonic spelling.
	Friendly
)

func (m DisplayMode) String() string {
	switch m {
	case Friendly:
		return "friendly"
	default:
		return "strict"
	}
}

// ParseDisplayMode accepts "strict" or "friendly" in any case.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict", "":
		return Strict, nil
	case "friendly":
		return Friendly, nil
	}
	return Strict, fmt.Errorf("unknown display mode %q", s)
}

// DisplaySpelling returns the spelling shown for t under mode.
func DisplaySpelling(t Tone, mode DisplayMode) pitch.Spelling {
	if mode == Friendly {
		return pitch.Friendly(t.Spelling)
	}
	return t.Spelling
}

// FormatTone renders the spelling of t.
func FormatTone(t Tone, mode DisplayMode, unicode bool) string {
	return pitch.Format(DisplaySpelling(t, mode), unicode)
}

// FormatScale renders every tone with FormatTone.
func FormatScale(tones []Tone, mode DisplayMode, unicode bool) []string {
	out := make([]string, len(tones))
	for i, t := range tones {
		out[i] = FormatTone(t, mode, unicode)
	}
	return out
}

// DegreeLabels returns the degree label of each tone.
func DegreeLabels(tones []Tone) []string {
	out := make([]string, len(tones))
	for i, t := range tones {
		out[i] = t.Degree
	}
	return out
}
