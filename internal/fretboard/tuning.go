package fretboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/catoryutarow/guitar-scale-app/internal/pitch"
)

// ErrUnknownTuning is returned by LookupTuning for names it does not know.
var ErrUnknownTuning = errors.New("unknown tuning")

// Tuning is an instrument's open-string pitches.
type Tuning struct {
	// Name identifies the tuning, e.g. "standard" or "drop-d".
	Name string

	// Strings holds open-string pitches from the lowest string up.
	// Every entry has an octave.
	Strings []pitch.Spelling
}

// String returns the open strings in ASCII, low to high.
func (t Tuning) String() string {
	notes := make([]string, len(t.Strings))
	for i, s := range t.Strings {
		notes[i] = pitch.FormatWithOctave(s, false)
	}
	return strings.Join(notes, " ")
}

// ParseTuning reads space or comma separated notes with octaves, lowest
// string first: "E2 A2 D3 G3 B3 E4".
func ParseTuning(text string) (Tuning, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 0 {
		return Tuning{}, fmt.Errorf("empty tuning")
	}

	strs := make([]pitch.Spelling, len(fields))
	for i, f := range fields {
		s, err := pitch.ParseWithOctave(f)
		if err != nil {
			return Tuning{}, fmt.Errorf("string %d: %w", i+1, err)
		}
		strs[i] = s
	}
	return Tuning{Name: "custom", Strings: strs}, nil
}

func mustTuning(name, text string) Tuning {
	t, err := ParseTuning(text)
	if err != nil {
		panic(err)
	}
	t.Name = name
	return t
}

var tunings = []Tuning{
	mustTuning("standard", "E2 A2 D3 G3 B3 E4"),
	mustTuning("drop-d", "D2 A2 D3 G3 B3 E4"),
	mustTuning("half-step-down", "Eb2 Ab2 Db3 Gb3 Bb3 Eb4"),
	mustTuning("dadgad", "D2 A2 D3 G3 A3 D4"),
	mustTuning("open-g", "D2 G2 D3 G3 B3 D4"),
	mustTuning("open-d", "D2 A2 D3 F#3 A3 D4"),
	mustTuning("seven-string", "B1 E2 A2 D3 G3 B3 E4"),
	mustTuning("bass", "E1 A1 D2 G2"),
}

// LookupTuning returns a copy of a named tuning. If name is not a known
// tuning it is tried as a list of notes.
func LookupTuning(name string) (Tuning, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = "standard"
	}
	for _, t := range tunings {
		if t.Name == key {
			return Tuning{Name: t.Name, Strings: append([]pitch.Spelling(nil), t.Strings...)}, nil
		}
	}
	if t, err := ParseTuning(name); err == nil {
		return t, nil
	}
	return Tuning{}, fmt.Errorf("%w: %q", ErrUnknownTuning, name)
}

// TuningNames lists the built-in tuning names.
func TuningNames() []string {
	names := make([]string, len(tunings))
	for i, t := range tunings {
		names[i] = t.Name
	}
	return names
}
