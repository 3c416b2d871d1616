package fretboard

import (
	"github.com/catoryutarow/guitar-scale-app/internal/pitch"
	"github.com/catoryutarow/guitar-scale-app/internal/scale"
)

// DefaultFrets is the fret count used when none is configured.
const DefaultFrets = 15

// Position is a scale tone found on a string.
type Position struct {
	// String is the string index, 0 for the lowest string.
	String int

	// Fret is 0 for the open string.
	Fret int

	// Tone is the scale tone with its spelling given the octave it
	// sounds in at this position.
	Tone scale.Tone

	// MIDI is the sounding MIDI note number.
	MIDI int
}

// IsRoot reports whether the position holds the scale's first degree.
func (p Position) IsRoot() bool {
	return p.Tone.Degree == "1"
}

// Frequency returns the sounding frequency in Hz for the given A4.
func (p Position) Frequency(a4 float64) float64 {
	return pitch.Frequency(p.MIDI, a4)
}

// Layout returns every position from fret 0 to frets on each string of
// tuning whose pitch class belongs to tones. Positions are ordered by
// string, then fret. When two tones share a pitch class the first one
// in scale order is used.
func Layout(tones []scale.Tone, tuning Tuning, frets int) []Position {
	if frets < 0 {
		frets = 0
	}

	byPitchClass := make(map[int]scale.Tone, len(tones))
	for _, t := range tones {
		if _, ok := byPitchClass[t.PitchClass()]; !ok {
			byPitchClass[t.PitchClass()] = t
		}
	}

	var out []Position
	for i, open := range tuning.Strings {
		openMIDI, ok := open.MIDI()
		if !ok {
			continue
		}
		for fret := 0; fret <= frets; fret++ {
			midi := openMIDI + fret
			tone, ok := byPitchClass[((midi%12)+12)%12]
			if !ok {
				continue
			}
			out = append(out, Position{
				String: i,
				Fret:   fret,
				Tone:   scale.Tone{Degree: tone.Degree, Spelling: withSoundingOctave(tone.Spelling, midi)},
				MIDI:   midi,
			})
		}
	}
	return out
}

// withSoundingOctave sets the octave of s so that it spells midi. The
// pitch class of s must match midi.
func withSoundingOctave(s pitch.Spelling, midi int) pitch.Spelling {
	base := s.Letter.NaturalPitchClass() + s.Accidental
	return s.WithOctave((midi-base)/12 - 1)
}
