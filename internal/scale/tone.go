package scale

import (
	"encoding/json"

	"github.com/catoryutarow/guitar-scale-app/internal/pitch"
)

// Tone is one note of a generated scale.
//
// Degree names the scale position relative to the major scale ("1",
// "b3", "#4"). It is independent of Spelling: the ♭3 of C is E♭ and the
// ♭3 of A is C.
type Tone struct {
	Degree   string
	Spelling pitch.Spelling
}

// PitchClass is derived from Spelling on every call.
func (t Tone) PitchClass() int {
	return t.Spelling.PitchClass()
}

type toneJSON struct {
	Degree     string `json:"degree"`
	Spelling   string `json:"spelling"`
	PitchClass int    `json:"pitchClass"`
	Octave     *int   `json:"octave,omitempty"`
}

// MarshalJSON encodes the spelling in ASCII along with the derived pitch
// class.
func (t Tone) MarshalJSON() ([]byte, error) {
	out := toneJSON{
		Degree:     t.Degree,
		Spelling:   pitch.Format(t.Spelling, false),
		PitchClass: t.PitchClass(),
	}
	if t.Spelling.HasOctave {
		octave := t.Spelling.Octave
		out.Octave = &octave
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the format written by MarshalJSON. The pitch class
// field is ignored and recomputed from the spelling.
func (t *Tone) UnmarshalJSON(data []byte) error {
	var in toneJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	s, err := pitch.Parse(in.Spelling)
	if err != nil {
		return err
	}
	if in.Octave != nil {
		s = s.WithOctave(*in.Octave)
	}
	t.Degree = in.Degree
	t.Spelling = s
	return nil
}
