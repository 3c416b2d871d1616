package scale

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/catoryutarow/guitar-scale-app/internal/pitch"
)

// ErrInvalidAlteration is wrapped by ParseAlteration errors.
var ErrInvalidAlteration = errors.New("invalid alteration")

// Alteration is a parsed degree label such as "b3" or "#4".
type Alteration struct {
	// Delta is the summed accidental of the leading glyphs.
	Delta int
	// Degree is the scale degree the label refers to, 1-7.
	Degree int
	// Label is the original text, used as the output tone's degree.
	Label string
}

// ParseAlteration parses a label made of zero or more accidental glyphs
// (b ♭ 𝄫 # ♯ 𝄪) followed by a single degree digit 1-7.
func ParseAlteration(label string) (Alteration, error) {
	delta := 0
	i := 0
	for i < len(label) {
		r, size := utf8.DecodeRuneInString(label[i:])
		v, ok := pitch.AccidentalValue(r)
		if !ok {
			break
		}
		delta += v
		i += size
	}

	rest := label[i:]
	if len(rest) != 1 || rest[0] < '1' || rest[0] > '7' {
		return Alteration{}, fmt.Errorf("%w %q: want accidentals followed by a degree 1-7", ErrInvalidAlteration, label)
	}

	return Alteration{Delta: delta, Degree: int(rest[0] - '0'), Label: label}, nil
}

// apply respells source by the alteration's delta, keeping its letter
// and octave.
func (a Alteration) apply(source Tone) Tone {
	s := pitch.AdjustAccidental(source.Spelling, source.PitchClass()+a.Delta)
	return Tone{Degree: a.Label, Spelling: s}
}
