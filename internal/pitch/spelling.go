package pitch

import "math"

// Letter is a natural note name, 'A' through 'G'.
type Letter byte

const (
	A Letter = 'A'
	B Letter = 'B'
	C Letter = 'C'
	D Letter = 'D'
	E Letter = 'E'
	F Letter = 'F'
	G Letter = 'G'
)

// Letters lists the natural letters starting from C.
var Letters = [...]Letter{C, D, E, F, G, A, B}

var naturalPitchClass = map[Letter]int{
	C: 0,
	D: 2,
	E: 4,
	F: 5,
	G: 7,
	A: 9,
	B: 11,
}

// Valid reports whether l is one of A through G.
func (l Letter) Valid() bool {
	_, ok := naturalPitchClass[l]
	return ok
}

// NaturalPitchClass returns the pitch class of the unaltered letter.
func (l Letter) NaturalPitchClass() int {
	return naturalPitchClass[l]
}

// Next returns the cyclic successor of l (G wraps to A).
func (l Letter) Next() Letter {
	return NextLetter(l)
}

func (l Letter) String() string {
	return string(rune(l))
}

// NextLetter returns the letter after l, A→B→…→G→A.
func NextLetter(l Letter) Letter {
	if l == G {
		return A
	}
	return l + 1
}

// Spelling is a pitch written as a letter plus accidental, with an
// optional octave in scientific pitch notation (C4 is middle C).
//
// Two spellings are the same note name only if both Letter and
// Accidental match; see IsEqualSpelling and IsEnharmonic.
type Spelling struct {
	Letter     Letter
	Accidental int

	// Octave is only meaningful when HasOctave is true.
	Octave    int
	HasOctave bool
}

// WithOctave returns a copy of s carrying the given octave.
func (s Spelling) WithOctave(octave int) Spelling {
	s.Octave = octave
	s.HasOctave = true
	return s
}

// WithoutOctave returns a copy of s with the octave cleared.
func (s Spelling) WithoutOctave() Spelling {
	s.Octave = 0
	s.HasOctave = false
	return s
}

// PitchClass returns the pitch class (0-11) sounded by s.
func (s Spelling) PitchClass() int {
	return mod12(s.Letter.NaturalPitchClass() + s.Accidental)
}

// MIDI returns the MIDI note number of s. The second result is false
// when s has no octave.
func (s Spelling) MIDI() (int, bool) {
	if !s.HasOctave {
		return 0, false
	}
	return (s.Octave+1)*12 + s.Letter.NaturalPitchClass() + s.Accidental, true
}

// String formats s with Unicode accidentals, without octave.
func (s Spelling) String() string {
	return Format(s, true)
}

// PitchClass returns the pitch class of s.
func PitchClass(s Spelling) int {
	return s.PitchClass()
}

// IsEqualSpelling reports whether a and b have the same letter and
// accidental. Octaves are ignored.
func IsEqualSpelling(a, b Spelling) bool {
	return a.Letter == b.Letter && a.Accidental == b.Accidental
}

// IsEnharmonic reports whether a and b sound the same pitch class.
func IsEnharmonic(a, b Spelling) bool {
	return a.PitchClass() == b.PitchClass()
}

// AdjustAccidental returns s respelled on the same letter so that it
// sounds targetPitchClass. The accidental is the representative of
// target-natural closest to zero, always within [-6, +6].
func AdjustAccidental(s Spelling, targetPitchClass int) Spelling {
	acc := mod12(targetPitchClass - s.Letter.NaturalPitchClass())
	if acc > 6 {
		acc -= 12
	}
	s.Accidental = acc
	return s
}

// Friendly returns a display spelling of s that avoids double
// accidentals. Spellings with at most one flat or sharp come back
// unchanged. Otherwise a natural letter is preferred, then a single
// accidental in the same direction as the original, then the opposite
// direction.
//
// Friendly is for display only; scale construction always works on the
// exact spelling.
func Friendly(s Spelling) Spelling {
	if s.Accidental >= -1 && s.Accidental <= 1 {
		return s
	}

	pc := s.PitchClass()
	prefer := 1
	if s.Accidental < 0 {
		prefer = -1
	}

	for _, acc := range []int{0, prefer, -prefer} {
		if found, ok := spellWith(pc, acc); ok {
			found.Octave = s.Octave
			found.HasOctave = s.HasOctave
			if s.HasOctave {
				found.Octave = octaveFor(s, found)
			}
			return found
		}
	}
	return s
}

// spellWith finds the letter that reaches pc using exactly acc.
func spellWith(pc, acc int) (Spelling, bool) {
	for _, l := range Letters {
		if mod12(l.NaturalPitchClass()+acc) == pc {
			return Spelling{Letter: l, Accidental: acc}, true
		}
	}
	return Spelling{}, false
}

// octaveFor picks the octave for respelled so that it sounds the same
// MIDI note as orig.
func octaveFor(orig, respelled Spelling) int {
	midi, _ := orig.MIDI()
	base := respelled.Letter.NaturalPitchClass() + respelled.Accidental
	return floorDiv(midi-base, 12) - 1
}

// Frequency returns the equal-tempered frequency in Hz of a MIDI note,
// tuned so that MIDI 69 (A4) sounds at a4.
func Frequency(midi int, a4 float64) float64 {
	return a4 * math.Pow(2, float64(midi-69)/12)
}

func mod12(n int) int {
	return ((n % 12) + 12) % 12
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
