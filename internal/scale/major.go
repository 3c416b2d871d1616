package scale

import (
	"strconv"

	"github.com/catoryutarow/guitar-scale-app/internal/pitch"
)

// majorIntervals are the semitone offsets of degrees 1-7 from the root.
var majorIntervals = [7]int{0, 2, 4, 5, 7, 9, 11}

// GenerateMajorScale returns the seven tones of the major scale on root,
// labelled "1" through "7".
//
// The letter advances once per degree and the accidental is chosen to
// hit the major-scale pitch on that letter. Each letter is used exactly
// once, which is why sharp keys produce spellings like E♯ and B♯.
//
// If root carries an octave, each tone gets the octave it sounds in,
// rolling over when the letter passes from B to C.
func GenerateMajorScale(root pitch.Spelling) []Tone {
	rootPC := root.PitchClass()
	letter := root.Letter
	octave := root.Octave

	tones := make([]Tone, 0, len(majorIntervals))
	for i, interval := range majorIntervals {
		if i > 0 {
			next := pitch.NextLetter(letter)
			if letter == pitch.B && next == pitch.C {
				octave++
			}
			letter = next
		}

		s := pitch.AdjustAccidental(pitch.Spelling{Letter: letter}, rootPC+interval)
		if root.HasOctave {
			s = s.WithOctave(octave)
		}
		tones = append(tones, Tone{Degree: strconv.Itoa(i + 1), Spelling: s})
	}
	return tones
}
