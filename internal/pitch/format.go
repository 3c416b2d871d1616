package pitch

import (
	"strconv"
	"strings"
)

// Format renders s as a letter plus accidentals, without the octave.
//
// With unicode set, positive accidentals are written as ⌊n/2⌋ double
// sharps followed by n mod 2 sharps, and negative ones mirror that with
// double flats and flats. Without unicode, "#" or "b" is repeated n
// times so the result survives Parse unchanged.
func Format(s Spelling, unicode bool) string {
	return s.Letter.String() + FormatAccidental(s.Accidental, unicode)
}

// FormatWithOctave renders s like Format and appends the octave if s
// carries one.
func FormatWithOctave(s Spelling, unicode bool) string {
	out := Format(s, unicode)
	if s.HasOctave {
		out += strconv.Itoa(s.Octave)
	}
	return out
}

// FormatAccidental renders just the accidental part of a spelling.
func FormatAccidental(acc int, unicode bool) string {
	if acc == 0 {
		return ""
	}

	n := acc
	single, double, ascii := string(GlyphSharp), string(GlyphDoubleSharp), "#"
	if acc < 0 {
		n = -acc
		single, double, ascii = string(GlyphFlat), string(GlyphDoubleFlat), "b"
	}

	if !unicode {
		return strings.Repeat(ascii, n)
	}
	return strings.Repeat(double, n/2) + strings.Repeat(single, n%2)
}
