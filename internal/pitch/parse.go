package pitch

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidNote is matched by every InvalidNoteError via errors.Is.
var ErrInvalidNote = errors.New("invalid note")

// InvalidNoteError is returned when text does not start with a note
// letter A through G.
type InvalidNoteError struct {
	Input  string
	Reason string
}

func (e *InvalidNoteError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid note %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("invalid note %q", e.Input)
}

// Is lets errors.Is(err, ErrInvalidNote) match.
func (e *InvalidNoteError) Is(target error) bool {
	return target == ErrInvalidNote
}

// Accidental glyphs accepted by Parse.
const (
	GlyphSharp       = '♯'
	GlyphFlat        = '♭'
	GlyphDoubleSharp = '𝄪'
	GlyphDoubleFlat  = '𝄫'
)

// AccidentalValue returns the accidental contributed by a single glyph.
// The second result is false for runes that are not accidentals.
func AccidentalValue(r rune) (int, bool) {
	switch r {
	case '#', GlyphSharp:
		return 1, true
	case 'b', GlyphFlat:
		return -1, true
	case GlyphDoubleSharp:
		return 2, true
	case GlyphDoubleFlat:
		return -2, true
	}
	return 0, false
}

// Parse reads a note name such as "C", "db", "F♯" or "E𝄫".
//
// The first rune is the letter (any case). Every following accidental
// glyph is summed into the accidental; other runes are ignored, so
// "C4" parses as C with no octave. Use ParseWithOctave to read octaves.
func Parse(text string) (Spelling, error) {
	letter, rest, err := parseLetter(text)
	if err != nil {
		return Spelling{}, err
	}

	acc := 0
	for _, r := range rest {
		if v, ok := AccidentalValue(r); ok {
			acc += v
		}
	}

	return Spelling{Letter: letter, Accidental: acc}, nil
}

// ParseWithOctave reads a note name followed by a signed octave number,
// for example "E2", "Bb3" or "C#-1". Unlike Parse it is strict: only
// accidental glyphs may sit between the letter and the octave.
func ParseWithOctave(text string) (Spelling, error) {
	letter, rest, err := parseLetter(text)
	if err != nil {
		return Spelling{}, err
	}

	acc := 0
	i := 0
	for i < len(rest) {
		r, size := utf8.DecodeRuneInString(rest[i:])
		v, ok := AccidentalValue(r)
		if !ok {
			break
		}
		acc += v
		i += size
	}

	digits := rest[i:]
	if digits == "" {
		return Spelling{}, &InvalidNoteError{Input: text, Reason: "missing octave"}
	}
	octave, err := strconv.Atoi(digits)
	if err != nil {
		return Spelling{}, &InvalidNoteError{Input: text, Reason: "bad octave " + strconv.Quote(digits)}
	}

	return Spelling{Letter: letter, Accidental: acc, Octave: octave, HasOctave: true}, nil
}

// MustParse is like Parse but panics on error. Intended for tables of
// known-good constants.
func MustParse(text string) Spelling {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

func parseLetter(text string) (Letter, string, error) {
	if text == "" {
		return 0, "", &InvalidNoteError{Input: text, Reason: "empty"}
	}
	r, size := utf8.DecodeRuneInString(text)
	letter := Letter(unicode.ToUpper(r))
	if r > unicode.MaxASCII || !letter.Valid() {
		return 0, "", &InvalidNoteError{Input: text, Reason: "must start with A-G"}
	}
	return letter, text[size:], nil
}
