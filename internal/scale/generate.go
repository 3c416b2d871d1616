package scale

import (
	"github.com/catoryutarow/guitar-scale-app/internal/pitch"
)

// Generate parses rootText, builds its major scale and applies def.
// A root that is not a valid note returns a *pitch.InvalidNoteError.
func Generate(rootText string, def Definition) ([]Tone, error) {
	root, err := pitch.Parse(rootText)
	if err != nil {
		return nil, err
	}
	return GenerateFrom(root, def)
}

// GenerateFrom is Generate for an already parsed root.
func GenerateFrom(root pitch.Spelling, def Definition) ([]Tone, error) {
	return ApplyDegreeOperations(GenerateMajorScale(root), def)
}

// HasMinorThird reports whether def replaces the third with a flattened
// third, which is what makes a key read as minor.
func HasMinorThird(def Definition) bool {
	op, ok := def[3]
	if !ok || op.Replace == "" {
		return false
	}
	alt, err := ParseAlteration(op.Replace)
	return err == nil && alt.Delta == -1
}
