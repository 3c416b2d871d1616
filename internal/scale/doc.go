// Package scale builds named scales from a root note.
//
// # Major scale
//
// GenerateMajorScale walks the seven letters starting from the root's
// letter and respells each one onto the major-scale pitch, so every
// letter appears exactly once. F♯ major therefore ends on E♯, not F:
//
//	tones := scale.GenerateMajorScale(pitch.MustParse("F#"))
//	scale.FormatScale(tones, scale.Strict, true)
//	// [F♯ G♯ A♯ B C♯ D♯ E♯]
//
// # Degree operations
//
// Every other scale is the major scale plus a Definition: one
// DegreeOperation per degree 1-7. A degree with no entry is dropped, and
// remaining degrees keep their labels:
//
//	def := scale.Definition{
//	    1: scale.Keep(),
//	    2: scale.Replace("b2"),
//	    4: scale.Keep(),
//	    5: scale.Keep(),
//	    6: scale.Replace("b6"),
//	}
//	tones, _ := scale.Generate("C", def)
//	// degrees 1 b2 4 5 b6
//
// Altered tones keep the letter of the major-scale tone they come from,
// so the ♭2 of D♭ major is E𝄫.
//
// # Presets
//
// Presets, LookupPreset and PresetNames expose a fixed table of common
// scales. Lookups hand out copies; the table itself cannot be changed.
package scale
