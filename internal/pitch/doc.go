// Package pitch models a single musical pitch as a spelling: a letter
// A through G, a signed accidental and an optional octave.
//
// # Spelling
//
// A Spelling keeps the letter and the accidental separate from the pitch
// class it sounds. E♯ and F share pitch class 5 but are different
// spellings, and nothing in this package collapses one into the other:
//
//	s, err := pitch.Parse("E#")
//	s.PitchClass()           // 5
//	pitch.Format(s, true)    // "E♯"
//	pitch.Format(s, false)   // "E#"
//
// # Accidentals
//
// Accidentals are plain integers: -2 double flat, -1 flat, 0 natural,
// +1 sharp, +2 double sharp. Larger magnitudes are allowed and format by
// repeating glyphs:
//
//	pitch.Format(pitch.Spelling{Letter: pitch.F, Accidental: 3}, true) // "F𝄪♯"
//
// # Respelling
//
// AdjustAccidental keeps the letter and picks the accidental that lands
// on a target pitch class. Friendly picks a simpler enharmonic for
// display only:
//
//	pitch.AdjustAccidental(pitch.Spelling{Letter: pitch.E}, 2) // E𝄫
//	pitch.Friendly(pitch.Spelling{Letter: pitch.E, Accidental: -2}) // D
package pitch
