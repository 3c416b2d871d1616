// Package fretboard places scale tones on a stringed instrument.
//
// # Tuning
//
// A Tuning lists open-string pitches from the lowest string up, each with
// an octave:
//
//	std, _ := fretboard.LookupTuning("standard")   // E2 A2 D3 G3 B3 E4
//	custom, err := fretboard.ParseTuning("D2 A2 D3 G3 A3 D4")
//
// # Layout
//
// Layout finds every fret, up to a limit, whose pitch belongs to the
// scale:
//
//	tones, _ := scale.Generate("A", minorPentatonic)
//	positions := fretboard.Layout(tones, std, 12)
//	for _, p := range positions {
//	    fmt.Println(p.String, p.Fret, p.Tone.Degree)
//	}
//
// Each Position carries the scale tone's own spelling with the octave it
// sounds in, so an E♯ in F♯ major stays E♯ on the neck.
//
// # Diagram
//
// Diagram renders positions as plain text rows, high string first, for
// terminal output.
package fretboard
