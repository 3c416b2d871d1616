package fretboard

import (
	"strconv"
	"strings"

	"github.com/catoryutarow/guitar-scale-app/internal/pitch"
	"github.com/catoryutarow/guitar-scale-app/internal/scale"
	"github.com/mattn/go-runewidth"
)

// DiagramOptions controls how Diagram labels positions.
type DiagramOptions struct {
	// Degrees labels cells with degree labels instead of note names.
	Degrees bool

	Mode    scale.DisplayMode
	Unicode bool

	// Root, when set, decorates the label of every root position after
	// padding, so it may add zero-width escape sequences.
	Root func(string) string
}

const cellWidth = 5

// Diagram renders positions as text, one row per string with the
// highest string first, preceded by a row of fret numbers:
//
//	     0     1     2     3
//	E4   E  |--F--|-----|--G--|
func Diagram(positions []Position, tuning Tuning, frets int, opts DiagramOptions) []string {
	if frets < 0 {
		frets = 0
	}

	cells := make(map[[2]int]Position, len(positions))
	for _, p := range positions {
		cells[[2]int{p.String, p.Fret}] = p
	}

	labelWidth := 0
	for _, s := range tuning.Strings {
		if w := runewidth.StringWidth(stringLabel(s, opts)); w > labelWidth {
			labelWidth = w
		}
	}

	rows := make([]string, 0, len(tuning.Strings)+1)

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", labelWidth+1))
	for fret := 0; fret <= frets; fret++ {
		header.WriteString(center(strconv.Itoa(fret), cellWidth, ' '))
		header.WriteString(" ")
	}
	rows = append(rows, strings.TrimRight(header.String(), " "))

	for i := len(tuning.Strings) - 1; i >= 0; i-- {
		var b strings.Builder
		b.WriteString(runewidth.FillRight(stringLabel(tuning.Strings[i], opts), labelWidth))
		b.WriteString(" ")
		b.WriteString(opts.cell(cells, i, 0, ' '))
		b.WriteString("|")
		for fret := 1; fret <= frets; fret++ {
			b.WriteString(opts.cell(cells, i, fret, '-'))
			b.WriteString("|")
		}
		rows = append(rows, b.String())
	}
	return rows
}

func (opts DiagramOptions) cell(cells map[[2]int]Position, str, fret int, fill rune) string {
	p, ok := cells[[2]int{str, fret}]
	if !ok {
		return strings.Repeat(string(fill), cellWidth)
	}
	text := label(p, opts)
	if !p.IsRoot() || opts.Root == nil {
		return center(text, cellWidth, fill)
	}
	left, right := padding(text, cellWidth)
	pad := string(fill)
	return strings.Repeat(pad, left) + opts.Root(text) + strings.Repeat(pad, right)
}

func label(p Position, opts DiagramOptions) string {
	if opts.Degrees {
		return p.Tone.Degree
	}
	return scale.FormatTone(p.Tone, opts.Mode, opts.Unicode)
}

func stringLabel(s pitch.Spelling, opts DiagramOptions) string {
	return pitch.FormatWithOctave(s, opts.Unicode)
}

// center pads s with fill on both sides to width display cells, biased
// left.
func center(s string, width int, fill rune) string {
	left, right := padding(s, width)
	pad := string(fill)
	return strings.Repeat(pad, left) + s + strings.Repeat(pad, right)
}

func padding(s string, width int) (left, right int) {
	w := runewidth.StringWidth(s)
	if w >= width {
		return 0, 0
	}
	left = (width - w) / 2
	return left, width - w - left
}
