package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/catoryutarow/guitar-scale-app/internal/pitch"
	"github.com/catoryutarow/guitar-scale-app/internal/scale"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown export format")

// Format represents supported export formats.
type Format int

const (
	// FormatText creates plain .txt listings.
	FormatText Format = iota

	// FormatCSV creates .csv files with a header row.
	FormatCSV

	// FormatJSON creates indented .json documents.
	FormatJSON

	// FormatMarkdown creates .md files with a table.
	FormatMarkdown
)

// ParseFormat converts a format name or extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "text", "txt", "":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return FormatText, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatCSV:
		return ".csv"
	case FormatJSON:
		return ".json"
	case FormatMarkdown:
		return ".md"
	default:
		return ".txt"
	}
}

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	case FormatMarkdown:
		return "markdown"
	default:
		return "text"
	}
}

// Scale is a generated scale ready for export.
type Scale struct {
	// Root is the root note as entered, e.g. "Db".
	Root string

	Preset scale.Preset
	Tones  []scale.Tone
}

// Exporter renders scales in one format.
//
// Example:
//
//	exporter := NewExporter(FormatText, scale.Strict, true)
//	content, _ := exporter.Export(s)
//
//	// Result:
//	// D♭ Phrygian
//	// 1   D♭
//	// b2  E𝄫
//	// ...
type Exporter struct {
	format  Format
	mode    scale.DisplayMode
	unicode bool
}

// NewExporter creates a new Exporter.
//
// Parameters:
//   - format: The document format to generate
//   - mode: Spelling display mode used for text and Markdown titles and notes
//   - unicode: Whether accidentals use ♯ ♭ glyphs instead of # and b
func NewExporter(format Format, mode scale.DisplayMode, unicode bool) *Exporter {
	return &Exporter{
		format:  format,
		mode:    mode,
		unicode: unicode,
	}
}

// Format returns the format of the exporter.
func (e *Exporter) Format() Format {
	return e.format
}

// Export renders s.
func (e *Exporter) Export(s Scale) (string, error) {
	switch e.format {
	case FormatCSV:
		return e.exportCSV(s)
	case FormatJSON:
		return e.exportJSON(s)
	case FormatMarkdown:
		return e.exportMarkdown(s), nil
	default:
		return e.exportText(s), nil
	}
}

// Title returns "<root> <name>" with the root in the exporter's display mode.
func (e *Exporter) Title(s Scale) string {
	return e.rootName(s) + " " + s.Preset.Name
}

func (e *Exporter) rootName(s Scale) string {
	root, err := pitch.Parse(strings.TrimSpace(s.Root))
	if err != nil {
		return s.Root
	}
	if e.mode == scale.Friendly {
		root = pitch.Friendly(root)
	}
	return pitch.Format(root, e.unicode)
}

// exportText generates a plain listing:
//
//	C Major
//	1   C
//	2   D
func (e *Exporter) exportText(s Scale) string {
	var sb strings.Builder

	sb.WriteString(e.Title(s) + "\n")
	for _, t := range s.Tones {
		sb.WriteString(fmt.Sprintf("%-4s%s\n", t.Degree, scale.FormatTone(t, e.mode, e.unicode)))
	}

	return sb.String()
}

// exportCSV generates a header row followed by one row per tone.
func (e *Exporter) exportCSV(s Scale) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"degree", "spelling", "friendly", "pitch_class"}); err != nil {
		return "", err
	}
	for _, t := range s.Tones {
		record := []string{
			t.Degree,
			scale.FormatTone(t, scale.Strict, e.unicode),
			scale.FormatTone(t, scale.Friendly, e.unicode),
			strconv.Itoa(t.PitchClass()),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return buf.String(), nil
}

type scaleJSON struct {
	Root  string       `json:"root"`
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Mode  string       `json:"mode"`
	Notes []string     `json:"notes"`
	Tones []scale.Tone `json:"tones"`
}

func (e *Exporter) exportJSON(s Scale) (string, error) {
	tones := s.Tones
	if tones == nil {
		tones = []scale.Tone{}
	}
	doc := scaleJSON{
		Root:  e.rootName(s),
		ID:    s.Preset.ID,
		Name:  s.Preset.Name,
		Mode:  e.mode.String(),
		Notes: scale.FormatScale(tones, e.mode, e.unicode),
		Tones: tones,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// exportMarkdown generates a heading and a table:
//
//	# C Major
//
//	| Degree | Note | Pitch class |
//	|---|---|---|
//	| 1 | C | 0 |
func (e *Exporter) exportMarkdown(s Scale) string {
	var sb strings.Builder

	sb.WriteString("# " + escapeMarkdown(e.Title(s)) + "\n\n")
	sb.WriteString("| Degree | Note | Pitch class |\n")
	sb.WriteString("|---|---|---|\n")
	for _, t := range s.Tones {
		sb.WriteString(fmt.Sprintf("| %s | %s | %d |\n",
			escapeMarkdown(t.Degree),
			escapeMarkdown(scale.FormatTone(t, e.mode, e.unicode)),
			t.PitchClass()))
	}

	return sb.String()
}

// escapeMarkdown escapes characters that break table cells or trigger
// emphasis.
func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "*", "\\*")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
