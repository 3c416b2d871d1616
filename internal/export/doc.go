// Package export renders generated scales as text, CSV, JSON or
// Markdown documents and computes where those documents are written.
//
// # Rendering
//
//	exporter := export.NewExporter(export.FormatMarkdown, scale.Friendly, true)
//	content, err := exporter.Export(export.Scale{Root: "Db", Preset: preset, Tones: tones})
//
// Supported formats:
//   - Text: a title line followed by one "degree  note" line per tone
//   - CSV: degree, spelling, friendly, pitch_class columns
//   - JSON: root, id, name and the tone list
//   - Markdown: a heading and a table
//
// # Paths
//
// PathConfig expands {root}, {scale} and {id} placeholders in the
// export directory and file name templates:
//
//	cfg := &export.PathConfig{ExportPath: "/scales/{scale}", FileNameFormat: "{root} {id}", Format: export.FormatCSV}
//	cfg.Path("F#", preset) // "/scales/Major/F# major.csv"
package export
