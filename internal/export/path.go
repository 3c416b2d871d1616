package export

import (
	"path/filepath"
	"strings"

	ioutils "github.com/catoryutarow/guitar-scale-app/internal/io"
	"github.com/catoryutarow/guitar-scale-app/internal/pitch"
	"github.com/catoryutarow/guitar-scale-app/internal/scale"
)

// PathConfig holds export path formatting settings.
//
// ExportPath and FileNameFormat support placeholders:
//   - {root} - Root note, e.g. "F#" (or "F♯" when Unicode is set)
//   - {scale} - Scale display name
//   - {id} - Scale identifier
//
// The extension of Format is appended to the file name.
type PathConfig struct {
	ExportPath     string
	FileNameFormat string
	Format         Format
	Unicode        bool
}

// Path returns the file path for root and p.
func (c *PathConfig) Path(root string, p scale.Preset) string {
	rootName := strings.TrimSpace(root)
	if s, err := pitch.Parse(rootName); err == nil {
		rootName = pitch.Format(s, c.Unicode)
	}

	dir := c.ExportPath
	dir = strings.ReplaceAll(dir, "{root}", ioutils.SanitizeFileName(rootName))
	dir = strings.ReplaceAll(dir, "{scale}", ioutils.SanitizeFileName(p.Name))
	dir = strings.ReplaceAll(dir, "{id}", ioutils.SanitizeFileName(p.ID))

	format := c.FileNameFormat
	if format == "" {
		format = "{root} {id}"
	}
	name := format
	name = strings.ReplaceAll(name, "{root}", rootName)
	name = strings.ReplaceAll(name, "{scale}", p.Name)
	name = strings.ReplaceAll(name, "{id}", p.ID)

	return filepath.Join(dir, ioutils.SanitizeFileName(name)+c.Format.Extension())
}
