package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/catoryutarow/guitar-scale-app/internal/export"
	"github.com/catoryutarow/guitar-scale-app/internal/fretboard"
	"github.com/catoryutarow/guitar-scale-app/internal/scale"
	"github.com/joho/godotenv"
)

// Settings holds all configuration options.
type Settings struct {
	// Display settings
	DisplayMode string `json:"display_mode"` // strict, friendly
	Unicode     bool   `json:"unicode"`

	// Defaults for the CLI and TUI
	DefaultRoot  string `json:"default_root"`
	DefaultScale string `json:"default_scale"`

	// Fretboard settings
	Tuning      string  `json:"tuning"`
	Frets       int     `json:"frets"`
	ReferenceA4 float64 `json:"reference_a4"`

	// Catalog settings
	CustomScalesPath string `json:"custom_scales_path"`
	CacheSize        int    `json:"cache_size"`

	// Export settings
	ExportPath           string `json:"export_path"`
	ExportFileNameFormat string `json:"export_file_name_format"`
	ExportFormat         string `json:"export_format"` // text, csv, json, markdown
	MaxConcurrentExports int    `json:"max_concurrent_exports"`

	// Tag settings
	TagKey     bool `json:"tag_key"`
	TagComment bool `json:"tag_comment"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		DisplayMode: "strict",
		Unicode:     true,

		DefaultRoot:  "C",
		DefaultScale: "major",

		Tuning:      "standard",
		Frets:       fretboard.DefaultFrets,
		ReferenceA4: 440,

		CacheSize: 512,

		ExportPath:           filepath.Join(homeDir, "Music", "Scales", "{scale}"),
		ExportFileNameFormat: "{root} {scale}",
		ExportFormat:         "text",
		MaxConcurrentExports: 4,

		TagKey:     true,
		TagComment: true,
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadEnvFile loads KEY=VALUE pairs from path into the environment
// without overriding variables that are already set. A missing file is
// not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// ApplyEnv overrides settings with SCALE_* environment variables.
// Unparseable numeric or boolean values are ignored.
func (s *Settings) ApplyEnv() {
	if v, ok := lookup("SCALE_DISPLAY_MODE"); ok {
		s.DisplayMode = v
	}
	if v, ok := lookup("SCALE_ASCII"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			s.Unicode = !b
		}
	}
	if v, ok := lookup("SCALE_DEFAULT_ROOT"); ok {
		s.DefaultRoot = v
	}
	if v, ok := lookup("SCALE_DEFAULT_SCALE"); ok {
		s.DefaultScale = v
	}
	if v, ok := lookup("SCALE_TUNING"); ok {
		s.Tuning = v
	}
	if v, ok := lookup("SCALE_FRETS"); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			s.Frets = n
		}
	}
	if v, ok := lookup("SCALE_A4"); ok {
		if hz, err := strconv.ParseFloat(v, 64); err == nil && hz > 0 {
			s.ReferenceA4 = hz
		}
	}
	if v, ok := lookup("SCALE_CUSTOM_SCALES"); ok {
		s.CustomScalesPath = v
	}
	if v, ok := lookup("SCALE_EXPORT_PATH"); ok {
		s.ExportPath = v
	}
	if v, ok := lookup("SCALE_EXPORT_FORMAT"); ok {
		s.ExportFormat = v
	}
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// Mode converts DisplayMode to a scale.DisplayMode, falling back to
// strict for unknown values.
func (s *Settings) Mode() scale.DisplayMode {
	mode, err := scale.ParseDisplayMode(s.DisplayMode)
	if err != nil {
		return scale.Strict
	}
	return mode
}

// A4 returns the reference pitch in Hz, 440 when unset or not positive.
func (s *Settings) A4() float64 {
	if s.ReferenceA4 <= 0 {
		return 440
	}
	return s.ReferenceA4
}

// Format converts ExportFormat to an export.Format, falling back to
// text for unknown values.
func (s *Settings) Format() export.Format {
	f, err := export.ParseFormat(s.ExportFormat)
	if err != nil {
		return export.FormatText
	}
	return f
}

// ToPathConfig converts settings to the export path configuration.
func (s *Settings) ToPathConfig() *export.PathConfig {
	return &export.PathConfig{
		ExportPath:     s.ExportPath,
		FileNameFormat: s.ExportFileNameFormat,
		Format:         s.Format(),
		Unicode:        s.Unicode,
	}
}
