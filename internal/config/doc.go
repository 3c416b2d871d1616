// Package config provides configuration management for the scale tools.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Environment overrides, optionally read from a .env file
//   - Conversion to the option types of other packages
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// strict spellings with Unicode accidentals
//	// C major on a standard-tuned guitar, 15 frets
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	// A missing file yields the defaults.
//
// # Environment
//
// ApplyEnv overrides settings from SCALE_* variables. LoadEnvFile reads
// a .env file into the process environment first:
//
//	_ = config.LoadEnvFile(".env")
//	settings.ApplyEnv()
//
// Recognised variables: SCALE_DISPLAY_MODE, SCALE_ASCII,
// SCALE_DEFAULT_ROOT, SCALE_DEFAULT_SCALE, SCALE_TUNING, SCALE_FRETS,
// SCALE_CUSTOM_SCALES, SCALE_EXPORT_PATH, SCALE_EXPORT_FORMAT.
package config
