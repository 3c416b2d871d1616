package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/catoryutarow/guitar-scale-app/internal/catalog"
	"github.com/catoryutarow/guitar-scale-app/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	configPath string
	verbose    bool
	ascii      bool
	friendly   bool

	// Initialised by setup
	logger   *zap.Logger
	settings *config.Settings
	cat      *catalog.Catalog
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "scale",
	Short: "Spell scales by degree and lay them out on the guitar neck",
	Long: `scale builds scales from a root note and a named scale, spelling every
tone with the letter its degree requires (so D♭ Phrygian has E𝄫 and B𝄫).

Settings come from a JSON file, a .env file and SCALE_* environment
variables, in that order. Custom scales can be added from a YAML file.

For interactive mode, use: scale-tui`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logCfg := zap.NewProductionConfig()
		if verbose {
			logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = logCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&ascii, "ascii", false, "Write accidentals as # and b")
	rootCmd.PersistentFlags().BoolVar(&friendly, "friendly", false, "Show the simplest enharmonic spellings")

	showCmd.Flags().StringVarP(&showFormat, "format", "f", "text", "Output format: text, csv, json, markdown")

	fretboardCmd.Flags().StringVarP(&tuningName, "tuning", "t", "", "Tuning name or notes, e.g. \"D2 A2 D3 G3 B3 E4\"")
	fretboardCmd.Flags().IntVar(&fretCount, "frets", 0, "Number of frets (default from settings)")
	fretboardCmd.Flags().BoolVar(&showDegrees, "degrees", false, "Label positions with degrees instead of notes")
	fretboardCmd.Flags().BoolVar(&showHz, "hz", false, "List each position with its frequency (A4 from settings)")

	exportCmd.Flags().StringSliceVarP(&exportRoots, "roots", "r", nil, "Roots to export (default: all 15 key signatures)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format (default from settings)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output directory (overrides config)")
	exportCmd.Flags().BoolVar(&dryRun, "dry-run", false, "List the files without writing them")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(fretboardCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(tagCmd)
}

// setup loads settings and builds the catalog.
func setup() error {
	if err := config.LoadEnvFile(".env"); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}

	path := configPath
	if path == "" {
		path = defaultConfigPath()
	}

	var err error
	settings, err = config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	settings.ApplyEnv()

	if ascii {
		settings.Unicode = false
	}
	if friendly {
		settings.DisplayMode = "friendly"
	}

	cat, err = catalog.New(catalog.WithCacheSize(settings.CacheSize), catalog.WithLogger(logger))
	if err != nil {
		return err
	}
	if settings.CustomScalesPath != "" {
		if err := cat.LoadFile(settings.CustomScalesPath); err != nil {
			return err
		}
		logger.Debug("loaded custom scales", zap.String("path", settings.CustomScalesPath))
	}
	return nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "settings.json"
	}
	return filepath.Join(dir, "guitar-scale-app", "settings.json")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
