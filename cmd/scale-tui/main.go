package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/catoryutarow/guitar-scale-app/internal/catalog"
	"github.com/catoryutarow/guitar-scale-app/internal/config"
	"github.com/catoryutarow/guitar-scale-app/internal/tui"
	flag "github.com/spf13/pflag"
)

func main() {
	configFlag := flag.StringP("config", "c", "", "Path to config file")
	flag.Parse()

	if err := run(*configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	if err := config.LoadEnvFile(".env"); err != nil {
		return err
	}

	if configPath == "" {
		dir, err := os.UserConfigDir()
		if err == nil {
			configPath = filepath.Join(dir, "guitar-scale-app", "settings.json")
		}
	}
	settings, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	settings.ApplyEnv()

	cat, err := catalog.New(catalog.WithCacheSize(settings.CacheSize))
	if err != nil {
		return err
	}
	if settings.CustomScalesPath != "" {
		if err := cat.LoadFile(settings.CustomScalesPath); err != nil {
			return err
		}
	}

	return tui.Run(cat, settings)
}
