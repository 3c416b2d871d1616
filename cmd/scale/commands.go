package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/catoryutarow/guitar-scale-app/internal/audio"
	"github.com/catoryutarow/guitar-scale-app/internal/batch"
	"github.com/catoryutarow/guitar-scale-app/internal/catalog"
	"github.com/catoryutarow/guitar-scale-app/internal/export"
	"github.com/catoryutarow/guitar-scale-app/internal/fretboard"
	"github.com/catoryutarow/guitar-scale-app/internal/pitch"
	"github.com/catoryutarow/guitar-scale-app/internal/scale"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	showFormat string

	tuningName  string
	fretCount   int
	showDegrees bool
	showHz      bool

	exportRoots  []string
	exportFormat string
	exportOutput string
	dryRun       bool
)

var showCmd = &cobra.Command{
	Use:   "show [root] [scale]",
	Short: "Spell a scale",
	Long: `Spell a scale on a root. Both default to the configured root and scale.
The scale is matched by id, name or alias, ignoring case:

  scale show Db phrygian
  scale show F# natural minor --format csv`,
	RunE: runShow,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available scales",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var fretboardCmd = &cobra.Command{
	Use:     "fretboard [root] [scale]",
	Aliases: []string{"neck"},
	Short:   "Show where a scale sits on the fretboard",
	RunE:    runFretboard,
}

var exportCmd = &cobra.Command{
	Use:   "export [scale...]",
	Short: "Write scales in many keys to files",
	Long: `Write every combination of roots and scales to files below the export
path. Without scale arguments the configured default scale is used.`,
	RunE: runExport,
}

var tagCmd = &cobra.Command{
	Use:   "tag <file.mp3> <root> [scale]",
	Short: "Write the key of a backing track into its ID3 tag",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runTag,
}

// rootAndScale splits positional arguments into a root and a scale name.
// The scale may span several arguments, e.g. "natural minor".
func rootAndScale(args []string) (string, string) {
	root, name := settings.DefaultRoot, settings.DefaultScale
	if len(args) > 0 {
		root = args[0]
	}
	if len(args) > 1 {
		name = strings.Join(args[1:], " ")
	}
	return root, name
}

// generate resolves root and name through the catalog.
func generate(root, name string) (export.Scale, error) {
	p, ok := cat.Lookup(name)
	if !ok {
		return export.Scale{}, fmt.Errorf("%w: %q (see 'scale list')", catalog.ErrUnknownScale, name)
	}
	tones, err := cat.GeneratePreset(root, p)
	if err != nil {
		return export.Scale{}, err
	}
	return export.Scale{Root: root, Preset: p, Tones: tones}, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	root, name := rootAndScale(args)
	s, err := generate(root, name)
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(showFormat)
	if err != nil {
		return err
	}

	content, err := export.NewExporter(format, settings.Mode(), settings.Unicode).Export(s)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), content)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	rows := [][]string{{"ID", "NAME", "DEGREES", "ALIASES"}}
	for _, p := range cat.Presets() {
		tones, err := scale.GenerateFrom(pitch.MustParse("C"), p.Definition)
		if err != nil {
			return fmt.Errorf("scale %s: %w", p.ID, err)
		}
		rows = append(rows, []string{p.ID, p.Name, strings.Join(scale.DegreeLabels(tones), " "), strings.Join(p.Aliases, ", ")})
	}

	writeTable(cmd.OutOrStdout(), rows)
	return nil
}

// writeTable pads columns by display width so CJK scale names line up.
func writeTable(w io.Writer, rows [][]string) {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	for _, row := range rows {
		var sb strings.Builder
		for i, cell := range row {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(runewidth.FillRight(cell, widths[i]))
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}
}

func runFretboard(cmd *cobra.Command, args []string) error {
	root, name := rootAndScale(args)
	s, err := generate(root, name)
	if err != nil {
		return err
	}

	tn := settings.Tuning
	if tuningName != "" {
		tn = tuningName
	}
	tuning, err := fretboard.LookupTuning(tn)
	if err != nil {
		return err
	}

	frets := settings.Frets
	if cmd.Flags().Changed("frets") {
		frets = fretCount
	}

	exporter := export.NewExporter(export.FormatText, settings.Mode(), settings.Unicode)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n\n", exporter.Title(s), tuning.Name)

	positions := fretboard.Layout(s.Tones, tuning, frets)
	for _, line := range fretboard.Diagram(positions, tuning, frets, fretboard.DiagramOptions{
		Degrees: showDegrees,
		Mode:    settings.Mode(),
		Unicode: settings.Unicode,
	}) {
		fmt.Fprintln(out, line)
	}

	if showHz {
		fmt.Fprintln(out)
		writeTable(out, frequencyRows(positions, tuning, settings.A4()))
	}
	return nil
}

// frequencyRows lists each position with its sounding pitch tuned to a4.
func frequencyRows(positions []fretboard.Position, tuning fretboard.Tuning, a4 float64) [][]string {
	rows := [][]string{{"STRING", "FRET", "NOTE", "HZ"}}
	for _, p := range positions {
		rows = append(rows, []string{
			pitch.FormatWithOctave(tuning.Strings[p.String], settings.Unicode),
			strconv.Itoa(p.Fret),
			pitch.FormatWithOctave(p.Tone.Spelling, settings.Unicode),
			fmt.Sprintf("%.2f", p.Frequency(a4)),
		})
	}
	return rows
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportOutput != "" {
		settings.ExportPath = filepath.Join(exportOutput, "{scale}")
	}
	if exportFormat != "" {
		if _, err := export.ParseFormat(exportFormat); err != nil {
			return err
		}
		settings.ExportFormat = exportFormat
	}

	roots := exportRoots
	if len(roots) == 0 {
		roots = batch.DefaultRoots()
	}
	scales := args
	if len(scales) == 0 {
		scales = []string{settings.DefaultScale}
	}

	// Handle interrupts
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	out := cmd.OutOrStdout()
	manager := batch.NewManager(cat, settings, func(event batch.ProgressEvent) {
		if event.Level == batch.LevelVerbose && !verbose {
			return
		}

		prefix := ""
		switch event.Level {
		case batch.LevelError:
			prefix = "❌ "
		case batch.LevelWarning:
			prefix = "⚠️  "
		case batch.LevelSuccess:
			prefix = "✅ "
		case batch.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Fprintln(out, prefix+event.Message)
	}, logger)

	if err := manager.Plan(roots, scales); err != nil {
		return err
	}

	if dryRun {
		for _, job := range manager.Jobs() {
			fmt.Fprintln(out, job.Path)
		}
		fmt.Fprintln(out, "\n[Dry run - not writing]")
		return nil
	}

	if err := manager.Run(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(out, "\nExport cancelled.")
		}
		return err
	}

	written, total := manager.Progress()
	logger.Debug("export finished", zap.Int32("written", written), zap.Int32("total", total))
	return nil
}

func runTag(cmd *cobra.Command, args []string) error {
	path := args[0]
	root, name := rootAndScale(args[1:])
	s, err := generate(root, name)
	if err != nil {
		return err
	}

	tagger := audio.NewKeyTagger(&audio.TagConfig{
		Key:     settings.TagKey,
		Comment: settings.TagComment,
	}, logger)
	if err := tagger.SaveKey(path, s.Root, s.Preset, s.Tones); err != nil {
		return err
	}

	rootSpelling, _ := pitch.Parse(strings.TrimSpace(s.Root))
	fmt.Fprintf(cmd.OutOrStdout(), "Tagged %s: %s (%s)\n", filepath.Base(path),
		audio.KeyString(rootSpelling, s.Preset.Definition), audio.Comment(s.Preset, s.Tones))
	return nil
}
