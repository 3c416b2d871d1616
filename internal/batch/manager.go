package batch

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/catoryutarow/guitar-scale-app/internal/catalog"
	"github.com/catoryutarow/guitar-scale-app/internal/config"
	"github.com/catoryutarow/guitar-scale-app/internal/export"
	ioutils "github.com/catoryutarow/guitar-scale-app/internal/io"
	"github.com/catoryutarow/guitar-scale-app/internal/pitch"
	"github.com/catoryutarow/guitar-scale-app/internal/scale"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

func (l ProgressLevel) String() string {
	switch l {
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return "info"
	}
}

// ProgressEvent represents an export progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Job is one scale to render.
type Job struct {
	Root   string
	Preset scale.Preset
	Path   string
}

// Manager coordinates batch exports.
type Manager struct {
	catalog  *catalog.Catalog
	settings *config.Settings
	exporter *export.Exporter
	paths    *export.PathConfig
	logger   *zap.Logger

	jobs         []Job
	totalFiles   int32
	writtenFiles int32

	onProgress func(ProgressEvent)
	mu         sync.RWMutex
}

// NewManager creates a new batch Manager. A nil logger discards log
// output.
func NewManager(cat *catalog.Catalog, settings *config.Settings, onProgress func(ProgressEvent), logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		catalog:    cat,
		settings:   settings,
		exporter:   export.NewExporter(settings.Format(), settings.Mode(), settings.Unicode),
		paths:      settings.ToPathConfig(),
		logger:     logger,
		onProgress: onProgress,
	}
}

// DefaultRoots returns the roots of the fifteen major key signatures,
// from no accidentals through seven sharps and seven flats.
func DefaultRoots() []string {
	return []string{"C", "G", "D", "A", "E", "B", "F#", "C#", "F", "Bb", "Eb", "Ab", "Db", "Gb", "Cb"}
}

// Plan resolves every combination of roots and scale names into jobs,
// replacing any previous plan. Invalid roots and unknown scales are all
// reported together; nothing is planned if any fail. Combinations that
// resolve to the same output path are planned once.
func (m *Manager) Plan(roots, scales []string) error {
	var errs error

	var spellings []string
	for _, root := range roots {
		root = strings.TrimSpace(root)
		if _, err := pitch.Parse(root); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		spellings = append(spellings, root)
	}

	var presets []scale.Preset
	for _, name := range scales {
		p, ok := m.catalog.Lookup(name)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("%w: %q", catalog.ErrUnknownScale, name))
			continue
		}
		presets = append(presets, p)
	}

	if errs != nil {
		return errs
	}

	seen := make(map[string]bool)
	var jobs []Job
	for _, p := range presets {
		for _, root := range spellings {
			path := m.paths.Path(root, p)
			if seen[path] {
				continue
			}
			seen[path] = true
			jobs = append(jobs, Job{Root: root, Preset: p, Path: path})
		}
	}

	m.mu.Lock()
	m.jobs = jobs
	m.totalFiles = int32(len(jobs))
	atomic.StoreInt32(&m.writtenFiles, 0)
	m.mu.Unlock()

	m.progress(ProgressEvent{Message: fmt.Sprintf("Planned %d files (%d roots, %d scales)", len(jobs), len(spellings), len(presets)), Level: LevelInfo})
	return nil
}

// Run exports all planned jobs.
//
// A failing job is reported and does not stop the others; Run returns
// the combined failures. Cancelling ctx stops jobs that have not yet
// written their file and Run returns ctx.Err().
func (m *Manager) Run(ctx context.Context) error {
	m.mu.RLock()
	jobs := append([]Job(nil), m.jobs...)
	m.mu.RUnlock()

	limit := m.settings.MaxConcurrentExports
	if limit < 1 {
		limit = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var (
		errMu sync.Mutex
		errs  error
	)
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := m.exportJob(ctx, job); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error exporting %s %s: %v", job.Root, job.Preset.ID, err), Level: LevelError})
				errMu.Lock()
				errs = multierr.Append(errs, err)
				errMu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if errs != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Finished, %d of %d files failed", len(multierr.Errors(errs)), len(jobs)), Level: LevelWarning})
		return errs
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Successfully exported %d files", len(jobs)), Level: LevelSuccess})
	return nil
}

// Progress returns the number of written files and the planned total.
func (m *Manager) Progress() (written, total int32) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return atomic.LoadInt32(&m.writtenFiles), m.totalFiles
}

// Jobs returns a copy of the planned jobs.
func (m *Manager) Jobs() []Job {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Job(nil), m.jobs...)
}

func (m *Manager) exportJob(ctx context.Context, job Job) error {
	tones, err := m.catalog.GeneratePreset(job.Root, job.Preset)
	if err != nil {
		return err
	}

	content, err := m.exporter.Export(export.Scale{Root: job.Root, Preset: job.Preset, Tones: tones})
	if err != nil {
		return err
	}

	if err := ioutils.WriteFile(ctx, job.Path, []byte(content)); err != nil {
		return err
	}

	atomic.AddInt32(&m.writtenFiles, 1)
	m.logger.Debug("exported scale", zap.String("root", job.Root), zap.String("scale", job.Preset.ID), zap.String("path", job.Path))
	m.progress(ProgressEvent{Message: fmt.Sprintf("Exported: %s", job.Path), Level: LevelVerbose})
	return nil
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
