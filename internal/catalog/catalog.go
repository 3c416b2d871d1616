package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/catoryutarow/guitar-scale-app/internal/pitch"
	"github.com/catoryutarow/guitar-scale-app/internal/scale"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// ErrUnknownScale is returned when a name matches no preset.
var ErrUnknownScale = errors.New("unknown scale")

// ErrDuplicateScale is returned by Register when the ID or a name is
// already taken.
var ErrDuplicateScale = errors.New("duplicate scale")

// DefaultCacheSize is the number of generated scales kept in memory.
const DefaultCacheSize = 512

// Catalog is safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	presets []scale.Preset

	cache  *lru.Cache[string, []scale.Tone]
	logger *zap.Logger
}

// Option configures a Catalog.
type Option func(*options)

type options struct {
	cacheSize int
	logger    *zap.Logger
}

// WithCacheSize sets how many generated scales are cached.
func WithCacheSize(n int) Option {
	return func(o *options) { o.cacheSize = n }
}

// WithLogger sets the logger used for registrations and cache misses.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New creates a Catalog holding the built-in presets.
func New(opts ...Option) (*Catalog, error) {
	o := options{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.cacheSize <= 0 {
		o.cacheSize = DefaultCacheSize
	}

	cache, err := lru.New[string, []scale.Tone](o.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create scale cache: %w", err)
	}

	return &Catalog{
		presets: scale.Presets(),
		cache:   cache,
		logger:  o.logger,
	}, nil
}

// Register adds a custom preset after validating its definition.
func (c *Catalog) Register(p scale.Preset) error {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return fmt.Errorf("%w: missing id", scale.ErrInvalidDefinition)
	}
	if p.Name == "" {
		p.Name = p.ID
	}
	if err := p.Definition.Validate(); err != nil {
		return fmt.Errorf("scale %s: %w", p.ID, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	names := append([]string{p.ID, p.Name}, p.Aliases...)
	for _, existing := range c.presets {
		for _, name := range names {
			if existing.Matches(name) {
				return fmt.Errorf("%w: %q already names %s", ErrDuplicateScale, name, existing.ID)
			}
		}
	}

	c.presets = append(c.presets, p.Clone())
	c.logger.Debug("registered scale", zap.String("id", p.ID), zap.String("name", p.Name))
	return nil
}

// Load registers every scale in a YAML document. Scales are registered
// in order; the first failure stops loading.
func (c *Catalog) Load(r io.Reader) error {
	presets, err := decodePresets(r)
	if err != nil {
		return err
	}
	for _, p := range presets {
		if err := c.Register(p); err != nil {
			return err
		}
	}
	c.logger.Info("loaded custom scales", zap.Int("count", len(presets)))
	return nil
}

// LoadFile is Load for a file path.
func (c *Catalog) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := c.Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Lookup finds a preset by ID, name or alias.
func (c *Catalog) Lookup(name string) (scale.Preset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.presets {
		if p.Matches(name) {
			return p.Clone(), true
		}
	}
	return scale.Preset{}, false
}

// Presets returns copies of all presets, built-ins first.
func (c *Catalog) Presets() []scale.Preset {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]scale.Preset, len(c.presets))
	for i, p := range c.presets {
		out[i] = p.Clone()
	}
	return out
}

// Names returns the display names of all presets.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, len(c.presets))
	for i, p := range c.presets {
		names[i] = p.Name
	}
	return names
}

// Generate builds the named scale on root.
func (c *Catalog) Generate(root, name string) ([]scale.Tone, error) {
	p, ok := c.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScale, name)
	}
	return c.GeneratePreset(root, p)
}

// GeneratePreset builds p on root, using the cache when possible.
// Entries are keyed on the definition itself, so presets sharing an ID
// never see each other's tones.
func (c *Catalog) GeneratePreset(root string, p scale.Preset) ([]scale.Tone, error) {
	spelling, err := pitch.Parse(strings.TrimSpace(root))
	if err != nil {
		return nil, err
	}

	key := pitch.Format(spelling, false) + "|" + definitionKey(p.Definition)
	if tones, ok := c.cache.Get(key); ok {
		return cloneTones(tones), nil
	}

	tones, err := scale.GenerateFrom(spelling, p.Definition)
	if err != nil {
		return nil, fmt.Errorf("scale %s: %w", p.ID, err)
	}
	c.cache.Add(key, tones)
	c.logger.Debug("generated scale", zap.String("root", pitch.Format(spelling, false)), zap.String("scale", p.ID), zap.Int("tones", len(tones)))

	return cloneTones(tones), nil
}

// CacheLen returns the number of cached scales.
func (c *Catalog) CacheLen() int {
	return c.cache.Len()
}

// definitionKey encodes d as e.g. "1k;2r=b2;5k+b5;". Degrees outside
// 1-7 are skipped since such definitions never generate.
func definitionKey(d scale.Definition) string {
	var b strings.Builder
	for degree := 1; degree <= scale.Degrees; degree++ {
		op, ok := d[degree]
		if !ok {
			continue
		}
		b.WriteString(strconv.Itoa(degree))
		switch {
		case op.Remove:
			b.WriteByte('x')
		case op.Replace != "":
			b.WriteString("r=" + op.Replace)
		case op.Keep:
			b.WriteByte('k')
		}
		for _, label := range op.Add {
			b.WriteString("+" + label)
		}
		b.WriteByte(';')
	}
	return b.String()
}

func cloneTones(tones []scale.Tone) []scale.Tone {
	return append([]scale.Tone(nil), tones...)
}
