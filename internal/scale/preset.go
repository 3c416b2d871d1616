package scale

import (
	"strings"
)

// Preset is a named scale definition.
type Preset struct {
	// ID is a stable ASCII identifier, e.g. "minor-pentatonic".
	ID string `json:"id" yaml:"id"`

	// Name is the display name.
	Name string `json:"name" yaml:"name"`

	// Aliases are extra names accepted by lookups.
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`

	Definition Definition `json:"degrees" yaml:"degrees"`
}

// Clone returns a deep copy of p.
func (p Preset) Clone() Preset {
	if p.Aliases != nil {
		p.Aliases = append([]string(nil), p.Aliases...)
	}
	p.Definition = p.Definition.Clone()
	return p
}

// Matches reports whether name equals the ID, name or an alias of p,
// ignoring case and surrounding space.
func (p Preset) Matches(name string) bool {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, p.ID) || strings.EqualFold(name, p.Name) {
		return true
	}
	for _, alias := range p.Aliases {
		if strings.EqualFold(name, alias) {
			return true
		}
	}
	return false
}

func keepAll(degrees ...int) Definition {
	d := Definition{}
	for _, n := range degrees {
		d[n] = Keep()
	}
	return d
}

func with(d Definition, degree int, op DegreeOperation) Definition {
	d[degree] = op
	return d
}

// presets is built once and never handed out directly.
var presets = []Preset{
	{
		ID:         "major",
		Name:       "Major",
		Aliases:    []string{"ionian"},
		Definition: keepAll(1, 2, 3, 4, 5, 6, 7),
	},
	{
		ID:      "natural-minor",
		Name:    "Natural Minor",
		Aliases: []string{"aeolian", "minor"},
		Definition: Definition{
			1: Keep(), 2: Keep(), 3: Replace("b3"), 4: Keep(),
			5: Keep(), 6: Replace("b6"), 7: Replace("b7"),
		},
	},
	{
		ID:   "dorian",
		Name: "Dorian",
		Definition: Definition{
			1: Keep(), 2: Keep(), 3: Replace("b3"), 4: Keep(),
			5: Keep(), 6: Keep(), 7: Replace("b7"),
		},
	},
	{
		ID:   "phrygian",
		Name: "Phrygian",
		Definition: Definition{
			1: Keep(), 2: Replace("b2"), 3: Replace("b3"), 4: Keep(),
			5: Keep(), 6: Replace("b6"), 7: Replace("b7"),
		},
	},
	{
		ID:         "lydian",
		Name:       "Lydian",
		Definition: with(keepAll(1, 2, 3, 5, 6, 7), 4, Replace("#4")),
	},
	{
		ID:         "mixolydian",
		Name:       "Mixolydian",
		Definition: with(keepAll(1, 2, 3, 4, 5, 6), 7, Replace("b7")),
	},
	{
		ID:   "locrian",
		Name: "Locrian",
		Definition: Definition{
			1: Keep(), 2: Replace("b2"), 3: Replace("b3"), 4: Keep(),
			5: Replace("b5"), 6: Replace("b6"), 7: Replace("b7"),
		},
	},
	{
		ID:   "harmonic-minor",
		Name: "Harmonic Minor",
		Definition: Definition{
			1: Keep(), 2: Keep(), 3: Replace("b3"), 4: Keep(),
			5: Keep(), 6: Replace("b6"), 7: Keep(),
		},
	},
	{
		ID:         "melodic-minor",
		Name:       "Melodic Minor",
		Definition: with(keepAll(1, 2, 4, 5, 6, 7), 3, Replace("b3")),
	},
	{
		ID:         "major-pentatonic",
		Name:       "Major Pentatonic",
		Definition: keepAll(1, 2, 3, 5, 6),
	},
	{
		ID:   "minor-pentatonic",
		Name: "Minor Pentatonic",
		Definition: Definition{
			1: Keep(), 3: Replace("b3"), 4: Keep(), 5: Keep(), 7: Replace("b7"),
		},
	},
	{
		ID:   "blues",
		Name: "Blues",
		Definition: Definition{
			1: Keep(), 3: Replace("b3"), 4: Keep(), 5: KeepAdd("b5"), 7: Replace("b7"),
		},
	},
	{
		ID:      "miyakobushi",
		Name:    "都節音階",
		Aliases: []string{"miyako-bushi", "in"},
		Definition: Definition{
			1: Keep(), 2: Replace("b2"), 4: Keep(), 5: Keep(), 6: Replace("b6"),
		},
	},
}

// Presets returns a copy of every built-in preset in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		out[i] = p.Clone()
	}
	return out
}

// LookupPreset finds a built-in preset by ID, name or alias.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Matches(name) {
			return p.Clone(), true
		}
	}
	return Preset{}, false
}

// PresetNames returns the display names of the built-in presets.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// PresetIDs returns the IDs of the built-in presets.
func PresetIDs() []string {
	ids := make([]string, len(presets))
	for i, p := range presets {
		ids[i] = p.ID
	}
	return ids
}
