package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/catoryutarow/guitar-scale-app/internal/scale"
	"gopkg.in/yaml.v3"
)

type fileDoc struct {
	Scales []fileScale `yaml:"scales"`
}

type fileScale struct {
	ID      string                `yaml:"id"`
	Name    string                `yaml:"name"`
	Aliases []string              `yaml:"aliases"`
	Degrees map[int]fileOperation `yaml:"degrees"`
}

// fileOperation accepts either a scalar shorthand or a full mapping.
type fileOperation struct {
	scale.DegreeOperation
}

func (o *fileOperation) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch value := strings.TrimSpace(node.Value); strings.ToLower(value) {
		case "keep":
			o.DegreeOperation = scale.Keep()
		case "remove":
			o.DegreeOperation = scale.Remove()
		default:
			o.DegreeOperation = scale.Replace(value)
		}
		return nil
	case yaml.MappingNode:
		var op scale.DegreeOperation
		if err := node.Decode(&op); err != nil {
			return err
		}
		o.DegreeOperation = op
		return nil
	}
	return fmt.Errorf("line %d: degree operation must be a string or a mapping", node.Line)
}

// decodePresets reads a custom scale document.
func decodePresets(r io.Reader) ([]scale.Preset, error) {
	var doc fileDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode scales: %w", err)
	}

	presets := make([]scale.Preset, 0, len(doc.Scales))
	for i, fs := range doc.Scales {
		if strings.TrimSpace(fs.ID) == "" {
			return nil, fmt.Errorf("scale %d: missing id", i+1)
		}
		def := make(scale.Definition, len(fs.Degrees))
		for degree, op := range fs.Degrees {
			def[degree] = op.DegreeOperation
		}
		name := fs.Name
		if name == "" {
			name = fs.ID
		}
		presets = append(presets, scale.Preset{
			ID:         fs.ID,
			Name:       name,
			Aliases:    fs.Aliases,
			Definition: def,
		})
	}
	return presets, nil
}
