package scale

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidDefinition is wrapped by Definition.Validate errors.
var ErrInvalidDefinition = errors.New("invalid scale definition")

// Degrees is the number of degrees in the reference major scale.
const Degrees = 7

// DegreeOperation says what to do with one degree of the major scale.
//
// Exactly one of Keep, Replace or Remove is set. Add is only valid
// together with Keep and lists extra altered tones emitted right after
// the kept one.
type DegreeOperation struct {
	Keep    bool     `json:"keep,omitempty" yaml:"keep,omitempty"`
	Replace string   `json:"replace,omitempty" yaml:"replace,omitempty"`
	Add     []string `json:"add,omitempty" yaml:"add,omitempty"`
	Remove  bool     `json:"remove,omitempty" yaml:"remove,omitempty"`
}

// Keep retains the major-scale tone.
func Keep() DegreeOperation {
	return DegreeOperation{Keep: true}
}

// Replace swaps the major-scale tone for an altered one, e.g. "b3".
func Replace(label string) DegreeOperation {
	return DegreeOperation{Replace: label}
}

// KeepAdd retains the major-scale tone and adds altered tones after it.
func KeepAdd(labels ...string) DegreeOperation {
	return DegreeOperation{Keep: true, Add: labels}
}

// Remove drops the degree. It has the same effect as leaving the degree
// out of the Definition.
func Remove() DegreeOperation {
	return DegreeOperation{Remove: true}
}

func (op DegreeOperation) clone() DegreeOperation {
	if op.Add != nil {
		op.Add = append([]string(nil), op.Add...)
	}
	return op
}

// Definition maps degrees 1-7 to operations. Degrees without an entry
// are omitted from the generated scale; nothing is kept by default.
type Definition map[int]DegreeOperation

// Clone returns a deep copy of d.
func (d Definition) Clone() Definition {
	if d == nil {
		return nil
	}
	out := make(Definition, len(d))
	for degree, op := range d {
		out[degree] = op.clone()
	}
	return out
}

// Validate checks that every entry is a well-formed operation on a
// degree between 1 and 7, and that every alteration label parses and
// names the degree it is attached to.
func (d Definition) Validate() error {
	degrees := make([]int, 0, len(d))
	for degree := range d {
		degrees = append(degrees, degree)
	}
	sort.Ints(degrees)

	for _, degree := range degrees {
		if err := validateOperation(degree, d[degree]); err != nil {
			return err
		}
	}
	return nil
}

func validateOperation(degree int, op DegreeOperation) error {
	if degree < 1 || degree > Degrees {
		return fmt.Errorf("%w: degree %d out of range 1-%d", ErrInvalidDefinition, degree, Degrees)
	}

	switch {
	case op.Remove:
		if op.Keep || op.Replace != "" || len(op.Add) > 0 {
			return fmt.Errorf("%w: degree %d: remove cannot be combined with other operations", ErrInvalidDefinition, degree)
		}
		return nil
	case op.Replace != "":
		if op.Keep || len(op.Add) > 0 {
			return fmt.Errorf("%w: degree %d: replace cannot be combined with keep or add", ErrInvalidDefinition, degree)
		}
		return checkLabel(degree, op.Replace)
	case op.Keep:
		for _, label := range op.Add {
			if err := checkLabel(degree, label); err != nil {
				return err
			}
		}
		return nil
	case len(op.Add) > 0:
		return fmt.Errorf("%w: degree %d: add requires keep", ErrInvalidDefinition, degree)
	default:
		return fmt.Errorf("%w: degree %d: empty operation", ErrInvalidDefinition, degree)
	}
}

func checkLabel(degree int, label string) error {
	alt, err := ParseAlteration(label)
	if err != nil {
		return fmt.Errorf("%w: degree %d: %w", ErrInvalidDefinition, degree, err)
	}
	if alt.Degree != degree {
		return fmt.Errorf("%w: degree %d: label %q names degree %d", ErrInvalidDefinition, degree, label, alt.Degree)
	}
	return nil
}

// ApplyDegreeOperations turns a major scale into the scale described by
// def. Degrees are visited in order 1-7; tones added with KeepAdd follow
// their kept tone. Labels are never renumbered, so a pentatonic scale
// keeps the labels 1 2 3 5 6.
//
// major must be the output of GenerateMajorScale.
func ApplyDegreeOperations(major []Tone, def Definition) ([]Tone, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	if len(major) != Degrees {
		return nil, fmt.Errorf("%w: expected %d major-scale tones, got %d", ErrInvalidDefinition, Degrees, len(major))
	}

	var out []Tone
	for degree := 1; degree <= Degrees; degree++ {
		op, ok := def[degree]
		if !ok || op.Remove {
			continue
		}
		source := major[degree-1]

		if op.Replace != "" {
			alt, _ := ParseAlteration(op.Replace)
			out = append(out, alt.apply(source))
			continue
		}

		out = append(out, source)
		for _, label := range op.Add {
			alt, _ := ParseAlteration(label)
			out = append(out, alt.apply(source))
		}
	}
	return out, nil
}
