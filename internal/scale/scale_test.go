package scale

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/catoryutarow/guitar-scale-app/internal/pitch"
)

func TestGenerateMajorScale(t *testing.T) {
	tests := []struct {
		root string
		want string
	}{
		{"C", "C D E F G A B"},
		{"G", "G A B C D E F♯"},
		{"F#", "F♯ G♯ A♯ B C♯ D♯ E♯"},
		{"C#", "C♯ D♯ E♯ F♯ G♯ A♯ B♯"},
		{"Db", "D♭ E♭ F G♭ A♭ B♭ C"},
		{"Cb", "C♭ D♭ E♭ F♭ G♭ A♭ B♭"},
		{"G#", "G♯ A♯ B♯ C♯ D♯ E♯ F𝄪"},
		{"Fb", "F♭ G♭ A♭ B𝄫 C♭ D♭ E♭"},
	}

	for _, tt := range tests {
		t.Run(tt.root, func(t *testing.T) {
			tones := GenerateMajorScale(pitch.MustParse(tt.root))
			got := strings.Join(FormatScale(tones, Strict, true), " ")
			if got != tt.want {
				t.Errorf("major(%s) = %q, want %q", tt.root, got, tt.want)
			}
		})
	}
}

func TestGenerateMajorScale_Properties(t *testing.T) {
	for _, l := range pitch.Letters {
		for acc := -2; acc <= 2; acc++ {
			root := pitch.Spelling{Letter: l, Accidental: acc}
			tones := GenerateMajorScale(root)
			if len(tones) != 7 {
				t.Fatalf("%v: got %d tones", root, len(tones))
			}

			letters := map[pitch.Letter]bool{}
			for i, tone := range tones {
				letters[tone.Spelling.Letter] = true
				if want := string(rune('1' + i)); tone.Degree != want {
					t.Errorf("%v: tone %d degree %q, want %q", root, i, tone.Degree, want)
				}
				if tone.PitchClass() != tone.Spelling.PitchClass() {
					t.Errorf("%v: pitch class not derived from spelling", root)
				}
				if i == 0 {
					continue
				}
				step := (tone.PitchClass() - tones[i-1].PitchClass() + 12) % 12
				if step != 1 && step != 2 {
					t.Errorf("%v: step %d between degree %d and %d", root, step, i, i+1)
				}
			}
			if len(letters) != 7 {
				t.Errorf("%v: used %d distinct letters", root, len(letters))
			}
		}
	}
}

func TestGenerateMajorScale_Octaves(t *testing.T) {
	root, err := pitch.ParseWithOctave("A2")
	if err != nil {
		t.Fatal(err)
	}
	tones := GenerateMajorScale(root)

	var got []string
	for _, tone := range tones {
		got = append(got, pitch.FormatWithOctave(tone.Spelling, false))
	}
	want := []string{"A2", "B2", "C#3", "D3", "E3", "F#3", "G#3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("A2 major = %v, want %v", got, want)
	}
}

func TestParseAlteration(t *testing.T) {
	tests := []struct {
		label   string
		delta   int
		degree  int
		wantErr bool
	}{
		{label: "1", delta: 0, degree: 1},
		{label: "b2", delta: -1, degree: 2},
		{label: "#4", delta: 1, degree: 4},
		{label: "bb3", delta: -2, degree: 3},
		{label: "♭7", delta: -1, degree: 7},
		{label: "♯5", delta: 1, degree: 5},
		{label: "𝄫6", delta: -2, degree: 6},
		{label: "𝄪4", delta: 2, degree: 4},
		{label: "#b5", delta: 0, degree: 5},
		{label: "", wantErr: true},
		{label: "b", wantErr: true},
		{label: "b9", wantErr: true},
		{label: "b0", wantErr: true},
		{label: "b3x", wantErr: true},
		{label: "3b", wantErr: true},
		{label: "x3", wantErr: true},
		{label: "b13", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseAlteration(tt.label)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAlteration) {
					t.Errorf("ParseAlteration(%q) err = %v, want ErrInvalidAlteration", tt.label, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAlteration(%q) error: %v", tt.label, err)
			}
			if got.Delta != tt.delta || got.Degree != tt.degree || got.Label != tt.label {
				t.Errorf("ParseAlteration(%q) = %+v", tt.label, got)
			}
		})
	}
}

func TestApplyDegreeOperations_OmitsMissingDegrees(t *testing.T) {
	tones, err := Generate("C", Definition{1: Keep(), 3: Keep(), 5: Keep()})
	if err != nil {
		t.Fatal(err)
	}
	if got := DegreeLabels(tones); !reflect.DeepEqual(got, []string{"1", "3", "5"}) {
		t.Errorf("labels = %v, want [1 3 5]", got)
	}

	tones, err = Generate("C", Definition{})
	if err != nil {
		t.Fatal(err)
	}
	if len(tones) != 0 {
		t.Errorf("empty definition produced %d tones", len(tones))
	}
}

func TestApplyDegreeOperations_RemoveMatchesAbsent(t *testing.T) {
	withRemove, err := Generate("E", Definition{1: Keep(), 2: Remove(), 3: Keep()})
	if err != nil {
		t.Fatal(err)
	}
	without, err := Generate("E", Definition{1: Keep(), 3: Keep()})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(withRemove, without) {
		t.Errorf("remove %v differs from absent %v", withRemove, without)
	}
}

func TestApplyDegreeOperations_ReplaceKeepsLetter(t *testing.T) {
	tests := []struct {
		root  string
		label string
		want  string
	}{
		{"Db", "b2", "E𝄫"},
		{"C", "b3", "E♭"},
		{"A", "b3", "C"},
		{"F#", "#4", "B♯"},
		{"Gb", "b5", "D𝄫"},
		{"C", "bb7", "B𝄫"},
	}

	for _, tt := range tests {
		t.Run(tt.root+" "+tt.label, func(t *testing.T) {
			alt, err := ParseAlteration(tt.label)
			if err != nil {
				t.Fatal(err)
			}
			tones, err := Generate(tt.root, Definition{alt.Degree: Replace(tt.label)})
			if err != nil {
				t.Fatal(err)
			}
			if len(tones) != 1 {
				t.Fatalf("got %d tones, want 1", len(tones))
			}

			major := GenerateMajorScale(pitch.MustParse(tt.root))
			source := major[alt.Degree-1]
			if tones[0].Spelling.Letter != source.Spelling.Letter {
				t.Errorf("letter %v, want %v", tones[0].Spelling.Letter, source.Spelling.Letter)
			}
			if got := FormatTone(tones[0], Strict, true); got != tt.want {
				t.Errorf("spelling %q, want %q", got, tt.want)
			}
			if tones[0].Degree != tt.label {
				t.Errorf("degree %q, want %q", tones[0].Degree, tt.label)
			}
		})
	}
}

func TestApplyDegreeOperations_AddFollowsKeptTone(t *testing.T) {
	def := Definition{
		1: Keep(),
		4: KeepAdd("#4", "b4"),
		5: Keep(),
	}
	tones, err := Generate("C", def)
	if err != nil {
		t.Fatal(err)
	}
	if got := DegreeLabels(tones); !reflect.DeepEqual(got, []string{"1", "4", "#4", "b4", "5"}) {
		t.Errorf("labels = %v", got)
	}
	if got := FormatScale(tones, Strict, false); !reflect.DeepEqual(got, []string{"C", "F", "F#", "Fb", "G"}) {
		t.Errorf("spellings = %v", got)
	}
}

func TestApplyDegreeOperations_InvalidDefinition(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
	}{
		{"degree zero", Definition{0: Keep()}},
		{"degree eight", Definition{8: Keep()}},
		{"empty op", Definition{1: {}}},
		{"keep and replace", Definition{3: {Keep: true, Replace: "b3"}}},
		{"replace and add", Definition{3: {Replace: "b3", Add: []string{"#3"}}}},
		{"remove and keep", Definition{3: {Keep: true, Remove: true}}},
		{"add without keep", Definition{5: {Add: []string{"b5"}}}},
		{"malformed replace", Definition{3: Replace("b3?")}},
		{"malformed add", Definition{5: KeepAdd("flat5")}},
		{"label on wrong degree", Definition{2: Replace("b3")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate("C", tt.def)
			if !errors.Is(err, ErrInvalidDefinition) {
				t.Errorf("err = %v, want ErrInvalidDefinition", err)
			}
		})
	}
}

func TestApplyDegreeOperations_WrongMajorLength(t *testing.T) {
	_, err := ApplyDegreeOperations(nil, Definition{1: Keep()})
	if !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("err = %v, want ErrInvalidDefinition", err)
	}
}

func TestGenerate_InvalidRoot(t *testing.T) {
	for _, root := range []string{"", "H", "#"} {
		_, err := Generate(root, Definition{1: Keep()})
		if !errors.Is(err, pitch.ErrInvalidNote) {
			t.Errorf("Generate(%q) err = %v, want ErrInvalidNote", root, err)
		}
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name   string
		root   string
		labels string
		notes  string
	}{
		{"major", "C", "1 2 3 4 5 6 7", "C D E F G A B"},
		{"natural-minor", "A", "1 2 b3 4 5 b6 b7", "A B C D E F G"},
		{"dorian", "D", "1 2 b3 4 5 6 b7", "D E F G A B C"},
		{"phrygian", "E", "1 b2 b3 4 5 b6 b7", "E F G A B C D"},
		{"lydian", "F", "1 2 3 #4 5 6 7", "F G A B C D E"},
		{"mixolydian", "G", "1 2 3 4 5 6 b7", "G A B C D E F"},
		{"locrian", "B", "1 b2 b3 4 b5 b6 b7", "B C D E F G A"},
		{"harmonic-minor", "A", "1 2 b3 4 5 b6 7", "A B C D E F G#"},
		{"melodic-minor", "C", "1 2 b3 4 5 6 7", "C D Eb F G A B"},
		{"major-pentatonic", "G", "1 2 3 5 6", "G A B D E"},
		{"minor-pentatonic", "C", "1 b3 4 5 b7", "C Eb F G Bb"},
		{"blues", "C", "1 b3 4 5 b5 b7", "C Eb F G Gb Bb"},
		{"都節音階", "C", "1 b2 4 5 b6", "C Db F G Ab"},
		{"Natural Minor", "C", "1 2 b3 4 5 b6 b7", "C D Eb F G Ab Bb"},
		{"aeolian", "F#", "1 2 b3 4 5 b6 b7", "F# G# A B C# D E"},
		{"IONIAN", "Eb", "1 2 3 4 5 6 7", "Eb F G Ab Bb C D"},
	}

	for _, tt := range tests {
		t.Run(tt.name+" "+tt.root, func(t *testing.T) {
			p, ok := LookupPreset(tt.name)
			if !ok {
				t.Fatalf("preset %q not found", tt.name)
			}
			tones, err := Generate(tt.root, p.Definition)
			if err != nil {
				t.Fatal(err)
			}
			if got := strings.Join(DegreeLabels(tones), " "); got != tt.labels {
				t.Errorf("labels = %q, want %q", got, tt.labels)
			}
			if got := strings.Join(FormatScale(tones, Strict, false), " "); got != tt.notes {
				t.Errorf("notes = %q, want %q", got, tt.notes)
			}
		})
	}
}

func TestPresets_AllValid(t *testing.T) {
	all := Presets()
	if len(all) != 13 {
		t.Errorf("got %d presets, want 13", len(all))
	}
	ids := map[string]bool{}
	for _, p := range all {
		if err := p.Definition.Validate(); err != nil {
			t.Errorf("preset %s: %v", p.ID, err)
		}
		if ids[p.ID] {
			t.Errorf("duplicate preset id %s", p.ID)
		}
		ids[p.ID] = true
	}
	if len(PresetNames()) != len(all) || len(PresetIDs()) != len(all) {
		t.Error("name and id lists should match the preset count")
	}
}

func TestPresets_AreCopies(t *testing.T) {
	p, _ := LookupPreset("major")
	delete(p.Definition, 7)
	p.Definition[1] = Remove()

	again, _ := LookupPreset("major")
	if len(again.Definition) != 7 || !again.Definition[1].Keep {
		t.Error("mutating a looked-up preset changed the registry")
	}

	blues := Presets()[11]
	blues.Definition[5].Add[0] = "#5"
	fresh, _ := LookupPreset("blues")
	if fresh.Definition[5].Add[0] != "b5" {
		t.Error("mutating an add list changed the registry")
	}

	if _, ok := LookupPreset("no-such-scale"); ok {
		t.Error("unknown preset should not be found")
	}
}

func TestHasMinorThird(t *testing.T) {
	tests := map[string]bool{
		"major":            false,
		"natural-minor":    true,
		"dorian":           true,
		"minor-pentatonic": true,
		"blues":            true,
		"major-pentatonic": false,
		"miyakobushi":      false,
	}
	for name, want := range tests {
		p, _ := LookupPreset(name)
		if got := HasMinorThird(p.Definition); got != want {
			t.Errorf("HasMinorThird(%s) = %v, want %v", name, got, want)
		}
	}
}

func TestFormatScale_Modes(t *testing.T) {
	p, _ := LookupPreset("phrygian")
	tones, err := Generate("Db", p.Definition)
	if err != nil {
		t.Fatal(err)
	}

	strict := strings.Join(FormatScale(tones, Strict, true), " ")
	if strict != "D♭ E𝄫 F♭ G♭ A♭ B𝄫 C♭" {
		t.Errorf("strict = %q", strict)
	}
	friendly := strings.Join(FormatScale(tones, Friendly, false), " ")
	if friendly != "Db D Fb Gb Ab A Cb" {
		t.Errorf("friendly = %q", friendly)
	}

	// Formatting must not touch the tones.
	if tones[1].Spelling.Accidental != -2 {
		t.Errorf("tone spelling changed to %+v", tones[1].Spelling)
	}
}

func TestParseDisplayMode(t *testing.T) {
	for in, want := range map[string]DisplayMode{"strict": Strict, "Friendly": Friendly, "": Strict} {
		got, err := ParseDisplayMode(in)
		if err != nil || got != want {
			t.Errorf("ParseDisplayMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseDisplayMode("loose"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if Friendly.String() != "friendly" || Strict.String() != "strict" {
		t.Error("unexpected DisplayMode.String")
	}
}

func TestTone_JSON(t *testing.T) {
	tone := Tone{Degree: "b3", Spelling: pitch.MustParse("Eb").WithOctave(4)}
	data, err := json.Marshal(tone)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"degree":"b3","spelling":"Eb","pitchClass":3,"octave":4}` {
		t.Errorf("json = %s", data)
	}

	var back Tone
	if err := json.Unmarshal([]byte(`{"degree":"#4","spelling":"F#","pitchClass":11}`), &back); err != nil {
		t.Fatal(err)
	}
	if back.PitchClass() != 6 || back.Degree != "#4" {
		t.Errorf("decoded %+v, pitch class %d", back, back.PitchClass())
	}
}
