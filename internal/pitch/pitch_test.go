package pitch

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Spelling
	}{
		{"C", Spelling{Letter: C}},
		{"c", Spelling{Letter: C}},
		{"Db", Spelling{Letter: D, Accidental: -1}},
		{"bb", Spelling{Letter: B, Accidental: -1}},
		{"F#", Spelling{Letter: F, Accidental: 1}},
		{"F♯", Spelling{Letter: F, Accidental: 1}},
		{"E♭", Spelling{Letter: E, Accidental: -1}},
		{"G𝄪", Spelling{Letter: G, Accidental: 2}},
		{"A𝄫", Spelling{Letter: A, Accidental: -2}},
		{"C#♯", Spelling{Letter: C, Accidental: 2}},
		{"Ebbb", Spelling{Letter: E, Accidental: -3}},
		{"C4", Spelling{Letter: C}},
		{"D#x?", Spelling{Letter: D, Accidental: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "H", "#C", "1", " C", "♯", "ｃ"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", input)
			}
			if !errors.Is(err, ErrInvalidNote) {
				t.Errorf("Parse(%q) error %v does not match ErrInvalidNote", input, err)
			}
			var noteErr *InvalidNoteError
			if !errors.As(err, &noteErr) || noteErr.Input != input {
				t.Errorf("Parse(%q) error = %#v, want *InvalidNoteError with input", input, err)
			}
		})
	}
}

func TestParseWithOctave(t *testing.T) {
	tests := []struct {
		input   string
		want    Spelling
		wantErr bool
	}{
		{input: "E2", want: Spelling{Letter: E, Octave: 2, HasOctave: true}},
		{input: "Bb3", want: Spelling{Letter: B, Accidental: -1, Octave: 3, HasOctave: true}},
		{input: "C#-1", want: Spelling{Letter: C, Accidental: 1, Octave: -1, HasOctave: true}},
		{input: "F♯4", want: Spelling{Letter: F, Accidental: 1, Octave: 4, HasOctave: true}},
		{input: "E", wantErr: true},
		{input: "E2x", wantErr: true},
		{input: "X2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWithOctave(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseWithOctave(%q) expected error, got %+v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWithOctave(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseWithOctave(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		s       Spelling
		unicode string
		ascii   string
	}{
		{Spelling{Letter: C}, "C", "C"},
		{Spelling{Letter: F, Accidental: 1}, "F♯", "F#"},
		{Spelling{Letter: B, Accidental: -1}, "B♭", "Bb"},
		{Spelling{Letter: G, Accidental: 2}, "G𝄪", "G##"},
		{Spelling{Letter: E, Accidental: -2}, "E𝄫", "Ebb"},
		{Spelling{Letter: F, Accidental: 3}, "F𝄪♯", "F###"},
		{Spelling{Letter: D, Accidental: -5}, "D𝄫𝄫♭", "Dbbbbb"},
		{Spelling{Letter: A, Accidental: 4}, "A𝄪𝄪", "A####"},
	}

	for _, tt := range tests {
		t.Run(tt.ascii, func(t *testing.T) {
			if got := Format(tt.s, true); got != tt.unicode {
				t.Errorf("Format(%+v, true) = %q, want %q", tt.s, got, tt.unicode)
			}
			if got := Format(tt.s, false); got != tt.ascii {
				t.Errorf("Format(%+v, false) = %q, want %q", tt.s, got, tt.ascii)
			}
		})
	}
}

func TestFormatWithOctave(t *testing.T) {
	s := Spelling{Letter: E, Accidental: -1}.WithOctave(4)
	if got := FormatWithOctave(s, false); got != "Eb4" {
		t.Errorf("FormatWithOctave = %q, want %q", got, "Eb4")
	}
	if got := FormatWithOctave(s.WithoutOctave(), true); got != "E♭" {
		t.Errorf("FormatWithOctave without octave = %q, want %q", got, "E♭")
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, l := range Letters {
		for acc := -7; acc <= 7; acc++ {
			s := Spelling{Letter: l, Accidental: acc}
			got, err := Parse(Format(s, false))
			if err != nil {
				t.Fatalf("Parse(Format(%+v)) error: %v", s, err)
			}
			if !IsEqualSpelling(got, s) {
				t.Errorf("ascii round trip %+v -> %+v", s, got)
			}
			got, err = Parse(Format(s, true))
			if err != nil {
				t.Fatalf("Parse(Format(%+v, true)) error: %v", s, err)
			}
			if !IsEqualSpelling(got, s) {
				t.Errorf("unicode round trip %+v -> %+v", s, got)
			}
		}
	}
}

func TestPitchClass(t *testing.T) {
	tests := []struct {
		s    Spelling
		want int
	}{
		{Spelling{Letter: C}, 0},
		{Spelling{Letter: B, Accidental: 1}, 0},
		{Spelling{Letter: C, Accidental: -1}, 11},
		{Spelling{Letter: E, Accidental: 1}, 5},
		{Spelling{Letter: D, Accidental: -2}, 0},
		{Spelling{Letter: A, Accidental: -40}, 5},
		{Spelling{Letter: G, Accidental: 29}, 0},
	}

	for _, tt := range tests {
		if got := PitchClass(tt.s); got != tt.want {
			t.Errorf("PitchClass(%+v) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestPitchClass_AccidentalWrap(t *testing.T) {
	for _, l := range Letters {
		for acc := -30; acc <= 30; acc++ {
			a := Spelling{Letter: l, Accidental: acc}
			b := Spelling{Letter: l, Accidental: acc + 12}
			if a.PitchClass() != b.PitchClass() {
				t.Errorf("%v%+d and %v%+d differ", l, acc, l, acc+12)
			}
			if pc := a.PitchClass(); pc < 0 || pc > 11 {
				t.Errorf("PitchClass(%+v) = %d out of range", a, pc)
			}
		}
	}
}

func TestNextLetter(t *testing.T) {
	want := map[Letter]Letter{A: B, B: C, C: D, D: E, E: F, F: G, G: A}
	for from, to := range want {
		if got := NextLetter(from); got != to {
			t.Errorf("NextLetter(%v) = %v, want %v", from, got, to)
		}
	}

	seen := map[Letter]bool{}
	l := E
	for i := 0; i < 7; i++ {
		seen[l] = true
		l = l.Next()
	}
	if len(seen) != 7 || l != E {
		t.Errorf("seven steps from E visited %d letters and ended on %v", len(seen), l)
	}
}

func TestAdjustAccidental(t *testing.T) {
	tests := []struct {
		name   string
		s      Spelling
		target int
		want   int
	}{
		{"E to E#", Spelling{Letter: E}, 5, 1},
		{"B to B#", Spelling{Letter: B}, 0, 1},
		{"E to Ebb", Spelling{Letter: E, Accidental: -1}, 2, -2},
		{"C to Cb", Spelling{Letter: C}, 11, -1},
		{"F to F#", Spelling{Letter: F, Accidental: -3}, 6, 1},
		{"tritone stays positive", Spelling{Letter: C}, 6, 6},
		{"target above 11", Spelling{Letter: D}, 15, 1},
		{"negative target", Spelling{Letter: A}, -4, -1},
		{"far above", Spelling{Letter: G}, 12000 + 8, 1},
		{"far below", Spelling{Letter: C}, -12000 + 6, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustAccidental(tt.s, tt.target)
			if got.Letter != tt.s.Letter {
				t.Errorf("letter changed from %v to %v", tt.s.Letter, got.Letter)
			}
			if got.Accidental != tt.want {
				t.Errorf("accidental = %d, want %d", got.Accidental, tt.want)
			}
		})
	}
}

func TestAdjustAccidental_Properties(t *testing.T) {
	for _, l := range Letters {
		for target := -24; target <= 24; target++ {
			got := AdjustAccidental(Spelling{Letter: l, Accidental: 3}, target)
			if got.Accidental < -6 || got.Accidental > 6 {
				t.Errorf("AdjustAccidental(%v, %d) accidental %d out of range", l, target, got.Accidental)
			}
			if got.PitchClass() != mod12(target) {
				t.Errorf("AdjustAccidental(%v, %d) pitch class %d, want %d", l, target, got.PitchClass(), mod12(target))
			}
		}
	}
}

func TestFriendly(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"C", "C"},
		{"F#", "F#"},
		{"Cb", "Cb"},
		{"Ebb", "D"},
		{"F##", "G"},
		{"B##", "C#"},
		{"Cbb", "Bb"},
		{"Dbb", "C"},
		{"E###", "G"},
		{"Abbb", "Gb"},
		{"G###", "A#"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Friendly(MustParse(tt.in))
			if s := Format(got, false); s != tt.want {
				t.Errorf("Friendly(%s) = %s, want %s", tt.in, s, tt.want)
			}
		})
	}
}

func TestFriendly_PreservesPitchAndIsIdempotent(t *testing.T) {
	for _, l := range Letters {
		for acc := -8; acc <= 8; acc++ {
			s := Spelling{Letter: l, Accidental: acc}
			once := Friendly(s)
			if once.Accidental < -1 || once.Accidental > 1 {
				t.Errorf("Friendly(%+v) = %+v still has a double accidental", s, once)
			}
			if !IsEnharmonic(once, s) {
				t.Errorf("Friendly(%+v) = %+v changed pitch class", s, once)
			}
			if twice := Friendly(once); twice != once {
				t.Errorf("Friendly not idempotent for %+v: %+v then %+v", s, once, twice)
			}
		}
	}
}

func TestFriendly_KeepsSoundingOctave(t *testing.T) {
	s, _ := ParseWithOctave("B##3")
	got := Friendly(s)
	if FormatWithOctave(got, false) != "C#4" {
		t.Errorf("Friendly(B##3) = %s, want C#4", FormatWithOctave(got, false))
	}
	gotMIDI, _ := got.MIDI()
	wantMIDI, _ := s.MIDI()
	if gotMIDI != wantMIDI {
		t.Errorf("MIDI changed from %d to %d", wantMIDI, gotMIDI)
	}
}

func TestEqualityPredicates(t *testing.T) {
	es := MustParse("E#")
	f := MustParse("F")

	if IsEqualSpelling(es, f) {
		t.Error("E# and F should not be the same spelling")
	}
	if !IsEnharmonic(es, f) {
		t.Error("E# and F should be enharmonic")
	}
	if !IsEqualSpelling(es, Spelling{Letter: E, Accidental: 1}.WithOctave(5)) {
		t.Error("octave should not affect spelling equality")
	}
}

func TestMIDIAndFrequency(t *testing.T) {
	a4, _ := ParseWithOctave("A4")
	midi, ok := a4.MIDI()
	if !ok || midi != 69 {
		t.Fatalf("A4 MIDI = %d, %v", midi, ok)
	}
	if f := Frequency(midi, 440); f != 440 {
		t.Errorf("Frequency(A4) = %v, want 440", f)
	}
	if f := Frequency(81, 440); f != 880 {
		t.Errorf("Frequency(A5) = %v, want 880", f)
	}

	bs, _ := ParseWithOctave("B#3")
	if midi, _ := bs.MIDI(); midi != 60 {
		t.Errorf("B#3 MIDI = %d, want 60", midi)
	}
	if _, ok := MustParse("C").MIDI(); ok {
		t.Error("MIDI without octave should report false")
	}
}
