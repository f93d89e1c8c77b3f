package command

import (
	"testing"
)

func TestParseClassification(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Type
	}{
		{"take keyword", "take kick.wav", TypeSampleProcess},
		{"load keyword", "load vocal.mp3 and chop it", TypeSampleProcess},
		{"use keyword", "use snare.flac", TypeSampleProcess},
		{"sample keyword", "process the sample somehow", TypeSampleProcess},
		{"create keyword", "create a trap beat", TypeGenerate},
		{"make keyword", "make a lofi beat", TypeGenerate},
		{"generate keyword", "generate a drill beat", TypeGenerate},
		{"sample wins over create", "take kick.wav and create a beat", TypeSampleProcess},
		{"nothing recognized", "what is the meaning of life", TypeUnknown},
		{"empty", "", TypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Parse(tt.input)
			if cmd.Type != tt.expected {
				t.Errorf("Parse(%q).Type = %v, want %v", tt.input, cmd.Type, tt.expected)
			}
		})
	}
}

func TestParseUnknownKeepsRaw(t *testing.T) {
	cmd := Parse("  Something Entirely Different  ")
	if cmd.Type != TypeUnknown {
		t.Fatalf("Type = %v, want %v", cmd.Type, TypeUnknown)
	}
	if cmd.Raw != "something entirely different" {
		t.Errorf("Raw = %q, want normalized input", cmd.Raw)
	}
}

func TestParseSampleRoundTrip(t *testing.T) {
	cmd := Parse("take kick.wav, pitch down 3 semitones, stretch by 0.82, insert at bar 40 beat 3")

	if cmd.Type != TypeSampleProcess {
		t.Fatalf("Type = %v, want %v", cmd.Type, TypeSampleProcess)
	}
	if cmd.SamplePath != "kick.wav" {
		t.Errorf("SamplePath = %q, want %q", cmd.SamplePath, "kick.wav")
	}
	if len(cmd.Operations) != 2 {
		t.Fatalf("Operations = %d, want 2", len(cmd.Operations))
	}
	if cmd.Operations[0].Kind != OpPitchShift || cmd.Operations[0].Semitones != -3 {
		t.Errorf("op 0 = %+v, want pitch shift -3", cmd.Operations[0])
	}
	if cmd.Operations[1].Kind != OpTimeStretch || cmd.Operations[1].Rate != 0.82 {
		t.Errorf("op 1 = %+v, want stretch 0.82", cmd.Operations[1])
	}
	if cmd.InsertBar != 40 || cmd.InsertBeat != 3 {
		t.Errorf("insert = bar %d beat %d, want bar 40 beat 3", cmd.InsertBar, cmd.InsertBeat)
	}
}

func TestParseSampleExtensions(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"take kick.wav", "kick.wav"},
		{"load vocal.mp3", "vocal.mp3"},
		{"use pad.flac", "pad.flac"},
		{"take field recording.aiff", "field recording.aiff"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			cmd := Parse(tt.input)
			if cmd.SamplePath != tt.expected {
				t.Errorf("SamplePath = %q, want %q", cmd.SamplePath, tt.expected)
			}
		})
	}
}

func TestParsePitchDown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"down unsigned", "take a.wav pitch down 3", -3},
		{"down explicit negative", "take a.wav pitch down -3", -3},
		{"up unsigned", "take a.wav pitch up 5 semitones", 5},
		{"bare negative", "take a.wav pitch -2 st", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Parse(tt.input)
			if len(cmd.Operations) != 1 {
				t.Fatalf("Operations = %d, want 1", len(cmd.Operations))
			}
			if cmd.Operations[0].Semitones != tt.expected {
				t.Errorf("Semitones = %d, want %d", cmd.Operations[0].Semitones, tt.expected)
			}
		})
	}
}

func TestParseFilterAndSlice(t *testing.T) {
	cmd := Parse("load vocal.wav, highpass 200 hz, slice into 8, insert at measure 16")

	if len(cmd.Operations) != 2 {
		t.Fatalf("Operations = %d, want 2", len(cmd.Operations))
	}
	if cmd.Operations[0].Kind != OpFilter || cmd.Operations[0].Filter != FilterHighpass || cmd.Operations[0].CutoffHz != 200 {
		t.Errorf("op 0 = %+v, want highpass 200", cmd.Operations[0])
	}
	if cmd.Operations[1].Kind != OpSlice || cmd.Operations[1].Count != 8 {
		t.Errorf("op 1 = %+v, want slice 8", cmd.Operations[1])
	}
	if cmd.InsertBar != 16 {
		t.Errorf("InsertBar = %d, want 16 from measure fallback", cmd.InsertBar)
	}
	if cmd.InsertBeat != 1 {
		t.Errorf("InsertBeat = %d, want default 1", cmd.InsertBeat)
	}
}

func TestParseOperationOrderIsFixed(t *testing.T) {
	// Text order is slice then pitch; evaluation order is pitch, stretch,
	// filter, slice
	cmd := Parse("take a.wav, chop into 4 parts, pitch up 2")

	if len(cmd.Operations) != 2 {
		t.Fatalf("Operations = %d, want 2", len(cmd.Operations))
	}
	if cmd.Operations[0].Kind != OpPitchShift {
		t.Errorf("op 0 kind = %v, want %v", cmd.Operations[0].Kind, OpPitchShift)
	}
	if cmd.Operations[1].Kind != OpSlice {
		t.Errorf("op 1 kind = %v, want %v", cmd.Operations[1].Kind, OpSlice)
	}
}

func TestParseInsertFallbackExclusive(t *testing.T) {
	// Primary insert grammar wins; measure/beat fallback must not override
	cmd := Parse("take a.wav insert at bar 12 and something about measure 99 beat 2")
	if cmd.InsertBar != 12 {
		t.Errorf("InsertBar = %d, want 12 from primary grammar", cmd.InsertBar)
	}

	// Fallback path picks up the independent beat pattern
	cmd = Parse("take a.wav at the end of measure 8 count 3")
	if cmd.InsertBar != 8 {
		t.Errorf("InsertBar = %d, want 8 from measure fallback", cmd.InsertBar)
	}
	if cmd.InsertBeat != 3 {
		t.Errorf("InsertBeat = %d, want 3 from beat fallback", cmd.InsertBeat)
	}
}

func TestParseGenerateRoundTrip(t *testing.T) {
	cmd := Parse("create a memphis style beat with 808s at 170 bpm")

	if cmd.Type != TypeGenerate {
		t.Fatalf("Type = %v, want %v", cmd.Type, TypeGenerate)
	}
	if cmd.Genre != "memphis" {
		t.Errorf("Genre = %q, want %q", cmd.Genre, "memphis")
	}
	if cmd.BPM != 170 {
		t.Errorf("BPM = %d, want 170", cmd.BPM)
	}
	if !cmd.IncludeBass {
		t.Error("IncludeBass = false, want true")
	}
	if cmd.Key != "C" {
		t.Errorf("Key = %q, want default C", cmd.Key)
	}
	if cmd.Bars != 4 {
		t.Errorf("Bars = %d, want default 4", cmd.Bars)
	}
}

func TestParseGenerateFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, cmd Command)
	}{
		{
			"boom bap normalization",
			"make a boom bap beat",
			func(t *testing.T, cmd Command) {
				if cmd.Genre != "boom_bap" {
					t.Errorf("Genre = %q, want boom_bap", cmd.Genre)
				}
			},
		},
		{
			"default genre trap",
			"create something amazing",
			func(t *testing.T, cmd Command) {
				if cmd.Genre != "trap" {
					t.Errorf("Genre = %q, want trap default", cmd.Genre)
				}
			},
		},
		{
			"loose description fallback",
			"create a dark drill-inspired beat",
			func(t *testing.T, cmd Command) {
				if cmd.Genre != "drill" {
					t.Errorf("Genre = %q, want drill", cmd.Genre)
				}
			},
		},
		{
			"minor key",
			"make a trap beat in key of Dm with 808s",
			func(t *testing.T, cmd Command) {
				if cmd.Key != "Dm" {
					t.Errorf("Key = %q, want Dm", cmd.Key)
				}
				if !cmd.IncludeBass {
					t.Error("IncludeBass = false, want true")
				}
			},
		},
		{
			"sharp key",
			"generate a lofi beat in f#",
			func(t *testing.T, cmd Command) {
				if cmd.Key != "F#" {
					t.Errorf("Key = %q, want F#", cmd.Key)
				}
			},
		},
		{
			"bars",
			"generate a lofi beat at 80 bpm 8 bars",
			func(t *testing.T, cmd Command) {
				if cmd.BPM != 80 {
					t.Errorf("BPM = %d, want 80", cmd.BPM)
				}
				if cmd.Bars != 8 {
					t.Errorf("Bars = %d, want 8", cmd.Bars)
				}
			},
		},
		{
			"no 808s without phrase",
			"create a trap beat",
			func(t *testing.T, cmd Command) {
				if cmd.IncludeBass {
					t.Error("IncludeBass = true, want false")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Parse(tt.input))
		})
	}
}

func TestOperationConstructors(t *testing.T) {
	if _, err := NewTimeStretch(0); err == nil {
		t.Error("NewTimeStretch(0) expected error")
	}
	if _, err := NewTimeStretch(-1.5); err == nil {
		t.Error("NewTimeStretch(-1.5) expected error")
	}
	if _, err := NewSlice(0); err == nil {
		t.Error("NewSlice(0) expected error")
	}
	if _, err := NewFilter("notch", 500); err == nil {
		t.Error("NewFilter(notch) expected error")
	}
	if _, err := NewFilter(FilterLowpass, -10); err == nil {
		t.Error("NewFilter with negative cutoff expected error")
	}

	op, err := NewFilter(FilterBandpass, 1200)
	if err != nil {
		t.Fatalf("NewFilter() error = %v", err)
	}
	if op.Filter != FilterBandpass || op.CutoffHz != 1200 {
		t.Errorf("op = %+v, want bandpass 1200", op)
	}
}
