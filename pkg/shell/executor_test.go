package shell

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/james-see/beatsmith/pkg/command"
	"github.com/james-see/beatsmith/pkg/dsp"
	"github.com/james-see/beatsmith/pkg/generator"
	"github.com/james-see/beatsmith/pkg/pattern"
)

type mockSender struct {
	name   string
	events pattern.Pattern
	bpm    int
	calls  int
}

func (m *mockSender) Send(name string, events pattern.Pattern, bpm int) error {
	m.name = name
	m.events = events
	m.bpm = bpm
	m.calls++
	return nil
}

// mockEngine passes buffers through and records saved paths.
type mockEngine struct {
	loaded string
	saved  []string
}

func (m *mockEngine) Load(path string) (dsp.Buffer, error) {
	m.loaded = path
	return dsp.Buffer{SampleRate: 44100, Samples: make([]float64, 16)}, nil
}

func (m *mockEngine) Save(buf dsp.Buffer, path string) error {
	m.saved = append(m.saved, path)
	return nil
}

func (m *mockEngine) PitchShift(buf dsp.Buffer, semitones int) (dsp.Buffer, error) {
	return buf, nil
}

func (m *mockEngine) TimeStretch(buf dsp.Buffer, rate float64) (dsp.Buffer, error) {
	return buf, nil
}

func (m *mockEngine) Filter(buf dsp.Buffer, kind command.FilterKind, cutoffHz int) (dsp.Buffer, error) {
	return buf, nil
}

func (m *mockEngine) Slice(buf dsp.Buffer, count int) ([]dsp.Buffer, error) {
	return dsp.SliceBuffer(buf, count)
}

func writeSample(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExecuteGenerate(t *testing.T) {
	sender := &mockSender{}
	exec := &Executor{
		Generator: generator.NewSeeded(1),
		Sender:    sender,
	}

	if err := exec.Execute("make a trap beat at 140 bpm with 808s"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if sender.calls != 1 {
		t.Fatalf("sender called %d times, want 1", sender.calls)
	}
	if sender.name != "trap_140bpm" {
		t.Errorf("pattern name = %q, want trap_140bpm", sender.name)
	}
	if sender.bpm != 140 {
		t.Errorf("bpm = %d, want 140", sender.bpm)
	}
	if len(sender.events) == 0 {
		t.Error("no events sent")
	}
}

func TestExecuteSampleProcess(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "kick.wav")

	engine := &mockEngine{}
	exec := &Executor{
		Generator:  generator.NewSeeded(1),
		Engine:     engine,
		SearchDirs: []string{dir},
		OutputDir:  dir,
	}

	if err := exec.Execute("take kick.wav and pitch down 3 semitones"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if engine.loaded != filepath.Join(dir, "kick.wav") {
		t.Errorf("loaded %q, want resolved sample path", engine.loaded)
	}
	want := []string{filepath.Join(dir, "kick_processed.wav")}
	if len(engine.saved) != 1 || engine.saved[0] != want[0] {
		t.Errorf("saved = %v, want %v", engine.saved, want)
	}
}

func TestExecuteSampleSlices(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "loop.wav")

	engine := &mockEngine{}
	exec := &Executor{
		Generator:  generator.NewSeeded(1),
		Engine:     engine,
		SearchDirs: []string{dir},
		OutputDir:  dir,
	}

	if err := exec.Execute("load loop.wav and chop into 4 slices"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(engine.saved) != 4 {
		t.Fatalf("saved %d files, want 4 slices", len(engine.saved))
	}
	if engine.saved[0] != filepath.Join(dir, "loop_slice1.wav") {
		t.Errorf("first slice = %q, want loop_slice1.wav", engine.saved[0])
	}
}

func TestExecuteSampleMissing(t *testing.T) {
	exec := &Executor{
		Generator:  generator.NewSeeded(1),
		Engine:     &mockEngine{},
		SearchDirs: []string{t.TempDir()},
	}

	err := exec.Execute("take ghost.wav and pitch up 2 semitones")
	if !errors.Is(err, command.ErrSampleNotFound) {
		t.Errorf("error = %v, want ErrSampleNotFound", err)
	}
}

func TestExecuteSampleWithoutEngine(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "snare.wav")

	exec := &Executor{
		Generator:  generator.NewSeeded(1),
		SearchDirs: []string{dir},
	}

	if err := exec.Execute("take snare.wav and pitch up 2 semitones"); err == nil {
		t.Error("Execute() without an engine should fail")
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	exec := &Executor{Generator: generator.NewSeeded(1)}
	if err := exec.Execute("what is the meaning of life"); err != nil {
		t.Errorf("unknown commands report, not fail: %v", err)
	}
}

func TestOutputPathFallsBackToInputDir(t *testing.T) {
	exec := &Executor{}
	got := exec.outputPath(filepath.Join("samples", "kick.wav"), "_processed")
	want := filepath.Join("samples", "kick_processed.wav")
	if got != want {
		t.Errorf("outputPath() = %q, want %q", got, want)
	}
}
