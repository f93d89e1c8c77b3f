// Package shell provides the interactive command loop and command execution
package shell

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/james-see/beatsmith/pkg/command"
	"github.com/james-see/beatsmith/pkg/dsp"
	"github.com/james-see/beatsmith/pkg/generator"
	"github.com/james-see/beatsmith/pkg/midiout"
)

// Engine is the audio collaborator used for sample processing commands.
type Engine interface {
	dsp.Processor
	Load(path string) (dsp.Buffer, error)
	Save(buf dsp.Buffer, path string) error
}

// Executor wires the parser, generator and collaborators together and
// runs one command at a time. Collaborator failures are reported per
// command; they never kill the session.
type Executor struct {
	Generator  *generator.Generator
	Sender     midiout.Sender
	Engine     Engine   // nil disables sample processing
	SearchDirs []string // sample search path
	OutputDir  string   // processed sample destination
}

// Execute parses and runs a single command line. The returned error is a
// per-command failure; the session can continue.
func (e *Executor) Execute(line string) error {
	cmd := command.Parse(line)

	switch cmd.Type {
	case command.TypeSampleProcess:
		return e.runSample(cmd)
	case command.TypeGenerate:
		return e.runGenerate(cmd)
	default:
		fmt.Println("Could not parse command. Use 'help' for command syntax.")
		fmt.Printf("Raw: %s\n", cmd.Raw)
		return nil
	}
}

func (e *Executor) runSample(cmd command.Command) error {
	if cmd.SamplePath == "" {
		return fmt.Errorf("no sample reference found in command")
	}

	fmt.Println("\nSample Processing:")
	fmt.Printf("  Sample: %s\n", cmd.SamplePath)
	fmt.Printf("  Operations: %d\n", len(cmd.Operations))
	for i, op := range cmd.Operations {
		fmt.Printf("    %d. %s\n", i+1, describeOp(op))
	}

	resolved, err := command.ResolveSamplePath(cmd.SamplePath, e.SearchDirs)
	if err != nil {
		return err
	}

	if e.Engine == nil {
		return fmt.Errorf("no audio engine available, cannot process %s", resolved)
	}

	buf, err := e.Engine.Load(resolved)
	if err != nil {
		return fmt.Errorf("failed to load sample: %w", err)
	}

	result, err := dsp.Apply(e.Engine, buf, cmd.Operations)
	if err != nil {
		return err
	}

	if result.Sliced {
		fmt.Printf("Sliced into %d parts\n", len(result.Slices))
		for i, s := range result.Slices {
			out := e.outputPath(resolved, fmt.Sprintf("_slice%d", i+1))
			if err := e.Engine.Save(s, out); err != nil {
				return fmt.Errorf("failed to save slice %d: %w", i+1, err)
			}
			fmt.Printf("  %s\n", out)
		}
	} else {
		out := e.outputPath(resolved, "_processed")
		if err := e.Engine.Save(result.Output, out); err != nil {
			return fmt.Errorf("failed to save processed sample: %w", err)
		}
		fmt.Printf("Processed sample saved: %s\n", out)
	}

	if cmd.InsertBar > 0 {
		ticks := midiout.PositionTicks(cmd.InsertBar, cmd.InsertBeat)
		fmt.Printf("Insert at: bar %d, beat %d (%d ticks)\n", cmd.InsertBar, cmd.InsertBeat, ticks)
	}

	return nil
}

func (e *Executor) runGenerate(cmd command.Command) error {
	fmt.Println("\nBeat Generation:")
	fmt.Printf("  Genre: %s\n", cmd.Genre)
	if cmd.BPM > 0 {
		fmt.Printf("  BPM: %d\n", cmd.BPM)
	} else {
		fmt.Println("  BPM: auto")
	}
	fmt.Printf("  Key: %s\n", cmd.Key)
	fmt.Printf("  Bars: %d\n", cmd.Bars)
	fmt.Printf("  Include 808s: %v\n", cmd.IncludeBass)

	beat := e.Generator.Generate(generator.Request{
		Genre:       cmd.Genre,
		BPM:         cmd.BPM,
		Key:         cmd.Key,
		Bars:        cmd.Bars,
		IncludeBass: cmd.IncludeBass,
	})

	fmt.Printf("\nGenerated %s beat:\n", beat.Genre)
	fmt.Printf("  BPM: %d\n", beat.BPM)
	fmt.Printf("  Key: %s %s\n", beat.Key, beat.Scale)
	fmt.Printf("  Drum hits: %d\n", len(beat.Drums))
	fmt.Printf("  Bass notes: %d\n", len(beat.Bass))
	fmt.Printf("  Total events: %d\n", len(beat.Combined))

	if e.Sender == nil {
		return nil
	}
	if err := e.Sender.Send(beat.PatternName(), beat.Combined, beat.BPM); err != nil {
		return fmt.Errorf("failed to send pattern: %w", err)
	}
	fmt.Printf("Pattern written: %s\n", beat.PatternName())
	return nil
}

func (e *Executor) outputPath(input, suffix string) string {
	dir := e.OutputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+suffix+".wav")
}

func describeOp(op command.Operation) string {
	switch op.Kind {
	case command.OpPitchShift:
		return fmt.Sprintf("pitch shift %+d semitones", op.Semitones)
	case command.OpTimeStretch:
		return fmt.Sprintf("time stretch x%g", op.Rate)
	case command.OpFilter:
		return fmt.Sprintf("%s filter at %d hz", op.Filter, op.CutoffHz)
	case command.OpSlice:
		return fmt.Sprintf("slice into %d parts", op.Count)
	default:
		return string(op.Kind)
	}
}
