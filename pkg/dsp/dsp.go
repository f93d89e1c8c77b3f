// Package dsp defines the audio processing boundary and operation sequencing
package dsp

import (
	"fmt"

	"github.com/james-see/beatsmith/pkg/command"
)

// Buffer is an audio buffer handed to the processing engine.
type Buffer struct {
	SampleRate int
	Samples    []float64
}

// Len returns the number of samples.
func (b Buffer) Len() int { return len(b.Samples) }

// Processor is the external audio engine. Transform internals live behind
// this interface; this package only sequences operations.
type Processor interface {
	PitchShift(buf Buffer, semitones int) (Buffer, error)
	TimeStretch(buf Buffer, rate float64) (Buffer, error)
	Filter(buf Buffer, kind command.FilterKind, cutoffHz int) (Buffer, error)
	Slice(buf Buffer, count int) ([]Buffer, error)
}

// Result is the outcome of applying an operation list: either a single
// transformed buffer or, when a slice operation ran, a list of slices.
type Result struct {
	Output Buffer
	Slices []Buffer
	Sliced bool
}

// Apply runs operations in order against the processor. A slice operation
// short-circuits: its slices are returned immediately and any remaining
// operations are skipped.
func Apply(p Processor, buf Buffer, ops []command.Operation) (Result, error) {
	current := buf

	for _, op := range ops {
		var err error
		switch op.Kind {
		case command.OpPitchShift:
			current, err = p.PitchShift(current, op.Semitones)
		case command.OpTimeStretch:
			current, err = p.TimeStretch(current, op.Rate)
		case command.OpFilter:
			current, err = p.Filter(current, op.Filter, op.CutoffHz)
		case command.OpSlice:
			slices, serr := p.Slice(current, op.Count)
			if serr != nil {
				return Result{}, fmt.Errorf("slice failed: %w", serr)
			}
			return Result{Slices: slices, Sliced: true}, nil
		default:
			return Result{}, fmt.Errorf("unknown operation kind %q", op.Kind)
		}
		if err != nil {
			return Result{}, fmt.Errorf("%s failed: %w", op.Kind, err)
		}
	}

	return Result{Output: current}, nil
}

// SliceBuffer divides a buffer into count equal parts; the last slice
// takes any remainder. Reference implementation of the Slice contract.
func SliceBuffer(buf Buffer, count int) ([]Buffer, error) {
	if count <= 0 {
		return nil, fmt.Errorf("slice count must be positive, got %d", count)
	}

	total := len(buf.Samples)
	sliceLen := total / count

	slices := make([]Buffer, 0, count)
	for i := 0; i < count; i++ {
		start := i * sliceLen
		end := start + sliceLen
		if i == count-1 {
			end = total
		}
		slices = append(slices, Buffer{
			SampleRate: buf.SampleRate,
			Samples:    buf.Samples[start:end],
		})
	}

	return slices, nil
}
