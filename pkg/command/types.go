// Package command parses natural language commands into structured operations
package command

import (
	"errors"
	"fmt"
)

// Type identifies the kind of command that was parsed
type Type string

const (
	TypeSampleProcess Type = "sample_process"
	TypeGenerate      Type = "generate_beat"
	TypeUnknown       Type = "unknown"
)

// FilterKind identifies a filter shape
type FilterKind string

const (
	FilterLowpass  FilterKind = "lowpass"
	FilterHighpass FilterKind = "highpass"
	FilterBandpass FilterKind = "bandpass"
)

// OpKind identifies an operation variant
type OpKind string

const (
	OpPitchShift  OpKind = "pitch_shift"
	OpTimeStretch OpKind = "time_stretch"
	OpFilter      OpKind = "filter"
	OpSlice       OpKind = "slice"
)

// Operation is a single audio transformation step. Exactly the fields
// for its Kind are meaningful.
type Operation struct {
	Kind      OpKind     `json:"kind"`
	Semitones int        `json:"semitones,omitempty"`
	Rate      float64    `json:"rate,omitempty"`
	Filter    FilterKind `json:"filter,omitempty"`
	CutoffHz  int        `json:"cutoff_hz,omitempty"`
	Count     int        `json:"count,omitempty"`
}

// NewPitchShift creates a pitch shift operation
func NewPitchShift(semitones int) Operation {
	return Operation{Kind: OpPitchShift, Semitones: semitones}
}

// NewTimeStretch creates a time stretch operation. Rate must be positive.
func NewTimeStretch(rate float64) (Operation, error) {
	if rate <= 0 {
		return Operation{}, fmt.Errorf("stretch rate must be positive, got %v", rate)
	}
	return Operation{Kind: OpTimeStretch, Rate: rate}, nil
}

// NewFilter creates a filter operation. Cutoff must be positive.
func NewFilter(kind FilterKind, cutoffHz int) (Operation, error) {
	switch kind {
	case FilterLowpass, FilterHighpass, FilterBandpass:
	default:
		return Operation{}, fmt.Errorf("unknown filter kind %q", kind)
	}
	if cutoffHz <= 0 {
		return Operation{}, fmt.Errorf("filter cutoff must be positive, got %d", cutoffHz)
	}
	return Operation{Kind: OpFilter, Filter: kind, CutoffHz: cutoffHz}, nil
}

// NewSlice creates a slice operation. Count must be positive.
func NewSlice(count int) (Operation, error) {
	if count <= 0 {
		return Operation{}, fmt.Errorf("slice count must be positive, got %d", count)
	}
	return Operation{Kind: OpSlice, Count: count}, nil
}

// Command is the structured result of parsing one line of input.
// Exactly the fields for its Type are populated.
type Command struct {
	Type Type `json:"type"`

	// Sample processing fields
	SamplePath string      `json:"sample_path,omitempty"`
	Operations []Operation `json:"operations,omitempty"`
	InsertBar  int         `json:"insert_bar,omitempty"` // 0 = no position given
	InsertBeat int         `json:"insert_beat,omitempty"`

	// Beat generation fields
	Genre       string `json:"genre,omitempty"`
	BPM         int    `json:"bpm,omitempty"` // 0 = auto-select from genre
	Key         string `json:"key,omitempty"`
	Bars        int    `json:"bars,omitempty"`
	IncludeBass bool   `json:"include_bass,omitempty"`

	// Raw input, kept for diagnostics on unknown commands
	Raw string `json:"raw,omitempty"`
}

// ErrSampleNotFound reports that a sample reference could not be resolved
// against any search directory. It is recoverable: the command is dropped,
// the session continues.
var ErrSampleNotFound = errors.New("sample not found")
