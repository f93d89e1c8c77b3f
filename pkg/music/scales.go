// Package music provides scale tables, genre templates and key resolution
package music

import "sort"

// scales maps scale names to pitch-class intervals from the root.
// Read-only after init; Scale returns a copy.
var scales = map[string][]int{
	"major":            {0, 2, 4, 5, 7, 9, 11},
	"minor":            {0, 2, 3, 5, 7, 8, 10},
	"pentatonic_major": {0, 2, 4, 7, 9},
	"pentatonic_minor": {0, 3, 5, 7, 10},
	"blues":            {0, 3, 5, 6, 7, 10},
	"harmonic_minor":   {0, 2, 3, 5, 7, 8, 11},
	"dorian":           {0, 2, 3, 5, 7, 9, 10},
}

// noteTable maps note names to MIDI pitch, anchored at middle C = 60.
var noteTable = map[string]int{
	"C": 60, "C#": 61, "Db": 61,
	"D": 62, "D#": 63, "Eb": 63,
	"E": 64,
	"F": 65, "F#": 66, "Gb": 66,
	"G": 67, "G#": 68, "Ab": 68,
	"A": 69, "A#": 70, "Bb": 70,
	"B": 71,
}

// Scale returns the intervals of a named scale and whether it exists.
// The returned slice is a copy; callers may mutate it freely.
func Scale(name string) ([]int, bool) {
	intervals, ok := scales[name]
	if !ok {
		return nil, false
	}
	out := make([]int, len(intervals))
	copy(out, intervals)
	return out, true
}

// ScaleNames returns all scale names in sorted order.
func ScaleNames() []string {
	names := make([]string, 0, len(scales))
	for name := range scales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveKey parses a key string like "C", "Dm" or "F#" into a root MIDI
// pitch and a scale name. A trailing "m" forces minor. An unmarked key is
// assumed major even when the fallback scale is minor; other fallback
// scales pass through unchanged. Unrecognized roots resolve to C (60).
func ResolveKey(key, fallbackScale string) (int, string) {
	scale := fallbackScale
	root := key

	if len(key) > 1 && key[len(key)-1] == 'm' {
		scale = "minor"
		root = key[:len(key)-1]
	} else if fallbackScale == "minor" {
		scale = "major"
	}

	pitch, ok := noteTable[root]
	if !ok {
		pitch = 60
	}
	return pitch, scale
}
