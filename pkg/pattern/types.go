// Package pattern builds timed note-event sequences for drums and basslines
package pattern

import "sort"

// NoteEvent is a single timed note. Times and durations are in seconds.
type NoteEvent struct {
	Note     uint8   `json:"note"`     // MIDI note number (0-127)
	Velocity uint8   `json:"velocity"` // 0-127
	Time     float64 `json:"time"`     // onset offset from pattern start
	Duration float64 `json:"duration"` // note length
}

// Pattern is a time-ordered sequence of note events.
type Pattern []NoteEvent

// General MIDI drum note numbers
const (
	NoteKick    uint8 = 36
	NoteSnare   uint8 = 38
	NoteClap    uint8 = 39
	NoteHihat   uint8 = 42
	NoteTomLow  uint8 = 45
	NoteOpenHat uint8 = 46
	NoteTomMid  uint8 = 47
	NoteCrash   uint8 = 49
	NoteTomHigh uint8 = 50
	NoteRide    uint8 = 51
	Note808     uint8 = 35 // acoustic bass drum, typically used for 808s
)

// Combine merges patterns into one, sorted by onset time. The sort is
// stable: events at equal times keep their relative input order, so
// earlier arguments sort before later ones.
func Combine(patterns ...Pattern) Pattern {
	var combined Pattern
	for _, p := range patterns {
		combined = append(combined, p...)
	}
	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Time < combined[j].Time
	})
	return combined
}

// clampNote clamps an arbitrary pitch into the valid MIDI range.
func clampNote(n int) uint8 {
	if n < 0 {
		return 0
	}
	if n > 127 {
		return 127
	}
	return uint8(n)
}
