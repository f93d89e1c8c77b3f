// Package midiout renders patterns to standard MIDI files for the
// receiving DAW or device
package midiout

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/james-see/beatsmith/pkg/pattern"
)

// PPQN is the pulses-per-quarter-note resolution used for timeline
// position calculations (bar/beat addressing).
const PPQN = 96

// Sender delivers a named pattern to the external transport. The note
// on/off pairing and timing realization are the receiver's concern.
type Sender interface {
	Send(name string, events pattern.Pattern, bpm int) error
}

// Renderer converts note events into standard MIDI file data.
type Renderer struct {
	ticksPerQuarter uint16
}

// NewRenderer creates a Renderer at 480 ticks per quarter note.
func NewRenderer() *Renderer {
	return &Renderer{ticksPerQuarter: 480}
}

// RenderSMF creates a single-track MIDI file from a pattern. Event times
// are seconds from pattern start; they are quantized to ticks at the
// given tempo.
func (r *Renderer) RenderSMF(name string, events pattern.Pattern, bpm int) ([]byte, error) {
	if len(events) == 0 {
		return nil, errors.New("empty pattern")
	}
	if bpm <= 0 {
		bpm = 120
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(r.ticksPerQuarter)

	var track smf.Track

	// Track name meta event
	if name != "" {
		nameData := append([]byte{0xFF, 0x03, byte(len(name))}, []byte(name)...)
		track.Add(0, smf.Message(nameData))
	}

	// Tempo meta event
	microsecondsPerBeat := uint32(60000000 / bpm)
	track.Add(0, smf.Message([]byte{
		0xFF, 0x51, 0x03,
		byte(microsecondsPerBeat >> 16),
		byte(microsecondsPerBeat >> 8),
		byte(microsecondsPerBeat),
	}))

	// Time signature (4/4)
	track.Add(0, smf.Message([]byte{0xFF, 0x58, 0x04, 0x04, 0x02, 0x18, 0x08}))

	type timedMessage struct {
		tick uint32
		off  bool
		msg  midi.Message
	}

	var messages []timedMessage
	channel := uint8(9) // GM percussion channel

	for _, ev := range events {
		onTick := r.secondsToTicks(ev.Time, bpm)
		offTick := r.secondsToTicks(ev.Time+ev.Duration, bpm)
		if offTick <= onTick {
			offTick = onTick + 1
		}

		velocity := ev.Velocity
		if velocity == 0 {
			velocity = 100
		}

		messages = append(messages, timedMessage{tick: onTick, msg: midi.NoteOn(channel, ev.Note, velocity)})
		messages = append(messages, timedMessage{tick: offTick, off: true, msg: midi.NoteOff(channel, ev.Note)})
	}

	// Note-offs sort before note-ons at the same tick so retriggered
	// notes are released before they restart
	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].tick != messages[j].tick {
			return messages[i].tick < messages[j].tick
		}
		return messages[i].off && !messages[j].off
	})

	var currentTick uint32
	for _, tm := range messages {
		track.Add(tm.tick-currentTick, tm.msg)
		currentTick = tm.tick
	}

	track.Close(0)

	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("failed to add track: %w", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write MIDI: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *Renderer) secondsToTicks(seconds float64, bpm int) uint32 {
	ticks := seconds * float64(bpm) / 60.0 * float64(r.ticksPerQuarter)
	return uint32(math.Round(ticks))
}

// WriteSMFFile renders a pattern and writes it to a file.
func (r *Renderer) WriteSMFFile(name string, events pattern.Pattern, bpm int, filename string) error {
	data, err := r.RenderSMF(name, events, bpm)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// FileSender implements Sender by writing "<name>.mid" into a directory.
type FileSender struct {
	Dir      string
	renderer *Renderer
}

// NewFileSender creates a FileSender targeting dir (default current dir).
func NewFileSender(dir string) *FileSender {
	if dir == "" {
		dir = "."
	}
	return &FileSender{Dir: dir, renderer: NewRenderer()}
}

// Send writes the pattern as a MIDI file named after the pattern.
func (f *FileSender) Send(name string, events pattern.Pattern, bpm int) error {
	path := filepath.Join(f.Dir, name+".mid")
	return f.renderer.WriteSMFFile(name, events, bpm, path)
}

// PositionTicks converts a bar/beat timeline position to PPQN ticks,
// assuming 4 beats per bar. Bars and beats are 1-based.
func PositionTicks(bar, beat int) int {
	return ((bar-1)*4 + (beat - 1)) * PPQN
}
