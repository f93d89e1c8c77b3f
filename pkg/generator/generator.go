// Package generator orchestrates beat generation from genre templates
package generator

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/james-see/beatsmith/pkg/music"
	"github.com/james-see/beatsmith/pkg/pattern"
)

// Request describes a beat to generate.
type Request struct {
	Genre       string
	BPM         int // 0 = draw from the genre's tempo range
	Key         string
	Bars        int
	IncludeBass bool
}

// Beat is a generated beat with its resolved musical parameters.
type Beat struct {
	Genre    string
	BPM      int
	Key      string
	Scale    string
	Root     int
	Bars     int
	Drums    pattern.Pattern
	Bass     pattern.Pattern
	Combined pattern.Pattern
}

// PatternName returns the transport-facing name for the beat.
func (b *Beat) PatternName() string {
	return fmt.Sprintf("%s_%dbpm", b.Genre, b.BPM)
}

// Generator builds beats. The random source drives tempo selection and
// is handed to the pattern builder, so a seeded Generator is fully
// reproducible.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator. A nil rng gets a time-seeded source.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// NewSeeded creates a Generator with a fixed seed for reproducible output.
func NewSeeded(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

// Generate builds a complete beat for the request. Unknown genres fall
// back to trap; missing fields get defaults. Generation never fails.
func (g *Generator) Generate(req Request) *Beat {
	genre := req.Genre
	template, ok := music.Genre(genre)
	if !ok {
		log.Printf("unknown genre %q, using trap template", genre)
		genre = "trap"
		template, _ = music.Genre(genre)
	}

	bpm := req.BPM
	if bpm <= 0 {
		bpm = template.TempoMin + g.rng.Intn(template.TempoMax-template.TempoMin+1)
	}

	key := req.Key
	if key == "" {
		key = "C"
	}
	bars := req.Bars
	if bars <= 0 {
		bars = 4
	}

	root, scaleName := music.ResolveKey(key, template.Scale)

	builder := pattern.NewBuilder(bpm, g.rng)
	drums := builder.DrumPattern(pattern.DrumStyleFor(template.DrumStyle), bars, template.Complexity)

	var bass pattern.Pattern
	var combined pattern.Pattern
	if req.IncludeBass {
		intervals, ok := music.Scale(scaleName)
		if !ok {
			intervals, _ = music.Scale("minor")
		}
		bass = builder.Bassline(root-12, intervals, bars, pattern.BassStyleFor(template.BassStyle))
		combined = pattern.Combine(drums, bass)
	} else {
		combined = pattern.Combine(drums)
	}

	return &Beat{
		Genre:    genre,
		BPM:      bpm,
		Key:      key,
		Scale:    scaleName,
		Root:     root,
		Bars:     bars,
		Drums:    drums,
		Bass:     bass,
		Combined: combined,
	}
}

// Melody generates a standalone melody in the given key and scale.
// BPM defaults to 120, octave 5 puts the melody above the beat.
func (g *Generator) Melody(key, scaleName string, bars int, density float64, octave, bpm int) pattern.Pattern {
	if bpm <= 0 {
		bpm = 120
	}
	if bars <= 0 {
		bars = 4
	}

	root, _ := music.ResolveKey(key, scaleName)
	root = octave*12 + root%12

	intervals, ok := music.Scale(scaleName)
	if !ok {
		intervals, _ = music.Scale("pentatonic_minor")
	}

	builder := pattern.NewBuilder(bpm, g.rng)
	return builder.Melody(root, intervals, bars, density)
}
