package pattern

import (
	"math/rand"
	"time"
)

// StepsPerBar is the fixed rhythmic grid: 16th notes in a 4/4 bar.
const StepsPerBar = 16

// Builder creates drum and bass patterns at a fixed tempo. The structure
// of a pattern is deterministic; velocities and optional embellishment
// hits are drawn from the builder's random source, so two builders with
// identically seeded sources produce identical output.
type Builder struct {
	bpm          int
	stepDuration float64
	rng          *rand.Rand
}

// NewBuilder creates a Builder for the given tempo. A nil rng gets a
// time-seeded source; pass an explicit one for reproducible output.
func NewBuilder(bpm int, rng *rand.Rand) *Builder {
	if bpm <= 0 {
		bpm = 140
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Builder{
		bpm:          bpm,
		stepDuration: 60.0 / float64(bpm) / 4.0, // 16th note length
		rng:          rng,
	}
}

// BPM returns the builder's tempo.
func (b *Builder) BPM() int { return b.bpm }

// StepDuration returns the length of one grid step in seconds.
func (b *Builder) StepDuration() float64 { return b.stepDuration }

// velocity draws a velocity from an inclusive range.
func (b *Builder) velocity(lo, hi int) uint8 {
	return uint8(lo + b.rng.Intn(hi-lo+1))
}

// chance reports true with probability p.
func (b *Builder) chance(p float64) bool {
	return b.rng.Float64() < p
}
