package pattern

// BassStyle selects a bassline pattern rule set.
type BassStyle string

const (
	BassSimple  BassStyle = "simple"
	BassBouncy  BassStyle = "bouncy"
	BassRolling BassStyle = "rolling"
)

// BassStyleFor maps a style name onto a BassStyle. Unknown names pass
// through; Bassline yields an empty pattern for them.
func BassStyleFor(name string) BassStyle {
	return BassStyle(name)
}

// bouncySteps are the fixed hit positions of the bouncy style within a bar.
var bouncySteps = []int{0, 3, 6, 8, 11, 14}

// Bassline builds an 808 bassline from a root pitch and scale intervals.
// An unrecognized style yields an empty pattern.
func (b *Builder) Bassline(root int, scale []int, bars int, style BassStyle) Pattern {
	var notes Pattern
	totalSteps := StepsPerBar * bars

	switch style {
	case BassSimple:
		// Root note on beats 1 and 3
		for bar := 0; bar < bars; bar++ {
			for _, beat := range []int{0, 8} {
				step := bar*StepsPerBar + beat
				notes = append(notes, NoteEvent{
					Note:     clampNote(root),
					Velocity: b.velocity(100, 120),
					Time:     float64(step) * b.stepDuration,
					Duration: b.stepDuration * 3,
				})
			}
		}

	case BassBouncy:
		// Rhythmic pattern walking the low end of the scale
		for bar := 0; bar < bars; bar++ {
			for _, pos := range bouncySteps {
				step := bar*StepsPerBar + pos
				note := root + b.pickInterval(scale, 4)
				notes = append(notes, NoteEvent{
					Note:     clampNote(note),
					Velocity: b.velocity(90, 110),
					Time:     float64(step) * b.stepDuration,
					Duration: b.stepDuration * 2,
				})
			}
		}

	case BassRolling:
		// Fast rolls on every 8th note
		for step := 0; step < totalSteps; step += 2 {
			note := root + b.pickInterval(scale, 3)
			notes = append(notes, NoteEvent{
				Note:     clampNote(note),
				Velocity: b.velocity(80, 100),
				Time:     float64(step) * b.stepDuration,
				Duration: b.stepDuration * 1.5,
			})
		}
	}

	return notes
}

// pickInterval chooses randomly among the first n scale intervals.
func (b *Builder) pickInterval(scale []int, n int) int {
	if len(scale) == 0 {
		return 0
	}
	if n > len(scale) {
		n = len(scale)
	}
	return scale[b.rng.Intn(n)]
}
