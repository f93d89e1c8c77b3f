package pattern

// octaveShifts are the candidate jumps for melodic octave variation.
var octaveShifts = []int{-12, 0, 12}

// Melody builds a probabilistic melody over the scale. Density controls
// how many grid steps carry a note (0.0-1.0).
func (b *Builder) Melody(root int, scale []int, bars int, density float64) Pattern {
	var notes Pattern
	totalSteps := StepsPerBar * bars

	for step := 0; step < totalSteps; step++ {
		if !b.chance(density) {
			continue
		}

		interval := 0
		if len(scale) > 0 {
			interval = scale[b.rng.Intn(len(scale))]
		}

		shift := 0
		if b.chance(0.2) {
			shift = octaveShifts[b.rng.Intn(len(octaveShifts))]
		}

		notes = append(notes, NoteEvent{
			Note:     clampNote(root + interval + shift),
			Velocity: b.velocity(70, 100),
			Time:     float64(step) * b.stepDuration,
			Duration: b.stepDuration * float64(1+b.rng.Intn(4)),
		})
	}

	return notes
}
