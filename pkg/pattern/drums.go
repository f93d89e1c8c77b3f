package pattern

// DrumStyle selects a drum pattern rule set.
type DrumStyle string

const (
	DrumMemphis DrumStyle = "memphis"
	DrumTrap    DrumStyle = "trap"
	DrumLofi    DrumStyle = "lofi"
	DrumBoomBap DrumStyle = "boom_bap"
	DrumBasic   DrumStyle = "basic"
)

// DrumStyleFor maps a style name onto a known DrumStyle. Unknown names
// resolve to the basic four-on-the-floor style.
func DrumStyleFor(name string) DrumStyle {
	switch DrumStyle(name) {
	case DrumMemphis, DrumTrap, DrumLofi, DrumBoomBap:
		return DrumStyle(name)
	default:
		return DrumBasic
	}
}

// DrumPattern builds a drum pattern for the given style. Hit positions are
// deterministic per style; velocities and complexity-gated extra hits come
// from the builder's random source.
func (b *Builder) DrumPattern(style DrumStyle, bars int, complexity float64) Pattern {
	switch style {
	case DrumMemphis:
		return b.memphisPattern(bars, complexity)
	case DrumTrap:
		return b.trapPattern(bars, complexity)
	case DrumLofi:
		return b.lofiPattern(bars, complexity)
	case DrumBoomBap:
		return b.boomBapPattern(bars, complexity)
	default:
		return b.basicPattern(bars)
	}
}

// memphisPattern: rolling hi-hats, snappy snares.
func (b *Builder) memphisPattern(bars int, complexity float64) Pattern {
	var notes Pattern
	totalSteps := StepsPerBar * bars

	for step := 0; step < totalSteps; step++ {
		onset := float64(step) * b.stepDuration
		pos := step % StepsPerBar

		// Kick on 1 and 3, sometimes 4
		if pos == 0 || pos == 8 || (pos == 12 && b.chance(complexity)) {
			notes = append(notes, NoteEvent{
				Note:     NoteKick,
				Velocity: b.velocity(90, 110),
				Time:     onset,
				Duration: b.stepDuration * 2,
			})
		}

		// Snare on 2 and 4
		if pos == 4 || pos == 12 {
			notes = append(notes, NoteEvent{
				Note:     NoteSnare,
				Velocity: b.velocity(100, 120),
				Time:     onset,
				Duration: b.stepDuration,
			})
		}

		// Rolling hi-hats: every 8th, denser as complexity rises
		if pos%2 == 0 || b.chance(complexity) {
			var velocity uint8
			if pos%2 == 1 {
				velocity = b.velocity(60, 90)
			} else {
				velocity = b.velocity(70, 100)
			}
			notes = append(notes, NoteEvent{
				Note:     NoteHihat,
				Velocity: velocity,
				Time:     onset,
				Duration: b.stepDuration * 0.8,
			})
		}
	}

	return notes
}

// trapPattern: sparse kicks, rolling hi-hats, snare on 3.
func (b *Builder) trapPattern(bars int, complexity float64) Pattern {
	var notes Pattern
	totalSteps := StepsPerBar * bars

	for step := 0; step < totalSteps; step++ {
		onset := float64(step) * b.stepDuration
		pos := step % StepsPerBar

		if pos == 0 || pos == 6 || pos == 10 {
			notes = append(notes, NoteEvent{
				Note:     NoteKick,
				Velocity: b.velocity(100, 127),
				Time:     onset,
				Duration: b.stepDuration * 3,
			})
		}

		// Snare on 3 (step 8)
		if pos == 8 {
			notes = append(notes, NoteEvent{
				Note:     NoteSnare,
				Velocity: b.velocity(110, 127),
				Time:     onset,
				Duration: b.stepDuration * 2,
			})
		}

		if pos%2 == 0 {
			notes = append(notes, NoteEvent{
				Note:     NoteHihat,
				Velocity: b.velocity(60, 80),
				Time:     onset,
				Duration: b.stepDuration * 0.7,
			})
		}

		// Triplet hi-hat rolls before the snare and the bar line
		if complexity > 0.6 && (pos == 7 || pos == 15) && b.chance(0.7) {
			for i := 0; i < 3; i++ {
				notes = append(notes, NoteEvent{
					Note:     NoteHihat,
					Velocity: b.velocity(80, 100),
					Time:     onset + float64(i)*b.stepDuration/3,
					Duration: b.stepDuration / 3,
				})
			}
		}
	}

	return notes
}

// lofiPattern: laid-back, swung hi-hats.
func (b *Builder) lofiPattern(bars int, complexity float64) Pattern {
	var notes Pattern
	totalSteps := StepsPerBar * bars
	const swing = 0.7

	for step := 0; step < totalSteps; step++ {
		// Off-beats land late
		var onset float64
		if step%2 == 1 {
			onset = float64(step-1)*b.stepDuration + b.stepDuration*swing
		} else {
			onset = float64(step) * b.stepDuration
		}
		pos := step % StepsPerBar

		if pos == 0 || pos == 8 {
			notes = append(notes, NoteEvent{
				Note:     NoteKick,
				Velocity: b.velocity(70, 90),
				Time:     onset,
				Duration: b.stepDuration * 2,
			})
		}

		if pos == 4 || pos == 12 {
			notes = append(notes, NoteEvent{
				Note:     NoteSnare,
				Velocity: b.velocity(60, 80),
				Time:     onset,
				Duration: b.stepDuration,
			})
		}

		if pos%2 == 0 {
			notes = append(notes, NoteEvent{
				Note:     NoteHihat,
				Velocity: b.velocity(40, 60),
				Time:     onset,
				Duration: b.stepDuration,
			})
		}
	}

	return notes
}

// boomBapPattern: heavy kick and snare.
func (b *Builder) boomBapPattern(bars int, complexity float64) Pattern {
	var notes Pattern
	totalSteps := StepsPerBar * bars

	for step := 0; step < totalSteps; step++ {
		onset := float64(step) * b.stepDuration
		pos := step % StepsPerBar

		if pos == 0 || pos == 10 {
			notes = append(notes, NoteEvent{
				Note:     NoteKick,
				Velocity: b.velocity(110, 127),
				Time:     onset,
				Duration: b.stepDuration * 2,
			})
		}

		if pos == 4 || pos == 12 {
			notes = append(notes, NoteEvent{
				Note:     NoteSnare,
				Velocity: b.velocity(100, 120),
				Time:     onset,
				Duration: b.stepDuration,
			})
		}

		if pos%4 == 0 {
			notes = append(notes, NoteEvent{
				Note:     NoteHihat,
				Velocity: b.velocity(50, 70),
				Time:     onset,
				Duration: b.stepDuration,
			})
		}
	}

	return notes
}

// basicPattern: four-on-the-floor fallback.
func (b *Builder) basicPattern(bars int) Pattern {
	var notes Pattern
	totalSteps := StepsPerBar * bars

	for step := 0; step < totalSteps; step++ {
		onset := float64(step) * b.stepDuration
		pos := step % StepsPerBar

		if pos%4 == 0 {
			notes = append(notes, NoteEvent{
				Note:     NoteKick,
				Velocity: 100,
				Time:     onset,
				Duration: b.stepDuration,
			})
		}

		if pos == 4 || pos == 12 {
			notes = append(notes, NoteEvent{
				Note:     NoteSnare,
				Velocity: 100,
				Time:     onset,
				Duration: b.stepDuration,
			})
		}

		if pos%2 == 0 {
			notes = append(notes, NoteEvent{
				Note:     NoteHihat,
				Velocity: 80,
				Time:     onset,
				Duration: b.stepDuration,
			})
		}
	}

	return notes
}
