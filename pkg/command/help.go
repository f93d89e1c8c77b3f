package command

// Help returns the command syntax reference shown by the interactive shell.
func Help() string {
	return `
Beatsmith Commands
==================

SAMPLE PROCESSING:
  take <file> [operations] insert at bar <N> [beat <N>]

  Operations:
    - pitch up/down <N> semitones
    - stretch by <factor> (e.g., 0.82 for slower)
    - lowpass/highpass/bandpass <frequency> hz
    - slice into <N> slices

  Examples:
    "take sample.wav, pitch down 3 semitones, stretch by 0.82, insert at bar 40 beat 3"
    "load vocal.wav, highpass 200 hz, slice into 8, insert at measure 16"

BEAT GENERATION:
  create [a] <genre> [style] beat [with 808s] [at <bpm> bpm] [in key of <key>] [<bars> bars]

  Genres: memphis, trap, lofi, boom bap, drill

  Examples:
    "create a memphis style beat with 808s at 170 bpm"
    "make a trap beat in key of Dm with 808s"
    "generate a lofi beat at 80 bpm 8 bars"

KEYS: C, Dm, F#, Bbm, etc. (append 'm' for minor)
`
}
