package command

import (
	"regexp"
	"strconv"
	"strings"
)

// Regex grammar for the command language. Input is lowercased before
// matching, so the patterns are written against lowercase text.
var (
	reSample  = regexp.MustCompile(`(?:take|load|use|get)\s+(.+?\.(?:wav|mp3|flac|aiff))`)
	rePitch   = regexp.MustCompile(`pitch\s+(?:down|up)?\s*(-?\d+)\s*(?:semitones?|st)?`)
	reStretch = regexp.MustCompile(`stretch\s+(?:by\s+)?([0-9.]+)`)
	reFilter  = regexp.MustCompile(`(lowpass|highpass|bandpass)\s+(?:filter\s+)?(?:at\s+)?(\d+)\s*(?:hz)?`)
	reSlice   = regexp.MustCompile(`(?:slice|chop)\s+(?:into\s+)?(\d+)\s*(?:slices?|parts?)?`)
	reInsert  = regexp.MustCompile(`insert\s+(?:at\s+)?(?:bar\s+)?(\d+)(?:\s+beat\s+)?(\d+)?`)
	reMeasure = regexp.MustCompile(`(?:at\s+)?(?:the\s+)?(?:end\s+of\s+)?(?:measure|bar)\s+(\d+)`)
	reBeat    = regexp.MustCompile(`(?:beat|count)\s+(\d+)`)
	reCreate  = regexp.MustCompile(`create\s+(?:a\s+)?(.+?)\s+(?:style\s+)?beat`)
	reGenre   = regexp.MustCompile(`(memphis|trap|lofi|boom\s*bap|drill)`)
	reWith808 = regexp.MustCompile(`with\s+808s?`)
	reBPM     = regexp.MustCompile(`(?:at\s+)?(\d+)\s*bpm`)
	reKey     = regexp.MustCompile(`(?:key\s+of\s+|\bin\s+)([a-g][#b]?m?)(?:[^a-z]|$)`)
	reBars    = regexp.MustCompile(`(\d+)\s+bars?`)
)

// Keywords that classify the intent of a command. Sample keywords are
// checked first, so a sentence containing both kinds always resolves to
// sample processing.
var (
	sampleWords = []string{"take", "load", "use", "sample"}
	createWords = []string{"create", "make", "generate"}
)

// Genres searched when the loose "create a <description> beat" fallback
// fires. Matches the primary vocabulary minus boom bap, whose space makes
// a substring search unreliable.
var fallbackGenres = []string{"memphis", "trap", "lofi", "drill"}

// Parse parses a natural language command into a structured Command.
//
// Examples:
//
//	"take sample.wav, pitch down 3 semitones, stretch by .82, insert at bar 40 beat 3"
//	"create a memphis style beat with 808s at 170 bpm"
func Parse(raw string) Command {
	text := strings.ToLower(strings.TrimSpace(raw))

	if containsAny(text, sampleWords) {
		return parseSample(text)
	}
	if containsAny(text, createWords) {
		return parseGenerate(text)
	}
	return Command{Type: TypeUnknown, Raw: text}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// parseSample extracts a sample reference, an operation list and an insert
// position. Operations are checked in a fixed order (pitch, stretch,
// filter, slice) with at most one of each kind.
func parseSample(text string) Command {
	cmd := Command{
		Type:       TypeSampleProcess,
		InsertBeat: 1,
	}

	if m := reSample.FindStringSubmatch(text); m != nil {
		cmd.SamplePath = m[1]
	}

	if m := rePitch.FindStringSubmatch(text); m != nil {
		if semitones, err := strconv.Atoi(m[1]); err == nil {
			// "down" always means negative, even when the number
			// itself carries no sign
			if strings.Contains(text, "pitch down") && semitones > 0 {
				semitones = -semitones
			}
			cmd.Operations = append(cmd.Operations, NewPitchShift(semitones))
		}
	}

	if m := reStretch.FindStringSubmatch(text); m != nil {
		if rate, err := strconv.ParseFloat(m[1], 64); err == nil {
			if op, err := NewTimeStretch(rate); err == nil {
				cmd.Operations = append(cmd.Operations, op)
			}
		}
	}

	if m := reFilter.FindStringSubmatch(text); m != nil {
		if cutoff, err := strconv.Atoi(m[2]); err == nil {
			if op, err := NewFilter(FilterKind(m[1]), cutoff); err == nil {
				cmd.Operations = append(cmd.Operations, op)
			}
		}
	}

	if m := reSlice.FindStringSubmatch(text); m != nil {
		if count, err := strconv.Atoi(m[1]); err == nil {
			if op, err := NewSlice(count); err == nil {
				cmd.Operations = append(cmd.Operations, op)
			}
		}
	}

	if m := reInsert.FindStringSubmatch(text); m != nil {
		if bar, err := strconv.Atoi(m[1]); err == nil {
			cmd.InsertBar = bar
		}
		if m[2] != "" {
			if beat, err := strconv.Atoi(m[2]); err == nil {
				cmd.InsertBeat = beat
			}
		}
	}

	// Alternative position grammar, only when the primary insert
	// pattern did not match
	if cmd.InsertBar == 0 {
		if m := reMeasure.FindStringSubmatch(text); m != nil {
			if bar, err := strconv.Atoi(m[1]); err == nil {
				cmd.InsertBar = bar
			}
			if bm := reBeat.FindStringSubmatch(text); bm != nil {
				if beat, err := strconv.Atoi(bm[1]); err == nil {
					cmd.InsertBeat = beat
				}
			}
		}
	}

	return cmd
}

// parseGenerate extracts genre, tempo, key, bar count and the 808 flag.
func parseGenerate(text string) Command {
	cmd := Command{
		Type: TypeGenerate,
		Key:  "C",
		Bars: 4,
	}

	if m := reGenre.FindStringSubmatch(text); m != nil {
		cmd.Genre = strings.ReplaceAll(m[1], " ", "_") // boom bap -> boom_bap
	} else if strings.Contains(text, "beat") {
		if m := reCreate.FindStringSubmatch(text); m != nil {
			description := m[1]
			for _, genre := range fallbackGenres {
				if strings.Contains(description, genre) {
					cmd.Genre = genre
					break
				}
			}
		}
	}
	if cmd.Genre == "" {
		cmd.Genre = "trap"
	}

	if m := reBPM.FindStringSubmatch(text); m != nil {
		if bpm, err := strconv.Atoi(m[1]); err == nil {
			cmd.BPM = bpm
		}
	}

	if m := reKey.FindStringSubmatch(text); m != nil {
		key := m[1]
		// Uppercase the root letter, keep accidental and minor marker
		cmd.Key = strings.ToUpper(key[:1]) + key[1:]
	}

	if m := reBars.FindStringSubmatch(text); m != nil {
		if bars, err := strconv.Atoi(m[1]); err == nil {
			cmd.Bars = bars
		}
	}

	if reWith808.MatchString(text) {
		cmd.IncludeBass = true
	}

	return cmd
}
