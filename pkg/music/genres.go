package music

import "sort"

// GenreTemplate describes the musical defaults of a genre.
type GenreTemplate struct {
	TempoMin   int     // inclusive BPM range lower bound
	TempoMax   int     // inclusive BPM range upper bound
	Scale      string  // default scale name
	DrumStyle  string  // drum pattern style
	BassStyle  string  // bassline pattern style
	Complexity float64 // 0.0-1.0, probability of embellishment hits
}

// genreTemplates is the fixed genre table. Read-only after init;
// Genre returns templates by value.
var genreTemplates = map[string]GenreTemplate{
	"memphis": {
		TempoMin:   160,
		TempoMax:   180,
		Scale:      "minor",
		DrumStyle:  "memphis",
		BassStyle:  "simple",
		Complexity: 0.7,
	},
	"trap": {
		TempoMin:   130,
		TempoMax:   150,
		Scale:      "minor",
		DrumStyle:  "trap",
		BassStyle:  "bouncy",
		Complexity: 0.6,
	},
	"lofi": {
		TempoMin:   70,
		TempoMax:   90,
		Scale:      "pentatonic_minor",
		DrumStyle:  "lofi",
		BassStyle:  "simple",
		Complexity: 0.4,
	},
	"boom_bap": {
		TempoMin:   85,
		TempoMax:   95,
		Scale:      "minor",
		DrumStyle:  "boom_bap",
		BassStyle:  "simple",
		Complexity: 0.5,
	},
	"drill": {
		TempoMin:   140,
		TempoMax:   150,
		Scale:      "harmonic_minor",
		DrumStyle:  "trap",
		BassStyle:  "rolling",
		Complexity: 0.8,
	},
}

// Genre returns the template for a genre name and whether it exists.
func Genre(name string) (GenreTemplate, bool) {
	t, ok := genreTemplates[name]
	return t, ok
}

// Genres returns all genre names in sorted order.
func Genres() []string {
	names := make([]string, 0, len(genreTemplates))
	for name := range genreTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
