// Package main is the entry point for the beatsmith CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/james-see/beatsmith/pkg/api"
	"github.com/james-see/beatsmith/pkg/generator"
	"github.com/james-see/beatsmith/pkg/midiout"
	"github.com/james-see/beatsmith/pkg/music"
	"github.com/james-see/beatsmith/pkg/shell"
	"github.com/james-see/beatsmith/pkg/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	oneShot    string
	seed       int64
	outputDir  string
	sampleDirs []string
	serverPort int

	genGenre string
	genBPM   int
	genKey   string
	genBars  int
	gen808   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "beatsmith",
	Short: "Generate beats and process samples from natural language",
	Long: `beatsmith turns short natural language instructions into generated
drum and bass patterns, or into audio-editing operations on a sample.

With no arguments it starts an interactive shell. Use --command to run a
single command and exit.

Examples:
  beatsmith
  beatsmith -c "create a memphis style beat with 808s at 170 bpm"
  beatsmith generate --genre lofi --bars 8 -o beats/
  beatsmith tui
  beatsmith serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	RunE:    runRoot,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a beat from explicit parameters",
	RunE:  runGenerate,
}

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List genre templates",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range music.Genres() {
			t, _ := music.Genre(name)
			fmt.Printf("%-10s %d-%d BPM, %s scale, %s drums\n",
				name, t.TempoMin, t.TempoMax, t.Scale, t.DrumStyle)
		}
	},
}

var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "List available scales",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range music.ScaleNames() {
			intervals, _ := music.Scale(name)
			fmt.Printf("%-18s %v\n", name, intervals)
		}
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(newGenerator(), midiout.NewFileSender(outputDir))
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Starting API server on port %d...\n", serverPort)
		return api.StartServer(serverPort)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Random seed for reproducible generation (0 = random)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "Output directory for MIDI files (default current)")
	rootCmd.PersistentFlags().StringSliceVar(&sampleDirs, "samples", nil, "Directories to search for sample references")

	// Root command
	rootCmd.Flags().StringVarP(&oneShot, "command", "c", "", "Execute a single command and exit")

	// generate command
	generateCmd.Flags().StringVarP(&genGenre, "genre", "g", "trap", "Genre template")
	generateCmd.Flags().IntVar(&genBPM, "bpm", 0, "Tempo (0 = auto from genre)")
	generateCmd.Flags().StringVarP(&genKey, "key", "k", "C", "Musical key (append 'm' for minor)")
	generateCmd.Flags().IntVarP(&genBars, "bars", "b", 4, "Number of bars")
	generateCmd.Flags().BoolVar(&gen808, "808", true, "Include 808 bassline")

	// serve command
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	// Add commands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(genresCmd)
	rootCmd.AddCommand(scalesCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func newGenerator() *generator.Generator {
	if seed != 0 {
		return generator.NewSeeded(seed)
	}
	return generator.New(nil)
}

func newExecutor() *shell.Executor {
	return &shell.Executor{
		Generator:  newGenerator(),
		Sender:     midiout.NewFileSender(outputDir),
		SearchDirs: sampleDirs,
		OutputDir:  outputDir,
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	exec := newExecutor()

	if oneShot != "" {
		return exec.Execute(oneShot)
	}
	return shell.Run(exec)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gen := newGenerator()

	beat := gen.Generate(generator.Request{
		Genre:       genGenre,
		BPM:         genBPM,
		Key:         genKey,
		Bars:        genBars,
		IncludeBass: gen808,
	})

	fmt.Printf("Generated %s beat: %d BPM, key %s %s, %d events\n",
		beat.Genre, beat.BPM, beat.Key, beat.Scale, len(beat.Combined))

	sender := midiout.NewFileSender(outputDir)
	if err := sender.Send(beat.PatternName(), beat.Combined, beat.BPM); err != nil {
		return err
	}
	fmt.Printf("Wrote %s.mid\n", beat.PatternName())
	return nil
}
