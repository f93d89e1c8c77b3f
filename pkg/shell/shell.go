package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/james-see/beatsmith/pkg/command"
	"github.com/james-see/beatsmith/pkg/music"
)

// Run starts the interactive command loop. It returns when the user
// quits; per-command failures are printed and the loop continues.
func Run(exec *Executor) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "beatsmith> ",
		InterruptPrompt: "^C",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Beatsmith - Interactive Mode")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("\nType 'help' for command syntax, 'quit' to exit")
	fmt.Println()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			fmt.Println("Use 'quit' to exit")
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return nil
		case "help":
			fmt.Println(command.Help())
			continue
		case "genres":
			printGenres()
			continue
		case "scales":
			printScales()
			continue
		}

		fmt.Printf("\n> %s\n", line)
		fmt.Println(strings.Repeat("-", 60))
		if err := exec.Execute(line); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func printGenres() {
	fmt.Println("\nAvailable genres:")
	for _, name := range music.Genres() {
		t, _ := music.Genre(name)
		fmt.Printf("  - %s: %d-%d BPM\n", name, t.TempoMin, t.TempoMax)
	}
}

func printScales() {
	fmt.Println("\nAvailable scales:")
	for _, name := range music.ScaleNames() {
		fmt.Printf("  - %s\n", name)
	}
}
