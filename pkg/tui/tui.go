// Package tui provides a terminal user interface for beatsmith
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/james-see/beatsmith/pkg/command"
	"github.com/james-see/beatsmith/pkg/generator"
	"github.com/james-see/beatsmith/pkg/midiout"
	"github.com/james-see/beatsmith/pkg/music"
)

// 808/trap aesthetic: deep purple and gold
var (
	trapPurple = lipgloss.Color("#9D4EDD")
	trapGold   = lipgloss.Color("#FFD60A")
	silverGray = lipgloss.Color("#C0C0C0")
	darkGray   = lipgloss.Color("#333333")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(trapPurple).
			Background(darkGray).
			Padding(0, 2).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(silverGray)

	valueStyle = lipgloss.NewStyle().
			Foreground(trapGold)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(trapPurple).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(trapPurple).
			Padding(1, 2)
)

// State represents the current TUI state
type State int

const (
	StateInput State = iota
	StateGenerating
	StateResult
)

// Model represents the TUI model
type Model struct {
	state   State
	input   textinput.Model
	spinner spinner.Model
	gen     *generator.Generator
	sender  midiout.Sender
	beat    *generator.Beat
	parsed  command.Command
	err     error
	width   int
	height  int
}

// generationDoneMsg signals generation completion
type generationDoneMsg struct {
	beat *generator.Beat
	err  error
}

// New creates a new TUI model
func New(gen *generator.Generator, sender midiout.Sender) Model {
	ti := textinput.New()
	ti.Placeholder = "create a memphis style beat with 808s at 170 bpm"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 64

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(trapPurple)

	return Model{
		state:   StateInput,
		input:   ti,
		spinner: s,
		gen:     gen,
		sender:  sender,
	}
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateInput:
			return m.updateInput(msg)
		case StateResult:
			return m.updateResult(msg)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case generationDoneMsg:
		m.state = StateResult
		m.beat = msg.beat
		m.err = msg.err
		return m, nil
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		m.parsed = command.Parse(text)
		m.state = StateGenerating
		return m, tea.Batch(m.spinner.Tick, m.performGeneration())
	case "ctrl+c", "esc":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.state = StateInput
		m.beat = nil
		m.err = nil
		m.input.SetValue("")
		return m, textinput.Blink
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) performGeneration() tea.Cmd {
	parsed := m.parsed
	gen := m.gen
	sender := m.sender
	return func() tea.Msg {
		if parsed.Type != command.TypeGenerate {
			return generationDoneMsg{err: fmt.Errorf("not a generation command: %q", parsed.Raw)}
		}

		beat := gen.Generate(generator.Request{
			Genre:       parsed.Genre,
			BPM:         parsed.BPM,
			Key:         parsed.Key,
			Bars:        parsed.Bars,
			IncludeBass: parsed.IncludeBass,
		})

		if sender != nil {
			if err := sender.Send(beat.PatternName(), beat.Combined, beat.BPM); err != nil {
				return generationDoneMsg{beat: beat, err: err}
			}
		}

		return generationDoneMsg{beat: beat}
	}
}

// View renders the TUI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(asciiLogo())
	s.WriteString("\n")

	switch m.state {
	case StateInput:
		s.WriteString(m.viewInput())
	case StateGenerating:
		s.WriteString(m.viewGenerating())
	case StateResult:
		s.WriteString(m.viewResult())
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("enter: run • esc: quit"))

	return s.String()
}

func (m Model) viewInput() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" DESCRIBE YOUR BEAT "))
	s.WriteString("\n\n")
	s.WriteString(m.input.View())
	s.WriteString("\n\n")
	s.WriteString(labelStyle.Render(fmt.Sprintf("Genres: %s", strings.Join(music.Genres(), ", "))))

	return boxStyle.Render(s.String())
}

func (m Model) viewGenerating() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" GENERATING "))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("%s Cooking up a %s beat...", m.spinner.View(), m.parsed.Genre))

	return boxStyle.Render(s.String())
}

func (m Model) viewResult() string {
	var s strings.Builder

	if m.err != nil {
		s.WriteString(titleStyle.Render(" ERROR "))
		s.WriteString("\n\n")
		s.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s", m.err.Error())))
	} else if m.beat != nil {
		s.WriteString(titleStyle.Render(" BEAT READY "))
		s.WriteString("\n\n")
		s.WriteString(successStyle.Render("✓ Generation complete!"))
		s.WriteString("\n\n")
		s.WriteString(labelStyle.Render("Genre:  ") + valueStyle.Render(m.beat.Genre) + "\n")
		s.WriteString(labelStyle.Render("BPM:    ") + valueStyle.Render(fmt.Sprintf("%d", m.beat.BPM)) + "\n")
		s.WriteString(labelStyle.Render("Key:    ") + valueStyle.Render(fmt.Sprintf("%s %s", m.beat.Key, m.beat.Scale)) + "\n")
		s.WriteString(labelStyle.Render("Events: ") + valueStyle.Render(fmt.Sprintf("%d drum / %d bass", len(m.beat.Drums), len(m.beat.Bass))) + "\n")
		s.WriteString(labelStyle.Render("Output: ") + valueStyle.Render(m.beat.PatternName()+".mid"))
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Press enter to continue"))

	return boxStyle.Render(s.String())
}

func asciiLogo() string {
	logo := `
   ____  _____    _  _____ ____  __  __ ___ _____ _   _
  | __ )| ____|  / \|_   _/ ___||  \/  |_ _|_   _| | | |
  |  _ \|  _|   / _ \ | | \___ \| |\/| || |  | | | |_| |
  | |_) | |___ / ___ \| |  ___) | |  | || |  | | |  _  |
  |____/|_____/_/   \_\_| |____/|_|  |_|___| |_| |_| |_|
`
	return lipgloss.NewStyle().Foreground(trapPurple).Render(logo)
}

// Run starts the TUI application
func Run(gen *generator.Generator, sender midiout.Sender) error {
	p := tea.NewProgram(New(gen, sender), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
