// ABOUTME: Bubbletea model for render progress TUI
// ABOUTME: Tracks pipeline stages and shows the final summary
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Resonate-Protocol/resonate-noise/internal/render"
	tea "github.com/charmbracelet/bubbletea"
)

// Model represents the TUI state
type Model struct {
	// Request
	title      string
	output     string
	sampleRate int
	channels   int

	// Progress
	renderID string
	stages   []render.Stage
	details  map[render.Stage]string
	elapsed  time.Duration

	// Outcome
	finished bool
	summary  string
	err      error

	// Dimensions
	width  int
	height int
}

// StageMsg reports a completed pipeline stage
type StageMsg render.Event

// DoneMsg reports the end of a render and write
type DoneMsg struct {
	Summary string
	Err     error
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case StageMsg:
		m.applyStage(msg)
	case DoneMsg:
		m.finished = true
		m.summary = msg.Summary
		m.err = msg.Err
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString(m.renderStages())
	b.WriteString(m.renderOutcome())
	b.WriteString(m.renderHelp())
	return b.String()
}

// renderHeader renders the render request
func (m Model) renderHeader() string {
	id := m.renderID
	if id == "" {
		id = "pending"
	}
	format := fmt.Sprintf("%dHz %s 16-bit", m.sampleRate, channelName(m.channels))

	return fmt.Sprintf(`┌─ Resonate Noise ─────────────────────────────────────┐
│ Render: %-44s │
│ ID:     %-44s │
│ Format: %-44s │
│ Output: %-44s │
├──────────────────────────────────────────────────────┤
`, truncate(m.title, 44), truncate(id, 44), format, truncate(m.output, 44))
}

// renderStages renders one line per pipeline stage
func (m Model) renderStages() string {
	var b strings.Builder
	for _, stage := range m.stages {
		icon := "·"
		detail := "pending"
		if d, ok := m.details[stage]; ok {
			icon = "✓"
			detail = d
		}
		fmt.Fprintf(&b, "│ %s %-9s %-41s │\n", icon, stage, truncate(detail, 41))
	}

	bar := renderBar(m.completed(), len(m.stages), 30)
	fmt.Fprintf(&b, "│                                                      │\n"+
		"│ [%s] %d/%d %-13s │\n",
		bar, m.completed(), len(m.stages), m.elapsed.Round(time.Millisecond))
	return b.String()
}

// renderOutcome renders the result once the render finishes
func (m Model) renderOutcome() string {
	if !m.finished {
		return ""
	}

	s := "├──────────────────────────────────────────────────────┤\n"
	if m.err != nil {
		return s + fmt.Sprintf("│ Error: %-45s │\n", truncate(m.err.Error(), 45))
	}
	for _, line := range wrap(m.summary, 52) {
		s += fmt.Sprintf("│ %-52s │\n", line)
	}
	return s
}

// renderHelp renders keyboard shortcuts
func (m Model) renderHelp() string {
	return `│ q:Quit                                               │
└──────────────────────────────────────────────────────┘
`
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	return m, nil
}

// applyStage records a completed stage
func (m *Model) applyStage(msg StageMsg) {
	if m.details == nil {
		m.details = make(map[render.Stage]string)
	}
	m.renderID = msg.RenderID.String()
	m.details[msg.Stage] = msg.Detail
	m.elapsed = msg.Elapsed
}

func (m Model) completed() int {
	n := 0
	for _, stage := range m.stages {
		if _, ok := m.details[stage]; ok {
			n++
		}
	}
	return n
}

// Utility functions
func renderBar(value, max, width int) string {
	if max <= 0 {
		return strings.Repeat("░", width)
	}
	filled := (value * width) / max
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func channelName(channels int) string {
	if channels == 1 {
		return "Mono"
	}
	return "Stereo"
}

// wrap splits s into lines of at most width bytes at spaces
func wrap(s string, width int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	for i, l := range lines {
		lines[i] = truncate(l, width)
	}
	return lines
}
