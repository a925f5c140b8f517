// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program and bridges render events into it
package ui

import (
	"github.com/Resonate-Protocol/resonate-noise/internal/render"
	tea "github.com/charmbracelet/bubbletea"
)

// Request describes the render shown in the header
type Request struct {
	Title      string
	Output     string
	SampleRate int
	Channels   int
}

// NewModel creates a new TUI model
func NewModel(req Request) Model {
	return Model{
		title:      req.Title,
		output:     req.Output,
		sampleRate: req.SampleRate,
		channels:   req.Channels,
		stages:     render.Stages,
		details:    make(map[render.Stage]string),
	}
}

// Run creates the TUI program. The caller runs it and sends updates.
func Run(req Request) (*tea.Program, error) {
	p := tea.NewProgram(NewModel(req), tea.WithAltScreen())
	return p, nil
}

// Observer forwards render stage events to the program
func Observer(p *tea.Program) render.Observer {
	return render.ObserverFunc(func(e render.Event) {
		p.Send(StageMsg(e))
	})
}
