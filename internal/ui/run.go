package ui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ppiankov/placevalue/internal/model"
	"github.com/ppiankov/placevalue/internal/render"
	"github.com/ppiankov/placevalue/internal/reveal"
)

// Run starts the full-screen interactive session
func Run(opts Options) error {
	m := New(opts)
	defer m.Close()

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

// revealModel plays one reveal pass inline and exits
type revealModel struct {
	ctx       context.Context
	b         model.Breakdown
	styles    render.Styles
	opts      render.Options
	plan      []reveal.Instruction
	scheduler *reveal.Scheduler
	shown     *reveal.State
	events    chan tea.Msg
	done      bool
}

func (m *revealModel) Init() tea.Cmd {
	return tea.Batch(
		runReveal(m.ctx, m.scheduler, m.plan, 1, m.events),
		listen(m.events),
	)
}

func (m *revealModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case revealMsg:
		m.shown.Apply(msg.in)
		return m, listen(m.events)
	case revealDoneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.shown = reveal.Revealed(m.b)
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *revealModel) View() string {
	opts := m.opts
	opts.Reveal = m.shown
	if !m.done {
		opts.Steps = false
	}
	return render.Text(m.b, m.styles, opts) + "\n"
}

// Animate plays the reveal of b inline on out using timing, then leaves the
// complete breakdown on screen.
func Animate(ctx context.Context, out io.Writer, b model.Breakdown, theme string, timing model.TimingConfig, opts render.Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := &revealModel{
		ctx:       ctx,
		b:         b,
		styles:    render.NewStyles(render.ThemeByName(theme), nil),
		opts:      opts,
		plan:      reveal.Plan(b, timing),
		scheduler: reveal.NewScheduler(),
		shown:     reveal.NewState(b),
		events:    make(chan tea.Msg, 64),
	}

	if _, err := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("animate reveal: %w", err)
	}
	return nil
}
