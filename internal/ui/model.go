// Package ui is the interactive terminal front end.
package ui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/ppiankov/placevalue/internal/history"
	"github.com/ppiankov/placevalue/internal/model"
	"github.com/ppiankov/placevalue/internal/quiz"
	"github.com/ppiankov/placevalue/internal/render"
	"github.com/ppiankov/placevalue/internal/reveal"
	"github.com/ppiankov/placevalue/internal/session"
)

// Options wires the model to its collaborators
type Options struct {
	Config *model.Config
	// History persists inputs and the theme. Nil keeps history in memory.
	History *history.Store
	Logger  *zap.Logger
	// Copy writes to the clipboard. Nil uses the system clipboard.
	Copy func(string) error
}

// Model is the bubbletea model for the interactive session
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	cfg     *model.Config
	timing  model.TimingConfig
	animate bool

	state session.State

	input   textinput.Model
	compare textinput.Model
	answer  textinput.Model
	focus   field

	keys keyMap
	help help.Model

	styles render.Styles
	shown  *reveal.State

	// Debounce sequence per input field
	seqs map[field]uint64

	sequencer *reveal.Sequencer
	scheduler *reveal.Scheduler
	events    chan tea.Msg

	demoGen uint64
	recall  int

	store  *history.Store
	quiz   *quiz.Generator
	copy   func(string) error
	logger *zap.Logger
}

// New creates the model. Saved history and theme are loaded from
// opts.History when present.
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	var entries []model.HistoryEntry
	if opts.History != nil {
		entries = opts.History.Load()
		if theme, ok := opts.History.Theme(); ok {
			cfg.Display.Theme = theme
		}
	}

	state := session.New(cfg, entries)
	ctx, cancel := context.WithCancel(context.Background())

	input := textinput.New()
	input.Placeholder = "Enter a decimal number, e.g. 123.456"
	input.Prompt = "Number: "
	input.CharLimit = 64
	input.Focus()

	compare := textinput.New()
	compare.Placeholder = "Second number"
	compare.Prompt = "Compare: "
	compare.CharLimit = 64

	answer := textinput.New()
	answer.Placeholder = "Digit"
	answer.Prompt = "Answer: "
	answer.CharLimit = 2

	m := &Model{
		ctx:       ctx,
		cancel:    cancel,
		cfg:       cfg,
		timing:    cfg.Timing,
		animate:   cfg.Display.Animate,
		state:     state,
		input:     input,
		compare:   compare,
		answer:    answer,
		keys:      defaultKeyMap(),
		help:      help.New(),
		seqs:      make(map[field]uint64),
		sequencer: &reveal.Sequencer{},
		scheduler: reveal.NewScheduler(),
		events:    make(chan tea.Msg, 64),
		store:     opts.History,
		quiz:      quiz.NewGenerator(cfg.Quiz),
		copy:      copyFn,
		logger:    logger,
	}
	m.restyle()
	m.shown = reveal.Revealed(state.Breakdown)
	return m
}

// State returns the current session state
func (m *Model) State() session.State {
	return m.state
}

// Init starts the cursor blink and the reveal listener
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, listen(m.events))
}

// Update handles one message
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case settledMsg:
		if msg.seq != m.seqs[msg.field] {
			return m, nil
		}
		if msg.field == fieldCompare {
			return m, m.dispatch(session.ComparisonChanged{Text: m.compare.Value()})
		}
		return m, m.dispatch(session.InputChanged{Text: m.input.Value()})

	case revealMsg:
		if msg.gen == m.sequencer.Current() {
			m.shown.Apply(msg.in)
		}
		return m, listen(m.events)

	case revealDoneMsg:
		return m, nil

	case demoTickMsg:
		if msg.gen != m.demoGen || !m.state.Demo.Running {
			return m, nil
		}
		cmd := m.dispatch(session.DemoTick{})
		m.input.SetValue(m.state.Input)
		return m, tea.Batch(cmd, m.demoTick())

	case historyMsg:
		return m, m.dispatch(session.HistoryLoaded{Entries: msg.entries})

	case statusMsg:
		return m, m.dispatch(session.StatusSet{Text: msg.text})
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.sequencer.Stop()
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Mode):
		cmd := m.dispatch(session.ModeCycled{})
		return m, tea.Batch(cmd, m.refocus())

	case key.Matches(msg, m.keys.Scientific):
		return m, m.dispatch(session.ScientificToggled{})

	case key.Matches(msg, m.keys.Theme):
		return m, m.dispatch(session.ThemeToggled{})

	case key.Matches(msg, m.keys.Demo):
		cmd := m.dispatch(session.DemoToggled{})
		if m.state.Demo.Running {
			m.input.SetValue(m.state.Input)
		}
		return m, cmd

	case key.Matches(msg, m.keys.Copy):
		return m, m.dispatch(session.CopyRequested{})

	case key.Matches(msg, m.keys.Recall):
		if len(m.state.History) == 0 {
			return m, m.dispatch(session.StatusSet{Text: "No history yet"})
		}
		index := m.recall % len(m.state.History)
		m.recall++
		cmd := m.dispatch(session.HistorySelected{Index: index})
		m.input.SetValue(m.state.Input)
		return m, cmd

	case key.Matches(msg, m.keys.Clear):
		m.recall = 0
		return m, m.dispatch(session.HistoryCleared{})
	}

	switch m.state.Mode {
	case session.ModeStepByStep:
		switch {
		case key.Matches(msg, m.keys.StepPrev):
			return m, m.dispatch(session.StepPrev{})
		case key.Matches(msg, m.keys.StepNext):
			return m, m.dispatch(session.StepNext{})
		}

	case session.ModeQuiz:
		if key.Matches(msg, m.keys.Submit) {
			if m.state.Quiz.Current != nil && !m.state.Quiz.Answered {
				cmd := m.dispatch(session.QuizAnswered{Answer: m.answer.Value()})
				return m, cmd
			}
			m.answer.Reset()
			return m, m.dispatch(session.QuizNext{})
		}
		var cmd tea.Cmd
		m.answer, cmd = m.answer.Update(msg)
		return m, cmd

	case session.ModeComparison:
		if key.Matches(msg, m.keys.Focus) {
			return m, m.toggleFocus()
		}
	}

	return m.updateInput(msg)
}

// updateInput forwards a key to the focused input and debounces changes
func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	target := &m.input
	if m.focus == fieldCompare {
		target = &m.compare
	}

	before := target.Value()
	var cmd tea.Cmd
	*target, cmd = target.Update(msg)
	if target.Value() == before {
		return m, cmd
	}

	// Typing stops the demo right away so a pending tick cannot
	// overwrite the keystrokes before the input settles.
	if m.focus == fieldMain && m.state.Demo.Running {
		cmd = tea.Batch(cmd, m.dispatch(session.DemoToggled{}))
	}

	return m, tea.Batch(cmd, m.debounce(m.focus))
}

func (m *Model) debounce(f field) tea.Cmd {
	m.seqs[f]++
	seq := m.seqs[f]
	return tea.Tick(m.timing.Debounce, func(time.Time) tea.Msg {
		return settledMsg{field: f, seq: seq}
	})
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == fieldMain {
		m.focus = fieldCompare
		m.input.Blur()
		return m.compare.Focus()
	}
	m.focus = fieldMain
	m.compare.Blur()
	return m.input.Focus()
}

// refocus picks the input that fits the current mode
func (m *Model) refocus() tea.Cmd {
	m.input.Blur()
	m.compare.Blur()
	m.answer.Blur()

	switch m.state.Mode {
	case session.ModeQuiz:
		return m.answer.Focus()
	default:
		m.focus = fieldMain
		return m.input.Focus()
	}
}

func (m *Model) restyle() {
	m.styles = render.NewStyles(render.ThemeByName(m.state.Theme), nil)
}

// dispatch reduces e and turns the resulting effects into commands
func (m *Model) dispatch(e session.Event) tea.Cmd {
	next, effects := session.Reduce(m.state, e)
	m.state = next

	var cmds []tea.Cmd
	for _, effect := range effects {
		if cmd := m.perform(effect); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) perform(effect session.Effect) tea.Cmd {
	switch eff := effect.(type) {
	case session.ScheduleReveal:
		return m.startReveal(eff.Breakdown)

	case session.SaveHistory:
		if m.store == nil || !m.cfg.History.Enabled {
			entry := model.HistoryEntry{Input: eff.Input, Result: eff.Result, Timestamp: time.Now().UTC()}
			m.state.History = history.Prepend(m.state.History, entry, m.cfg.History.Size)
			return nil
		}
		store := m.store
		return func() tea.Msg {
			entries, err := store.Add(eff.Input, eff.Result)
			if err != nil {
				return statusMsg{text: "Could not save history: " + err.Error()}
			}
			return historyMsg{entries: entries}
		}

	case session.ClearHistory:
		if m.store == nil {
			return nil
		}
		store, logger := m.store, m.logger
		return func() tea.Msg {
			if err := store.Clear(); err != nil {
				logger.Warn("Failed to clear history", zap.Error(err))
				return statusMsg{text: "Could not clear history"}
			}
			return statusMsg{text: "History cleared"}
		}

	case session.StartDemo:
		return m.demoTick()

	case session.StopDemo:
		m.demoGen++
		return nil

	case session.GenerateQuestion:
		q := m.quiz.Next()
		return m.dispatch(session.QuestionReady{Question: q})

	case session.CopyText:
		copyFn, text := m.copy, eff.Text
		return func() tea.Msg {
			if err := copyFn(text); err != nil {
				return statusMsg{text: "Copy failed: " + err.Error()}
			}
			return statusMsg{text: "Copied to clipboard"}
		}

	case session.SaveTheme:
		m.restyle()
		if m.store == nil {
			return nil
		}
		store, logger, theme := m.store, m.logger, eff.Theme
		return func() tea.Msg {
			if err := store.SaveTheme(theme); err != nil {
				logger.Warn("Failed to save theme", zap.Error(err))
			}
			return nil
		}
	}

	return nil
}

// startReveal cancels any running pass and starts one for b
func (m *Model) startReveal(b model.Breakdown) tea.Cmd {
	ctx, gen := m.sequencer.Begin(m.ctx)

	if !m.animate || !b.Valid {
		m.shown = reveal.Revealed(b)
		return nil
	}

	m.shown = reveal.NewState(b)
	return runReveal(ctx, m.scheduler, reveal.Plan(b, m.timing), gen, m.events)
}

func (m *Model) demoTick() tea.Cmd {
	m.demoGen++
	gen := m.demoGen
	return tea.Tick(m.timing.DemoInterval, func(time.Time) tea.Msg {
		return demoTickMsg{gen: gen}
	})
}

// Close stops any running reveal pass
func (m *Model) Close() {
	m.sequencer.Stop()
	m.cancel()
}

func modeLabel(mode session.Mode) string {
	return strings.ReplaceAll(string(mode), "-", " ")
}
