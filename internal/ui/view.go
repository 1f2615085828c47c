package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ppiankov/placevalue/internal/expand"
	"github.com/ppiankov/placevalue/internal/render"
	"github.com/ppiankov/placevalue/internal/session"
)

// View renders the whole screen
func (m *Model) View() string {
	st := m.styles
	b := m.state.Breakdown

	sections := []string{m.header(), m.input.View()}

	switch m.state.Mode {
	case session.ModeQuiz:
		sections = append(sections, m.quizView())

	case session.ModeComparison:
		sections = append(sections,
			m.compare.View(),
			st.Heading.Render("Comparison"),
			render.Comparison(b, m.state.Comparison, st),
		)

	default:
		sections = append(sections, m.breakdownView())
		if m.state.Mode == session.ModeStepByStep {
			sections = append(sections, st.Heading.Render("Step by step"), render.Step(b, m.state.Step, st))
		}
	}

	sections = append(sections, m.historyView())
	if m.state.Status != "" && !(m.state.Mode == session.ModeQuiz && m.state.Quiz.Answered) {
		sections = append(sections, st.Heading.Render(m.state.Status))
	}
	sections = append(sections, "", m.help.ShortHelpView(m.keys.bindings(string(m.state.Mode))))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) header() string {
	st := m.styles

	var tabs []string
	for _, mode := range session.Modes {
		label := " " + modeLabel(mode) + " "
		if mode == m.state.Mode {
			tabs = append(tabs, st.Title.Render("["+label+"]"))
		} else {
			tabs = append(tabs, st.Muted.Render(" "+label+" "))
		}
	}

	var flags []string
	if m.state.Scientific {
		flags = append(flags, "scientific")
	}
	if m.state.Demo.Running {
		flags = append(flags, fmt.Sprintf("demo %d/%d", m.state.Demo.Index+1, len(session.DemoExamples)))
	}
	flags = append(flags, m.state.Theme)

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "  " + st.Muted.Render(strings.Join(flags, " · "))
}

func (m *Model) breakdownView() string {
	st := m.styles
	b := m.state.Breakdown

	sections := []string{
		render.Title(b, st),
		render.Boxes(b, st, m.shown),
		st.Heading.Render("Fractions"),
		render.Fractions(b, st, m.shown),
		st.Heading.Render("Expanded form"),
		render.Expanded(b, st, m.shown),
	}
	if b.Valid {
		sections = append(sections, st.Heading.Render("Total"), render.Total(b, st, m.state.Scientific))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) quizView() string {
	st := m.styles
	q := m.state.Quiz

	if q.Current == nil {
		return st.Empty.Render("Press enter for a question")
	}

	lines := []string{
		st.Heading.Render("Quiz"),
		st.Body.Render(q.Current.Text),
		m.answer.View(),
	}
	if q.Answered {
		verdict := st.Error.Render("✗ " + m.state.Status)
		if q.Correct {
			verdict = st.Success.Render("✓ Correct!")
		}
		lines = append(lines, verdict, st.Muted.Render("Press enter for the next question"))
	}
	lines = append(lines, st.Muted.Render(fmt.Sprintf("Score: %d/%d", q.Score, q.Asked)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) historyView() string {
	st := m.styles
	if len(m.state.History) == 0 {
		return ""
	}

	lines := []string{st.Heading.Render("Recent")}
	for i, e := range m.state.History {
		line := fmt.Sprintf("%2d. %s", i+1, expand.GroupThousands(e.Input))
		if e.Result != "" && e.Result != e.Input {
			line += " = " + expand.GroupThousands(e.Result)
		}
		lines = append(lines, st.Muted.Render(line))
	}
	return strings.Join(lines, "\n")
}
