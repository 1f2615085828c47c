package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ppiankov/placevalue/internal/model"
	"github.com/ppiankov/placevalue/internal/reveal"
)

// field identifies a debounced text input
type field int

const (
	fieldMain field = iota
	fieldCompare
)

// settledMsg fires once an input has been quiet for the debounce delay.
// Only the latest seq per field is acted on.
type settledMsg struct {
	field field
	seq   uint64
}

// revealMsg carries one instruction of reveal pass gen
type revealMsg struct {
	gen uint64
	in  reveal.Instruction
}

// revealDoneMsg marks the end of reveal pass gen
type revealDoneMsg struct {
	gen uint64
}

// demoTickMsg advances demo run gen
type demoTickMsg struct {
	gen uint64
}

// historyMsg delivers the stored history after a change
type historyMsg struct {
	entries []model.HistoryEntry
}

// statusMsg shows a transient message
type statusMsg struct {
	text string
}

// runReveal drains plan on s, sending every instruction to ch tagged with
// gen. It returns revealDoneMsg when the pass completes or is cancelled.
func runReveal(ctx context.Context, s *reveal.Scheduler, plan []reveal.Instruction, gen uint64, ch chan<- tea.Msg) tea.Cmd {
	return func() tea.Msg {
		_ = s.Run(ctx, plan, func(in reveal.Instruction) {
			select {
			case ch <- revealMsg{gen: gen, in: in}:
			case <-ctx.Done():
			}
		})
		return revealDoneMsg{gen: gen}
	}
}

// listen waits for the next message on ch
func listen(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}
