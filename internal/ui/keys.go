package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Mode       key.Binding
	Scientific key.Binding
	Theme      key.Binding
	Demo       key.Binding
	StepPrev   key.Binding
	StepNext   key.Binding
	Focus      key.Binding
	Submit     key.Binding
	Copy       key.Binding
	Recall     key.Binding
	Clear      key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Mode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "mode"),
		),
		Scientific: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "scientific"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		Demo: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "demo"),
		),
		StepPrev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev step"),
		),
		StepNext: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next step"),
		),
		Focus: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "switch input"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "answer / next"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		Recall: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "recall history"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// bindings lists the keys relevant to the current mode for the help line
func (k keyMap) bindings(mode string) []key.Binding {
	common := []key.Binding{k.Mode, k.Scientific, k.Theme, k.Demo, k.Copy, k.Recall, k.Clear, k.Quit}
	switch mode {
	case "step-by-step":
		return append([]key.Binding{k.StepPrev, k.StepNext}, common...)
	case "quiz":
		return append([]key.Binding{k.Submit}, common...)
	case "comparison":
		return append([]key.Binding{k.Focus}, common...)
	}
	return common
}
