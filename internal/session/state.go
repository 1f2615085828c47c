// Package session holds the interactive application state and the pure
// transitions that move it forward. Transitions never perform I/O; they
// return effects for the caller to carry out.
package session

import (
	"github.com/ppiankov/placevalue/internal/expand"
	"github.com/ppiankov/placevalue/internal/model"
	"github.com/ppiankov/placevalue/internal/quiz"
)

// Mode is the active interaction mode
type Mode string

const (
	ModeNormal     Mode = "normal"
	ModeQuiz       Mode = "quiz"
	ModeStepByStep Mode = "step-by-step"
	ModeComparison Mode = "comparison"
)

// Modes lists the modes in cycling order
var Modes = []Mode{ModeNormal, ModeQuiz, ModeStepByStep, ModeComparison}

// DemoExamples are cycled by the auto demo
var DemoExamples = []string{
	"123.456",
	"9876.54321",
	"1000.5",
	"42.125",
	"3.14159",
	"12.34",
	"999.999",
	"1.234567",
	"100.01",
	"50.25",
	"1234.5678",
	"0.123",
}

// DemoState tracks the auto demo
type DemoState struct {
	Running bool
	Index   int
}

// QuizState tracks the quiz
type QuizState struct {
	Current  *quiz.Question
	Answered bool // Current has been answered
	Correct  bool // Verdict for the last answer
	Score    int
	Asked    int
}

// State is everything the interactive surfaces render from
type State struct {
	Mode       Mode
	Input      string
	Breakdown  model.Breakdown
	Compare    string
	Comparison model.Breakdown
	History    []model.HistoryEntry
	Slots      int
	Scientific bool
	Theme      string
	Step       int
	Demo       DemoState
	Quiz       QuizState
	Status     string
}

// New returns the initial state for cfg with the given history
func New(cfg *model.Config, history []model.HistoryEntry) State {
	theme := cfg.Display.Theme
	if theme == "" {
		theme = "light"
	}
	return State{
		Mode:       ModeNormal,
		Breakdown:  expand.Build("", cfg.Display.Slots),
		Comparison: expand.Build("", cfg.Display.Slots),
		History:    history,
		Slots:      cfg.Display.Slots,
		Scientific: cfg.Display.Scientific,
		Theme:      theme,
	}
}

// CurrentStep returns the explanation at the step cursor, if any
func (s State) CurrentStep() (model.Step, bool) {
	if len(s.Breakdown.Steps) == 0 {
		return model.Step{}, false
	}
	return s.Breakdown.Steps[s.Step], true
}
