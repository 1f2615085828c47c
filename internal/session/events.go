package session

import (
	"github.com/ppiankov/placevalue/internal/model"
	"github.com/ppiankov/placevalue/internal/quiz"
)

// Event is an input to Reduce
type Event interface {
	isEvent()
}

// InputChanged carries the settled text of the main input
type InputChanged struct{ Text string }

// ComparisonChanged carries the settled text of the comparison input
type ComparisonChanged struct{ Text string }

// ModeSelected switches modes
type ModeSelected struct{ Mode Mode }

// ModeCycled moves to the next mode
type ModeCycled struct{}

// ScientificToggled flips scientific notation
type ScientificToggled struct{}

// ThemeToggled flips between light and dark
type ThemeToggled struct{}

// StepNext advances the step cursor
type StepNext struct{}

// StepPrev moves the step cursor back
type StepPrev struct{}

// DemoToggled starts or stops the auto demo
type DemoToggled struct{}

// DemoTick advances a running demo
type DemoTick struct{}

// QuizNext requests a new question
type QuizNext struct{}

// QuestionReady delivers a generated question
type QuestionReady struct{ Question quiz.Question }

// QuizAnswered carries the user's answer
type QuizAnswered struct{ Answer string }

// HistoryLoaded replaces the in-memory history
type HistoryLoaded struct{ Entries []model.HistoryEntry }

// HistorySelected re-displays a history entry
type HistorySelected struct{ Index int }

// HistoryCleared empties the history
type HistoryCleared struct{}

// CopyRequested copies the expanded form
type CopyRequested struct{}

// StatusSet shows a transient message
type StatusSet struct{ Text string }

func (InputChanged) isEvent()      {}
func (ComparisonChanged) isEvent() {}
func (ModeSelected) isEvent()      {}
func (ModeCycled) isEvent()        {}
func (ScientificToggled) isEvent() {}
func (ThemeToggled) isEvent()      {}
func (StepNext) isEvent()          {}
func (StepPrev) isEvent()          {}
func (DemoToggled) isEvent()       {}
func (DemoTick) isEvent()          {}
func (QuizNext) isEvent()          {}
func (QuestionReady) isEvent()     {}
func (QuizAnswered) isEvent()      {}
func (HistoryLoaded) isEvent()     {}
func (HistorySelected) isEvent()   {}
func (HistoryCleared) isEvent()    {}
func (CopyRequested) isEvent()     {}
func (StatusSet) isEvent()         {}

// Effect is a side effect requested by Reduce
type Effect interface {
	isEffect()
}

// SaveHistory records a valid input
type SaveHistory struct {
	Input  string
	Result string
}

// ClearHistory deletes the stored history
type ClearHistory struct{}

// ScheduleReveal starts a reveal pass for the breakdown, cancelling any
// pass still running.
type ScheduleReveal struct{ Breakdown model.Breakdown }

// StartDemo starts the demo ticker
type StartDemo struct{}

// StopDemo stops the demo ticker
type StopDemo struct{}

// GenerateQuestion asks for a new quiz question
type GenerateQuestion struct{}

// CopyText puts text on the clipboard
type CopyText struct{ Text string }

// SaveTheme persists the chosen theme
type SaveTheme struct{ Theme string }

func (SaveHistory) isEffect()      {}
func (ClearHistory) isEffect()     {}
func (ScheduleReveal) isEffect()   {}
func (StartDemo) isEffect()        {}
func (StopDemo) isEffect()         {}
func (GenerateQuestion) isEffect() {}
func (CopyText) isEffect()         {}
func (SaveTheme) isEffect()        {}
