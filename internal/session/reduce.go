package session

import (
	"strconv"
	"strings"

	"github.com/ppiankov/placevalue/internal/expand"
)

// Reduce applies e to s and returns the new state with the effects the
// caller must perform, in order.
func Reduce(s State, e Event) (State, []Effect) {
	switch e := e.(type) {
	case InputChanged:
		var effects []Effect
		if s.Demo.Running {
			s.Demo.Running = false
			effects = append(effects, StopDemo{})
		}
		next, more := display(s, e.Text, true)
		return next, append(effects, more...)

	case ComparisonChanged:
		s.Compare = e.Text
		s.Comparison = expand.Build(e.Text, s.Slots)
		return s, nil

	case ModeSelected:
		return selectMode(s, e.Mode)

	case ModeCycled:
		next := Modes[0]
		for i, m := range Modes {
			if m == s.Mode {
				next = Modes[(i+1)%len(Modes)]
				break
			}
		}
		return selectMode(s, next)

	case ScientificToggled:
		s.Scientific = !s.Scientific
		return s, nil

	case ThemeToggled:
		if s.Theme == "dark" {
			s.Theme = "light"
		} else {
			s.Theme = "dark"
		}
		return s, []Effect{SaveTheme{Theme: s.Theme}}

	case StepNext:
		if s.Step < len(s.Breakdown.Steps)-1 {
			s.Step++
		}
		return s, nil

	case StepPrev:
		if s.Step > 0 {
			s.Step--
		}
		return s, nil

	case DemoToggled:
		if s.Demo.Running {
			s.Demo.Running = false
			return s, []Effect{StopDemo{}}
		}
		s.Demo = DemoState{Running: true, Index: 0}
		next, effects := display(s, DemoExamples[0], true)
		return next, append([]Effect{StartDemo{}}, effects...)

	case DemoTick:
		if !s.Demo.Running {
			return s, nil
		}
		s.Demo.Index = (s.Demo.Index + 1) % len(DemoExamples)
		return display(s, DemoExamples[s.Demo.Index], true)

	case QuizNext:
		return s, []Effect{GenerateQuestion{}}

	case QuestionReady:
		q := e.Question
		s.Quiz.Current = &q
		s.Quiz.Answered = false
		s.Quiz.Correct = false
		return s, nil

	case QuizAnswered:
		if s.Quiz.Current == nil || s.Quiz.Answered {
			return s, nil
		}
		s.Quiz.Answered = true
		s.Quiz.Asked++
		s.Quiz.Correct = s.Quiz.Current.Check(e.Answer)
		if s.Quiz.Correct {
			s.Quiz.Score++
			s.Status = "Correct!"
		} else {
			s.Status = "Not quite: the answer is " + strconv.Itoa(s.Quiz.Current.Answer)
		}
		return s, nil

	case HistoryLoaded:
		s.History = e.Entries
		return s, nil

	case HistorySelected:
		if e.Index < 0 || e.Index >= len(s.History) {
			return s, nil
		}
		return display(s, s.History[e.Index].Input, false)

	case HistoryCleared:
		s.History = nil
		return s, []Effect{ClearHistory{}}

	case CopyRequested:
		text := CopyableText(s)
		if text == "" {
			s.Status = "Nothing to copy"
			return s, nil
		}
		return s, []Effect{CopyText{Text: text}}

	case StatusSet:
		s.Status = e.Text
		return s, nil
	}

	return s, nil
}

// display rebuilds the breakdown for text. Invalid input clears every
// derived section; valid input is recorded when record is set.
func display(s State, text string, record bool) (State, []Effect) {
	s.Input = text
	s.Breakdown = expand.Build(text, s.Slots)
	s.Step = 0
	s.Status = ""

	effects := []Effect{ScheduleReveal{Breakdown: s.Breakdown}}
	if record && s.Breakdown.Valid && strings.TrimSpace(text) != "" {
		effects = append(effects, SaveHistory{Input: text, Result: s.Breakdown.Total})
	}
	return s, effects
}

func selectMode(s State, m Mode) (State, []Effect) {
	s.Mode = m
	s.Step = 0
	s.Status = ""
	if m == ModeQuiz && s.Quiz.Current == nil {
		return s, []Effect{GenerateQuestion{}}
	}
	return s, nil
}

// CopyableText is the expanded form followed by "input = total"
func CopyableText(s State) string {
	b := s.Breakdown
	if !b.Valid {
		return ""
	}
	text := expand.SignedExpandedForm(b.Terms, b.Negative)
	if b.Total != "" {
		text += "\n" + b.Formatted + " = " + expand.GroupThousands(b.Total)
	}
	return text
}
