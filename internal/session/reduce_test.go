package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/placevalue/internal/model"
	"github.com/ppiankov/placevalue/internal/quiz"
)

func newState() State {
	return New(model.DefaultConfig(), nil)
}

func TestReduce_InputChanged(t *testing.T) {
	s, effects := Reduce(newState(), InputChanged{Text: "123.456"})

	assert.True(t, s.Breakdown.Valid)
	assert.Equal(t, "123.456", s.Input)
	require.Len(t, effects, 2)
	assert.IsType(t, ScheduleReveal{}, effects[0])
	assert.Equal(t, SaveHistory{Input: "123.456", Result: "123.456"}, effects[1])
}

func TestReduce_InvalidInputClearsDisplay(t *testing.T) {
	s, _ := Reduce(newState(), InputChanged{Text: "42.5"})
	require.True(t, s.Breakdown.Valid)

	s, effects := Reduce(s, InputChanged{Text: "4.2.5"})

	assert.False(t, s.Breakdown.Valid)
	assert.Empty(t, s.Breakdown.Terms)
	assert.Empty(t, s.Breakdown.Fractions)
	assert.Empty(t, s.Breakdown.IntegerPlaces)
	require.Len(t, effects, 1, "invalid input is not recorded")
	assert.IsType(t, ScheduleReveal{}, effects[0])
}

func TestReduce_InputStopsDemo(t *testing.T) {
	s, _ := Reduce(newState(), DemoToggled{})
	require.True(t, s.Demo.Running)

	s, effects := Reduce(s, InputChanged{Text: "7"})

	assert.False(t, s.Demo.Running)
	require.NotEmpty(t, effects)
	assert.Equal(t, StopDemo{}, effects[0])
}

func TestReduce_Demo(t *testing.T) {
	s, effects := Reduce(newState(), DemoToggled{})

	require.NotEmpty(t, effects)
	assert.Equal(t, StartDemo{}, effects[0])
	assert.Equal(t, DemoExamples[0], s.Input)

	for i := 1; i <= len(DemoExamples); i++ {
		s, _ = Reduce(s, DemoTick{})
		assert.Equal(t, DemoExamples[i%len(DemoExamples)], s.Input)
	}

	s, effects = Reduce(s, DemoToggled{})
	assert.False(t, s.Demo.Running)
	assert.Equal(t, []Effect{StopDemo{}}, effects)

	// Ticks after stopping are ignored.
	before := s.Input
	s, effects = Reduce(s, DemoTick{})
	assert.Equal(t, before, s.Input)
	assert.Empty(t, effects)
}

func TestReduce_Steps(t *testing.T) {
	s, _ := Reduce(newState(), InputChanged{Text: "12.3"})
	require.Len(t, s.Breakdown.Steps, 3)

	s, _ = Reduce(s, StepPrev{})
	assert.Equal(t, 0, s.Step)

	for i := 0; i < 5; i++ {
		s, _ = Reduce(s, StepNext{})
	}
	assert.Equal(t, 2, s.Step)

	step, ok := s.CurrentStep()
	require.True(t, ok)
	assert.Equal(t, "3 in the tenths place = 3/10 = 0.3", step.Explanation)

	s, _ = Reduce(s, InputChanged{Text: "5"})
	assert.Equal(t, 0, s.Step, "new input resets the cursor")
}

func TestReduce_StepsEmpty(t *testing.T) {
	s, _ := Reduce(newState(), StepNext{})
	assert.Equal(t, 0, s.Step)
	_, ok := s.CurrentStep()
	assert.False(t, ok)
}

func TestReduce_Modes(t *testing.T) {
	s, effects := Reduce(newState(), ModeSelected{Mode: ModeQuiz})
	assert.Equal(t, ModeQuiz, s.Mode)
	assert.Equal(t, []Effect{GenerateQuestion{}}, effects)

	s, effects = Reduce(s, ModeCycled{})
	assert.Equal(t, ModeStepByStep, s.Mode)
	assert.Empty(t, effects)

	s, _ = Reduce(s, ModeCycled{})
	s, _ = Reduce(s, ModeCycled{})
	assert.Equal(t, ModeNormal, s.Mode)
}

func TestReduce_Quiz(t *testing.T) {
	s, _ := Reduce(newState(), ModeSelected{Mode: ModeQuiz})
	s, _ = Reduce(s, QuestionReady{Question: quiz.Question{Number: "12.3", Answer: 1}})
	require.NotNil(t, s.Quiz.Current)

	s, _ = Reduce(s, QuizAnswered{Answer: "1"})
	assert.True(t, s.Quiz.Correct)
	assert.Equal(t, 1, s.Quiz.Score)
	assert.Equal(t, 1, s.Quiz.Asked)

	// A second answer to the same question does not count.
	s, _ = Reduce(s, QuizAnswered{Answer: "1"})
	assert.Equal(t, 1, s.Quiz.Asked)

	s, effects := Reduce(s, QuizNext{})
	assert.Equal(t, []Effect{GenerateQuestion{}}, effects)

	s, _ = Reduce(s, QuestionReady{Question: quiz.Question{Number: "4.56", Answer: 5}})
	s, _ = Reduce(s, QuizAnswered{Answer: "6"})
	assert.False(t, s.Quiz.Correct)
	assert.Equal(t, 1, s.Quiz.Score)
	assert.Equal(t, 2, s.Quiz.Asked)
	assert.Contains(t, s.Status, "5")
}

func TestReduce_QuizAnswerWithoutQuestion(t *testing.T) {
	s, effects := Reduce(newState(), QuizAnswered{Answer: "3"})
	assert.Equal(t, 0, s.Quiz.Asked)
	assert.Empty(t, effects)
}

func TestReduce_History(t *testing.T) {
	entries := []model.HistoryEntry{{Input: "3.14"}, {Input: "2.5"}}
	s, _ := Reduce(newState(), HistoryLoaded{Entries: entries})

	s, effects := Reduce(s, HistorySelected{Index: 1})
	assert.Equal(t, "2.5", s.Input)
	require.Len(t, effects, 1, "re-displaying history does not record it again")

	s, effects = Reduce(s, HistorySelected{Index: 9})
	assert.Equal(t, "2.5", s.Input)
	assert.Empty(t, effects)

	s, effects = Reduce(s, HistoryCleared{})
	assert.Empty(t, s.History)
	assert.Equal(t, []Effect{ClearHistory{}}, effects)
}

func TestReduce_Copy(t *testing.T) {
	s, effects := Reduce(newState(), CopyRequested{})
	assert.Empty(t, effects)
	assert.Equal(t, "Nothing to copy", s.Status)

	s, _ = Reduce(s, InputChanged{Text: "1234.5"})
	_, effects = Reduce(s, CopyRequested{})
	require.Len(t, effects, 1)
	assert.Equal(t, CopyText{Text: "4 × 1 + 3 × 10 + 2 × 100 + 1 × 1000 + 5/10\n1,234.5 = 1,234.5"}, effects[0])
}

func TestReduce_ThemeAndScientific(t *testing.T) {
	s, effects := Reduce(newState(), ThemeToggled{})
	assert.Equal(t, "dark", s.Theme)
	assert.Equal(t, []Effect{SaveTheme{Theme: "dark"}}, effects)

	s, _ = Reduce(s, ThemeToggled{})
	assert.Equal(t, "light", s.Theme)

	s, _ = Reduce(s, ScientificToggled{})
	assert.True(t, s.Scientific)
}

func TestReduce_Comparison(t *testing.T) {
	s, _ := Reduce(newState(), ModeSelected{Mode: ModeComparison})
	s, _ = Reduce(s, ComparisonChanged{Text: "0.75"})

	assert.True(t, s.Comparison.Valid)
	assert.Equal(t, "0.75", s.Compare)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	before := newState()
	before.History = []model.HistoryEntry{{Input: "1"}}

	_, _ = Reduce(before, HistoryCleared{})
	assert.Len(t, before.History, 1)
}
