package reveal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ppiankov/placevalue/internal/expand"
	"github.com/ppiankov/placevalue/internal/model"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPlan_Offsets(t *testing.T) {
	b := expand.Build("12.05", 8)
	plan := Plan(b, model.DefaultTiming())

	// 2 integer boxes + 2 decimal boxes, 4 steps each; 1 fraction; 3 terms
	if len(plan) != 16+1+3 {
		t.Fatalf("expected 20 instructions, got %d", len(plan))
	}

	for i := 1; i < len(plan); i++ {
		if plan[i].Offset < plan[i-1].Offset {
			t.Fatalf("plan not sorted at %d: %v after %v", i, plan[i].Offset, plan[i-1].Offset)
		}
	}

	find := func(section Section, index int, action Action) Instruction {
		for _, in := range plan {
			if in.Section == section && in.Index == index && in.Action == action {
				return in
			}
		}
		t.Fatalf("missing %s/%d/%s", section, index, action)
		return Instruction{}
	}

	if got := find(SectionIntegerBoxes, 1, ActionHighlight).Offset; got != 200*time.Millisecond {
		t.Errorf("expected tens highlight at 200ms, got %v", got)
	}
	if got := find(SectionIntegerBoxes, 1, ActionUnhighlight).Offset; got != 1200*time.Millisecond {
		t.Errorf("expected tens unhighlight at 1200ms, got %v", got)
	}
	if got := find(SectionDecimalBoxes, 0, ActionActivate).Offset; got != 50*time.Millisecond {
		t.Errorf("expected activate at 50ms, got %v", got)
	}
	// The only fraction is the hundredths digit.
	if got := find(SectionFractions, 0, ActionShow).Offset; got != 150*time.Millisecond {
		t.Errorf("expected fraction at 150ms, got %v", got)
	}
	if got := find(SectionTerms, 2, ActionShow).Offset; got != 200*time.Millisecond {
		t.Errorf("expected third term at 200ms, got %v", got)
	}
}

func TestPlan_Invalid(t *testing.T) {
	if plan := Plan(expand.Build("1.2.3", 8), model.DefaultTiming()); len(plan) != 0 {
		t.Errorf("expected empty plan, got %d instructions", len(plan))
	}
}

func instantScheduler() *Scheduler {
	return &Scheduler{after: func(time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		ch <- time.Time{}
		return ch
	}}
}

func TestScheduler_RunAppliesInOrder(t *testing.T) {
	plan := Plan(expand.Build("123.456", 8), model.DefaultTiming())

	var applied []Instruction
	err := instantScheduler().Run(context.Background(), plan, func(in Instruction) {
		applied = append(applied, in)
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(applied) != len(plan) {
		t.Fatalf("expected %d applied, got %d", len(plan), len(applied))
	}
	for i := range plan {
		if applied[i] != plan[i] {
			t.Errorf("instruction %d out of order", i)
		}
	}
}

func TestScheduler_RunCancelled(t *testing.T) {
	plan := []Instruction{
		{Offset: 0, Section: SectionTerms, Index: 0, Action: ActionShow},
		{Offset: time.Hour, Section: SectionTerms, Index: 1, Action: ActionShow},
	}

	ctx, cancel := context.WithCancel(context.Background())
	var count int
	done := make(chan error)
	go func() {
		done <- NewScheduler().Run(ctx, plan, func(Instruction) { count++ })
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	err := <-done
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 applied instruction, got %d", count)
	}
}

func TestScheduler_RealTimers(t *testing.T) {
	plan := []Instruction{
		{Offset: 0, Action: ActionShow},
		{Offset: 10 * time.Millisecond, Action: ActionShow},
		{Offset: 20 * time.Millisecond, Action: ActionShow},
	}

	start := time.Now()
	var count int
	if err := NewScheduler().Run(context.Background(), plan, func(Instruction) { count++ }); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 applied, got %d", count)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("expected at least 20ms, got %v", elapsed)
	}
}

func TestSequencer_BeginCancelsPrevious(t *testing.T) {
	var seq Sequencer

	first, gen1 := seq.Begin(context.Background())
	second, gen2 := seq.Begin(context.Background())

	if gen2 != gen1+1 {
		t.Errorf("expected generation %d, got %d", gen1+1, gen2)
	}
	if first.Err() == nil {
		t.Error("expected first context to be cancelled")
	}
	if second.Err() != nil {
		t.Error("expected second context to be live")
	}
	if seq.Current() != gen2 {
		t.Errorf("expected current %d, got %d", gen2, seq.Current())
	}

	seq.Stop()
	if second.Err() == nil {
		t.Error("expected Stop to cancel the running pass")
	}
}

func TestSequencer_OnlyLatestPassCompletes(t *testing.T) {
	var seq Sequencer
	var mu sync.Mutex
	seen := map[uint64]int{}

	plan := []Instruction{
		{Offset: 0, Action: ActionShow},
		{Offset: 30 * time.Millisecond, Action: ActionShow},
	}

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		ctx, gen := seq.Begin(context.Background())
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = NewScheduler().Run(ctx, plan, func(Instruction) {
				mu.Lock()
				seen[gen]++
				mu.Unlock()
			})
		}()
		time.Sleep(5 * time.Millisecond)
	}
	wg.Wait()
	seq.Stop()

	if seen[3] != 2 {
		t.Errorf("expected latest pass to apply 2 instructions, got %d", seen[3])
	}
	for gen := uint64(1); gen < 3; gen++ {
		if seen[gen] > 1 {
			t.Errorf("superseded pass %d applied %d instructions", gen, seen[gen])
		}
	}
}

func TestState_Apply(t *testing.T) {
	b := expand.Build("12.05", 8)
	s := NewState(b)

	s.Apply(Instruction{Section: SectionIntegerBoxes, Index: 1, Action: ActionEnter})
	s.Apply(Instruction{Section: SectionIntegerBoxes, Index: 1, Action: ActionHighlight})
	s.Apply(Instruction{Section: SectionTerms, Index: 2, Action: ActionShow})
	s.Apply(Instruction{Section: SectionTerms, Index: 99, Action: ActionShow})

	if box := s.Integer[1]; !box.Entered || !box.Highlighted || box.Active {
		t.Errorf("unexpected box state %+v", box)
	}
	if !s.Terms[2] || s.Terms[0] {
		t.Errorf("unexpected terms %v", s.Terms)
	}

	s.Apply(Instruction{Section: SectionIntegerBoxes, Index: 1, Action: ActionUnhighlight})
	if s.Integer[1].Highlighted {
		t.Error("expected highlight to be removed")
	}
}

func TestRevealed(t *testing.T) {
	b := expand.Build("12.05", 8)
	s := Revealed(b)

	for i, p := range b.IntegerPlaces {
		box := s.Integer[i]
		if box.Entered != p.Occupied() || box.Active != p.Occupied() {
			t.Errorf("integer box %d: unexpected state %+v", i, box)
		}
		if box.Highlighted {
			t.Errorf("integer box %d still highlighted", i)
		}
	}
	for i, shown := range s.Terms {
		if !shown {
			t.Errorf("term %d not shown", i)
		}
	}
	for i, shown := range s.Fractions {
		if !shown {
			t.Errorf("fraction %d not shown", i)
		}
	}
}
