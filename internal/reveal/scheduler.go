package reveal

import (
	"context"
	"sync"
	"time"
)

// Scheduler drains a reveal plan in offset order
type Scheduler struct {
	// after is replaceable in tests
	after func(time.Duration) <-chan time.Time
}

// NewScheduler creates a scheduler backed by real timers
func NewScheduler() *Scheduler {
	return &Scheduler{after: time.After}
}

// Run applies each instruction once its offset has elapsed.
// It stops early and returns ctx.Err() when ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, plan []Instruction, apply func(Instruction)) error {
	var elapsed time.Duration

	for _, in := range plan {
		if wait := in.Offset - elapsed; wait > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-s.after(wait):
			}
			elapsed = in.Offset
		}

		if err := ctx.Err(); err != nil {
			return err
		}
		apply(in)
	}

	return nil
}

// Sequencer makes sure only the latest pass keeps running
type Sequencer struct {
	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

// Begin cancels the previous pass and returns a context for the next one
// along with its generation number.
func (q *Sequencer) Begin(parent context.Context) (context.Context, uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.cancel != nil {
		q.cancel()
	}

	ctx, cancel := context.WithCancel(parent)
	q.cancel = cancel
	q.generation++
	return ctx, q.generation
}

// Current returns the generation of the latest pass
func (q *Sequencer) Current() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.generation
}

// Stop cancels the running pass, if any
func (q *Sequencer) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.cancel != nil {
		q.cancel()
		q.cancel = nil
	}
}
