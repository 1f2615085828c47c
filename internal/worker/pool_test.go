package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mockResult implements Result
type mockResult struct {
	id  int
	err error
}

func (r *mockResult) GetError() error {
	return r.err
}

// mockJob implements Job
type mockJob struct {
	id        int
	duration  time.Duration
	shouldErr bool
	executed  *int32 // atomic counter
}

func (j *mockJob) Execute(ctx context.Context) Result {
	if j.executed != nil {
		atomic.AddInt32(j.executed, 1)
	}
	if j.duration > 0 {
		select {
		case <-time.After(j.duration):
		case <-ctx.Done():
			return &mockResult{id: j.id, err: ctx.Err()}
		}
	}
	if j.shouldErr {
		return &mockResult{id: j.id, err: errors.New("job error")}
	}
	return &mockResult{id: j.id}
}

func TestNewPool(t *testing.T) {
	ctx := context.Background()

	p1 := NewPool(ctx, 5)
	if p1.workers != 5 {
		t.Errorf("expected 5 workers, got %d", p1.workers)
	}
	p1.cancelFunc()

	p2 := NewPool(ctx, 0)
	if p2.workers != 1 {
		t.Errorf("expected default 1 worker for 0 input, got %d", p2.workers)
	}
	p2.cancelFunc()

	p3 := NewPool(ctx, -1)
	if p3.workers != 1 {
		t.Errorf("expected default 1 worker for negative input, got %d", p3.workers)
	}
	p3.cancelFunc()
}

func TestPool_ResultsInSubmissionOrder(t *testing.T) {
	pool := NewPool(context.Background(), 4)
	pool.Start()

	var executed int32
	const jobs = 20
	for i := 0; i < jobs; i++ {
		// Earlier jobs sleep longer so they finish last.
		d := time.Duration(jobs-i) * time.Millisecond
		if !pool.Submit(&mockJob{id: i, duration: d, executed: &executed}) {
			t.Fatalf("submit %d rejected", i)
		}
	}

	results := pool.Wait()
	if len(results) != jobs {
		t.Fatalf("expected %d results, got %d", jobs, len(results))
	}
	if atomic.LoadInt32(&executed) != jobs {
		t.Errorf("expected %d executions, got %d", jobs, executed)
	}
	for i, r := range results {
		if got := r.(*mockResult).id; got != i {
			t.Errorf("result %d: expected job %d, got %d", i, i, got)
		}
	}
}

func TestPool_MoreJobsThanBuffer(t *testing.T) {
	pool := NewPool(context.Background(), 1)
	pool.Start()

	// Far more than the queue and result buffers hold.
	for i := 0; i < 100; i++ {
		pool.Submit(&mockJob{id: i})
	}

	if results := pool.Wait(); len(results) != 100 {
		t.Errorf("expected 100 results, got %d", len(results))
	}
}

func TestPool_Errors(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()

	pool.Submit(&mockJob{id: 0})
	pool.Submit(&mockJob{id: 1, shouldErr: true})
	pool.Submit(&mockJob{id: 2})

	results := pool.Wait()
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].GetError() != nil || results[2].GetError() != nil {
		t.Error("expected jobs 0 and 2 to succeed")
	}
	if results[1].GetError() == nil {
		t.Error("expected job 1 to fail")
	}
}

func TestPool_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(ctx, 1)
	pool.Start()

	cancel()

	if pool.Submit(&mockJob{id: 0}) {
		// The queue may accept one item before cancellation is observed.
		t.Log("submit accepted after cancel")
	}

	results := pool.Wait()
	for _, r := range results {
		if err := r.GetError(); err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected error: %v", err)
		}
	}
}

func TestPool_Shutdown(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()

	pool.Submit(&mockJob{id: 0, duration: time.Hour})
	pool.Submit(&mockJob{id: 1, duration: time.Hour})

	done := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown did not return")
	}
}
