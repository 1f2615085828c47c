package worker

import (
	"context"
	"sort"
	"sync"
)

// Job is a unit of work executed by the pool
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of a job
type Result interface {
	GetError() error
}

// sequenced pairs a job or result with its submission order
type sequenced[T any] struct {
	seq   int
	value T
}

// Pool runs jobs on a fixed number of goroutines and returns results in
// submission order.
type Pool struct {
	workers    int
	jobQueue   chan sequenced[Job]
	results    chan sequenced[Result]
	next       int
	collected  []sequenced[Result]
	collecting chan struct{}
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
	closeOnce  sync.Once
}

// NewPool creates a pool bound to ctx with the given number of workers
func NewPool(ctx context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers:    workers,
		jobQueue:   make(chan sequenced[Job], workers*2),
		results:    make(chan sequenced[Result], workers*2),
		collecting: make(chan struct{}),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start launches the workers and the result collector
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	// Results are drained as they arrive so Submit never waits on Wait.
	go func() {
		defer close(p.collecting)
		for r := range p.results {
			p.collected = append(p.collected, r)
		}
	}()
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			result := job.value.Execute(p.ctx)
			select {
			case p.results <- sequenced[Result]{seq: job.seq, value: result}:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a job. It returns false if the pool was cancelled first.
// Submit must not be called concurrently with itself or after Wait.
func (p *Pool) Submit(job Job) bool {
	item := sequenced[Job]{seq: p.next, value: job}
	select {
	case <-p.ctx.Done():
		return false
	case p.jobQueue <- item:
		p.next++
		return true
	}
}

// Wait closes the queue, waits for the workers and returns every result in
// submission order. Results of jobs dropped by cancellation are missing.
func (p *Pool) Wait() []Result {
	close(p.jobQueue)
	p.wg.Wait()
	p.closeResults()
	<-p.collecting
	p.cancelFunc()

	sort.Slice(p.collected, func(i, j int) bool {
		return p.collected[i].seq < p.collected[j].seq
	})

	results := make([]Result, len(p.collected))
	for i, r := range p.collected {
		results[i] = r.value
	}
	return results
}

// Shutdown stops the workers without waiting for queued jobs.
// Like Wait, it requires Start to have been called.
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeResults()
	<-p.collecting
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
