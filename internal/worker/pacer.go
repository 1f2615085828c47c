package worker

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces out repeated work per key, e.g. one demo step or one
// re-render per watched file.
type Pacer struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultEvery time.Duration
	defaultBurst int
}

// NewPacer allows burst events at once and then one per interval, per key
func NewPacer(interval time.Duration, burst int) *Pacer {
	if burst <= 0 {
		burst = 1
	}

	return &Pacer{
		limiters:     make(map[string]*rate.Limiter),
		defaultEvery: interval,
		defaultBurst: burst,
	}
}

// Wait blocks until key may proceed or ctx is done
func (p *Pacer) Wait(ctx context.Context, key string) error {
	return p.getLimiter(key).Wait(ctx)
}

// Allow reports whether key may proceed now without waiting
func (p *Pacer) Allow(key string) bool {
	return p.getLimiter(key).Allow()
}

func (p *Pacer) getLimiter(key string) *rate.Limiter {
	p.mu.RLock()
	limiter, exists := p.limiters[key]
	p.mu.RUnlock()

	if exists {
		return limiter
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Another caller may have created it in between.
	if limiter, exists := p.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Every(p.defaultEvery), p.defaultBurst)
	p.limiters[key] = limiter

	return limiter
}
