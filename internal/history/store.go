// Package history remembers the most recent valid inputs.
package history

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ppiankov/placevalue/internal/cache"
	"github.com/ppiankov/placevalue/internal/model"
)

// DefaultSize is the number of entries kept
const DefaultSize = 10

var historyKey = cache.Key("history")

// Store keeps a newest-first list of inputs in a cache. It is safe for
// concurrent use.
type Store struct {
	mu     sync.Mutex
	cache  cache.Cache
	size   int
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// NewStore creates a store over c holding at most size entries
func NewStore(c cache.Cache, size int, ttl time.Duration, logger *zap.Logger) *Store {
	if size <= 0 {
		size = DefaultSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		cache:  c,
		size:   size,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// Load returns the stored entries, newest first.
// A missing or unreadable list is treated as empty.
func (s *Store) Load() []model.HistoryEntry {
	data, ok := s.cache.Get(historyKey)
	if !ok {
		return []model.HistoryEntry{}
	}

	var entries []model.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("Discarding unreadable history", zap.Error(err))
		return []model.HistoryEntry{}
	}
	return entries
}

// Add records input at the front of the list and trims it to size.
// Blank inputs are ignored.
func (s *Store) Add(input, result string) ([]model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.Load()
	if strings.TrimSpace(input) == "" {
		return entries, nil
	}

	entry := model.HistoryEntry{
		ID:        uuid.NewString(),
		Input:     input,
		Result:    result,
		Timestamp: s.now().UTC(),
	}
	entries = Prepend(entries, entry, s.size)

	if err := s.save(entries); err != nil {
		return nil, err
	}
	s.logger.Debug("Recorded history entry", zap.String("input", input), zap.Int("entries", len(entries)))
	return entries, nil
}

// Replace overwrites the stored list
func (s *Store) Replace(entries []model.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(entries) > s.size {
		entries = entries[:s.size]
	}
	return s.save(entries)
}

// Clear removes every entry
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cache.Delete(historyKey); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (s *Store) save(entries []model.HistoryEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := s.cache.Set(historyKey, data, s.ttl); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// Prepend puts entry first and drops anything past size
func Prepend(entries []model.HistoryEntry, entry model.HistoryEntry, size int) []model.HistoryEntry {
	out := make([]model.HistoryEntry, 0, size)
	out = append(out, entry)
	for _, e := range entries {
		if len(out) >= size {
			break
		}
		out = append(out, e)
	}
	return out
}
