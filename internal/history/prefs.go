package history

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ppiankov/placevalue/internal/cache"
)

var themeKey = cache.Key("theme")

// Theme returns the saved theme, if any
func (s *Store) Theme() (string, bool) {
	data, ok := s.cache.Get(themeKey)
	if !ok || len(data) == 0 {
		return "", false
	}
	return string(data), true
}

// SaveTheme remembers the chosen theme. It never expires.
func (s *Store) SaveTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cache.Set(themeKey, []byte(theme), -1); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	s.logger.Debug("Saved theme", zap.String("theme", theme))
	return nil
}
