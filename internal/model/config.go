package model

import "time"

// Config is the complete placevalue configuration
type Config struct {
	Display     DisplayConfig     `mapstructure:"display" yaml:"display"`
	History     HistoryConfig     `mapstructure:"history" yaml:"history"`
	Timing      TimingConfig      `mapstructure:"timing" yaml:"timing"`
	Quiz        QuizConfig        `mapstructure:"quiz" yaml:"quiz"`
	Output      OutputConfig      `mapstructure:"output" yaml:"output"`
	Concurrency ConcurrencyConfig `mapstructure:"concurrency" yaml:"concurrency"`
}

// DisplayConfig controls what a breakdown shows
type DisplayConfig struct {
	Slots      int    `mapstructure:"slots" yaml:"slots"`           // Place-value boxes per side
	Scientific bool   `mapstructure:"scientific" yaml:"scientific"` // Show scientific notation
	Animate    bool   `mapstructure:"animate" yaml:"animate"`       // Staggered reveal
	Theme      string `mapstructure:"theme" yaml:"theme"`           // "light" or "dark"
}

// HistoryConfig controls the recent-input log
type HistoryConfig struct {
	Enabled bool          `mapstructure:"enabled" yaml:"enabled"`
	Backend string        `mapstructure:"backend" yaml:"backend"` // "file" or "sqlite"
	Size    int           `mapstructure:"size" yaml:"size"`       // Entries kept, newest first
	Dir     string        `mapstructure:"dir" yaml:"dir"`         // Empty means ~/.placevalue/history
	TTL     time.Duration `mapstructure:"ttl" yaml:"ttl"`
}

// TimingConfig holds every delay used by the interactive surfaces
type TimingConfig struct {
	Debounce       time.Duration `mapstructure:"debounce" yaml:"debounce"`               // Input settle time
	DemoInterval   time.Duration `mapstructure:"demo_interval" yaml:"demo_interval"`     // Auto demo cycle
	ActivateDelay  time.Duration `mapstructure:"activate_delay" yaml:"activate_delay"`   // Box becomes active
	HighlightStart time.Duration `mapstructure:"highlight_start" yaml:"highlight_start"` // First highlight
	HighlightStep  time.Duration `mapstructure:"highlight_step" yaml:"highlight_step"`   // Per-box stagger
	HighlightHold  time.Duration `mapstructure:"highlight_hold" yaml:"highlight_hold"`   // Highlight duration
	FractionStep   time.Duration `mapstructure:"fraction_step" yaml:"fraction_step"`     // Per-fraction stagger
	TermStep       time.Duration `mapstructure:"term_step" yaml:"term_step"`             // Per-term stagger
}

// QuizConfig bounds the generated quiz numbers
type QuizConfig struct {
	MaxIntegerDigits int   `mapstructure:"max_integer_digits" yaml:"max_integer_digits"`
	MaxDecimalDigits int   `mapstructure:"max_decimal_digits" yaml:"max_decimal_digits"`
	Seed             int64 `mapstructure:"seed" yaml:"seed"` // 0 picks a random seed
}

// OutputConfig controls rendering
type OutputConfig struct {
	Format  string `mapstructure:"format" yaml:"format"` // text, json, markdown
	Verbose bool   `mapstructure:"verbose" yaml:"verbose"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Slots:      8,
			Scientific: false,
			Animate:    true,
			Theme:      "light",
		},
		History: HistoryConfig{
			Enabled: true,
			Backend: "file",
			Size:    10,
			TTL:     30 * 24 * time.Hour,
		},
		Timing: DefaultTiming(),
		Quiz: QuizConfig{
			MaxIntegerDigits: 4,
			MaxDecimalDigits: 3,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
	}
}

// DefaultTiming returns the default input and reveal delays
func DefaultTiming() TimingConfig {
	return TimingConfig{
		Debounce:       150 * time.Millisecond,
		DemoInterval:   3 * time.Second,
		ActivateDelay:  50 * time.Millisecond,
		HighlightStart: 100 * time.Millisecond,
		HighlightStep:  100 * time.Millisecond,
		HighlightHold:  1000 * time.Millisecond,
		FractionStep:   150 * time.Millisecond,
		TermStep:       100 * time.Millisecond,
	}
}
