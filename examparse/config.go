package examparse

import "log/slog"

// Config configures the exam parsing pipeline.
type Config struct {
	// MaxFileSize is the maximum document size to process (default: 16 MB).
	MaxFileSize int64 `json:"max_file_size" yaml:"max_file_size"`

	// Rules overrides the built-in word-repair tables. Nil uses DefaultRules.
	Rules *RuleSet `json:"-" yaml:"-"`

	// Logger for debug/error messages.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 16 * 1024 * 1024
	}
	if c.Rules == nil {
		c.Rules = DefaultRules()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
