package server

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the HTTP service settings. Zero values are filled in by
// defaults(); a YAML file and environment variables layer on top.
type Config struct {
	Addr                string `yaml:"addr"`
	TestsDir            string `yaml:"tests_dir"`
	DBPath              string `yaml:"db_path"`
	MaxQuestionsPerRun  int    `yaml:"max_questions_per_run"`
	MaxTimeLimitMinutes int    `yaml:"max_time_limit_minutes"`
	MaxUploadBytes      int64  `yaml:"max_upload_bytes"`
	CleanupAgeSeconds   int    `yaml:"session_cleanup_age_seconds"`
}

func (c *Config) defaults() {
	if c.Addr == "" {
		c.Addr = ":8086"
	}
	if c.TestsDir == "" {
		c.TestsDir = "tests"
	}
	if c.DBPath == "" {
		c.DBPath = "db/examdeck.db"
	}
	if c.MaxQuestionsPerRun <= 0 {
		c.MaxQuestionsPerRun = 100
	}
	if c.MaxTimeLimitMinutes <= 0 {
		c.MaxTimeLimitMinutes = 180
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = 12 * 1024 * 1024
	}
	if c.CleanupAgeSeconds <= 0 {
		c.CleanupAgeSeconds = 86400
	}
}

// CleanupAge returns the session retention as a Duration.
func (c *Config) CleanupAge() time.Duration {
	return time.Duration(c.CleanupAgeSeconds) * time.Second
}

// LoadConfig reads a YAML config file and applies defaults. An empty path
// returns the defaults alone.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("server: read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("server: parse config %s: %w", path, err)
		}
	}
	cfg.defaults()
	return cfg, nil
}
