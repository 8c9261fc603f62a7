// Package catalog maintains the in-memory set of tests parsed from a
// directory of exam documents.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/hazyhaar/examdeck/examparse"
)

// Summary is the list-view projection of a test.
type Summary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	QuestionCount int    `json:"question_count"`
}

// Catalog caches parsed tests keyed by test ID. Reads are lock-free between
// refreshes; Refresh swaps the whole map atomically under the write lock.
type Catalog struct {
	dir    string
	parser *examparse.Parser
	logger *slog.Logger

	mu    sync.RWMutex
	tests map[string]*examparse.Test
}

// New creates a Catalog over dir. The catalog is empty until Refresh runs.
func New(dir string, parser *examparse.Parser, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		dir:    dir,
		parser: parser,
		logger: logger,
		tests:  make(map[string]*examparse.Test),
	}
}

// Refresh re-parses every .pdf and .txt file under the catalog directory.
// Sources that yield zero questions are skipped with a warning; a single bad
// file never fails the refresh. Only directory read errors are returned.
func (c *Catalog) Refresh(ctx context.Context) error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("catalog: read dir %s: %w", c.dir, err)
	}

	next := make(map[string]*examparse.Test)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".pdf" && ext != ".txt" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(c.dir, e.Name())
		test, err := c.parser.ParseFile(ctx, path)
		if err != nil {
			c.logger.Warn("skipping unreadable source", "path", path, "error", err)
			continue
		}
		if len(test.Questions) == 0 {
			c.logger.Warn("skipping source with no questions", "path", path)
			continue
		}
		if _, dup := next[test.ID]; dup {
			c.logger.Warn("duplicate test id, keeping first", "id", test.ID, "path", path)
			continue
		}
		next[test.ID] = test
	}

	c.mu.Lock()
	c.tests = next
	c.mu.Unlock()

	c.logger.Info("catalog refreshed", "dir", c.dir, "tests", len(next))
	return nil
}

// Get returns a test by ID.
func (c *Catalog) Get(id string) (*examparse.Test, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tests[id]
	return t, ok
}

// List returns summaries of all tests, sorted by name.
func (c *Catalog) List() []Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Summary, 0, len(c.tests))
	for _, t := range c.tests {
		out = append(out, Summary{
			ID:            t.ID,
			Name:          t.Name,
			Description:   t.Description,
			QuestionCount: len(t.Questions),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of cached tests.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tests)
}
