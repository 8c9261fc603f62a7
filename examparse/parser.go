// Package examparse reconstructs structured multiple-choice question records
// from machine-extracted exam document text whose text layer is corrupted by
// erratic word spacing, duplicated running headers/footers, and inconsistent
// question/option/answer-key formatting.
//
// Pipeline, leaves first: line extraction, word repair, answer-key parsing,
// question/option scanning, then merging into a Test. Every failure mode
// degrades to a partial-but-well-typed result; Parse never panics and only
// returns an error when the source bytes themselves cannot be read.
//
// Usage:
//
//	parser := examparse.New(examparse.Config{})
//	test, err := parser.ParseFile(ctx, "tests/marketing.pdf")
//	fmt.Println(test.Name, len(test.Questions), "questions")
package examparse

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hazyhaar/examdeck/idgen"
)

var pdfMagic = []byte("%PDF-")

// Parser is the exam reconstruction engine. It holds no per-document state;
// concurrent Parse calls are safe.
type Parser struct {
	cfg    Config
	logger *slog.Logger
	rep    *Repairer
}

// New creates a Parser with the given configuration.
func New(cfg Config) *Parser {
	cfg.defaults()
	return &Parser{
		cfg:    cfg,
		logger: cfg.Logger,
		rep:    NewRepairer(cfg.Rules),
	}
}

// ParseFile parses the document at path, deriving the name hint from the
// file name.
func (p *Parser) ParseFile(ctx context.Context, path string) (*Test, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	hint := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return p.Parse(ctx, f, hint)
}

// Parse reads a document from r and reconstructs a Test. The source may be
// a PDF or plain page text (pages separated by form feeds). Corrupt or
// unparseable sources yield an empty Test and a nil error; only a failure
// to read the bytes themselves is returned as an error.
func (p *Parser) Parse(ctx context.Context, r io.Reader, nameHint string) (*Test, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(r, p.cfg.MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	testID := slugify(nameHint)
	empty := &Test{ID: testID, Name: nameHint, Questions: []Question{}}

	if int64(len(data)) > p.cfg.MaxFileSize {
		p.logger.Warn("source exceeds size limit, skipping", "name", nameHint, "max_bytes", p.cfg.MaxFileSize)
		return empty, nil
	}
	if len(data) == 0 {
		p.logger.Warn("empty source", "name", nameHint)
		return empty, nil
	}

	var pages []string
	if bytes.HasPrefix(data, pdfMagic) {
		pages, err = extractPDFPages(data)
		if err != nil {
			p.logger.Warn("pdf extraction failed", "name", nameHint, "error", err)
			return empty, nil
		}
	} else {
		pages = strings.Split(string(data), "\f")
	}

	lines := extractCleanLines(pages)
	if len(lines) == 0 {
		p.logger.Warn("no usable lines in source", "name", nameHint)
		return empty, nil
	}

	answers := parseAnswerKey(lines, p.rep)
	blocks := scanQuestions(lines, p.rep)
	questions := mergeQuestions(testID, blocks, answers)

	p.logger.Debug("parsed source",
		"name", nameHint,
		"pages", len(pages),
		"lines", len(lines),
		"answers", len(answers),
		"questions", len(questions))

	return &Test{
		ID:        testID,
		Name:      nameHint,
		Questions: questions,
	}, nil
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// slugify derives a stable test ID from the name hint, falling back to a
// generated ID when nothing survives slugging.
func slugify(nameHint string) string {
	id := strings.Trim(slugRe.ReplaceAllString(strings.ToLower(nameHint), "-"), "-")
	if id == "" {
		id = "test-" + idgen.New()[:8]
	}
	return id
}
