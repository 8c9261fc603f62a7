// Command examscan parses exam documents and prints reconstruction quality
// diagnostics, for vetting a test directory before serving it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hazyhaar/examdeck/examparse"
)

func main() {
	dir := flag.String("dir", "tests", "directory of exam documents to scan")
	verbose := flag.Bool("v", false, "print per-question detail")
	flag.Parse()

	var lvl slog.Level = slog.LevelWarn
	if *verbose {
		lvl = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	parser := examparse.New(examparse.Config{Logger: logger})

	entries, err := os.ReadDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "examscan: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	exitCode := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".pdf" && ext != ".txt" {
			continue
		}

		path := filepath.Join(*dir, e.Name())
		test, err := parser.ParseFile(ctx, path)
		if err != nil {
			fmt.Printf("%-40s ERROR %v\n", e.Name(), err)
			exitCode = 1
			continue
		}

		stats := examparse.Analyze(test)
		fmt.Printf("%-40s questions=%d answered=%d missing_options=%d missing_prompts=%d suspect_tokens=%d\n",
			e.Name(), stats.Questions, stats.Answered, stats.MissingOptions, stats.MissingPrompts, stats.SuspectTokens)

		if stats.Questions == 0 {
			exitCode = 1
		}
		if *verbose {
			for _, q := range test.Questions {
				marker := " "
				if q.CorrectIndex < 0 {
					marker = "?"
				}
				fmt.Printf("  %s q%-3d [%s] %s\n", marker, q.Number, q.CorrectLetter, truncate(q.Question, 70))
			}
		}
	}
	os.Exit(exitCode)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
