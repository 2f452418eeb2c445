// The triage binary assesses pre-extracted document text files from the
// command line, one JSON result per line.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dealdesk/triage/internal/bootstrap"
	"github.com/dealdesk/triage/internal/completeness"
	"github.com/dealdesk/triage/internal/domain"
	"github.com/dealdesk/triage/internal/logging"
	"github.com/dealdesk/triage/internal/processor"
)

const (
	formatJSON    = "json"
	formatSummary = "summary"
)

// errorLine is the JSON emitted for documents that could not be assessed.
type errorLine struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

func main() {
	in := flag.String("in", "", "path to a .txt file or a directory of .txt files")
	format := flag.String("format", formatJSON, "output format: json or summary")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: triage -in <dir|file> [-format json|summary]")
		os.Exit(2)
	}
	if *format != formatJSON && *format != formatSummary {
		fmt.Fprintf(os.Stderr, "unknown format %q: want json or summary\n", *format)
		os.Exit(2)
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// Results go to stdout, so logs must not.
	cfg.Logging.OutputPaths = []string{"stderr"}
	log, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	paths, err := collectInputs(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "collect inputs: %v\n", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "no .txt files found under %s\n", *in)
		os.Exit(1)
	}

	docs, readFailures := loadDocuments(paths, cfg.Assessment.MaxUploadBytes(), log)

	engine := completeness.NewEngine(logging.NewKeyValueAdapter(log))
	pool := bootstrap.NewBatchProcessor(engine, cfg, nil, log)

	results, err := pool.Process(context.Background(), docs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "assess documents: %v\n", err)
		os.Exit(1)
	}

	failed := len(readFailures)
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	emit(os.Stdout, *format, readFailures, results)

	if failed > 0 {
		log.Warn("Completed with errors",
			logging.Int("total", len(paths)),
			logging.Int("failed", failed),
		)
		os.Exit(1)
	}
}

// collectInputs resolves the -in path to the list of .txt files to assess.
// A direct file path is used as-is; a directory is scanned one level deep.
func collectInputs(in string) ([]string, error) {
	info, err := os.Stat(in)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", in, err)
	}

	if !info.IsDir() {
		return []string{in}, nil
	}

	entries, err := os.ReadDir(in)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", in, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			paths = append(paths, filepath.Join(in, entry.Name()))
		}
	}
	return paths, nil
}

// loadDocuments reads each input file, applying the size gate before the
// content is accepted. Files that cannot be read or fail validation come
// back as error lines rather than aborting the run.
func loadDocuments(paths []string, maxBytes int64, log logging.Logger) ([]domain.RawDocument, []errorLine) {
	docs := make([]domain.RawDocument, 0, len(paths))
	var failures []errorLine

	for _, path := range paths {
		name := filepath.Base(path)

		content, err := os.ReadFile(path)
		if err != nil {
			log.Warn("Skipping unreadable file", logging.String("path", path), logging.Error(err))
			failures = append(failures, errorLine{Filename: name, Error: err.Error()})
			continue
		}

		if v := completeness.ValidateSize(int64(len(content)), maxBytes); !v.Valid {
			log.Warn("Skipping invalid file",
				logging.String("path", path),
				logging.String("reason", v.Reason),
			)
			failures = append(failures, errorLine{Filename: name, Error: v.Reason})
			continue
		}

		docs = append(docs, domain.RawDocument{
			Filename: name,
			Text:     string(content),
		})
	}

	return docs, failures
}

// emit writes one line per document to out: JSON objects by default, or an
// aligned human-readable table for -format summary.
func emit(out *os.File, format string, failures []errorLine, results []processor.Result) {
	enc := json.NewEncoder(out)

	for _, f := range failures {
		if format == formatSummary {
			fmt.Fprintf(out, "%-40s  ERROR  %s\n", f.Filename, f.Error)
			continue
		}
		_ = enc.Encode(f)
	}

	for _, r := range results {
		if r.Err != nil {
			if format == formatSummary {
				fmt.Fprintf(out, "%-40s  ERROR  %s\n", r.Filename, r.Err.Error())
				continue
			}
			_ = enc.Encode(errorLine{Filename: r.Filename, Error: r.Err.Error()})
			continue
		}

		if format == formatSummary {
			a := r.Assessment
			fmt.Fprintf(out, "%-40s  %-20s  %3d  %s\n",
				a.Filename, a.Classification, a.OverallScore, a.Analyzer)
			continue
		}
		_ = enc.Encode(r.Assessment)
	}
}
