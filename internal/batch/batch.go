// Package batch runs outline extraction over a directory of
// documents. Documents are independent, so the runner fans them out
// to a worker pool with no shared mutable state; each result lands in
// its own output file.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/prakriti82/adobe-hackathon-round-1a/internal/outline"
	"github.com/prakriti82/adobe-hackathon-round-1a/internal/source"
)

// Runner processes every supported document in an input directory.
type Runner struct {
	log     *slog.Logger
	opts    outline.Options
	workers int
	stats   *Stats
}

func NewRunner(log *slog.Logger, opts outline.Options, workers int) *Runner {
	if workers <= 0 {
		workers = 4
	}
	return &Runner{
		log:     log,
		opts:    opts,
		workers: workers,
		stats:   NewStats(time.Hour),
	}
}

// Stats exposes the latency aggregate, shared with the HTTP surface.
func (r *Runner) Stats() *Stats {
	return r.stats
}

// Run extracts outlines for all supported files in inputDir and
// writes one JSON record per document to outputDir. A failing
// document is logged and skipped; it never aborts its siblings.
func (r *Runner) Run(ctx context.Context, inputDir, outputDir string) error {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("read input dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !source.IsSupportedExtension(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	if len(files) == 0 {
		r.log.Info("no input documents found", "dir", inputDir)
		return nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	jobs := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex
	processed, failed := 0, 0

	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range jobs {
				err := r.processOne(filepath.Join(inputDir, name), outputDir)
				mu.Lock()
				if err != nil {
					failed++
				} else {
					processed++
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for _, name := range files {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- name:
		}
	}
	close(jobs)
	wg.Wait()

	snap := r.stats.Snapshot()
	r.log.Info("batch complete",
		"processed", processed,
		"failed", failed,
		"avg_ms", snap.AvgMs,
		"p95_ms", snap.P95Ms,
	)
	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}

// processOne extracts and writes a single document. Errors are logged
// here with the offending file name; the caller only counts them.
func (r *Runner) processOne(path, outputDir string) error {
	name := filepath.Base(path)
	log := r.log.With("file", name)
	start := time.Now()

	src, err := source.ForFile(name)
	if err != nil {
		log.Error("unsupported format", "error", err)
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		log.Error("open failed", "error", err)
		return err
	}
	doc, err := src.Load(f, name)
	f.Close()
	if err != nil {
		log.Error("parse failed", "error", err)
		return err
	}

	result := outline.Extract(doc, r.opts)

	outPath := filepath.Join(outputDir, stem(name)+".json")
	if err := WriteResult(outPath, result); err != nil {
		log.Error("write failed", "path", outPath, "error", err)
		return err
	}

	ms := time.Since(start).Milliseconds()
	r.stats.Record(ms)
	log.Info("processed", "headings", len(result.Outline), "duration_ms", ms)
	return nil
}

// WriteResult serializes one outline record. Non-ASCII text is kept
// literal and `title` precedes `outline`, matching the published
// output contract.
func WriteResult(path string, doc outline.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		f.Close()
		return fmt.Errorf("encode output: %w", err)
	}
	return f.Close()
}

func stem(filename string) string {
	return filename[:len(filename)-len(filepath.Ext(filename))]
}
