// Package run composes a scan with the report renderers and performs the
// file-write side effects for each requested output format.
package run

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sdejongh/sharemap/pkg/logging"
	"github.com/sdejongh/sharemap/pkg/models"
	"github.com/sdejongh/sharemap/pkg/pathutil"
	"github.com/sdejongh/sharemap/pkg/report"
	"github.com/sdejongh/sharemap/pkg/scan"
)

// Options configures one orchestrated run
type Options struct {
	// Scan configures the traversal
	Scan scan.Options

	// Formats lists the report formats to write
	Formats []report.Format

	// OutputBase is the output path without extension; each format writes
	// to OutputBase plus its own extension
	OutputBase string
}

// Runner orchestrates scan, overlay, render, and write
type Runner struct {
	scanner *scan.Scanner
	logger  logging.Logger
}

// NewRunner creates a runner. A nil scanner defaults to the local
// filesystem; a nil logger disables logging.
func NewRunner(scanner *scan.Scanner, logger logging.Logger) *Runner {
	if scanner == nil {
		scanner = scan.NewScanner(nil, logger)
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Runner{scanner: scanner, logger: logger}
}

// Run scans the tree and writes every requested format. Formats render and
// write concurrently; a write failure for one format never suppresses the
// others, it is recorded in the per-format output map and reflected in the
// run status. Only configuration errors (bad options, unresolvable root)
// fail the run itself.
func (r *Runner) Run(ctx context.Context, opts Options) (*models.RunResult, error) {
	if len(opts.Formats) == 0 {
		return nil, &models.ValidationError{
			Field:   "Formats",
			Message: "at least one output format is required",
		}
	}
	if opts.OutputBase == "" {
		return nil, &models.ValidationError{
			Field:   "OutputBase",
			Message: "output base path is required",
		}
	}

	result := &models.RunResult{
		OperationID: uuid.New().String(),
		Outputs:     make(map[string]models.OutputResult, len(opts.Formats)),
		StartTime:   time.Now(),
	}

	logger := r.logger.WithFields(logging.Fields{"operation_id": result.OperationID})

	scanResult, err := r.scanner.Scan(ctx, opts.Scan)
	if err != nil {
		return nil, err
	}
	result.Scan = scanResult

	root, err := pathutil.Canonicalize(opts.Scan.Root)
	if err != nil {
		// Scan succeeded moments ago, so the root vanished underneath us
		return nil, err
	}
	meta := report.NewMetadata(root, opts.Scan.MaxDepth, opts.Scan.MinFiles)

	var mu sync.Mutex
	g := new(errgroup.Group)

	for _, format := range opts.Formats {
		format := format
		g.Go(func() error {
			path := opts.OutputBase + format.Extension()
			outcome := models.OutputResult{Path: path}

			text, err := report.Render(format, scanResult, meta)
			if err == nil {
				err = writeDocument(path, text)
			}
			if err != nil {
				outcome = models.OutputResult{Err: err}
				logger.Error(context.Background(), "output write failed", err, logging.Fields{
					"format": string(format),
					"path":   path,
				})
			} else {
				logger.Info(context.Background(), "output written", logging.Fields{
					"format": string(format),
					"path":   path,
				})
			}

			mu.Lock()
			result.Outputs[string(format)] = outcome
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	result.Status = runStatus(result)

	return result, nil
}

// runStatus derives the overall status from the scan outcome and the
// per-format write outcomes
func runStatus(result *models.RunResult) models.RunStatus {
	failed := 0
	for _, out := range result.Outputs {
		if out.Err != nil {
			failed++
		}
	}

	switch {
	case failed == len(result.Outputs):
		return models.RunFailed
	case failed > 0:
		return models.RunPartial
	case result.Scan.Status == models.ScanCancelled:
		return models.RunCancelled
	default:
		return models.RunSuccess
	}
}

// writeDocument writes one rendered document, creating parent directories
// as needed
func writeDocument(path, text string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
