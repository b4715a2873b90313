// Package scan walks a directory tree from a root, applying depth and
// file-count policy, and produces the ordered folder inventory that the
// report renderers consume.
package scan

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/sdejongh/sharemap/pkg/comments"
	"github.com/sdejongh/sharemap/pkg/logging"
	"github.com/sdejongh/sharemap/pkg/models"
	"github.com/sdejongh/sharemap/pkg/pathutil"
	"github.com/sdejongh/sharemap/pkg/storage"
)

// Scanner traverses directory trees. It holds no per-scan state, so one
// Scanner may serve concurrent scans against different roots.
type Scanner struct {
	lister storage.Lister
	logger logging.Logger
}

// NewScanner creates a scanner over the given lister. A nil lister defaults
// to the local filesystem; a nil logger disables logging.
func NewScanner(lister storage.Lister, logger logging.Logger) *Scanner {
	if lister == nil {
		lister = storage.NewLocal()
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Scanner{lister: lister, logger: logger}
}

// frame is one unit of traversal work
type frame struct {
	path  string
	depth int
}

// Scan traverses the tree rooted at opts.Root and returns the qualifying
// folders in authoritative sort order. Directories that cannot be read are
// recorded as warnings and their subtrees abandoned; only configuration
// problems (invalid thresholds, unresolvable or unreadable root) fail the
// scan. If ctx is cancelled between directory visits, the partial result
// accumulated so far is returned with status cancelled.
func (s *Scanner) Scan(ctx context.Context, opts Options) (*models.ScanResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	root, err := pathutil.Canonicalize(opts.Root)
	if err != nil {
		return nil, err
	}

	commentMap := comments.Normalize(opts.Comments, root)

	retryDelay := opts.RetryDelay
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}
	maxRetries := opts.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	s.logger.Info(ctx, "scan started", logging.Fields{
		"root":      root,
		"max_depth": opts.MaxDepth,
		"min_files": opts.MinFiles,
	})

	result := &models.ScanResult{
		Folders:  []models.FolderRecord{},
		Warnings: []string{},
		Status:   models.ScanComplete,
	}

	var progress models.ScanProgress
	progress.DirsDiscovered = 1

	stack := []frame{{path: root, depth: 0}}

	for len(stack) > 0 {
		// Cancellation is cooperative: checked between directory visits,
		// never preempting a listing already in flight
		select {
		case <-ctx.Done():
			result.Status = models.ScanCancelled
			stack = nil
			continue
		default:
		}

		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current.depth > opts.MaxDepth {
			continue
		}

		progress.CurrentPath = current.path

		entries, retries, err := s.listWithRetry(ctx, current.path, maxRetries, retryDelay)
		progress.RetryCount += retries
		if err != nil {
			if ctx.Err() != nil {
				// Cancelled mid-retry, not a read failure
				result.Status = models.ScanCancelled
				break
			}
			if current.depth == 0 {
				// An unreadable root is a configuration error, not a
				// skippable subtree: nothing could ever be reported
				s.logger.Error(ctx, "root unreadable", err, logging.Fields{
					"path": current.path,
				})
				return nil, &models.PathResolutionError{Path: current.path, Err: err}
			}
			warning := fmt.Sprintf("Skipped %s: %v", current.path, err)
			result.Warnings = append(result.Warnings, warning)
			progress.WarningCount++
			s.logger.Warn(ctx, "directory skipped", logging.Fields{
				"path":  current.path,
				"cause": err.Error(),
			})
			s.emitProgress(opts, progress)
			continue
		}

		progress.DirsScanned++

		// Single pass: count regular files, collect real child directories.
		// Symlinks are neither, so cycles cannot form.
		fileCount := 0
		var children []string
		for _, entry := range entries {
			switch {
			case entry.IsFile:
				fileCount++
			case entry.IsDir:
				children = append(children, entry.Name)
			}
		}
		progress.TotalFiles += fileCount

		// The root always qualifies; everything else must meet the threshold
		if current.depth == 0 || fileCount >= opts.MinFiles {
			result.Folders = append(result.Folders, models.FolderRecord{
				RelativePath: pathutil.RelativeLabel(root, current.path),
				AbsolutePath: current.path,
				Depth:        current.depth,
				FileCount:    fileCount,
			})
			progress.FoldersRecorded++
		}

		if current.depth < opts.MaxDepth {
			// Lexical push order; the final sort is authoritative, this
			// only keeps raw traversal order stable
			sort.Strings(children)
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, frame{
					path:  filepath.Join(current.path, children[i]),
					depth: current.depth + 1,
				})
			}
			progress.DirsDiscovered += len(children)
		}

		s.emitProgress(opts, progress)
	}

	comments.Apply(result.Folders, commentMap)
	sortFolders(result.Folders)

	s.logger.Info(ctx, "scan finished", logging.Fields{
		"status":   string(result.Status),
		"folders":  len(result.Folders),
		"warnings": len(result.Warnings),
	})

	return result, nil
}

// listWithRetry wraps a single directory listing in exponential backoff for
// transient share hiccups. It returns the number of retries performed.
func (s *Scanner) listWithRetry(ctx context.Context, path string, maxRetries int, delay time.Duration) ([]storage.Entry, int, error) {
	var entries []storage.Entry
	attempts := 0

	backoff := retry.WithMaxRetries(uint64(maxRetries), retry.NewExponential(delay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		var lerr error
		entries, lerr = s.lister.ListDir(ctx, path)
		if lerr != nil {
			return retry.RetryableError(lerr)
		}
		return nil
	})

	retries := attempts - 1
	if retries < 0 {
		retries = 0
	}
	return entries, retries, err
}

func (s *Scanner) emitProgress(opts Options, progress models.ScanProgress) {
	if opts.Progress != nil {
		opts.Progress(progress)
	}
}

// sortFolders orders records by relative label using und-locale Unicode
// collation. This order is authoritative for every rendered format.
func sortFolders(folders []models.FolderRecord) {
	c := collate.New(language.Und)
	sort.SliceStable(folders, func(i, j int) bool {
		return c.CompareString(folders[i].RelativePath, folders[j].RelativePath) < 0
	})
}
