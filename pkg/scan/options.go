package scan

import (
	"time"

	"github.com/sdejongh/sharemap/pkg/models"
)

// Default thresholds, matching the CLI defaults
const (
	DefaultMaxDepth   = 3
	DefaultMinFiles   = 3
	DefaultMaxRetries = 3
	DefaultRetryDelay = 100 * time.Millisecond
)

// Options configures a single scan. A zero MaxDepth scans only the root.
type Options struct {
	// Root is the directory to scan
	Root string

	// MaxDepth is the maximum depth to traverse below the root
	MaxDepth int

	// MinFiles is the minimum direct-file count for a folder to qualify.
	// The root is always included regardless of this threshold.
	MinFiles int

	// Comments maps folder paths (absolute or root-relative) to annotations
	Comments map[string]string

	// MaxRetries is the number of retries for a failed directory listing
	MaxRetries int

	// RetryDelay is the base delay between retries (exponential backoff)
	RetryDelay time.Duration

	// Progress, when set, receives a snapshot per visited directory
	Progress models.ProgressFunc
}

// DefaultOptions returns scan options with the standard thresholds
func DefaultOptions(root string) Options {
	return Options{
		Root:       root,
		MaxDepth:   DefaultMaxDepth,
		MinFiles:   DefaultMinFiles,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// Validate checks the options before any I/O is performed
func (o *Options) Validate() error {
	if o.Root == "" {
		return &models.ValidationError{
			Field:   "Root",
			Message: "root path is required",
		}
	}

	if o.MaxDepth < 0 {
		return &models.ValidationError{
			Field:   "MaxDepth",
			Message: "must be zero or greater",
		}
	}

	if o.MinFiles < 0 {
		return &models.ValidationError{
			Field:   "MinFiles",
			Message: "must be zero or greater",
		}
	}

	return nil
}
