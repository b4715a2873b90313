package storage

import (
	"context"
	"os"
)

// Local is a filesystem-based directory lister
type Local struct{}

// NewLocal creates a new local filesystem lister
func NewLocal() *Local {
	return &Local{}
}

// ListDir returns the direct entries of a single directory
func (l *Local) ListDir(ctx context.Context, path string) ([]Entry, error) {
	// Check context cancellation before touching the filesystem
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		// Type() reports the link itself for symlinks, so a symlinked
		// directory is neither IsFile nor IsDir
		mode := d.Type()
		entries = append(entries, Entry{
			Name:   d.Name(),
			IsFile: mode.IsRegular(),
			IsDir:  mode.IsDir(),
		})
	}

	return entries, nil
}
