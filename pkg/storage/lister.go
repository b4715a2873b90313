package storage

import (
	"context"
)

// Entry represents one directory entry as seen by a scan.
// A symbolic link is neither a regular file nor a directory here: links to
// files are not counted and links to directories are never descended into.
type Entry struct {
	// Name is the entry's base name
	Name string

	// IsFile indicates a regular file
	IsFile bool

	// IsDir indicates a real directory (not a symlinked one)
	IsDir bool
}

// Lister defines the interface for directory listing.
// Implementations include the local filesystem; network-share mounts go
// through the same OS interface. The listing call is the only operation
// that may block on slow shares.
type Lister interface {
	// ListDir returns the direct entries of a single directory
	ListDir(ctx context.Context, path string) ([]Entry, error)
}
