// Package pathutil canonicalizes filesystem paths and comment-map keys so
// that scanned folders and user-supplied annotations compare by the same
// absolute form.
package pathutil

import (
	"path/filepath"

	"github.com/sdejongh/sharemap/internal/platform"
	"github.com/sdejongh/sharemap/pkg/models"
)

// Canonicalize resolves a path to its absolute, symlink-free form.
// It fails with a *models.PathResolutionError when the path does not exist
// or cannot be resolved.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &models.PathResolutionError{Path: path, Err: err}
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &models.PathResolutionError{Path: path, Err: err}
	}

	return resolved, nil
}

// RelativeLabel returns the path of target relative to root, joined with
// forward slashes regardless of platform. It returns "." when target is
// the root itself.
func RelativeLabel(root, target string) string {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		// Different volume or otherwise unrelatable, fall back to the
		// target's own path
		return filepath.ToSlash(target)
	}
	return filepath.ToSlash(rel)
}

// NormalizeCommentKey resolves a comment-map key to the canonical absolute
// form used for folder lookup. Relative keys resolve against root first, so
// comment maps may use short keys like "Finance/Invoices". Keys naming
// paths that do not exist normalize lexically instead; they simply never
// match a scanned folder.
func NormalizeCommentKey(key, root string) string {
	path := key
	if !platform.IsAbsolute(path) {
		path = filepath.Join(root, path)
	}

	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return filepath.Clean(path)
}
