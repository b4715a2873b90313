package models

// FolderRecord represents one qualifying directory discovered by a scan
type FolderRecord struct {
	// RelativePath is the forward-slash path relative to the scan root,
	// "." for the root itself
	RelativePath string

	// AbsolutePath is the canonical, symlink-resolved path on the filesystem
	AbsolutePath string

	// Depth is the number of levels below the scan root (root = 0)
	Depth int

	// FileCount is the number of direct regular-file children
	FileCount int

	// Comment is the user-supplied annotation, empty when none was provided
	Comment string
}
