package models

// ScanProgress is a snapshot of a traversal in flight, emitted once per
// visited directory
type ScanProgress struct {
	// FoldersRecorded is the number of qualifying folders found so far
	FoldersRecorded int

	// DirsScanned is the number of directories listed so far
	DirsScanned int

	// DirsDiscovered is the number of directories seen so far, including
	// those still waiting to be listed
	DirsDiscovered int

	// TotalFiles is the number of regular files counted so far
	TotalFiles int

	// CurrentPath is the directory being visited
	CurrentPath string

	// WarningCount is the number of unreadable directories so far
	WarningCount int

	// RetryCount is the number of listing retries performed so far
	RetryCount int
}

// ProgressFunc receives progress snapshots during a scan
type ProgressFunc func(ScanProgress)
