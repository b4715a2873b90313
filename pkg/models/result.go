package models

import (
	"time"
)

// ScanStatus represents the outcome of a traversal
type ScanStatus string

const (
	// ScanComplete indicates the traversal visited every reachable directory
	ScanComplete ScanStatus = "complete"
	// ScanCancelled indicates the traversal stopped early on cancellation;
	// the folder list holds whatever was accumulated before the stop
	ScanCancelled ScanStatus = "cancelled"
)

// ScanResult represents the outcome of one directory traversal
type ScanResult struct {
	// Folders holds the qualifying directories in authoritative sort order
	// (by relative path label)
	Folders []FolderRecord

	// Warnings holds one entry per directory that could not be read,
	// in the order the failures were encountered
	Warnings []string

	// Status distinguishes a complete scan from a cancelled partial one
	Status ScanStatus
}

// RunStatus represents the overall result of a scan-and-render run
type RunStatus string

const (
	// RunSuccess indicates every requested format was written
	RunSuccess RunStatus = "success"
	// RunPartial indicates some output formats failed to write
	RunPartial RunStatus = "partial"
	// RunFailed indicates the run produced no output
	RunFailed RunStatus = "failed"
	// RunCancelled indicates the scan was cancelled before completion
	RunCancelled RunStatus = "cancelled"
)

// ExitCode returns the appropriate process exit code for the run status
func (s RunStatus) ExitCode() int {
	switch s {
	case RunSuccess:
		return 0
	case RunPartial:
		return 1
	case RunFailed:
		return 2
	case RunCancelled:
		return 3
	default:
		return 2
	}
}

// OutputResult records the outcome of writing one report format
type OutputResult struct {
	// Path is the file the report was written to, empty on failure
	Path string

	// Err is the write failure, nil on success
	Err error
}

// RunResult represents the outcome of one orchestrated run
type RunResult struct {
	// OperationID uniquely identifies this run
	OperationID string

	// Scan is the overlaid, sorted scan result
	Scan *ScanResult

	// Outputs maps each requested format name to its write outcome
	Outputs map[string]OutputResult

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Status is the overall result
	Status RunStatus
}
