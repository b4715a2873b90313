package models

import (
	"errors"
	"os"
	"testing"
)

// ============== FolderRecord Tests ==============

func TestFolderRecord(t *testing.T) {
	t.Run("CreateFolderRecord", func(t *testing.T) {
		record := FolderRecord{
			RelativePath: "Finance/Invoices",
			AbsolutePath: "/srv/share/Finance/Invoices",
			Depth:        2,
			FileCount:    14,
			Comment:      "2024 billing cycle",
		}

		if record.RelativePath != "Finance/Invoices" {
			t.Errorf("RelativePath = %s, want Finance/Invoices", record.RelativePath)
		}
		if record.Depth != 2 {
			t.Errorf("Depth = %d, want 2", record.Depth)
		}
		if record.FileCount != 14 {
			t.Errorf("FileCount = %d, want 14", record.FileCount)
		}
	})

	t.Run("RootRecord", func(t *testing.T) {
		record := FolderRecord{
			RelativePath: ".",
			Depth:        0,
		}

		if record.RelativePath != "." {
			t.Errorf("RelativePath = %s, want .", record.RelativePath)
		}
		if record.Comment != "" {
			t.Errorf("Comment should default to empty string, got %q", record.Comment)
		}
	})
}

// ============== Status Tests ==============

func TestScanStatus(t *testing.T) {
	tests := []struct {
		status   ScanStatus
		expected string
	}{
		{ScanComplete, "complete"},
		{ScanCancelled, "cancelled"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if string(tt.status) != tt.expected {
				t.Errorf("ScanStatus = %s, want %s", string(tt.status), tt.expected)
			}
		})
	}
}

func TestRunStatusExitCode(t *testing.T) {
	tests := []struct {
		status   RunStatus
		exitCode int
	}{
		{RunSuccess, 0},
		{RunPartial, 1},
		{RunFailed, 2},
		{RunCancelled, 3},
		{RunStatus("unknown"), 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.ExitCode(); got != tt.exitCode {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exitCode)
			}
		})
	}
}

// ============== Error Tests ==============

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "MaxDepth", Message: "must be zero or greater"}

	if err.Error() != "validation failed for MaxDepth: must be zero or greater" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
}

func TestPathResolutionError(t *testing.T) {
	cause := os.ErrNotExist
	err := &PathResolutionError{Path: "/missing", Err: cause}

	if !errors.Is(err, os.ErrNotExist) {
		t.Error("PathResolutionError should unwrap to its cause")
	}
}
