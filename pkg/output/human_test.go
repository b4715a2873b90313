package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sdejongh/sharemap/pkg/models"
)

func TestPrintSummary(t *testing.T) {
	res := &models.RunResult{
		OperationID: "op-1",
		Scan: &models.ScanResult{
			Folders: []models.FolderRecord{
				{RelativePath: ".", AbsolutePath: "/srv/share"},
				{RelativePath: "Finance", AbsolutePath: "/srv/share/Finance"},
			},
			Warnings: []string{"Skipped /srv/share/Legal: permission denied"},
			Status:   models.ScanComplete,
		},
		Outputs: map[string]models.OutputResult{
			"json": {Path: "/tmp/report.json"},
			"csv":  {Err: errors.New("disk full")},
		},
		Duration: 1500 * time.Millisecond,
		Status:   models.RunPartial,
	}

	var buf bytes.Buffer
	PrintSummary(&buf, res)
	out := buf.String()

	if !strings.Contains(out, "Folders:   2") {
		t.Errorf("folder count missing from summary:\n%s", out)
	}
	if !strings.Contains(out, "Warnings:  1") {
		t.Errorf("warning count missing from summary:\n%s", out)
	}
	if !strings.Contains(out, "/tmp/report.json") {
		t.Errorf("written path missing from summary:\n%s", out)
	}
	if !strings.Contains(out, "disk full") {
		t.Errorf("write failure missing from summary:\n%s", out)
	}
	if !strings.Contains(out, "Skipped /srv/share/Legal") {
		t.Errorf("warning text missing from summary:\n%s", out)
	}
	if !strings.Contains(out, "Status: partial") {
		t.Errorf("status missing from summary:\n%s", out)
	}
}

func TestShowProgress(t *testing.T) {
	// A plain buffer is never a terminal
	if ShowProgress(&bytes.Buffer{}) {
		t.Error("ShowProgress() should be false for a non-file writer")
	}
}
