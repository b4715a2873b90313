package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sdejongh/sharemap/pkg/models"
)

// folderPayload is one folder entry in the JSON document, in stable field order
type folderPayload struct {
	Folder       string `json:"folder"`
	AbsolutePath string `json:"absolute_path"`
	Depth        int    `json:"depth"`
	FileCount    int    `json:"file_count"`
	Comment      string `json:"comment"`
}

// jsonPayload is the top-level JSON document
type jsonPayload struct {
	GeneratedAt string          `json:"generated_at"`
	Root        string          `json:"root"`
	MaxDepth    int             `json:"max_depth"`
	MinFiles    int             `json:"min_files"`
	Folders     []folderPayload `json:"folders"`
	Warnings    []string        `json:"warnings"`
}

// RenderJSON serializes the scan result as the canonical machine-readable
// document. Folders appear in authoritative sort order; empty collections
// render as [] rather than null.
func RenderJSON(result *models.ScanResult, meta Metadata) (string, error) {
	folders := make([]folderPayload, 0, len(result.Folders))
	for _, f := range result.Folders {
		folders = append(folders, folderPayload{
			Folder:       f.RelativePath,
			AbsolutePath: f.AbsolutePath,
			Depth:        f.Depth,
			FileCount:    f.FileCount,
			Comment:      f.Comment,
		})
	}

	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	payload := jsonPayload{
		GeneratedAt: meta.GeneratedAt.Format(time.RFC3339),
		Root:        meta.Root,
		MaxDepth:    meta.MaxDepth,
		MinFiles:    meta.MinFiles,
		Folders:     folders,
		Warnings:    warnings,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return string(data), nil
}
