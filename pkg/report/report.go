// Package report renders a completed scan result into its output formats.
// All renderers are pure functions over an immutable scan result; they never
// touch the filesystem.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/sdejongh/sharemap/pkg/models"
)

// Format identifies an output format
type Format string

const (
	// FormatJSON is the canonical machine-readable document
	FormatJSON Format = "json"
	// FormatHTML is the human-browsable outline document
	FormatHTML Format = "html"
	// FormatCSV is the tabular document
	FormatCSV Format = "csv"
)

// AllFormats lists every supported format in render order
func AllFormats() []Format {
	return []Format{FormatJSON, FormatHTML, FormatCSV}
}

// Extension returns the file extension for the format, including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// ParseFormats parses a comma-separated format list. The special value
// "all" expands to every supported format. Duplicates collapse.
func ParseFormats(spec string) ([]Format, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, fmt.Errorf("no output format specified")
	}

	seen := make(map[Format]bool)
	var formats []Format

	for _, part := range strings.Split(spec, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if name == "all" {
			for _, f := range AllFormats() {
				if !seen[f] {
					seen[f] = true
					formats = append(formats, f)
				}
			}
			continue
		}

		f := Format(name)
		switch f {
		case FormatJSON, FormatHTML, FormatCSV:
			if !seen[f] {
				seen[f] = true
				formats = append(formats, f)
			}
		default:
			return nil, fmt.Errorf("unsupported output format: %s (use: json, html, csv, all)", name)
		}
	}

	if len(formats) == 0 {
		return nil, fmt.Errorf("no output format specified")
	}
	return formats, nil
}

// Metadata carries the scan parameters shared by every renderer
type Metadata struct {
	Root        string
	MaxDepth    int
	MinFiles    int
	GeneratedAt time.Time
}

// NewMetadata stamps metadata for a render pass
func NewMetadata(root string, maxDepth, minFiles int) Metadata {
	return Metadata{
		Root:        root,
		MaxDepth:    maxDepth,
		MinFiles:    minFiles,
		GeneratedAt: time.Now().UTC(),
	}
}

// Render produces the document for one format
func Render(format Format, result *models.ScanResult, meta Metadata) (string, error) {
	switch format {
	case FormatJSON:
		return RenderJSON(result, meta)
	case FormatHTML:
		return RenderHTML(result, meta)
	case FormatCSV:
		return RenderCSV(result)
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}
