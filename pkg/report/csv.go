package report

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/sdejongh/sharemap/pkg/models"
)

// csvHeader is the fixed column order of the tabular document
var csvHeader = []string{"folder", "absolute_path", "depth", "file_count", "comment"}

// RenderCSV serializes the scan result as a tabular document: a header line
// followed by one line per folder in authoritative sort order. Fields
// containing commas, quotes, or newlines are quoted with doubled internal
// quotes; the document ends with a newline.
func RenderCSV(result *models.ScanResult) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}

	for _, f := range result.Folders {
		row := []string{
			f.RelativePath,
			f.AbsolutePath,
			strconv.Itoa(f.Depth),
			strconv.Itoa(f.FileCount),
			f.Comment,
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write row for %s: %w", f.RelativePath, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush rows: %w", err)
	}
	return b.String(), nil
}
