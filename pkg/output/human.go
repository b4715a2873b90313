package output

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"

	"github.com/sdejongh/sharemap/pkg/models"
)

// PrintSummary writes a human-readable run summary
func PrintSummary(w io.Writer, res *models.RunResult) {
	fmt.Fprintf(w, "Scan completed in %s\n", res.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "  Folders:   %d\n", len(res.Scan.Folders))
	fmt.Fprintf(w, "  Warnings:  %d\n", len(res.Scan.Warnings))

	if len(res.Outputs) > 0 {
		fmt.Fprintf(w, "\n")
		fmt.Fprintf(w, "Outputs:\n")

		formats := make([]string, 0, len(res.Outputs))
		for format := range res.Outputs {
			formats = append(formats, format)
		}
		sort.Strings(formats)

		for _, format := range formats {
			out := res.Outputs[format]
			if out.Err != nil {
				fmt.Fprintf(w, "  %-5s failed: %v\n", format+":", out.Err)
			} else {
				fmt.Fprintf(w, "  %-5s %s\n", format+":", out.Path)
			}
		}
	}

	if len(res.Scan.Warnings) > 0 {
		yellow := color.New(color.FgYellow)
		fmt.Fprintf(w, "\n")
		fmt.Fprintf(w, "Warnings:\n")
		for _, warning := range res.Scan.Warnings {
			yellow.Fprintf(w, "  %s\n", warning)
		}
	}

	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Status: %s\n", res.Status)
}
