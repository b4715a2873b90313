package cli

import (
	"fmt"
	"os"

	"github.com/sdejongh/sharemap/internal/platform"
	"github.com/sdejongh/sharemap/pkg/report"
)

// validateScanFlags validates the scan command arguments and flags
func validateScanFlags(root string, formats []report.Format) error {
	if err := platform.ValidatePath(root); err != nil {
		return fmt.Errorf("invalid root path: %w", err)
	}

	// Validate root exists and is a directory
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return fmt.Errorf("root path does not exist: %s", root)
	} else if err != nil {
		return fmt.Errorf("failed to access root path: %w", err)
	} else if !info.IsDir() {
		return fmt.Errorf("root path is not a directory: %s", root)
	}

	// Multiple formats cannot share stdout
	if len(formats) > 1 && scanFlags.Output == "" {
		return fmt.Errorf("multiple formats require --output")
	}

	return nil
}
