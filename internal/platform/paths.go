package platform

import (
	"path/filepath"
	"runtime"
	"strings"
)

// NormalizePath normalizes a path for the current platform
func NormalizePath(path string) string {
	return normalizePath(runtime.GOOS, path)
}

func normalizePath(goos, path string) string {
	normalized := filepath.Clean(path)

	// filepath.Clean collapses the leading double separator of a UNC path
	if goos == "windows" {
		if strings.HasPrefix(path, "\\\\") && !strings.HasPrefix(normalized, "\\\\") {
			normalized = "\\\\" + strings.TrimLeft(normalized, "\\")
		}
	}

	return normalized
}

// IsUNCPath checks if a path is a UNC path (Windows network share)
func IsUNCPath(path string) bool {
	return isUNCPath(runtime.GOOS, path)
}

func isUNCPath(goos, path string) bool {
	if goos != "windows" {
		return false
	}
	return strings.HasPrefix(path, "\\\\") || strings.HasPrefix(path, "//")
}

// IsAbsolute checks if a path is absolute
func IsAbsolute(path string) bool {
	if IsUNCPath(path) {
		return true
	}
	return filepath.IsAbs(path)
}

// ParseUNCPath parses a UNC path into host and share components
// Returns empty strings if not a UNC path
func ParseUNCPath(path string) (host, share, relPath string) {
	return parseUNCPath(runtime.GOOS, path)
}

func parseUNCPath(goos, path string) (host, share, relPath string) {
	if !isUNCPath(goos, path) {
		return "", "", ""
	}

	// Remove leading slashes, fold forward slashes into backslashes
	trimmed := strings.TrimPrefix(path, "\\\\")
	trimmed = strings.TrimPrefix(trimmed, "//")
	trimmed = strings.ReplaceAll(trimmed, "/", "\\")

	parts := strings.SplitN(trimmed, "\\", 3)

	if len(parts) >= 1 {
		host = parts[0]
	}
	if len(parts) >= 2 {
		share = parts[1]
	}
	if len(parts) >= 3 {
		relPath = parts[2]
	}

	return host, share, relPath
}

// ValidatePath checks if a path is valid for the current platform
func ValidatePath(path string) error {
	return validatePath(runtime.GOOS, path)
}

func validatePath(goos, path string) error {
	if path == "" {
		return &PathError{Path: path, Message: "path is empty"}
	}

	// A UNC root must at least name a host and a share
	if isUNCPath(goos, path) {
		host, share, _ := parseUNCPath(goos, path)
		if host == "" || share == "" {
			return &PathError{Path: path, Message: "UNC path must name a host and a share"}
		}
		return nil
	}

	// Check for invalid characters based on OS
	if goos == "windows" {
		checked := path
		// The colon in a drive prefix like C:\ is legal; any other is not
		if len(checked) >= 2 && checked[1] == ':' && isDriveLetter(checked[0]) {
			checked = checked[2:]
		}
		invalidChars := []string{"<", ">", ":", "\"", "|", "?", "*"}
		for _, char := range invalidChars {
			if strings.Contains(checked, char) {
				return &PathError{Path: path, Message: "path contains invalid character: " + char}
			}
		}
	}

	return nil
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// PathError represents a path validation error
type PathError struct {
	Path    string
	Message string
}

func (e *PathError) Error() string {
	return "invalid path '" + e.Path + "': " + e.Message
}
