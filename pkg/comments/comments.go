// Package comments overlays user-authored annotations onto scanned folders.
// Comment maps key folder paths (absolute or root-relative) to free text.
package comments

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sdejongh/sharemap/pkg/models"
	"github.com/sdejongh/sharemap/pkg/pathutil"
)

// LoadFile reads a comment map from a JSON or YAML file, chosen by
// extension (.yaml/.yml parse as YAML, everything else as JSON). The file
// must hold a single mapping of path strings to comment strings.
func LoadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read comments file: %w", err)
	}

	raw := make(map[string]string)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse comments file %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse comments file %s: %w", path, err)
		}
	}

	return raw, nil
}

// Normalize resolves every comment key to the canonical absolute form used
// for folder lookup. Relative keys resolve against root.
func Normalize(raw map[string]string, root string) map[string]string {
	if len(raw) == 0 {
		return nil
	}

	normalized := make(map[string]string, len(raw))
	for key, value := range raw {
		normalized[pathutil.NormalizeCommentKey(key, root)] = value
	}
	return normalized
}

// Apply attaches comments to folders by exact canonical-path match.
// Unmatched folders keep their empty comment. Keys must already be
// normalized; folders must already carry canonical absolute paths.
func Apply(folders []models.FolderRecord, normalized map[string]string) {
	if len(normalized) == 0 {
		return
	}

	for i := range folders {
		if comment, ok := normalized[folders[i].AbsolutePath]; ok {
			folders[i].Comment = comment
		}
	}
}
