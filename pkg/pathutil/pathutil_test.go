package pathutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sdejongh/sharemap/pkg/models"
)

// TestCanonicalize tests path canonicalization
func TestCanonicalize(t *testing.T) {
	t.Run("ExistingDirectory", func(t *testing.T) {
		tempDir := t.TempDir()

		got, err := Canonicalize(tempDir)
		if err != nil {
			t.Fatalf("Canonicalize() error = %v", err)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("Canonicalize() = %s, want absolute path", got)
		}
	})

	t.Run("NonExistentPath", func(t *testing.T) {
		_, err := Canonicalize("/nonexistent/path/that/does/not/exist")
		if err == nil {
			t.Fatal("Canonicalize() should fail for non-existent path")
		}
		if _, ok := err.(*models.PathResolutionError); !ok {
			t.Errorf("error type = %T, want *models.PathResolutionError", err)
		}
	})

	t.Run("ResolvesSymlink", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("symlink creation requires elevated privileges on Windows")
		}

		tempDir := t.TempDir()
		target := filepath.Join(tempDir, "target")
		if err := os.Mkdir(target, 0755); err != nil {
			t.Fatalf("failed to create target dir: %v", err)
		}
		link := filepath.Join(tempDir, "link")
		if err := os.Symlink(target, link); err != nil {
			t.Fatalf("failed to create symlink: %v", err)
		}

		resolvedTarget, err := Canonicalize(target)
		if err != nil {
			t.Fatalf("Canonicalize(target) error = %v", err)
		}
		resolvedLink, err := Canonicalize(link)
		if err != nil {
			t.Fatalf("Canonicalize(link) error = %v", err)
		}
		if resolvedLink != resolvedTarget {
			t.Errorf("Canonicalize(link) = %s, want %s", resolvedLink, resolvedTarget)
		}
	})

	t.Run("RelativePath", func(t *testing.T) {
		tempDir := t.TempDir()
		oldWd, _ := os.Getwd()
		if err := os.Chdir(tempDir); err != nil {
			t.Fatalf("failed to chdir: %v", err)
		}
		defer os.Chdir(oldWd)

		got, err := Canonicalize(".")
		if err != nil {
			t.Fatalf("Canonicalize(.) error = %v", err)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("Canonicalize(.) = %s, want absolute path", got)
		}
	})
}

// TestRelativeLabel tests relative label computation
func TestRelativeLabel(t *testing.T) {
	tests := []struct {
		name   string
		root   string
		target string
		want   string
	}{
		{"RootItself", "/srv/share", "/srv/share", "."},
		{"DirectChild", "/srv/share", "/srv/share/Finance", "Finance"},
		{"NestedChild", "/srv/share", "/srv/share/Finance/Invoices", "Finance/Invoices"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := filepath.FromSlash(tt.root)
			target := filepath.FromSlash(tt.target)
			if got := RelativeLabel(root, target); got != tt.want {
				t.Errorf("RelativeLabel(%s, %s) = %s, want %s", root, target, got, tt.want)
			}
		})
	}
}

// TestNormalizeCommentKey tests comment key normalization
func TestNormalizeCommentKey(t *testing.T) {
	t.Run("RelativeKeyResolvesAgainstRoot", func(t *testing.T) {
		tempDir := t.TempDir()
		sub := filepath.Join(tempDir, "Finance", "Invoices")
		if err := os.MkdirAll(sub, 0755); err != nil {
			t.Fatalf("failed to create dirs: %v", err)
		}

		root, err := Canonicalize(tempDir)
		if err != nil {
			t.Fatalf("Canonicalize() error = %v", err)
		}

		got := NormalizeCommentKey(filepath.Join("Finance", "Invoices"), root)
		want, _ := Canonicalize(sub)
		if got != want {
			t.Errorf("NormalizeCommentKey() = %s, want %s", got, want)
		}
	})

	t.Run("AbsoluteKeyKept", func(t *testing.T) {
		tempDir := t.TempDir()
		root, err := Canonicalize(tempDir)
		if err != nil {
			t.Fatalf("Canonicalize() error = %v", err)
		}

		got := NormalizeCommentKey(root, "/elsewhere")
		if got != root {
			t.Errorf("NormalizeCommentKey() = %s, want %s", got, root)
		}
	})

	t.Run("NonExistentKeyCleansLexically", func(t *testing.T) {
		tempDir := t.TempDir()
		root, err := Canonicalize(tempDir)
		if err != nil {
			t.Fatalf("Canonicalize() error = %v", err)
		}

		got := NormalizeCommentKey("no/such/folder", root)
		want := filepath.Join(root, "no", "such", "folder")
		if got != want {
			t.Errorf("NormalizeCommentKey() = %s, want %s", got, want)
		}
	})
}
