package logging

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func newTestLogger(t *testing.T, format Format, level Level) (*FileLogger, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "test.log")
	logger, err := NewFileLogger(FileLoggerConfig{
		Path:       logPath,
		Format:     format,
		Level:      level,
		MaxSizeMB:  10,
		MaxBackups: 3,
	})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	return logger, logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(data)
}

func TestNewFileLogger_CreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()

	// Use a nested path that doesn't exist
	logPath := filepath.Join(tempDir, "nested", "dir", "test.log")
	logger, err := NewFileLogger(FileLoggerConfig{
		Path:   logPath,
		Format: FormatText,
		Level:  InfoLevel,
	})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(filepath.Dir(logPath)); os.IsNotExist(err) {
		t.Error("log directory was not created")
	}
}

func TestFileLogger_LogLevels(t *testing.T) {
	logger, logPath := newTestLogger(t, FormatText, WarnLevel)
	defer logger.Close()

	ctx := context.Background()
	logger.Debug(ctx, "debug message", nil)
	logger.Info(ctx, "info message", nil)
	logger.Warn(ctx, "warn message", nil)
	logger.Error(ctx, "error message", nil, nil)

	content := readLog(t, logPath)
	if strings.Contains(content, "debug message") {
		t.Error("debug message should be filtered at warn level")
	}
	if strings.Contains(content, "info message") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(content, "warn message") {
		t.Error("warn message missing")
	}
	if !strings.Contains(content, "error message") {
		t.Error("error message missing")
	}
}

func TestFileLogger_TextFormat(t *testing.T) {
	logger, logPath := newTestLogger(t, FormatText, DebugLevel)
	defer logger.Close()

	logger.Info(context.Background(), "scan started", Fields{"root": "/srv/share"})

	content := readLog(t, logPath)
	if !strings.Contains(content, "[INFO] scan started") {
		t.Errorf("unexpected text format: %q", content)
	}
	if !strings.Contains(content, "root=/srv/share") {
		t.Errorf("fields missing from text format: %q", content)
	}
}

func TestFileLogger_JSONFormat(t *testing.T) {
	logger, logPath := newTestLogger(t, FormatJSON, DebugLevel)
	defer logger.Close()

	logger.Info(context.Background(), "scan started", Fields{"max_depth": 3})

	content := strings.TrimSpace(readLog(t, logPath))
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(content), &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}
	if entry["message"] != "scan started" {
		t.Errorf("message = %v, want scan started", entry["message"])
	}
	if entry["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", entry["level"])
	}
	if entry["max_depth"] != float64(3) {
		t.Errorf("max_depth = %v, want 3", entry["max_depth"])
	}
}

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }

func TestFileLogger_ErrorWithErr(t *testing.T) {
	logger, logPath := newTestLogger(t, FormatJSON, DebugLevel)
	defer logger.Close()

	logger.Error(context.Background(), "listing failed", &testError{msg: "permission denied"}, nil)

	content := readLog(t, logPath)
	if !strings.Contains(content, "permission denied") {
		t.Errorf("error cause missing: %q", content)
	}
}

func TestFileLogger_WithFields(t *testing.T) {
	logger, logPath := newTestLogger(t, FormatJSON, DebugLevel)
	defer logger.Close()

	child := logger.WithFields(Fields{"operation_id": "abc"})
	child.Info(context.Background(), "render complete", Fields{"format": "json"})

	content := readLog(t, logPath)
	if !strings.Contains(content, "operation_id") {
		t.Error("inherited field missing")
	}
	if !strings.Contains(content, "format") {
		t.Error("call-site field missing")
	}
}

func TestNullLogger(t *testing.T) {
	logger := NewNullLogger()
	ctx := context.Background()

	// All methods should be safe no-ops
	logger.Debug(ctx, "msg", nil)
	logger.Info(ctx, "msg", nil)
	logger.Warn(ctx, "msg", nil)
	logger.Error(ctx, "msg", nil, nil)

	if logger.WithFields(Fields{"a": 1}) != logger {
		t.Error("WithFields should return the same null logger")
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"bogus", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%s) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFileLogger_ConcurrentWrites(t *testing.T) {
	logger, logPath := newTestLogger(t, FormatText, DebugLevel)
	defer logger.Close()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.Info(context.Background(), "concurrent entry", Fields{"worker": n})
		}(i)
	}
	wg.Wait()

	content := readLog(t, logPath)
	if got := strings.Count(content, "concurrent entry"); got != 10 {
		t.Errorf("entries = %d, want 10", got)
	}
}
