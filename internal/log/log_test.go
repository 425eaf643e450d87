package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFileOutputJSON(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "upload.json")

	logger, err := New(Options{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: logPath,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Debug("hidden message")
	logger.Info("test message", "key", "value")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	if !strings.Contains(string(content), `"msg":"test message"`) {
		t.Errorf("log does not contain expected message: %s", content)
	}
	if !strings.Contains(string(content), `"key":"value"`) {
		t.Errorf("log does not contain expected key-value pair: %s", content)
	}
	if strings.Contains(string(content), "hidden message") {
		t.Errorf("debug message written at info level: %s", content)
	}
}

func TestSetLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "upload.log")

	logger, err := New(Options{Level: "info", Output: "file", FilePath: logPath})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer logger.Close()

	if err := logger.SetLevel("error"); err != nil {
		t.Fatalf("SetLevel failed: %v", err)
	}
	logger.Info("should not appear")
	logger.Error("should appear")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if strings.Contains(string(content), "should not appear") {
		t.Errorf("info message written at error level")
	}
	if !strings.Contains(string(content), "should appear") {
		t.Errorf("error message missing")
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "bad level", opts: Options{Level: "loud"}},
		{name: "bad format", opts: Options{Format: "xml"}},
		{name: "bad output", opts: Options{Output: "syslog"}},
		{name: "file without path", opts: Options{Output: "file"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opts); err == nil {
				t.Errorf("expected error for %+v", tt.opts)
			}
		})
	}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"short", "***"},
		{"12345678", "12345678"},
		{"dev-secret-key", "dev-******-key"},
	}

	for _, tt := range tests {
		if got := MaskSecret(tt.in); got != tt.want {
			t.Errorf("MaskSecret(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
