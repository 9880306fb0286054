package structured

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"article-parser-api/core/interfaces"
	"article-parser-api/pkg/config"
)

var _ interfaces.Logger = (*Logger)(nil)

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newWithOutput(&buf, config.LogConfig{Level: "info", Format: config.LogFormatJSON})
	if err != nil {
		t.Fatalf("newWithOutput() error = %v", err)
	}

	logger.Info("request completed", map[string]interface{}{
		"status": 200,
		"url":    "https://example.com",
	})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "request completed" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["url"] != "https://example.com" {
		t.Errorf("url field = %v", entry["url"])
	}
	if entry["status"] != float64(200) {
		t.Errorf("status field = %v", entry["status"])
	}
}

func TestNewWithOutput_Levels(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		log     func(l *Logger)
		written bool
	}{
		{name: "debug hidden at info", level: "info", log: func(l *Logger) { l.Debug("hidden", nil) }},
		{name: "debug shown at debug", level: "debug", log: func(l *Logger) { l.Debug("shown", nil) }, written: true},
		{name: "warn shown at info", level: "info", log: func(l *Logger) { l.Warn("shown", nil) }, written: true},
		{name: "info hidden at error", level: "error", log: func(l *Logger) { l.Info("hidden", nil) }},
		{name: "error shown at error", level: "error", log: func(l *Logger) { l.Error("shown", map[string]interface{}{"code": 500}) }, written: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := newWithOutput(&buf, config.LogConfig{Level: tt.level, Format: config.LogFormatText})
			if err != nil {
				t.Fatalf("newWithOutput() error = %v", err)
			}

			tt.log(logger)

			if got := buf.Len() > 0; got != tt.written {
				t.Errorf("written = %v, want %v (output %q)", got, tt.written, buf.String())
			}
		})
	}
}

func TestNewWithOutput_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newWithOutput(&buf, config.LogConfig{Level: "info", Format: config.LogFormatText})
	if err != nil {
		t.Fatalf("newWithOutput() error = %v", err)
	}

	logger.Info("started", map[string]interface{}{"port": 277})

	out := buf.String()
	if !strings.Contains(out, `msg=started`) || !strings.Contains(out, "port=277") {
		t.Errorf("unexpected text output %q", out)
	}
}

func TestNewWithOutput_InvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	if _, err := newWithOutput(&buf, config.LogConfig{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.log")

	logger, err := New(config.LogConfig{Level: "info", Format: config.LogFormatJSON, File: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("written to file", nil)
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file content = %q", data)
	}
}

func TestClose_WithoutFile(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "info"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
