package flog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_FormatsMessageAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(slog.LevelInfo, &buf)

	log.Info("upload complete", "file", "receipt.jpg", "id", "42")

	line := buf.String()
	if !strings.Contains(line, "upload complete") {
		t.Errorf("Expected message in output, got %q", line)
	}
	if !strings.Contains(line, "file=receipt.jpg") || !strings.Contains(line, "id=42") {
		t.Errorf("Expected key=value attrs, got %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("Expected trailing newline, got %q", line)
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(slog.LevelWarn, &buf)

	log.Info("should be suppressed")
	if buf.Len() != 0 {
		t.Errorf("Info should be suppressed at WARN level, got %q", buf.String())
	}

	log.Warn("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("Warn should pass the filter, got %q", buf.String())
	}
}

func TestLogger_WithCarriesAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(slog.LevelInfo, &buf).With("component", "watch")

	log.Info("started")

	if !strings.Contains(buf.String(), "component=watch") {
		t.Errorf("Expected persistent attr in output, got %q", buf.String())
	}
}
