package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/halcyonpay/payctl/internal/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			name:   "default config",
			config: DefaultConfig(),
		},
		{
			name:   "verbose config",
			config: VerboseConfig(),
		},
		{
			name: "custom config json",
			config: Config{
				Level:  LevelDebug,
				Format: FormatJSON,
				Output: &bytes.Buffer{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.config)
			if logger == nil {
				t.Fatal("expected logger, got nil")
			}
			if logger.slog == nil {
				t.Fatal("expected slog logger, got nil")
			}
			if logger.config.Level != tt.config.Level {
				t.Errorf("expected level %v, got %v", tt.config.Level, logger.config.Level)
			}
		})
	}
}

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf})

	logger.Debug("debug message", "key", "value")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	for _, want := range []string{"debug message", "info message", "warn message", "error message"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got: %s", want, out)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelWarn, Format: FormatJSON, Output: &buf})

	logger.Debug("should be filtered")
	logger.Info("should also be filtered")
	logger.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "filtered") {
		t.Errorf("expected debug/info to be filtered at warn level, got: %s", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("expected warn message to appear, got: %s", out)
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf})

	logger.With("profile", "default").Info("loaded")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log entry, got: %s", buf.String())
	}
	if entry["profile"] != "default" {
		t.Errorf("expected profile attribute, got: %v", entry)
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf})

	payErr := errors.Wrap(errors.ErrCodeStoreReadFailed, "read failed", context.DeadlineExceeded)
	logger.WithError(payErr).Error("load aborted")

	out := buf.String()
	if !strings.Contains(out, "STORE-001") {
		t.Errorf("expected error code in output, got: %s", out)
	}
	if !strings.Contains(out, "read failed") {
		t.Errorf("expected error message in output, got: %s", out)
	}

	// nil errors add nothing
	if got := logger.WithError(nil); got != logger {
		t.Error("WithError(nil) should return the same logger")
	}
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelError, Format: FormatJSON, Output: &buf})

	logger.LogError(errors.New(errors.ErrCodeGatewayStatus, "payment declined upstream").
		WithSuggestion("check the payment status with 'payctl payment get'"))

	out := buf.String()
	if !strings.Contains(out, "GATEWAY-002") {
		t.Errorf("expected error code in output, got: %s", out)
	}
	if !strings.Contains(out, "suggestions") {
		t.Errorf("expected suggestions in output, got: %s", out)
	}

	buf.Reset()
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) should log nothing, got: %s", buf.String())
	}
}

func TestEnabled(t *testing.T) {
	logger := New(Config{Level: LevelWarn, Format: FormatText, Output: &bytes.Buffer{}})

	if logger.Enabled(context.Background(), LevelDebug) {
		t.Error("debug should not be enabled at warn level")
	}
	if !logger.Enabled(context.Background(), LevelError) {
		t.Error("error should be enabled at warn level")
	}
}
