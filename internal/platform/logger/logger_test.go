package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{name: "debug level", logLevel: "debug"},
		{name: "info level", logLevel: "info"},
		{name: "warn level", logLevel: "warn"},
		{name: "error level", logLevel: "error"},
		{name: "mixed case level", logLevel: "INFO"},
		{name: "invalid level falls back to info", logLevel: "verbose"},
		{name: "empty level falls back to info", logLevel: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := Setup(tt.logLevel)
			if logger == nil {
				t.Fatal("Expected non-nil logger")
			}
			if slog.Default() != logger {
				t.Error("Expected Setup to install the logger as default")
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	ctx := context.Background()

	// Without a logger in context the default is returned.
	if got := FromContext(ctx); got != slog.Default() {
		t.Error("Expected default logger for bare context")
	}

	custom := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx = WithLogger(ctx, custom)

	if got := FromContext(ctx); got != custom {
		t.Error("Expected logger stored in context")
	}
}

func TestFromContextOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if got := FromContextOrDefault(context.Background(), fallback); got != fallback {
		t.Error("Expected fallback logger for bare context")
	}

	if got := FromContextOrDefault(context.Background(), nil); got != slog.Default() {
		t.Error("Expected default logger when fallback is nil")
	}

	custom := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := WithLogger(context.Background(), custom)
	if got := FromContextOrDefault(ctx, fallback); got != custom {
		t.Error("Expected context logger to take precedence over fallback")
	}
}
