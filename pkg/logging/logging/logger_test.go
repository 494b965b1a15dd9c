package logging

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	ctx := WithLogger(context.Background(), logger)
	ctx = WithFields(ctx, zap.String("request_id", "abc"))

	L(ctx).Info("hello")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	if entries[0].ContextMap()["request_id"] != "abc" {
		t.Fatalf("expected request_id field, got %#v", entries[0].ContextMap())
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatalf("expected default logger")
	}
}

func TestFromContextOr(t *testing.T) {
	fallback := zap.NewNop()
	if FromContextOr(context.Background(), fallback) != fallback {
		t.Fatalf("expected fallback logger without a context logger")
	}

	attached := zap.NewExample()
	ctx := WithLogger(context.Background(), attached)
	if FromContextOr(ctx, fallback) != attached {
		t.Fatalf("expected the context logger to win over the fallback")
	}

	if FromContextOr(context.Background(), nil) == nil {
		t.Fatalf("expected default logger for a nil fallback")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	logger, err := NewLogger(Options{Env: "production", Level: "warn"})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if logger.Core().Enabled(zap.InfoLevel) {
		t.Fatalf("info should be disabled at warn level")
	}
	if !logger.Core().Enabled(zap.WarnLevel) {
		t.Fatalf("warn should be enabled")
	}
}
