package log_test

import (
	"context"
	"testing"

	"task-scheduling-advisor/pkg/log"
)

func TestRequestIDContext(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := log.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
}

func TestInit(t *testing.T) {
	configs := []log.ZapConfig{
		{Level: "debug", Mode: "development", Encoding: "console", ColorEnabled: true},
		{Level: "info", Mode: "production", Encoding: "json"},
		{Level: "not-a-level", Mode: "development", Encoding: "console"},
	}
	for _, cfg := range configs {
		l := log.Init(cfg)
		if l == nil {
			t.Fatalf("Init(%+v) returned nil", cfg)
		}
		l.Debugf(log.WithRequestID(context.Background(), "req-2"), "debug %d", 1)
		l.Info(context.Background(), "info")
	}

	log.NewNop().Error(context.Background(), "discarded")
}
