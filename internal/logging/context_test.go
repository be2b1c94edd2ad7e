package logging

import (
	"log/slog"
	"testing"
)

func TestContextRoundTrip(t *testing.T) {
	logger := NewDiscard()
	ctx := NewContext(t.Context(), logger)

	if got := FromContext(ctx); got != logger {
		t.Error("FromContext should return the stored logger")
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	if got := FromContext(t.Context()); got != slog.Default() {
		t.Error("FromContext without a stored logger should return slog.Default()")
	}
}
