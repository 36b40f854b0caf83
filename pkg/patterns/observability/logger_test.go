package observability

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return logger, &buf
}

func TestEnrichLogger(t *testing.T) {
	t.Run("adds run and demo fields", func(t *testing.T) {
		logger, buf := newTestLogger()

		enriched := EnrichLogger(logger, "run-abc12345", "singleton")
		require.NotNil(t, enriched)

		enriched.Info("hello")
		out := buf.String()
		assert.Contains(t, out, `"run_id":"run-abc12345"`)
		assert.Contains(t, out, `"demo":"singleton"`)
	})

	t.Run("nil logger", func(t *testing.T) {
		assert.Nil(t, EnrichLogger(nil, "run-abc12345", "singleton"))
	})
}

func TestLogHelpers(t *testing.T) {
	logger, buf := newTestLogger()

	LogCatalogStart(logger, "run-abc12345", 20)
	assert.Contains(t, buf.String(), "catalog run starting")
	buf.Reset()

	LogCatalogComplete(logger, "run-abc12345", 12.5)
	assert.Contains(t, buf.String(), "catalog run completed")
	buf.Reset()

	LogCatalogError(logger, "run-abc12345", errors.New("boom"))
	assert.Contains(t, buf.String(), "catalog run failed")
	assert.Contains(t, buf.String(), "boom")
	buf.Reset()

	LogDemoStart(logger, "bridge")
	assert.Contains(t, buf.String(), "demo starting")
	buf.Reset()

	LogDemoComplete(logger, "bridge", 1.0)
	assert.Contains(t, buf.String(), "demo completed")
	buf.Reset()

	LogDemoError(logger, "bridge", errors.New("boom"))
	assert.Contains(t, buf.String(), "demo failed")
}

func TestLogHelpersNilLogger(t *testing.T) {
	// must not panic
	LogCatalogStart(nil, "run-abc12345", 0)
	LogCatalogComplete(nil, "run-abc12345", 0)
	LogCatalogError(nil, "run-abc12345", errors.New("boom"))
	LogDemoStart(nil, "bridge")
	LogDemoComplete(nil, "bridge", 0)
	LogDemoError(nil, "bridge", errors.New("boom"))
}

func TestTimedOperation(t *testing.T) {
	done := TimedOperation()
	time.Sleep(2 * time.Millisecond)
	assert.GreaterOrEqual(t, done(), float64(1))
}
