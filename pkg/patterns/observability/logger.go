// Package observability provides structured logging, metrics, and
// tracing for catalogue runs.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds catalogue context to a logger.
// Returns a new logger with run_id and demo fields.
func EnrichLogger(logger *slog.Logger, runID, demo string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("run_id", runID),
		slog.String("demo", demo),
	)
}

// LogCatalogStart logs the start of a catalogue run.
func LogCatalogStart(logger *slog.Logger, runID string, demoCount int) {
	if logger == nil {
		return
	}
	logger.Info("catalog run starting",
		slog.String("run_id", runID),
		slog.Int("demos", demoCount),
	)
}

// LogCatalogComplete logs successful catalogue run completion.
func LogCatalogComplete(logger *slog.Logger, runID string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("catalog run completed",
		slog.String("run_id", runID),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCatalogError logs catalogue run failure.
func LogCatalogError(logger *slog.Logger, runID string, err error) {
	if logger == nil {
		return
	}
	logger.Error("catalog run failed",
		slog.String("run_id", runID),
		slog.String("error", err.Error()),
	)
}

// LogDemoStart logs demo execution start.
func LogDemoStart(logger *slog.Logger, demo string) {
	if logger == nil {
		return
	}
	logger.Debug("demo starting",
		slog.String("demo", demo),
	)
}

// LogDemoComplete logs successful demo completion.
func LogDemoComplete(logger *slog.Logger, demo string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("demo completed",
		slog.String("demo", demo),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogDemoError logs demo execution error.
func LogDemoError(logger *slog.Logger, demo string, err error) {
	if logger == nil {
		return
	}
	logger.Error("demo failed",
		slog.String("demo", demo),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in
// milliseconds.
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
