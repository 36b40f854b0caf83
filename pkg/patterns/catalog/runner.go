package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/zheny5/gopatterns/pkg/patterns/observability"
)

// runnerConfig holds configuration for demo execution.
type runnerConfig struct {
	out     io.Writer
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// defaultRunnerConfig returns the default execution configuration:
// stdout output, no logging, no telemetry.
func defaultRunnerConfig() runnerConfig {
	return runnerConfig{
		out:     os.Stdout,
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// RunnerOption configures a Runner.
type RunnerOption func(*runnerConfig)

// WithOutput directs demo output to w instead of stdout.
func WithOutput(w io.Writer) RunnerOption {
	return func(c *runnerConfig) {
		if w != nil {
			c.out = w
		}
	}
}

// WithLogger enables structured logging of run progress.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(c *runnerConfig) {
		c.logger = logger
	}
}

// WithMetrics enables metric recording for demo and catalog runs.
func WithMetrics(m observability.MetricsRecorder) RunnerOption {
	return func(c *runnerConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithSpans enables tracing: one span per catalog run with a child
// span per demo.
func WithSpans(s observability.SpanManager) RunnerOption {
	return func(c *runnerConfig) {
		if s != nil {
			c.spans = s
		}
	}
}

// Runner executes catalog demos with logging, metrics, and tracing
// around each one.
type Runner struct {
	catalog *Catalog
	cfg     runnerConfig
}

// NewRunner creates a runner over the catalog.
func NewRunner(c *Catalog, opts ...RunnerOption) *Runner {
	cfg := defaultRunnerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Runner{catalog: c, cfg: cfg}
}

// Run executes the named demos in order, or every registered demo when
// no names are given. Execution stops at the first failure; the
// returned error wraps the failing demo's name.
func (r *Runner) Run(ctx context.Context, names ...string) (runErr error) {
	if len(names) == 0 {
		names = r.catalog.Names()
	}

	// Resolve every name up front so an unknown demo fails the run
	// before any output is written.
	demos := make([]Demo, 0, len(names))
	for _, name := range names {
		d, ok := r.catalog.Get(name)
		if !ok {
			return fmt.Errorf("%q: %w", name, ErrDemoNotFound)
		}
		demos = append(demos, d)
	}

	runID := "run-" + uuid.New().String()[:8]
	startTime := time.Now()
	elapsed := observability.TimedOperation()

	observability.LogCatalogStart(r.cfg.logger, runID, len(demos))

	spanCtx, runSpan := r.cfg.spans.StartCatalogSpan(ctx, runID)
	defer func() {
		r.cfg.spans.EndSpanWithError(runSpan, runErr)
	}()

	for _, d := range demos {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		if err := r.runDemo(spanCtx, d); err != nil {
			runErr = err
			break
		}
	}

	r.cfg.metrics.RecordCatalogRun(ctx, runErr == nil, time.Since(startTime))

	if runErr != nil {
		observability.LogCatalogError(r.cfg.logger, runID, runErr)
	} else {
		observability.LogCatalogComplete(r.cfg.logger, runID, elapsed())
	}
	return runErr
}

// runDemo executes one demo with its own span and metrics.
func (r *Runner) runDemo(ctx context.Context, d Demo) error {
	observability.LogDemoStart(r.cfg.logger, d.Name)

	demoCtx, span := r.cfg.spans.StartDemoSpan(ctx, d.Name)
	startTime := time.Now()

	err := r.writeDemo(d)

	duration := time.Since(startTime)
	r.cfg.metrics.RecordDemo(demoCtx, d.Name, string(d.Family), duration, err)
	r.cfg.spans.EndSpanWithError(span, err)

	if err != nil {
		observability.LogDemoError(r.cfg.logger, d.Name, err)
		return &DemoError{Name: d.Name, Err: err}
	}
	observability.LogDemoComplete(r.cfg.logger, d.Name, float64(duration.Milliseconds()))
	return nil
}

// writeDemo prints the demo header and runs the demo function.
func (r *Runner) writeDemo(d Demo) error {
	if _, err := fmt.Fprintf(r.cfg.out, "--- %s (%s)\n", d.Name, d.Family); err != nil {
		return err
	}
	return d.Run(r.cfg.out)
}
