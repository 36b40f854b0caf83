package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics(t *testing.T) {
	m := NoopMetrics{}
	ctx := context.Background()

	// must not panic
	m.RecordDemo(ctx, "decorator", "structural", time.Millisecond, nil)
	m.RecordDemo(ctx, "decorator", "structural", time.Millisecond, errors.New("boom"))
	m.RecordCatalogRun(ctx, false, time.Second)
}

func TestNoopSpanManager(t *testing.T) {
	mgr := NoopSpanManager{}

	ctx, span := mgr.StartCatalogSpan(context.Background(), "run-abc12345")
	assert.NotNil(t, ctx)
	assert.NotNil(t, span)

	ctx2, span2 := mgr.StartDemoSpan(ctx, "visitor")
	assert.NotNil(t, ctx2)
	assert.NotNil(t, span2)

	mgr.EndSpanWithError(span2, errors.New("boom"))
	mgr.EndSpanWithError(span, nil)
	mgr.AddSpanEvent(ctx, "event", attribute.String("k", "v"))
}
