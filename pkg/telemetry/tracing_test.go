package telemetry_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/storefront/pkg/telemetry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartSpan_RecordsNameAndAttributes(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, span := telemetry.StartSpan(context.Background(), "remote.query", attribute.String("collection", "Products"))
	span.End()

	ended := rec.Ended()
	if len(ended) != 1 {
		t.Fatalf("want 1 span, got %d", len(ended))
	}
	if ended[0].Name() != "remote.query" {
		t.Fatalf("name=%q", ended[0].Name())
	}
	found := false
	for _, a := range ended[0].Attributes() {
		if a.Key == "collection" && a.Value.AsString() == "Products" {
			found = true
		}
	}
	if !found {
		t.Fatalf("collection attribute missing: %v", ended[0].Attributes())
	}
}
