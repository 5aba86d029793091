package monitoring

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/RandomSci/CapstoneProject"

// Tracer wraps the global OpenTelemetry tracer for the client. No exporter
// is wired here; embedding applications install their own provider.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer returns a tracer bound to the global provider
func NewTracer() *Tracer {
	return &Tracer{tracer: otel.Tracer(tracerName)}
}

// StartCallSpan starts a span for one API operation
func (t *Tracer) StartCallSpan(ctx context.Context, operation, method, path string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, fmt.Sprintf("api.%s", operation),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.route", path),
		),
	)
}

// StartUploadSpan starts a span for a streaming upload
func (t *Tracer) StartUploadSpan(ctx context.Context, operation string, size int64) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, fmt.Sprintf("upload.%s", operation),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.Int64("upload.size_bytes", size)),
	)
}

// EndUploadSpan closes an upload span after a confirmed submission,
// recording the server-assigned submission id
func EndUploadSpan(span trace.Span, submissionID int) {
	if submissionID > 0 {
		span.SetAttributes(attribute.Int("upload.submission_id", submissionID))
	}
	span.End()
}

// EndCallSpan closes a span, recording the response status and any error
func EndCallSpan(span trace.Span, statusCode int, err error) {
	if statusCode > 0 {
		span.SetAttributes(attribute.Int("http.status_code", statusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
