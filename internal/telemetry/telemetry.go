package telemetry

import (
	"context"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/bmssp/bmssp"
	"github.com/katalvlaran/bmssp/graph"
)

const tracerName = "github.com/katalvlaran/bmssp/bmssp"

var (
	initOnce sync.Once
	enabled  bool
)

// ShutdownFunc flushes and stops the TracerProvider started by Init.
type ShutdownFunc func(ctx context.Context) error

func noopShutdown(context.Context) error { return nil }

// Init installs a TracerProvider that exports completed spans as JSON to w.
// Init is a no-op (and the returned ShutdownFunc does nothing) after the
// first call: only one TracerProvider is ever installed process-wide.
func Init(w io.Writer) (ShutdownFunc, error) {
	var tp *sdktrace.TracerProvider
	var err error

	initOnce.Do(func() {
		var exp *stdouttrace.Exporter
		exp, err = stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
		if err != nil {
			return
		}

		tp = sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exp),
			sdktrace.WithSampler(sdktrace.AlwaysSample()),
		)
		otel.SetTracerProvider(tp)
		enabled = true
	})
	if err != nil {
		return noopShutdown, err
	}
	if tp == nil {
		return noopShutdown, nil
	}

	return tp.Shutdown, nil
}

// InitStdout is a convenience wrapper around Init that writes to os.Stdout.
func InitStdout() (ShutdownFunc, error) {
	return Init(os.Stdout)
}

// Enabled reports whether Init has successfully installed a TracerProvider.
func Enabled() bool {
	return enabled
}

// StartSpan starts a span named name carrying vertex count, edge count,
// source, and recursion level as attributes, the way a query-shaped
// operation would be annotated for tracing. Callers must call the returned
// trace.Span's End.
func StartSpan(ctx context.Context, name string, vertices, edges, source, level int) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name,
		trace.WithAttributes(
			attribute.Int("bmssp.vertices", vertices),
			attribute.Int("bmssp.edges", edges),
			attribute.Int("bmssp.source", source),
			attribute.Int("bmssp.level", level),
		),
	)
}

// countEdges sums every vertex's out-degree.
func countEdges(g *graph.Graph) int {
	total := 0
	for v := 0; v < g.Len(); v++ {
		out, err := g.Out(graph.Vertex(v))
		if err != nil {
			continue
		}
		total += len(out)
	}

	return total
}

// TracedCompute runs e.Compute(source) inside a "bmssp.Compute" span,
// recording the error (if any) on the span before returning it.
func TracedCompute(ctx context.Context, e *bmssp.Engine, g *graph.Graph, source graph.Vertex) (graph.Distances, error) {
	ctx, span := StartSpan(ctx, "bmssp.Compute", g.Len(), countEdges(g), int(source), e.Level())
	defer span.End()

	dist, err := e.Compute(source)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("bmssp.distances.count", len(dist)))
	return dist, nil
}
