// Package telemetry wires OpenTelemetry tracing around Engine.Compute calls.
// The core engine has no business logging or tracing itself — it is a pure,
// synchronous library call — so this is a thin surrounding layer that
// installs a global TracerProvider (Enabled reports whether one is installed) and exports
// completed spans to stdout via go.opentelemetry.io/otel/exporters/stdout/stdouttrace,
// since there is no running collector to target and stdouttrace needs none,
// while still exercising the same otel/sdk/trace TracerProvider, AlwaysSample,
// and span API surface a gRPC/HTTP exporter would.
package telemetry
