package telemetry

import "go.opentelemetry.io/otel/trace/noop"

// NewNoOpTracer returns a tracer whose spans are neither recorded nor exported.
// Resolution runs with it when tracing is off.
func NewNoOpTracer() *OTelTracer {
	return NewOTelTracerFrom(noop.NewTracerProvider(), InstrumentationName)
}
