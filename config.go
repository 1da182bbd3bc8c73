package floem

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/floem-go/floem/pkg/metrics"
)

// Config is the application configuration. The zero value is usable: no
// metrics, no tracing, default logger.
type Config struct {
	// Logger is the structured logger for the application.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Metrics enables Prometheus instrumentation of style passes.
	Metrics bool

	// MetricsOptions configure metric registration when Metrics is set.
	MetricsOptions []metrics.Option

	// Tracer traces style passes when set. Leave nil to disable tracing.
	Tracer trace.Tracer

	// DevMode enables development-only collaborators such as the
	// inspector. Never enable in production.
	DevMode bool
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Tracer == nil {
		c.Tracer = noop.NewTracerProvider().Tracer("floem")
	}
	return c
}
