// Package metrics exposes the style engine's Prometheus instrumentation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures metric registration.
type Config struct {
	// Namespace is the metrics namespace (default: "floem").
	Namespace string

	// Subsystem is the metrics subsystem (default: "style").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for style pass duration.
	// Default: sub-millisecond buckets suited to an update loop.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures metric registration.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets for pass duration.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "floem",
		Subsystem: "style",
		// Style passes run inside a frame budget; default buckets top out
		// around 16ms.
		Buckets:  []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .016},
		Registry: prometheus.DefaultRegisterer,
	}
}

// Set holds the registered metrics for one application.
//
// Metrics collected:
//   - floem_style_full_resolutions_total: Counter of full selector resolutions
//   - floem_style_fast_path_total: Counter of inherited-only fast path applies
//   - floem_style_pass_duration_seconds: Histogram of style pass duration
//   - floem_style_pass_iterations: Histogram of loop iterations per pass
//   - floem_style_effect_runs_total: Counter of reactive effect runs
//   - floem_style_view_count: Gauge of live views in the tree
type Set struct {
	fullResolutions prometheus.Counter
	fastPathApplies prometheus.Counter
	passDuration    prometheus.Histogram
	passIterations  prometheus.Histogram
	effectRuns      prometheus.Counter
	viewCount       prometheus.Gauge
}

// New registers the metric set.
func New(opts ...Option) *Set {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Set{
		fullResolutions: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "full_resolutions_total",
			Help:        "Total number of full selector resolutions",
			ConstLabels: config.ConstLabels,
		}),

		fastPathApplies: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "fast_path_total",
			Help:        "Total number of inherited-only fast path applies",
			ConstLabels: config.ConstLabels,
		}),

		passDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "pass_duration_seconds",
			Help:        "Style pass duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		passIterations: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "pass_iterations",
			Help:        "Tree walks needed per style pass until clean",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{1, 2, 3, 5, 8},
		}),

		effectRuns: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "effect_runs_total",
			Help:        "Total number of style-driving effect runs",
			ConstLabels: config.ConstLabels,
		}),

		viewCount: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "view_count",
			Help:        "Number of live views in the tree",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// RecordPass records the outcome of one style pass. A nil Set is a no-op,
// so callers can record unconditionally.
func (s *Set) RecordPass(fullResolutions, fastPathApplies, iterations int, duration time.Duration) {
	if s == nil {
		return
	}
	s.fullResolutions.Add(float64(fullResolutions))
	s.fastPathApplies.Add(float64(fastPathApplies))
	s.passIterations.Observe(float64(iterations))
	s.passDuration.Observe(duration.Seconds())
}

// RecordEffectRun counts one reactive effect run.
func (s *Set) RecordEffectRun() {
	if s == nil {
		return
	}
	s.effectRuns.Inc()
}

// SetViewCount updates the live view gauge.
func (s *Set) SetViewCount(n int) {
	if s == nil {
		return
	}
	s.viewCount.Set(float64(n))
}
