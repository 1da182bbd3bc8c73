// Package floem wires the reactive runtime, the style model, and the view
// tree into an application: signal-driven styles, span-wrapped style passes,
// and the optional dev-mode inspector.
package floem

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/floem-go/floem/pkg/inspector"
	"github.com/floem-go/floem/pkg/metrics"
	"github.com/floem-go/floem/pkg/reactive"
	"github.com/floem-go/floem/pkg/style"
	"github.com/floem-go/floem/pkg/view"
)

// App owns a styled view tree and the reactive scope it lives in.
type App struct {
	config    Config
	scope     *reactive.Scope
	root      *view.Root
	metrics   *metrics.Set
	inspector *inspector.Inspector
}

// NewApp builds an application around a root view.
func NewApp(rootView *view.View, config Config) *App {
	config = config.withDefaults()
	app := &App{
		config: config,
		scope:  reactive.NewScope(),
		root:   view.NewRoot(rootView),
	}
	if config.Metrics {
		app.metrics = metrics.New(config.MetricsOptions...)
	}
	if config.DevMode {
		app.inspector = inspector.New(app.root, config.Logger)
	}
	return app
}

// Root returns the window-level state driving style resolution.
func (a *App) Root() *view.Root { return a.root }

// Scope returns the application's root reactive scope. Signals created for
// application state belong here so Dispose tears them down.
func (a *App) Scope() *reactive.Scope { return a.scope }

// Inspector returns the dev-mode inspector, nil unless DevMode is set.
func (a *App) Inspector() *inspector.Inspector { return a.inspector }

// Style binds a reactive style computation to a view. The computation runs
// inside the view's scope; whenever a signal it reads changes, the slot is
// rewritten and a style recalc is requested for the view.
func (a *App) Style(v *view.View, compute func() *style.Style) {
	offset := v.AddStyle(nil)
	v.Scope().Enter(func() {
		first := reactive.CreateUpdater(compute, func(s *style.Style) {
			a.metrics.RecordEffectRun()
			v.SetStyle(offset, s)
			a.root.RequestStyle(v)
		})
		v.SetStyle(offset, first)
	})
}

// RunStylePass executes one style pass over the tree, wrapped in a trace
// span and recorded into the metric set when configured.
func (a *App) RunStylePass(ctx context.Context) view.PassStats {
	_, span := a.config.Tracer.Start(ctx, "floem.style_pass")
	stats := a.root.StylePass()
	span.SetAttributes(
		attribute.Int("style.views_visited", stats.ViewsVisited),
		attribute.Int("style.full_resolutions", stats.FullResolutions),
		attribute.Int("style.fast_path_applies", stats.FastPathApplies),
		attribute.Int("style.iterations", stats.Iterations),
	)
	span.End()

	a.metrics.RecordPass(stats.FullResolutions, stats.FastPathApplies, stats.Iterations, stats.Duration)
	if a.metrics != nil {
		count := 0
		a.root.View().Walk(func(*view.View) bool { count++; return true })
		a.metrics.SetViewCount(count)
	}
	if a.inspector != nil {
		a.inspector.NotifyPass(stats)
	}
	if stats.ViewsVisited > 0 {
		a.config.Logger.Debug("style pass",
			"visited", stats.ViewsVisited,
			"full", stats.FullResolutions,
			"fast", stats.FastPathApplies,
			"duration", stats.Duration)
	}
	return stats
}

// Dispose tears down the tree and every signal and effect owned by the
// application.
func (a *App) Dispose() {
	if a.inspector != nil {
		a.inspector.Close()
	}
	a.root.View().Dispose()
	a.scope.Dispose()
}
