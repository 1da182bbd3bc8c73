package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/floem-go/floem"
	"github.com/floem-go/floem/pkg/reactive"
	"github.com/floem-go/floem/pkg/style"
	"github.com/floem-go/floem/pkg/view"
)

type scenarioResult struct {
	Name            string
	Passes          int
	ViewsVisited    int
	FullResolutions int
	FastPathApplies int
	Elapsed         time.Duration
}

func runCmd() *cobra.Command {
	var (
		depth   int
		breadth int
		passes  int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the style pass scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			results := []scenarioResult{
				runBaseline(logger, depth, breadth, passes),
				runInherited(logger, depth, breadth, passes),
				runHover(logger, depth, breadth, passes),
			}

			fmt.Printf("%-10s %8s %10s %8s %8s %12s\n",
				"scenario", "passes", "visited", "full", "fast", "elapsed")
			for _, r := range results {
				fmt.Printf("%-10s %8d %10d %8d %8d %12s\n",
					r.Name, r.Passes, r.ViewsVisited, r.FullResolutions, r.FastPathApplies,
					r.Elapsed.Round(time.Microsecond))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 3, "Tree depth")
	cmd.Flags().IntVar(&breadth, "breadth", 10, "Children per node")
	cmd.Flags().IntVarP(&passes, "passes", "n", 100, "Style passes per scenario")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log each pass")

	return cmd
}

// buildTree grows a uniform tree under root. Leaves get hover styling so the
// hover scenario has selectors to match.
func buildTree(app *floem.App, parent *view.View, depth, breadth int) {
	for i := 0; i < breadth; i++ {
		child := parent.NewChild()
		if depth == 1 {
			app.Style(child, func() *style.Style {
				return style.New().Hover(func(s *style.Style) *style.Style {
					return style.Opacity.Set(s, 0.8)
				})
			})
			continue
		}
		app.Style(child, func() *style.Style { return style.New() })
		buildTree(app, child, depth-1, breadth)
	}
}

func newBenchApp(logger *slog.Logger, depth, breadth int) (*floem.App, *view.View, *reactive.Signal[float64]) {
	rootView := view.New()
	app := floem.NewApp(rootView, floem.Config{Logger: logger})

	fontSize := reactive.NewSignal(12.0)
	app.Style(rootView, func() *style.Style {
		return style.FontSize.Set(style.New(), fontSize.Get())
	})
	buildTree(app, rootView, depth, breadth)
	app.RunStylePass(context.Background())
	return app, rootView, fontSize
}

func runBaseline(logger *slog.Logger, depth, breadth, passes int) scenarioResult {
	app, rootView, _ := newBenchApp(logger, depth, breadth)
	defer app.Dispose()

	result := scenarioResult{Name: "baseline", Passes: passes}
	start := time.Now()
	for i := 0; i < passes; i++ {
		app.Root().RequestStyleRecursive(rootView)
		stats := app.RunStylePass(context.Background())
		result.ViewsVisited += stats.ViewsVisited
		result.FullResolutions += stats.FullResolutions
		result.FastPathApplies += stats.FastPathApplies
	}
	result.Elapsed = time.Since(start)
	return result
}

func runInherited(logger *slog.Logger, depth, breadth, passes int) scenarioResult {
	app, _, fontSize := newBenchApp(logger, depth, breadth)
	defer app.Dispose()

	result := scenarioResult{Name: "inherited", Passes: passes}
	start := time.Now()
	for i := 0; i < passes; i++ {
		fontSize.Set(float64(12 + i%8))
		stats := app.RunStylePass(context.Background())
		result.ViewsVisited += stats.ViewsVisited
		result.FullResolutions += stats.FullResolutions
		result.FastPathApplies += stats.FastPathApplies
	}
	result.Elapsed = time.Since(start)
	return result
}

func runHover(logger *slog.Logger, depth, breadth, passes int) scenarioResult {
	app, rootView, _ := newBenchApp(logger, depth, breadth)
	defer app.Dispose()

	var leaves []*view.View
	rootView.Walk(func(v *view.View) bool {
		if len(v.Children()) == 0 {
			leaves = append(leaves, v)
		}
		return true
	})

	result := scenarioResult{Name: "hover", Passes: passes}
	start := time.Now()
	for i := 0; i < passes; i++ {
		target := leaves[i%len(leaves)]
		app.Root().SetHovered(target, true)
		stats := app.RunStylePass(context.Background())
		app.Root().SetHovered(target, false)
		stats2 := app.RunStylePass(context.Background())
		result.ViewsVisited += stats.ViewsVisited + stats2.ViewsVisited
		result.FullResolutions += stats.FullResolutions + stats2.FullResolutions
		result.FastPathApplies += stats.FastPathApplies + stats2.FastPathApplies
	}
	result.Elapsed = time.Since(start)
	return result
}
