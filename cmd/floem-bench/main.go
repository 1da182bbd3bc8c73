package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "floem-bench",
		Short: "Style engine benchmarks",
		Long: `floem-bench exercises the style engine over synthetic view trees.

Scenarios:

  • baseline   - every pass dirties the whole tree (full recalc)
  • inherited  - an inherited property changes at the root each pass,
                 exercising the inherited-only fast path
  • hover      - pointer churn over leaf views with hover styling

Counters printed per scenario contrast full selector resolutions against
fast-path applies.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		runCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}
