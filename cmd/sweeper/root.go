package sweeper

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sweeper/sweeper/internal/logging"
)

var (
	flagJSON    bool
	flagNoColor bool
	flagVerbose bool
)

// rootCmd is the base Cobra command for the sweeper CLI.
var rootCmd = &cobra.Command{
	Use:           "sweeper",
	Short:         "Find hardcoded secrets and move them to environment variables",
	Long:          "Sweeper scans source trees for hardcoded secrets and unsafe network-security patterns, and can rewrite offending files to reference environment variables instead.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Init(flagVerbose)
	},
}

// Execute runs the sweeper CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose diagnostics")
}
