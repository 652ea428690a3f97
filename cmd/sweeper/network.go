package sweeper

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sweeper/sweeper/internal/engine"
	"github.com/sweeper/sweeper/internal/report"
)

var flagNetSeverity string

func init() {
	cmd := &cobra.Command{
		Use:   "scan-network [path]",
		Short: "Scan for unsafe network-security patterns",
		Long:  "Runs only the network-security catalog: unsafe logging, hardcoded auth headers, leaky responses, wildcard CORS and friends.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScanNetwork,
	}
	rootCmd.AddCommand(cmd)
	cmd.Flags().StringVar(&flagNetSeverity, "severity", "", "only report error|warning|all (default all)")
}

func runScanNetwork(_ *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}
	cfg := buildConfig(path, engine.CatalogNetwork, flagNetSeverity)

	res, err := engine.Scan(cfg)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}

	if flagJSON {
		if err := report.WriteJSON(os.Stdout, res.Results); err != nil {
			return err
		}
	} else {
		report.PrintTable(os.Stdout, res.Results, report.PrintOptions{
			NoColor:      flagNoColor,
			Duration:     res.Duration,
			FilesScanned: res.FilesScanned,
		})
	}

	if report.ShouldFail(res.Results) {
		os.Exit(1)
	}
	return nil
}
