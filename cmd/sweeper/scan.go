package sweeper

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/sweeper/sweeper/internal/config"
	"github.com/sweeper/sweeper/internal/engine"
	"github.com/sweeper/sweeper/internal/remediate"
	"github.com/sweeper/sweeper/internal/report"
	"github.com/sweeper/sweeper/internal/types"
)

var (
	flagExts     []string
	flagExclude  []string
	flagInclude  string
	flagExcludeG string
	flagSeverity string
	flagMaxBytes int64
	flagNoCache  bool
	flagFix      bool
	flagDryRun   bool
	flagMarkdown string
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a source tree for hardcoded secrets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringSliceVar(&flagExts, "ext", nil, "extensions to scan (default: built-in source/config list)")
	cmd.Flags().StringSliceVar(&flagExclude, "exclude", nil, "directory names to skip at any depth (default: built-in list)")
	cmd.Flags().StringVar(&flagInclude, "include-glob", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExcludeG, "exclude-glob", "", "comma-separated exclude globs")
	cmd.Flags().StringVar(&flagSeverity, "severity", "", "only report error|warning|all (default all)")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this (default 1MiB)")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "disable incremental scan cache")
	cmd.Flags().BoolVar(&flagFix, "fix", false, "rewrite findings to environment-variable references")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "preview remediation without touching files")
	cmd.Flags().StringVar(&flagMarkdown, "markdown", "", "write a Markdown report to this path")
}

func buildConfig(path string, catalog engine.Catalog, severity string) engine.Config {
	abs, _ := filepath.Abs(path)
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}
	return engine.Config{
		Root:         abs,
		Extensions:   pickStrings(flagExts, lcfg.Extensions, gcfg.Extensions),
		ExcludeDirs:  pickStrings(flagExclude, lcfg.ExcludeDirs, gcfg.ExcludeDirs),
		IncludeGlobs: pickString(flagInclude, lcfg.IncludeGlobs, gcfg.IncludeGlobs),
		ExcludeGlobs: pickString(flagExcludeG, lcfg.ExcludeGlobs, gcfg.ExcludeGlobs),
		Severity:     types.Severity(pickString(severity, lcfg.Severity, gcfg.Severity)),
		MaxBytes:     pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		NoCache:      pickBool(flagNoCache, lcfg.NoCache, gcfg.NoCache),
		Catalog:      catalog,
	}
}

func runScan(_ *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}
	cfg := buildConfig(path, engine.CatalogSecrets, flagSeverity)
	if flagFix || flagDryRun {
		// A fix run needs the complete finding set; the cache would hide
		// findings in unchanged files.
		cfg.NoCache = true
	}

	res, err := engine.Scan(cfg)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}

	if flagFix || flagDryRun {
		return runRemediation(cfg.Root, res)
	}

	if flagMarkdown != "" {
		f, err := os.Create(flagMarkdown)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := report.WriteMarkdown(f, res.Results, time.Now()); err != nil {
			return err
		}
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

func runRemediation(root string, res engine.Result) error {
	findings := remediate.SkipArtifacts(root, res.Findings())

	if flagDryRun {
		plan := remediate.BuildPlan(findings)
		out := plan.Preview()
		if flagJSON {
			return report.WriteRemediationJSON(os.Stdout, out)
		}
		fmt.Println(out.Message)
		for _, line := range plan.PreviewLines() {
			fmt.Println(" ", line)
		}
		for _, p := range out.FilesModified {
			fmt.Println("  would modify:", p)
		}
		return nil
	}

	out := remediate.Apply(root, findings)
	if flagJSON {
		if err := report.WriteRemediationJSON(os.Stdout, out); err != nil {
			return err
		}
	} else {
		fmt.Println(out.Message)
		for _, p := range out.FilesModified {
			fmt.Println("  modified:", p)
		}
	}
	if !out.Success || hasUnresolved(findings) {
		os.Exit(1)
	}
	return nil
}

// hasUnresolved reports whether error-severity findings survive a fix run.
// Detect-only rules leave their secret in the source, so a successful apply
// can still leave the tree failing.
func hasUnresolved(findings []types.Finding) bool {
	for _, f := range findings {
		if f.Severity == types.SevError && !remediate.CanRewrite(f.Pattern) {
			return true
		}
	}
	return false
}
