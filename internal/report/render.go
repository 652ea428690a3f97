// Package report renders scan results for the console and machine formats.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"

	"github.com/sweeper/sweeper/internal/types"
)

// Summary aggregates counts across a scan.
type Summary struct {
	Files     int `json:"files"`
	Findings  int `json:"findings"`
	Errors    int `json:"errors"`
	Warnings  int `json:"warnings"`
	ReadFails int `json:"readFailures"`
}

// Summarize computes the scan summary over per-file results.
func Summarize(results []types.ScanResult) Summary {
	var s Summary
	for _, r := range results {
		if r.Error != "" {
			s.ReadFails++
			continue
		}
		s.Files++
		for _, f := range r.Findings {
			s.Findings++
			if f.Severity == types.SevError {
				s.Errors++
			} else {
				s.Warnings++
			}
		}
	}
	return s
}

// ShouldFail reports whether the scan warrants a non-zero exit: any
// error-severity finding left unresolved.
func ShouldFail(results []types.ScanResult) bool {
	for _, r := range results {
		for _, f := range r.Findings {
			if f.Severity == types.SevError {
				return true
			}
		}
	}
	return false
}

var (
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// PrintOptions controls console rendering.
type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
}

// colorEnabled also checks the output is a terminal, so piped output stays
// plain without the caller passing --no-color.
func colorEnabled(w io.Writer, opts PrintOptions) bool {
	if opts.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func severityCell(sev types.Severity, color bool) string {
	if !color {
		return string(sev)
	}
	if sev == types.SevError {
		return errStyle.Render(string(sev))
	}
	return warnStyle.Render(string(sev))
}

// PrintTable writes a findings table followed by a summary footer. Results
// keep their scan order: file discovery order, line order within each file.
func PrintTable(w io.Writer, results []types.ScanResult, opts PrintOptions) {
	s := Summarize(results)
	color := colorEnabled(w, opts)

	if s.Findings == 0 {
		fmt.Fprintln(w, "No secrets found")
	} else {
		table := tablewriter.NewWriter(w)
		table.Header("Severity", "Rule", "Location", "Match")
		for _, r := range results {
			for _, f := range r.Findings {
				_ = table.Append([]string{
					severityCell(f.Severity, color),
					f.Pattern,
					fmt.Sprintf("%s:%d:%d", f.Path, f.Line, f.Column),
					f.Match,
				})
			}
		}
		_ = table.Render()
	}

	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(w, "could not read %s: %s\n", r.Path, r.Error)
		}
	}

	fmt.Fprintf(w, "\nFindings: %d (errors: %d, warnings: %d)\n", s.Findings, s.Errors, s.Warnings)
	if opts.FilesScanned > 0 {
		fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
}

// WriteRemediationJSON emits a remediation result as indented JSON.
func WriteRemediationJSON(w io.Writer, res types.RemediationResult) error {
	if res.EnvVars == nil {
		res.EnvVars = []string{}
	}
	if res.FilesModified == nil {
		res.FilesModified = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteJSON emits the results and summary as an indented JSON document.
func WriteJSON(w io.Writer, results []types.ScanResult) error {
	if results == nil {
		results = []types.ScanResult{} // no `null` in JSON
	}
	doc := struct {
		Results []types.ScanResult `json:"results"`
		Summary Summary            `json:"summary"`
	}{results, Summarize(results)}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
