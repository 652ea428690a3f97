package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sweeper/sweeper/internal/types"
)

// WriteMarkdown renders results as a Markdown report suitable for committing
// or attaching to a review.
func WriteMarkdown(w io.Writer, results []types.ScanResult, when time.Time) error {
	s := Summarize(results)
	var b strings.Builder
	b.WriteString("# Secret Scan Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", when.Format(time.RFC3339))
	fmt.Fprintf(&b, "**%d finding(s)** across %d file(s) — %d error(s), %d warning(s).\n\n",
		s.Findings, s.Files, s.Errors, s.Warnings)

	if s.Findings > 0 {
		b.WriteString("| Severity | Rule | Location | Match | Fix |\n")
		b.WriteString("| --- | --- | --- | --- | --- |\n")
		for _, r := range results {
			for _, f := range r.Findings {
				fmt.Fprintf(&b, "| %s | %s | `%s:%d:%d` | `%s` | %s |\n",
					f.Severity, f.Pattern, f.Path, f.Line, f.Column,
					mdEscape(f.Match), f.FixSuggestion)
			}
		}
		b.WriteString("\n")
	}

	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(&b, "- could not read `%s`: %s\n", r.Path, r.Error)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func mdEscape(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "`", "'")
}
