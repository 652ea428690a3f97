// Package scan applies a rule catalog to file content line by line.
package scan

import (
	"strings"

	"github.com/sweeper/sweeper/internal/rules"
	"github.com/sweeper/sweeper/internal/types"
)

// FakeMarker tags fixture values that must never be reported. Any match whose
// text contains it is dropped before emission.
const FakeMarker = "FAKE"

// placeholderTokens are case-sensitive substrings that mark documentation or
// example content. Containment alone suppresses a match; the check is not
// pattern-aware, which can suppress a real secret that happens to contain one
// of these tokens. Accepted tradeoff to keep test fixtures quiet.
var placeholderTokens = []string{"example", "placeholder", "xxx", "XXXX"}

// Suppressed reports whether a matched value should be discarded. The fake
// marker and the placeholder tokens are independently sufficient.
func Suppressed(match string) bool {
	if strings.Contains(match, FakeMarker) {
		return true
	}
	for _, tok := range placeholderTokens {
		if strings.Contains(match, tok) {
			return true
		}
	}
	return false
}

// Scan runs every catalog rule passing the severity filter over content,
// emitting one Finding per non-overlapping match occurrence. Findings come
// out in line order, then catalog order, then left-to-right within a rule.
// sev = SevAll passes everything.
func Scan(path string, content []byte, catalog []rules.Rule, sev types.Severity) []types.Finding {
	var out []types.Finding
	lines := SplitLines(content)
	for i, line := range lines {
		for _, rule := range catalog {
			if sev != types.SevAll && rule.Severity != sev {
				continue
			}
			for _, loc := range rule.Re.FindAllStringIndex(line, -1) {
				match := line[loc[0]:loc[1]]
				if Suppressed(match) {
					continue
				}
				out = append(out, types.Finding{
					Path:          path,
					Line:          i + 1,
					Column:        loc[0] + 1,
					Match:         types.Truncate(match),
					Secret:        match,
					Pattern:       rule.Name,
					Severity:      rule.Severity,
					Message:       rule.Message,
					FixSuggestion: rule.FixSuggestion,
					Category:      rule.Category,
				})
			}
		}
	}
	return out
}

// RunProcedural evaluates whole-file checks over content, honoring the same
// severity filter and suppression policy as Scan.
func RunProcedural(path string, content []byte, checks []rules.ProceduralCheck, sev types.Severity) []types.Finding {
	lines := SplitLines(content)
	var out []types.Finding
	for _, c := range checks {
		for _, f := range c.Run(path, lines) {
			if sev != types.SevAll && f.Severity != sev {
				continue
			}
			if Suppressed(f.Secret) {
				continue
			}
			out = append(out, f)
		}
	}
	return out
}

// SplitLines splits content on \n, keeping a final partial line and shedding
// a trailing \r so CRLF input matches the same as LF input.
func SplitLines(content []byte) []string {
	lines := strings.Split(string(content), "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}
