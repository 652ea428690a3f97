package types

import "unicode/utf8"

// Severity classifies a rule as must-fix or advisory.
type Severity string

const (
	SevError   Severity = "error"
	SevWarning Severity = "warning"
	// SevAll is only valid as a filter value, never on a rule or finding.
	SevAll Severity = "all"
)

// Category groups network-security rules by the surface they inspect.
type Category string

const (
	CatRequest       Category = "request"
	CatResponse      Category = "response"
	CatLogging       Category = "logging"
	CatErrorHandling Category = "error-handling"
)

// MaxMatchDisplay caps the stored/serialized match text. The untruncated
// value lives in Secret and is the identity key during remediation.
const MaxMatchDisplay = 100

// Finding describes one rule match at a path, line and column (both 1-based).
// Match is truncated to MaxMatchDisplay characters for display and
// serialization; Secret carries the full matched text and is never serialized.
type Finding struct {
	Path          string   `json:"path"`
	Line          int      `json:"line"`
	Column        int      `json:"column"`
	Match         string   `json:"match"`
	Secret        string   `json:"-"`
	Pattern       string   `json:"pattern"`
	Severity      Severity `json:"severity"`
	Message       string   `json:"message"`
	FixSuggestion string   `json:"fixSuggestion,omitempty"`
	Category      Category `json:"category,omitempty"`
}

// ScanResult holds the findings for one file, in discovery order. Error is
// set when the path could not be read; such results carry no findings.
type ScanResult struct {
	Path     string    `json:"path"`
	Findings []Finding `json:"findings"`
	Error    string    `json:"error,omitempty"`
}

// RemediationResult reports the outcome of a remediation run. EnvVars are the
// assigned names in discovery order; Backups has one entry per modified file.
type RemediationResult struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	EnvVars       []string `json:"envVars"`
	FilesModified []string `json:"filesModified"`
	Backups       []string `json:"backups,omitempty"`
}

// Truncate returns s cut to at most MaxMatchDisplay bytes for display,
// backing off to a rune boundary so multi-byte characters are never split.
func Truncate(s string) string {
	if len(s) <= MaxMatchDisplay {
		return s
	}
	cut := MaxMatchDisplay
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
