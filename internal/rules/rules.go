package rules

import (
	"regexp"

	"github.com/sweeper/sweeper/internal/types"
)

// Rule is one immutable detection entry: a compiled single-line matcher plus
// reporting metadata. Catalog order defines evaluation order, not priority;
// every matching rule fires.
type Rule struct {
	Name          string
	Re            *regexp.Regexp
	Severity      types.Severity
	Message       string
	FixSuggestion string
	Category      types.Category
}

// secrets is the built-in secret catalog. Patterns are ordered from most
// specific to most generic to keep noise down on overlapping matches.
var secrets = []Rule{
	{
		Name:          "AWS Access Key ID",
		Re:            regexp.MustCompile(`\b(?:AKIA|ASIA|ABIA|ACCA)[0-9A-Z]{16}\b`),
		Severity:      types.SevError,
		Message:       "AWS access key ID committed to source",
		FixSuggestion: "Move the key to an environment variable and rotate it in the AWS console",
	},
	{
		Name:          "AWS Secret Access Key",
		Re:            regexp.MustCompile(`(?i)aws[_-]?secret[_-]?(?:access[_-]?)?key["'\s:=]+[A-Za-z0-9/+=]{40}\b`),
		Severity:      types.SevError,
		Message:       "AWS secret access key committed to source",
		FixSuggestion: "Move the key to an environment variable and rotate it immediately",
	},
	{
		Name:          "Google API Key",
		Re:            regexp.MustCompile(`\bAIza[0-9A-Za-z_\-]{35}\b`),
		Severity:      types.SevError,
		Message:       "Google API key committed to source",
		FixSuggestion: "Move the key to an environment variable and restrict it in the Cloud console",
	},
	{
		Name:          "GitHub Token",
		Re:            regexp.MustCompile(`\bgh[pousr]_[A-Za-z0-9]{36,255}\b`),
		Severity:      types.SevError,
		Message:       "GitHub token committed to source",
		FixSuggestion: "Revoke the token and read it from the environment instead",
	},
	{
		Name:          "GitLab Token",
		Re:            regexp.MustCompile(`\bglpat-[A-Za-z0-9_\-]{20,}\b`),
		Severity:      types.SevError,
		Message:       "GitLab personal access token committed to source",
		FixSuggestion: "Revoke the token and read it from the environment instead",
	},
	{
		Name:          "Slack Token",
		Re:            regexp.MustCompile(`\bxox[baprs]-[A-Za-z0-9\-]{10,}\b`),
		Severity:      types.SevError,
		Message:       "Slack token committed to source",
		FixSuggestion: "Revoke the token and read it from the environment instead",
	},
	{
		Name:          "Stripe API Key",
		Re:            regexp.MustCompile(`\b[sr]k_(?:test|live)_[A-Za-z0-9]{24,}\b`),
		Severity:      types.SevError,
		Message:       "Stripe secret key committed to source",
		FixSuggestion: "Roll the key in the Stripe dashboard and load it from the environment",
	},
	{
		Name:          "Private Key",
		Re:            regexp.MustCompile(`-----BEGIN (?:RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY(?: BLOCK)?-----`),
		Severity:      types.SevError,
		Message:       "Private key material committed to source",
		FixSuggestion: "Remove the key from the repository and store it in a secrets manager",
	},
	{
		Name:          "Database URL",
		Re:            regexp.MustCompile(`\b(?:mongodb(?:\+srv)?|postgres(?:ql)?|mysql|redis|amqp)://[^\s"':@/]+:[^\s"'@/]+@[^\s"']+`),
		Severity:      types.SevError,
		Message:       "Database connection string with embedded credentials",
		FixSuggestion: "Load the connection string from an environment variable",
	},
	{
		Name:          "JWT Token",
		Re:            regexp.MustCompile(`\beyJ[A-Za-z0-9_\-]{8,}\.[A-Za-z0-9_\-]{8,}\.[A-Za-z0-9_\-]{8,}\b`),
		Severity:      types.SevError,
		Message:       "Signed JWT committed to source",
		FixSuggestion: "Issue tokens at runtime; never commit signed tokens",
	},
	{
		Name:          "Bearer Token",
		Re:            regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9\-._~+/]{20,}=*`),
		Severity:      types.SevWarning,
		Message:       "Hardcoded bearer token",
		FixSuggestion: "Build the Authorization header from an environment variable",
	},
	{
		Name:          "Generic API Key",
		Re:            regexp.MustCompile(`(?i)\b(?:api[_-]?key|apikey|api[_-]?secret|access[_-]?token)["'\s:=]+["'][A-Za-z0-9_\-]{16,}["']`),
		Severity:      types.SevError,
		Message:       "Hardcoded API key",
		FixSuggestion: "Move the key to an environment variable",
	},
	{
		Name:          "Hardcoded Password",
		Re:            regexp.MustCompile(`(?i)\b(?:password|passwd|pwd)["'\s:=]+["'][^"']{6,}["']`),
		Severity:      types.SevError,
		Message:       "Hardcoded password",
		FixSuggestion: "Move the password to an environment variable",
	},
	{
		Name:          "Email Address",
		Re:            regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`),
		Severity:      types.SevWarning,
		Message:       "Email address committed to source",
		FixSuggestion: "Avoid committing personal data; use a config value if the address is needed",
	},
}

// Secrets returns the secret-detection catalog. Callers must not mutate it.
func Secrets() []Rule { return secrets }

// Names returns the rule names of a catalog in evaluation order.
func Names(catalog []Rule) []string {
	out := make([]string, len(catalog))
	for i, r := range catalog {
		out[i] = r.Name
	}
	return out
}
