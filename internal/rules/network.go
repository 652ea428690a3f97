package rules

import (
	"regexp"
	"strings"

	"github.com/sweeper/sweeper/internal/types"
)

// network is the network-security catalog: unsafe logging, hardcoded auth in
// HTTP plumbing, leaky responses and error handlers.
var network = []Rule{
	{
		Name:          "Sensitive Console Logging",
		Re:            regexp.MustCompile(`console\.(?:log|info|debug|warn)\([^)]*(?:password|passwd|token|secret|apiKey|api_key|authorization|credentials)`),
		Severity:      types.SevError,
		Message:       "Sensitive value passed to console logging",
		FixSuggestion: "Log a redacted placeholder instead of the raw value",
		Category:      types.CatLogging,
	},
	{
		Name:          "Response Body Logging",
		Re:            regexp.MustCompile(`console\.(?:log|info|debug)\([^)]*\b(?:res|resp|response)\.(?:data|body)\b`),
		Severity:      types.SevWarning,
		Message:       "Full response body written to the console",
		FixSuggestion: "Log only the fields you need, never the whole payload",
		Category:      types.CatLogging,
	},
	{
		Name:          "Hardcoded Authorization Header",
		Re:            regexp.MustCompile(`(?i)["']authorization["']\s*:\s*["'][^"']+["']`),
		Severity:      types.SevError,
		Message:       "Authorization header built from a hardcoded value",
		FixSuggestion: "Read the credential from the environment when building the header",
		Category:      types.CatRequest,
	},
	{
		Name:          "Secret In Query String",
		Re:            regexp.MustCompile(`(?i)[?&](?:api[_-]?key|token|secret|password|auth)=[^&\s"']+`),
		Severity:      types.SevError,
		Message:       "Credential passed in a URL query string",
		FixSuggestion: "Send credentials in a header or request body, not the URL",
		Category:      types.CatRequest,
	},
	{
		Name:          "Full Object Response",
		Re:            regexp.MustCompile(`res\.(?:json|send)\(\s*(?:user|req\.user|account|profile|document)\b[^.)]*\)`),
		Severity:      types.SevWarning,
		Message:       "Whole model object returned to the client",
		FixSuggestion: "Return an explicit allow-list of fields",
		Category:      types.CatResponse,
	},
	{
		Name:          "Stack Trace Exposure",
		Re:            regexp.MustCompile(`res\.(?:status\(\d+\)\.)?(?:json|send)\([^)]*\berr(?:or)?\.(?:stack|message)\b`),
		Severity:      types.SevError,
		Message:       "Error internals sent in an HTTP response",
		FixSuggestion: "Return a generic error message and log the details server-side",
		Category:      types.CatErrorHandling,
	},
	{
		Name:          "Wildcard CORS",
		Re:            regexp.MustCompile(`(?i)(?:access-control-allow-origin["']?\s*[,:]\s*["']\*["']|cors\(\s*\{\s*origin\s*:\s*["']\*["'])`),
		Severity:      types.SevError,
		Message:       "CORS configured to allow any origin",
		FixSuggestion: "List the origins that actually need access",
		Category:      types.CatResponse,
	},
	{
		Name:          "Debug Statement",
		Re:            regexp.MustCompile(`(?:\bdebugger\b|console\.trace\()`),
		Severity:      types.SevWarning,
		Message:       "Debug statement left in source",
		FixSuggestion: "Remove debug statements before shipping",
		Category:      types.CatLogging,
	},
	{
		Name:          "Security TODO",
		Re:            regexp.MustCompile(`(?i)(?:TODO|FIXME|HACK)[:\s].*(?:security|auth|password|token|secret)`),
		Severity:      types.SevWarning,
		Message:       "Unresolved security-relevant TODO",
		FixSuggestion: "Track the item in your issue tracker and resolve it",
		Category:      types.CatErrorHandling,
	},
}

// Network returns the network-security catalog. Callers must not mutate it.
func Network() []Rule { return network }

// ProceduralCheck is a predicate over whole-file content for conditions a
// single-line matcher cannot express. Run returns findings with 1-based
// positions, or nil when the file is clean.
type ProceduralCheck struct {
	Name string
	Run  func(path string, lines []string) []types.Finding
}

var procedural = []ProceduralCheck{
	{Name: "Unhandled Promise Rejection", Run: unhandledPromise},
	{Name: "Missing Security Middleware", Run: missingHelmet},
}

// Procedural returns the whole-file checks run alongside the network catalog.
func Procedural() []ProceduralCheck { return procedural }

// unhandledPromise flags promise chains with no rejection handler anywhere in
// the file. One finding per .then( line when the file lacks both .catch( and
// try/await pairing is out of reach for a text check, so catch alone decides.
func unhandledPromise(path string, lines []string) []types.Finding {
	hasCatch := false
	for _, ln := range lines {
		if strings.Contains(ln, ".catch(") {
			hasCatch = true
			break
		}
	}
	if hasCatch {
		return nil
	}
	var out []types.Finding
	for i, ln := range lines {
		col := strings.Index(ln, ".then(")
		if col < 0 {
			continue
		}
		out = append(out, types.Finding{
			Path:          path,
			Line:          i + 1,
			Column:        col + 1,
			Match:         types.Truncate(strings.TrimSpace(ln)),
			Secret:        strings.TrimSpace(ln),
			Pattern:       "Unhandled Promise Rejection",
			Severity:      types.SevWarning,
			Message:       "Promise chain has no rejection handler in this file",
			FixSuggestion: "Add a .catch( handler or use try/await",
			Category:      types.CatErrorHandling,
		})
	}
	return out
}

// missingHelmet flags express apps that never install helmet.
func missingHelmet(path string, lines []string) []types.Finding {
	appLine, appCol := -1, -1
	usesHelmet := false
	for i, ln := range lines {
		if col := strings.Index(ln, "express()"); col >= 0 && appLine < 0 {
			appLine, appCol = i, col
		}
		if strings.Contains(ln, "helmet(") {
			usesHelmet = true
		}
	}
	if appLine < 0 || usesHelmet {
		return nil
	}
	return []types.Finding{{
		Path:          path,
		Line:          appLine + 1,
		Column:        appCol + 1,
		Match:         types.Truncate(strings.TrimSpace(lines[appLine])),
		Secret:        strings.TrimSpace(lines[appLine]),
		Pattern:       "Missing Security Middleware",
		Severity:      types.SevWarning,
		Message:       "Express app without security middleware",
		FixSuggestion: "Install helmet() (or equivalent header middleware) on the app",
		Category:      types.CatResponse,
	}}
}
