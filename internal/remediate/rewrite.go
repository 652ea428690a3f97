package remediate

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// rewritable lists the rules that have a safe rewrite. The mapping is
// deliberately partial: rules not listed here are detect-only, because a
// generic substitution would risk corrupting the surrounding syntax (PEM
// blocks, emails, whole logging statements). Detect-only findings are still
// recorded in .env bookkeeping but their source line is left untouched.
var rewritable = map[string]bool{
	"AWS Access Key ID":     true,
	"AWS Secret Access Key": false, // match spans key name + value; unsafe to splice
	"Google API Key":        true,
	"GitHub Token":          true,
	"GitLab Token":          true,
	"Slack Token":           true,
	"Stripe API Key":        true,
	"Database URL":          true,
	"JWT Token":             true,
	"Generic API Key":       false, // same: matched span includes the key name
	"Hardcoded Password":    false,
	"Bearer Token":          false,
}

// CanRewrite reports whether findings from the named rule are rewritten.
func CanRewrite(rule string) bool { return rewritable[rule] }

// spanPattern matches the secret value together with enclosing quotes when
// present, so the replacement expression takes the literal's place whole.
func spanPattern(value string) *regexp.Regexp {
	return regexp.MustCompile(`(["'` + "`" + `]?)` + regexp.QuoteMeta(value) + `(["'` + "`" + `]?)`)
}

// RefExpr renders an environment-variable reference appropriate for the file
// extension. Unknown extensions get shell-style interpolation.
func RefExpr(path, name string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs":
		return "process.env." + name
	case ".py":
		return fmt.Sprintf("os.environ[%q]", name)
	case ".go":
		return fmt.Sprintf("os.Getenv(%q)", name)
	case ".rb":
		return fmt.Sprintf("ENV[%q]", name)
	default:
		return "${" + name + "}"
	}
}

// rewriteContent replaces every quoted or bare occurrence of value in content
// with the reference expression for name. Returns the new content and whether
// anything changed.
func rewriteContent(content, path, value, name string) (string, bool) {
	re := spanPattern(value)
	if !re.MatchString(content) {
		return content, false
	}
	return re.ReplaceAllLiteralString(content, RefExpr(path, name)), true
}
