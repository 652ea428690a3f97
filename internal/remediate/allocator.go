package remediate

import (
	"fmt"

	"github.com/sweeper/sweeper/internal/types"
)

// baseNames maps a rule name to the environment-variable base name it
// suggests. Rules absent here fall back to "SECRET".
var baseNames = map[string]string{
	"AWS Access Key ID":              "AWS_ACCESS_KEY_ID",
	"AWS Secret Access Key":          "AWS_SECRET_ACCESS_KEY",
	"Google API Key":                 "GOOGLE_API_KEY",
	"GitHub Token":                   "GITHUB_TOKEN",
	"GitLab Token":                   "GITLAB_TOKEN",
	"Slack Token":                    "SLACK_TOKEN",
	"Stripe API Key":                 "STRIPE_API_KEY",
	"Database URL":                   "DATABASE_URL",
	"JWT Token":                      "JWT_TOKEN",
	"Bearer Token":                   "BEARER_TOKEN",
	"Generic API Key":                "API_KEY",
	"Hardcoded Password":             "PASSWORD",
	"Hardcoded Authorization Header": "AUTH_HEADER",
	"Secret In Query String":         "QUERY_TOKEN",
}

const fallbackName = "SECRET"

// Allocator assigns one stable environment-variable name per distinct secret
// value within a single remediation run. It is an explicit accumulator, never
// shared between runs, so repeated remediations in one process cannot leak
// state into each other.
type Allocator struct {
	byValue map[string]string // untruncated secret value -> assigned name
	used    map[string]bool
	order   []string // values in first-seen order
}

// NewAllocator returns an empty per-run allocator.
func NewAllocator() *Allocator {
	return &Allocator{byValue: map[string]string{}, used: map[string]bool{}}
}

// Assign returns the name for f's secret value, allocating one on first
// sight. Identity is the untruncated value; two findings with the same value
// always share a name, and two distinct values never do. Base-name collisions
// between distinct values are resolved with numeric suffixes, and the chosen
// name is reserved immediately.
func (a *Allocator) Assign(f types.Finding) string {
	if name, ok := a.byValue[f.Secret]; ok {
		return name
	}
	base, ok := baseNames[f.Pattern]
	if !ok {
		base = fallbackName
	}
	name := base
	for i := 1; a.used[name]; i++ {
		name = fmt.Sprintf("%s_%d", base, i)
	}
	a.used[name] = true
	a.byValue[f.Secret] = name
	a.order = append(a.order, f.Secret)
	return name
}

// Name returns the name already assigned to value, if any.
func (a *Allocator) Name(value string) (string, bool) {
	n, ok := a.byValue[value]
	return n, ok
}

// Assignments lists (name, value) pairs in first-seen order.
func (a *Allocator) Assignments() []Assignment {
	out := make([]Assignment, 0, len(a.order))
	for _, v := range a.order {
		out = append(out, Assignment{Name: a.byValue[v], Value: v})
	}
	return out
}

// Assignment binds one distinct secret value to its generated name.
type Assignment struct {
	Name  string
	Value string
}
