package core

import (
	"github.com/sweeper/sweeper/internal/engine"
	"github.com/sweeper/sweeper/internal/remediate"
	"github.com/sweeper/sweeper/internal/rules"
	"github.com/sweeper/sweeper/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type (
	Config            = engine.Config
	Result            = engine.Result
	Finding           = types.Finding
	ScanResult        = types.ScanResult
	RemediationResult = types.RemediationResult
)

// Catalog selectors for Config.Catalog.
const (
	CatalogSecrets = engine.CatalogSecrets
	CatalogNetwork = engine.CatalogNetwork
	CatalogAll     = engine.CatalogAll
)

// Scan is the stable scanning entrypoint for other programs.
func Scan(cfg Config) (Result, error) {
	return engine.Scan(cfg)
}

// Remediate rewrites the given findings under root and materializes the
// .env, .env.example and .gitignore artifacts.
func Remediate(root string, findings []Finding) RemediationResult {
	return remediate.Apply(root, findings)
}

// PreviewRemediation assigns environment-variable names without touching the
// file system.
func PreviewRemediation(findings []Finding) RemediationResult {
	return remediate.BuildPlan(findings).Preview()
}

// RuleNames returns the names of the secret catalog in evaluation order.
// Exposed for convenience to avoid importing internals directly.
func RuleNames() []string { return rules.Names(rules.Secrets()) }
