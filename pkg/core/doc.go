// Package core provides a small, stable facade over sweeper's internal
// engine for external integrations. It deliberately re-exports a narrow API
// surface so other tools can depend on a stable import path without reaching
// into internal implementation packages.
//
// Example:
//
//	cfg := core.Config{Root: "."}
//	res, err := core.Scan(cfg)
//	if err != nil { /* handle */ }
//	out := core.Remediate(cfg.Root, res.Findings())
package core
