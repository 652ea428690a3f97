// Package engine orchestrates directory traversal and line scanning into
// ordered per-file results.
package engine

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/sweeper/sweeper/internal/cache"
	"github.com/sweeper/sweeper/internal/logging"
	"github.com/sweeper/sweeper/internal/rules"
	"github.com/sweeper/sweeper/internal/scan"
	"github.com/sweeper/sweeper/internal/types"
)

// Catalog selects which rule sets a scan runs.
type Catalog string

const (
	CatalogSecrets Catalog = "secrets"
	CatalogNetwork Catalog = "network"
	CatalogAll     Catalog = "all"
)

// Config controls a scan: scope, filters and caching.
type Config struct {
	Root         string
	Extensions   []string // empty = DefaultExtensions
	ExcludeDirs  []string // empty = DefaultExcludeDirs
	IncludeGlobs string   // comma-separated, optional
	ExcludeGlobs string   // comma-separated, optional
	Severity     types.Severity
	Catalog      Catalog
	MaxBytes     int64
	NoCache      bool
}

func (c *Config) fillDefaults() {
	if len(c.Extensions) == 0 {
		c.Extensions = DefaultExtensions
	}
	if len(c.ExcludeDirs) == 0 {
		c.ExcludeDirs = DefaultExcludeDirs
	}
	if c.Severity != types.SevError && c.Severity != types.SevWarning {
		c.Severity = types.SevAll
	}
	if c.Catalog == "" {
		c.Catalog = CatalogSecrets
	}
	if c.MaxBytes == 0 {
		c.MaxBytes = 1 << 20
	}
}

// Result carries ordered per-file results plus scan statistics.
type Result struct {
	Results      []types.ScanResult
	FilesScanned int
	Duration     time.Duration
}

// Findings flattens the per-file results into one ordered slice.
func (r Result) Findings() []types.Finding {
	var out []types.Finding
	for _, sr := range r.Results {
		out = append(out, sr.Findings...)
	}
	return out
}

// Scan walks the tree and applies the selected catalogs file by file.
// Execution is single-threaded and order-preserving: remediation's name
// assignment is an order-dependent reduction over the flattened findings.
func Scan(cfg Config) (Result, error) {
	cfg.fillDefaults()
	var res Result
	started := time.Now()

	var db cache.DB
	if !cfg.NoCache {
		db, _ = cache.Load(cfg.Root)
	} else {
		db.Entries = map[string]cache.Entry{}
	}
	updated := map[string]cache.Entry{}

	handle := func(path string, data []byte) {
		res.FilesScanned++
		key := cacheKey(cfg.Root, path)
		h := cache.Hash(data)
		if !cfg.NoCache {
			if e, ok := db.Entries[key]; ok && e.Hash == h && catalogCovered(e.Catalog, cfg.Catalog) {
				return
			}
		}
		fs := scanOne(path, data, cfg)
		if len(fs) > 0 {
			res.Results = append(res.Results, types.ScanResult{Path: path, Findings: fs})
		} else if !cfg.NoCache && cfg.Severity == types.SevAll {
			// Only unfiltered clean verdicts are cacheable: a severity filter
			// can hide findings that a later wider scan must still report.
			// Files with findings are never cached, so repeat runs keep
			// reporting them.
			updated[key] = cache.Entry{Hash: h, Catalog: string(cfg.Catalog)}
		}
	}
	fail := func(path string, err error) {
		// Diagnostic only; never echo file content into logs or results.
		logging.L().Warnw("unreadable path", "path", path, "error", err.Error())
		res.Results = append(res.Results, types.ScanResult{Path: path, Error: err.Error()})
	}

	if err := Walk(cfg, handle, fail); err != nil {
		return res, fmt.Errorf("walk %s: %w", cfg.Root, err)
	}

	if !cfg.NoCache && len(updated) > 0 {
		if db.Entries == nil {
			db.Entries = map[string]cache.Entry{}
		}
		for k, v := range updated {
			db.Entries[k] = v
		}
		_ = cache.Save(cfg.Root, db)
	}
	res.Duration = time.Since(started)
	return res, nil
}

// cacheKey normalizes a walked path to the root-relative form the cache
// persists, so absolute and relative invocations of the same root share
// entries.
func cacheKey(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}

// catalogCovered reports whether a clean verdict recorded under cached holds
// for a scan of want. A file clean under the combined catalog is clean under
// either half; the reverse does not hold.
func catalogCovered(cached string, want Catalog) bool {
	return cached == string(want) || cached == string(CatalogAll)
}

func scanOne(path string, data []byte, cfg Config) []types.Finding {
	var out []types.Finding
	if cfg.Catalog == CatalogSecrets || cfg.Catalog == CatalogAll {
		out = append(out, scan.Scan(path, data, rules.Secrets(), cfg.Severity)...)
	}
	if cfg.Catalog == CatalogNetwork || cfg.Catalog == CatalogAll {
		out = append(out, scan.Scan(path, data, rules.Network(), cfg.Severity)...)
		out = append(out, scan.RunProcedural(path, data, rules.Procedural(), cfg.Severity)...)
	}
	return out
}
