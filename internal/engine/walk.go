package engine

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Walk traverses the tree under cfg.Root and invokes handle for each eligible
// file with its full content. Excluded directory names are skipped without
// descending. Unreadable paths are reported through fail and the walk
// continues for siblings; Walk itself only errors when the root is unusable.
func Walk(cfg Config, handle func(path string, data []byte), fail func(path string, err error)) error {
	excluded := toSet(cfg.ExcludeDirs)
	allowed := normalizeExts(cfg.Extensions)

	info, err := os.Stat(cfg.Root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		data, err := os.ReadFile(cfg.Root)
		if err != nil {
			fail(cfg.Root, err)
			return nil
		}
		handle(cfg.Root, data)
		return nil
	}

	return filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			fail(p, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if p != cfg.Root && excluded[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		if !extAllowed(p, allowed) {
			return nil
		}
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if cfg.MaxBytes > 0 {
			if fi, err := d.Info(); err == nil && fi.Size() > cfg.MaxBytes {
				return nil
			}
		}
		data, err := os.ReadFile(p)
		if err != nil {
			fail(p, err)
			return nil
		}
		handle(p, data)
		return nil
	})
}

// allowedByGlobs applies optional include/exclude glob filters on top of the
// extension and directory rules. Globs are comma-separated, matched with
// forward-slash semantics against the root-relative path and its basename.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobList(cfg.IncludeGlobs)
	excludes := parseGlobList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func matchAnyGlob(path string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, path); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(path)); ok {
			return true
		}
	}
	return false
}
