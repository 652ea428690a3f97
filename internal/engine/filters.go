package engine

import (
	"path/filepath"
	"strings"
)

// DefaultExtensions is the fixed set of source/text/config extensions scanned
// when the caller does not narrow the list.
var DefaultExtensions = []string{
	".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs",
	".py", ".rb", ".php", ".go", ".java", ".kt", ".cs", ".rs",
	".sh", ".bash", ".zsh",
	".json", ".yaml", ".yml", ".toml", ".ini", ".env", ".properties",
	".txt", ".md", ".cfg", ".conf", ".xml",
}

// DefaultExcludeDirs are directory names skipped at any depth. Matching is by
// exact name, not glob, and excluded directories are never descended into.
var DefaultExcludeDirs = []string{
	".git", ".svn", ".hg",
	"node_modules", "bower_components",
	"vendor", "target", "dist", "build", "out", "bin", "obj",
	".venv", "venv", "__pycache__",
	"coverage", ".idea", ".vscode",
}

func toSet(names []string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// extAllowed checks a path's extension against the allowed set. Extensions in
// the set carry their leading dot; comparison is case-insensitive.
func extAllowed(path string, allowed map[string]bool) bool {
	return allowed[strings.ToLower(filepath.Ext(path))]
}

func normalizeExts(exts []string) map[string]bool {
	m := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		m[e] = true
	}
	return m
}
