package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func collectWalk(t *testing.T, cfg Config) []string {
	t.Helper()
	var seen []string
	err := Walk(cfg, func(p string, _ []byte) {
		rel, _ := filepath.Rel(cfg.Root, p)
		seen = append(seen, filepath.ToSlash(rel))
	}, func(p string, err error) {
		t.Fatalf("unexpected walk failure at %s: %v", p, err)
	})
	if err != nil {
		t.Fatal(err)
	}
	return seen
}

func TestWalkExcludesDirsAtAnyDepth(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"src/app.js":                        "code",
		"node_modules/pkg/index.js":         "dep",
		"src/deep/node_modules/x/y.js":      "dep",
		"vendor/lib.go":                     "dep",
		"src/util.py":                       "code",
	})
	cfg := Config{Root: dir}
	cfg.fillDefaults()
	seen := collectWalk(t, cfg)
	want := map[string]bool{"src/app.js": true, "src/util.py": true}
	if len(seen) != len(want) {
		t.Fatalf("seen %v", seen)
	}
	for _, p := range seen {
		if !want[p] {
			t.Fatalf("unexpected path %s", p)
		}
	}
}

func TestWalkExtensionFilter(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.js":  "x",
		"b.png": "x",
		"c.exe": "x",
		"d.yml": "x",
	})
	cfg := Config{Root: dir}
	cfg.fillDefaults()
	seen := collectWalk(t, cfg)
	if len(seen) != 2 {
		t.Fatalf("want a.js and d.yml, got %v", seen)
	}
}

func TestWalkCustomExtensions(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.js": "x", "b.tf": "x"})
	cfg := Config{Root: dir, Extensions: []string{"tf"}} // dot is optional
	cfg.fillDefaults()
	seen := collectWalk(t, cfg)
	if len(seen) != 1 || seen[0] != "b.tf" {
		t.Fatalf("got %v", seen)
	}
}

func TestWalkGlobFilters(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"src/app.js":    "x",
		"src/app.txt":   "x",
		"test/fix.js":   "x",
	})
	cfg := Config{Root: dir, IncludeGlobs: "**/*.js", ExcludeGlobs: "test/**"}
	cfg.fillDefaults()
	seen := collectWalk(t, cfg)
	if len(seen) != 1 || seen[0] != "src/app.js" {
		t.Fatalf("got %v", seen)
	}
}

func TestWalkSingleFileRoot(t *testing.T) {
	dir := writeTree(t, map[string]string{"solo.js": "content"})
	cfg := Config{Root: filepath.Join(dir, "solo.js")}
	cfg.fillDefaults()
	seen := collectWalk(t, cfg)
	if len(seen) != 1 {
		t.Fatalf("got %v", seen)
	}
}

func TestWalkMaxBytes(t *testing.T) {
	big := make([]byte, 2048)
	for i := range big {
		big[i] = 'a'
	}
	dir := writeTree(t, map[string]string{"small.js": "x", "big.js": string(big)})
	cfg := Config{Root: dir, MaxBytes: 1024}
	cfg.fillDefaults()
	seen := collectWalk(t, cfg)
	if len(seen) != 1 || seen[0] != "small.js" {
		t.Fatalf("got %v", seen)
	}
}

func TestWalkMissingRoot(t *testing.T) {
	cfg := Config{Root: filepath.Join(t.TempDir(), "absent")}
	cfg.fillDefaults()
	err := Walk(cfg, func(string, []byte) {}, func(string, error) {})
	if err == nil {
		t.Fatal("want error for missing root")
	}
}
