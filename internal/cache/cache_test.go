package cache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	db := DB{Entries: map[string]Entry{"a.js": {Hash: Hash([]byte("content")), Catalog: "secrets"}}}
	if err := Save(dir, db); err != nil {
		t.Fatal(err)
	}
	got, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got.Entries["a.js"] != db.Entries["a.js"] {
		t.Fatalf("round trip lost entry: %+v", got)
	}
}

func TestLoadMissingReturnsEmpty(t *testing.T) {
	db, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("want error for missing cache")
	}
	if db.Entries == nil {
		t.Fatal("Entries must be usable even on error")
	}
}

func TestCacheStoredUnderGitDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := Save(dir, DB{Entries: map[string]Entry{"x": {Hash: "y"}}}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".git", "sweepercache.json")); err != nil {
		t.Fatalf("cache not under .git: %v", err)
	}
}

func TestHash(t *testing.T) {
	if Hash(nil) != "0000000000000000" {
		t.Fatal("empty input sentinel")
	}
	a, b := Hash([]byte("a")), Hash([]byte("b"))
	if len(a) != 16 || a == b {
		t.Fatalf("bad hashes %q %q", a, b)
	}
	if a != Hash([]byte("a")) {
		t.Fatal("hash not deterministic")
	}
}
