package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureIgnoreCreatesAndAppends(t *testing.T) {
	dir := t.TempDir()
	if err := EnsureIgnore(dir, EnvIgnorePatterns...); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != ".env\n.env.local\n.env.*.local\n" {
		t.Fatalf("unexpected .gitignore: %q", string(b))
	}
}

func TestEnsureIgnoreIdempotent(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 2; i++ {
		if err := EnsureIgnore(dir, EnvIgnorePatterns...); err != nil {
			t.Fatal(err)
		}
	}
	b, _ := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if string(b) != ".env\n.env.local\n.env.*.local\n" {
		t.Fatalf("duplicated entries: %q", string(b))
	}
}

func TestEnsureIgnoreKeepsExistingContent(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(p, []byte("node_modules\n.env\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := EnsureIgnore(dir, EnvIgnorePatterns...); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(p)
	if string(b) != "node_modules\n.env\n.env.local\n.env.*.local\n" {
		t.Fatalf("unexpected .gitignore: %q", string(b))
	}
}
