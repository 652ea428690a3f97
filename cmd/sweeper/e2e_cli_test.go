package sweeper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sweeper/sweeper/internal/engine"
	"github.com/sweeper/sweeper/internal/types"
)

func TestBuildConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg := buildConfig(dir, engine.CatalogSecrets, "")
	if cfg.Root == "" || !filepath.IsAbs(cfg.Root) {
		t.Fatalf("root not absolute: %q", cfg.Root)
	}
	if cfg.Catalog != engine.CatalogSecrets {
		t.Fatalf("catalog = %q", cfg.Catalog)
	}
}

func TestBuildConfigLocalFile(t *testing.T) {
	dir := t.TempDir()
	yml := "severity: error\nexclude_dirs: [\"generated\"]\n"
	if err := os.WriteFile(filepath.Join(dir, ".sweeper.yml"), []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := buildConfig(dir, engine.CatalogSecrets, "")
	if string(cfg.Severity) != "error" {
		t.Fatalf("severity = %q", cfg.Severity)
	}
	if len(cfg.ExcludeDirs) != 1 || cfg.ExcludeDirs[0] != "generated" {
		t.Fatalf("exclude dirs = %v", cfg.ExcludeDirs)
	}
}

func TestBuildConfigCLIWins(t *testing.T) {
	dir := t.TempDir()
	yml := "severity: error\n"
	if err := os.WriteFile(filepath.Join(dir, ".sweeper.yml"), []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := buildConfig(dir, engine.CatalogSecrets, "warning")
	if string(cfg.Severity) != "warning" {
		t.Fatalf("severity = %q", cfg.Severity)
	}
}

// End-to-end through the command layer: a clean tree scans successfully and
// a dry run previews remediation without touching the tree.
func TestScanCommandCleanTree(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "clean.js"), []byte("const a = 1;"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := runScan(nil, []string{dir}); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
}

func TestScanCommandDryRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "db.js")
	content := `const u = "mongodb://u:p@localhost:27017/db";`
	if err := os.WriteFile(src, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	flagDryRun = true
	defer func() { flagDryRun = false }()
	if err := runScan(nil, []string{dir}); err != nil {
		t.Fatalf("dry run failed: %v", err)
	}

	b, _ := os.ReadFile(src)
	if string(b) != content {
		t.Fatal("dry run modified the source file")
	}
	if _, err := os.Stat(filepath.Join(dir, ".env")); !os.IsNotExist(err) {
		t.Fatal("dry run created .env")
	}
}

func TestScanCommandFix(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "db.js")
	if err := os.WriteFile(src, []byte(`const u = "mongodb://u:p@localhost:27017/db";`), 0644); err != nil {
		t.Fatal(err)
	}

	flagFix = true
	defer func() { flagFix = false }()
	if err := runScan(nil, []string{dir}); err != nil {
		t.Fatalf("fix failed: %v", err)
	}

	if _, err := os.Stat(src + ".backup"); err != nil {
		t.Fatalf("backup missing: %v", err)
	}
	env, err := os.ReadFile(filepath.Join(dir, ".env"))
	if err != nil {
		t.Fatal(err)
	}
	if len(env) == 0 {
		t.Fatal("empty .env after fix")
	}
}

// A fix run only clears error findings whose rules have a safe rewrite;
// detect-only error findings keep the exit code at failure.
func TestFixExitPolicy(t *testing.T) {
	rewriteOnly := []types.Finding{
		{Pattern: "GitHub Token", Severity: types.SevError},
		{Pattern: "Bearer Token", Severity: types.SevWarning},
	}
	if hasUnresolved(rewriteOnly) {
		t.Fatal("rewritable error findings are resolved by a fix run")
	}

	detectOnly := []types.Finding{
		{Pattern: "GitHub Token", Severity: types.SevError},
		{Pattern: "Hardcoded Password", Severity: types.SevError},
	}
	if !hasUnresolved(detectOnly) {
		t.Fatal("detect-only error findings must keep the failure exit")
	}
}
