// Package files maintains repository support files touched by remediation.
package files

import (
	"bufio"
	"os"
	"path/filepath"
)

// EnvIgnorePatterns are the .gitignore lines remediation guarantees.
var EnvIgnorePatterns = []string{".env", ".env.local", ".env.*.local"}

// EnsureIgnore appends each pattern to .gitignore at repoRoot unless an
// identical line is already present. Creates the file if missing. Idempotent.
func EnsureIgnore(repoRoot string, patterns ...string) error {
	path := filepath.Join(repoRoot, ".gitignore")
	existing := map[string]bool{}
	if f, err := os.Open(path); err == nil {
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			existing[sc.Text()] = true
		}
		_ = f.Close()
	}

	var missing []string
	for _, p := range patterns {
		if !existing[p] {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, p := range missing {
		if _, err := f.WriteString(p + "\n"); err != nil {
			return err
		}
	}
	return nil
}
