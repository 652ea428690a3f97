package remediate

import (
	"os"
	"path/filepath"
	"strings"
)

// WriteEnv appends one NAME=value line per assignment to root's .env file,
// creating it if absent. Existing content is never diffed against: re-running
// remediation on an already-fixed tree accumulates duplicate or colliding
// entries. Known limitation, documented rather than silently deduplicated.
func WriteEnv(root string, assignments []Assignment) error {
	path := filepath.Join(root, ".env")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	var b strings.Builder
	for _, a := range assignments {
		b.WriteString(a.Name)
		b.WriteByte('=')
		b.WriteString(a.Value)
		b.WriteByte('\n')
	}
	_, err = f.WriteString(b.String())
	return err
}

// WriteEnvExample overwrites root's .env.example with the assigned names and
// a redacted placeholder derived from each name.
func WriteEnvExample(root string, assignments []Assignment) error {
	var b strings.Builder
	for _, a := range assignments {
		b.WriteString(a.Name)
		b.WriteString("=your_")
		b.WriteString(strings.ToLower(a.Name))
		b.WriteString("_here\n")
	}
	return os.WriteFile(filepath.Join(root, ".env.example"), []byte(b.String()), 0644)
}
