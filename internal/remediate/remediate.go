// Package remediate rewrites detected secrets into environment-variable
// references and materializes the .env / .env.example / .gitignore state.
package remediate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sweeper/sweeper/internal/files"
	"github.com/sweeper/sweeper/internal/logging"
	"github.com/sweeper/sweeper/internal/types"
)

// Plan is the outcome of the dedupe-and-name step: every distinct secret
// value across the scan has a reserved environment-variable name, and the
// files a destructive run would touch are known. Building a plan never
// touches the file system.
type Plan struct {
	alloc     *Allocator
	fileOrder []string
	perFile   map[string][]types.Finding
}

// BuildPlan walks findings in input order, assigning one name per distinct
// untruncated secret value. Findings from detect-only rules still get a name
// (their value lands in .env bookkeeping); only rewritable findings mark
// their file as modified.
func BuildPlan(findings []types.Finding) *Plan {
	p := &Plan{alloc: NewAllocator(), perFile: map[string][]types.Finding{}}
	for _, f := range findings {
		p.alloc.Assign(f)
		if !CanRewrite(f.Pattern) {
			continue
		}
		if _, seen := p.perFile[f.Path]; !seen {
			p.fileOrder = append(p.fileOrder, f.Path)
		}
		p.perFile[f.Path] = append(p.perFile[f.Path], f)
	}
	return p
}

// EnvVars lists the assigned names in discovery order.
func (p *Plan) EnvVars() []string {
	as := p.alloc.Assignments()
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.Name
	}
	return out
}

// Files lists the paths a destructive run would modify, in discovery order.
func (p *Plan) Files() []string { return p.fileOrder }

// PreviewLines renders NAME=value pairs with values truncated for display.
// Used by dry-run output; never written anywhere.
func (p *Plan) PreviewLines() []string {
	as := p.alloc.Assignments()
	out := make([]string, len(as))
	for i, a := range as {
		v := a.Value
		if len(v) > 20 {
			v = v[:17] + "..."
		}
		out[i] = a.Name + "=" + v
	}
	return out
}

// Preview returns the dry-run result: name assignment only, nothing written.
func (p *Plan) Preview() types.RemediationResult {
	return types.RemediationResult{
		Success: true,
		Message: fmt.Sprintf("dry run: %d distinct secret(s) would map to %d environment variable(s); %d file(s) would be modified",
			len(p.alloc.order), len(p.alloc.order), len(p.fileOrder)),
		EnvVars:       p.EnvVars(),
		FilesModified: p.Files(),
	}
}

// SkipArtifacts drops findings located in root's own remediation artifacts.
// A previously written .env legitimately holds the extracted values;
// rewriting it would replace each stored value with a reference to itself.
func SkipArtifacts(root string, findings []types.Finding) []types.Finding {
	var out []types.Finding
	for _, f := range findings {
		if isArtifact(root, f.Path) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func isArtifact(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == ".env" || rel == ".env.example"
}

// Apply executes the full remediation over root: per-file backup and rewrite,
// then the .env, .env.example and .gitignore artifacts. Application is not
// transactional — if file N fails, files 1..N-1 stay modified; their .backup
// copies are the manual escape hatch. Failure messages describe the error
// without ever including secret values or file contents.
func Apply(root string, findings []types.Finding) types.RemediationResult {
	plan := BuildPlan(SkipArtifacts(root, findings))
	res := types.RemediationResult{EnvVars: plan.EnvVars()}

	for _, path := range plan.fileOrder {
		backup, err := rewriteFile(path, plan)
		if backup != "" {
			res.Backups = append(res.Backups, backup)
		}
		if err != nil {
			res.Message = fmt.Sprintf("remediation aborted at %s: %v (%d file(s) already modified, backups kept)", path, err, len(res.FilesModified))
			return res
		}
		res.FilesModified = append(res.FilesModified, path)
		logging.L().Debugw("rewrote file", "path", path)
	}

	assignments := plan.alloc.Assignments()
	if len(assignments) > 0 {
		if err := WriteEnv(root, assignments); err != nil {
			res.Message = fmt.Sprintf("failed to write .env: %v", err)
			return res
		}
		if err := WriteEnvExample(root, assignments); err != nil {
			res.Message = fmt.Sprintf("failed to write .env.example: %v", err)
			return res
		}
		if err := files.EnsureIgnore(root, files.EnvIgnorePatterns...); err != nil {
			res.Message = fmt.Sprintf("failed to update .gitignore: %v", err)
			return res
		}
	}

	res.Success = true
	res.Message = fmt.Sprintf("extracted %d distinct secret(s) into %d environment variable(s); modified %d file(s), backups kept alongside originals",
		len(assignments), len(assignments), len(res.FilesModified))
	return res
}

// rewriteFile backs up path, applies every rewritable finding's replacement
// and writes the whole content back. The backup is byte-identical to the
// pre-modification content and is created before any change.
func rewriteFile(path string, plan *Plan) (backup string, err error) {
	orig, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}
	backup = path + ".backup"
	if err := os.WriteFile(backup, orig, 0644); err != nil {
		return "", fmt.Errorf("backup: %w", err)
	}

	content := string(orig)
	for _, f := range plan.perFile[path] {
		name, ok := plan.alloc.Name(f.Secret)
		if !ok {
			continue
		}
		content, _ = rewriteContent(content, path, f.Secret, name)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return backup, fmt.Errorf("write: %w", err)
	}
	return backup, nil
}
