// Package config loads optional YAML configuration for sweeper.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape. Pointer fields
// distinguish "unset" from zero values so CLI > local > global precedence
// works per field.
type FileConfig struct {
	Extensions   []string `yaml:"extensions"`
	ExcludeDirs  []string `yaml:"exclude_dirs"`
	IncludeGlobs *string  `yaml:"include"`
	ExcludeGlobs *string  `yaml:"exclude"`
	Severity     *string  `yaml:"severity"`
	MaxBytes     *int64   `yaml:"max_bytes"`
	NoColor      *bool    `yaml:"no_color"`
	NoCache      *bool    `yaml:"no_cache"`
}

// LoadFile reads a YAML config file from path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
func LoadLocal(root string) (FileConfig, error) {
	for _, name := range []string{".sweeper.yml", ".sweeper.yaml", "sweeper.yml", "sweeper.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, errors.New("no local config")
}

// LoadGlobal loads the global config from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return FileConfig{}, errors.New("no config dir")
	}
	p := filepath.Join(base, "sweeper", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return FileConfig{}, errors.New("no global config")
}
