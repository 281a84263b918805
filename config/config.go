// Package config loads the analysis configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config drives one run of the pipeline.
type Config struct {
	// Program is the path of the YAML program to analyze, resolved
	// relative to the config file.
	Program string `yaml:"program"`
	// Entry names the entry method as "Class.method".
	Entry string `yaml:"entry"`
	// Analyses lists the analyses to run, by ID, in order.
	Analyses []string `yaml:"analyses"`
	// DotDir, when set, receives dot renderings of the control-flow and
	// call graphs.
	DotDir string `yaml:"dot-dir"`

	sourcePath string
}

// LoadFile reads and validates a configuration file. Unknown fields are
// rejected.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	cfg := &Config{sourcePath: path}
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration names a program, an entry point
// and at least one analysis.
func (cfg *Config) Validate() error {
	if cfg.Program == "" {
		return fmt.Errorf("missing program")
	}
	if cfg.Entry == "" {
		return fmt.Errorf("missing entry")
	}
	if !strings.Contains(cfg.Entry, ".") {
		return fmt.Errorf("entry %q: want Class.method", cfg.Entry)
	}
	if len(cfg.Analyses) == 0 {
		return fmt.Errorf("no analyses requested")
	}
	seen := make(map[string]bool, len(cfg.Analyses))
	for _, id := range cfg.Analyses {
		if id == "" {
			return fmt.Errorf("empty analysis ID")
		}
		if seen[id] {
			return fmt.Errorf("analysis %q requested twice", id)
		}
		seen[id] = true
	}
	return nil
}

// ProgramPath resolves the program path relative to the config file's
// directory.
func (cfg *Config) ProgramPath() string {
	return relativeTo(cfg.sourcePath, cfg.Program)
}

// DotPath resolves the dot output directory relative to the config file's
// directory; it is empty when dot output is disabled.
func (cfg *Config) DotPath() string {
	if cfg.DotDir == "" {
		return ""
	}
	return relativeTo(cfg.sourcePath, cfg.DotDir)
}

func relativeTo(source, path string) string {
	if filepath.IsAbs(path) || source == "" {
		return path
	}
	return filepath.Join(filepath.Dir(source), path)
}
