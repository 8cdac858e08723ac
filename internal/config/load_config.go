package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"scipion-installer/internal/logger"
)

//go:embed default.yaml
var defaultTable []byte

// Default returns the built-in descriptor table.
func Default() (Config, error) {
	return Parse(defaultTable)
}

// LoadConfig reads a descriptor table from configFile. An empty path selects the
// built-in table.
func LoadConfig(configFile string) (Config, error) {
	if configFile == "" {
		logger.Debug("[DEBUG] Using built-in repository table\n")
		return Default()
	}

	raw, err := os.ReadFile(configFile)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", configFile, err)
	}
	logger.Debug("[DEBUG] Loaded repository table from %s\n", configFile)

	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", configFile, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML descriptor table.
func Parse(raw []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal repository table: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields every command fragment depends on.
func (c Config) Validate() error {
	if c.ReleasePackage == "" {
		return fmt.Errorf("release_package is required")
	}
	if len(c.Repositories) == 0 {
		return fmt.Errorf("at least one repository is required")
	}
	for i, repo := range c.Repositories {
		if repo.Name == "" || repo.Organization == "" || repo.Branch == "" {
			return fmt.Errorf("repository #%d needs name, organization and branch", i+1)
		}
	}
	x := c.Xmipp.Repository
	if x.Name == "" || x.Organization == "" || x.Branch == "" {
		return fmt.Errorf("xmipp repository needs name, organization and branch")
	}
	return nil
}
