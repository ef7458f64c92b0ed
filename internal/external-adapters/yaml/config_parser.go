// Package yaml provides YAML-based configuration parsing.
package yaml

import (
	"fmt"
	"os"

	"github.com/ochairo/chauffeur/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlConfig represents the raw chauffeur.yml structure
type yamlConfig struct {
	ManifestURL   string `yaml:"manifest_url"`
	Driver        string `yaml:"driver"`
	DefaultPrefix string `yaml:"default_prefix"`
	OutputDir     string `yaml:"output_dir"`
}

// ConfigParser parses YAML configuration files
type ConfigParser struct{}

// NewConfigParser creates a new YAML parser
func NewConfigParser() *ConfigParser {
	return &ConfigParser{}
}

// ParseFile parses a YAML config file into a Config entity
func (p *ConfigParser) ParseFile(filePath string) (*entities.Config, error) {
	//nolint:gosec // G304: filePath is the user-supplied config location
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a Config entity. Empty fields fall back to
// the built-in defaults.
func (p *ConfigParser) Parse(data []byte) (*entities.Config, error) {
	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg := entities.DefaultConfig()
	if yamlCfg.ManifestURL != "" {
		cfg.ManifestURL = yamlCfg.ManifestURL
	}
	if yamlCfg.Driver != "" {
		cfg.DriverName = yamlCfg.Driver
	}
	if yamlCfg.DefaultPrefix != "" {
		cfg.VersionPrefix = yamlCfg.DefaultPrefix
	}
	if yamlCfg.OutputDir != "" {
		cfg.OutputDir = yamlCfg.OutputDir
	}

	return cfg, nil
}

// LoadConfig loads chauffeur.yml from filePath. A missing file is not an
// error; the built-in defaults are returned instead.
func LoadConfig(filePath string) (*entities.Config, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return entities.DefaultConfig(), nil
	}

	return NewConfigParser().ParseFile(filePath)
}
