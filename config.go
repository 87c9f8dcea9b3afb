package humps

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Config represents the humps configuration file.
type Config struct {
	To           string   `yaml:"to"`
	Separator    string   `yaml:"separator"`
	Initialisms  []string `yaml:"initialisms"`
	PreserveKeys []string `yaml:"preserve_keys"`
	Input        string   `yaml:"input"`
	Region       string   `yaml:"region"`
	Plugins      []Plugin `yaml:"plugins"`
}

// Plugin represents a plugin configuration block.
type Plugin struct {
	Name   string       `yaml:"name"`
	Config PluginConfig `yaml:"config"`
}

// PluginConfig holds plugin-specific settings.
type PluginConfig struct {
	URL string `yaml:"url"`
}

// LoadConfig reads and validates the YAML config file. An empty path yields
// the defaults.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	if cfg.To != "" {
		if _, err := ParseStyle(cfg.To); err != nil {
			return nil, fmt.Errorf("invalid \"to\" in config: %w", err)
		}
	}
	for _, p := range cfg.Plugins {
		if p.Name == "tfstate" && p.Config.URL == "" {
			return nil, fmt.Errorf("plugin tfstate requires config.url")
		}
	}
	if cfg.Input != "" && path != "" && !filepath.IsAbs(cfg.Input) {
		cfg.Input = filepath.Join(filepath.Dir(path), cfg.Input)
	}
	// Fallback to environment variables for region
	if cfg.Region == "" {
		cfg.Region = os.Getenv("AWS_REGION")
	}
	if cfg.Region == "" {
		cfg.Region = os.Getenv("AWS_DEFAULT_REGION")
	}
	return &cfg, nil
}

// options converts the config into conversion options.
func (cfg *Config) options() *Options {
	return &Options{
		Separator: cfg.Separator,
		Preserve:  cfg.PreserveKeys,
	}
}

// caser builds a Caser with the default initialisms plus the configured ones.
func (cfg *Config) caser() *Caser {
	if len(cfg.Initialisms) == 0 {
		return defaultCaser
	}
	return NewCaser(defaultInitialisms.With(cfg.Initialisms...))
}
