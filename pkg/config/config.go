// Package config loads the resolver configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/henderiw/rangeset/pkg/rangeset"
	"gopkg.in/yaml.v3"
)

type LogConfig struct {
	Level   string `yaml:"level"`
	File    string `yaml:"file"`
	Console Bool   `yaml:"console"`
}

type Config struct {
	OverlapRatio float64   `yaml:"overlapRatio"`
	Log          LogConfig `yaml:"log"`
}

func Default() *Config {
	return &Config{
		OverlapRatio: rangeset.DefaultOverlapRatio,
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.OverlapRatio <= 0 || c.OverlapRatio > 1 {
		return fmt.Errorf("overlapRatio %g is not in (0, 1]", c.OverlapRatio)
	}
	return nil
}
