package gocoro

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-loadable ProcessorPool configuration, in the style of
// raft-recovery's internal/cli/cli.go Config/loadConfig: a plain struct
// with yaml tags, loaded once at process startup and handed to the
// constructor. Cores of 0 selects runtime.NumCPU() at construction time;
// see NewProcessorPool.
type Config struct {
	Cores          int `yaml:"cores"`
	WorkersPerCore int `yaml:"workers_per_core"`
	StackLimit     int `yaml:"stack_limit"`
}

// LoadConfig reads and parses a YAML file at path into a Config.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gocoro: read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("gocoro: parse config: %w", err)
	}
	return &cfg, nil
}

// Options converts the config into constructor Options, suitable for
// combining with NewProcessorPoolWithCores(cfg.Cores, cfg.WorkersPerCore,
// cfg.Options(logger)...).
func (c *Config) Options(logger Logger) []Option {
	var opts []Option
	if logger != nil {
		opts = append(opts, WithLogger(logger))
	}
	if c.StackLimit > 0 {
		opts = append(opts, WithStackLimit(c.StackLimit))
	}
	return opts
}
