// Package config loads tool configuration from JSON, merging over defaults.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Export  ExportConfig `json:"export"`
	Filters FilterConfig `json:"filters"`
	Output  OutputConfig `json:"output"`
}

// ExportConfig holds git log export options.
type ExportConfig struct {
	Branch   string `json:"branch"`   // Default: "HEAD"
	MaxCount int    `json:"maxCount"` // 0 means unlimited
}

// FilterConfig holds file path filtering options.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// OutputConfig holds default output options.
type OutputConfig struct {
	Format string `json:"format"` // console, json, csv, markdown
	Top    int    `json:"top"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Export: ExportConfig{
			Branch:   "HEAD",
			MaxCount: 0,
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
		Output: OutputConfig{
			Format: "console",
			Top:    50,
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
// An empty path tries .logstat.json in the working directory, then home.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		candidates := []string{".logstat.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".logstat.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
