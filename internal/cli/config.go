package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration file. Flags set explicitly on
// the command line always win over file values.
//
// Example:
//
//	database:
//	  path: /var/lib/stockdb/stocks.db
//	format: json
type Config struct {
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Format string `yaml:"format"`
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
