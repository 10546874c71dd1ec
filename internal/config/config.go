package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds project-level settings loaded from mentor.yml.
type ProjectConfig struct {
	LogsDir     string   `yaml:"logsDir,omitempty"`
	ReportsDir  string   `yaml:"reportsDir,omitempty"`
	Languages   []string `yaml:"languages,omitempty"`
	ExcludeDirs []string `yaml:"excludeDirs,omitempty"`
	CurrentYear int      `yaml:"currentYear,omitempty"`
	MCPAddr     string   `yaml:"mcpAddr,omitempty"`
	Verbose     bool     `yaml:"verbose,omitempty"`
}

// Load attempts to read mentor.yml or mentor.yaml from the given directory.
// Returns a zero-value config (not an error) if no config file exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"mentor.yml", "mentor.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}
