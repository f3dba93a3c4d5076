package process

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SolverConfig describes an external program that solves one day.
type SolverConfig struct {
	Day         int               `yaml:"day" json:"day"`
	Title       string            `yaml:"title" json:"title"`
	Command     string            `yaml:"command" json:"command"`
	Args        []string          `yaml:"args" json:"args"`
	Environment map[string]string `yaml:"env" json:"env"`
}

// ConfigFile represents the structure of solvers.yaml
type ConfigFile struct {
	Solvers []SolverConfig `yaml:"solvers" json:"solvers"`
}

// LoadSolvers reads a configuration file (YAML or JSON) and returns the solvers keyed by day.
// A missing file means no external solvers.
func LoadSolvers(path string) (map[int]SolverConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[int]SolverConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read solvers config: %w", err)
	}

	var cfg ConfigFile
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	solvers := make(map[int]SolverConfig)
	for _, s := range cfg.Solvers {
		if s.Day <= 0 || s.Command == "" {
			continue
		}
		solvers[s.Day] = s
	}
	return solvers, nil
}
