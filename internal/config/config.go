package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileConfig holds arena parameters read from a config file. Zero values
// mean "unspecified": the CLI only applies fields that are set and were not
// already given on the command line or in the environment. Temperature is a
// pointer because 0.0 is a meaningful setting.
type FileConfig struct {
	ModelA      string   `json:"model_a" yaml:"model_a" toml:"model_a"`
	ModelB      string   `json:"model_b" yaml:"model_b" toml:"model_b"`
	Experiments int      `json:"experiments" yaml:"experiments" toml:"experiments"`
	MaxTurns    int      `json:"max_turns" yaml:"max_turns" toml:"max_turns"`
	StartWord   string   `json:"start_word" yaml:"start_word" toml:"start_word"`
	Category    string   `json:"category" yaml:"category" toml:"category"`
	Host        string   `json:"host" yaml:"host" toml:"host"`
	Backend     string   `json:"backend" yaml:"backend" toml:"backend"`
	DataDir     string   `json:"data_dir" yaml:"data_dir" toml:"data_dir"`
	LogsDir     string   `json:"logs_dir" yaml:"logs_dir" toml:"logs_dir"`
	Temperature *float32 `json:"temperature" yaml:"temperature" toml:"temperature"`
}

// Load reads a configuration file based on its extension.
// Supports: .toml, .yaml/.yml, .json
func Load(path string) (FileConfig, error) {
	var cfg FileConfig
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}

	return cfg, nil
}
