// Package config loads advent.yaml, layered over defaults and under CLI overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "advent.yaml"

// Config is the resolved application configuration.
type Config struct {
	InputDir    string       `yaml:"input_dir" mapstructure:"input_dir"`
	LogLevel    string       `yaml:"log_level" mapstructure:"log_level"`
	MaxSteps    uint64       `yaml:"max_steps" mapstructure:"max_steps"`
	Parallelism int          `yaml:"parallelism" mapstructure:"parallelism"`
	Pretty      bool         `yaml:"pretty" mapstructure:"pretty"`
	SolversFile string       `yaml:"solvers_file" mapstructure:"solvers_file"`
	Server      ServerConfig `yaml:"server" mapstructure:"server"`
	Redis       RedisConfig  `yaml:"redis" mapstructure:"redis"`
}

// ServerConfig configures the HTTP and SSE listeners.
type ServerConfig struct {
	Port string `yaml:"port" mapstructure:"port"`
}

// RedisConfig configures the optional result cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `yaml:"addr" mapstructure:"addr"`
	Password string        `yaml:"password" mapstructure:"password"`
	DB       int           `yaml:"db" mapstructure:"db"`
	TTL      time.Duration `yaml:"ttl" mapstructure:"ttl"`
	Prefix   string        `yaml:"prefix" mapstructure:"prefix"`
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() map[string]any {
	return map[string]any{
		"input_dir":    "data",
		"log_level":    "info",
		"max_steps":    0,
		"parallelism":  0,
		"pretty":       false,
		"solvers_file": "solvers.yaml",
		"server": map[string]any{
			"port": "8080",
		},
		"redis": map[string]any{
			"db":     0,
			"ttl":    "0s",
			"prefix": "advent:result:",
		},
	}
}

// Load reads path (a missing file is not an error), layers it over Defaults and
// applies overrides on top. Override keys use dots for nesting ("redis.addr").
func Load(path string, overrides map[string]any) (Config, error) {
	merged := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		default:
			var file map[string]any
			if err := yaml.Unmarshal(data, &file); err != nil {
				return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
			}
			merge(merged, file)
		}
	}

	for key, value := range overrides {
		set(merged, strings.Split(key, "."), value)
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(merged); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// merge copies src into dst, descending into nested maps.
func merge(dst, src map[string]any) {
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if existing, ok := dst[k].(map[string]any); ok {
				merge(existing, sub)
				continue
			}
		}
		dst[k] = v
	}
}

func set(m map[string]any, path []string, value any) {
	if len(path) == 1 {
		m[path[0]] = value
		return
	}
	sub, ok := m[path[0]].(map[string]any)
	if !ok {
		sub = map[string]any{}
		m[path[0]] = sub
	}
	set(sub, path[1:], value)
}
