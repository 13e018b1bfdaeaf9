// Package config loads the dashboard configuration from a YAML file,
// falling back to defaults that match the Monad testnet.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration accepts "150ms"-style strings in the YAML file; yaml.v3 has no
// native time.Duration support.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type APIConfig struct {
	Bind string `yaml:"bind"`
	Port int    `yaml:"port"`
}

type ScanConfig struct {
	BatchSize   int      `yaml:"batch_size"`
	ChunkSize   int      `yaml:"chunk_size"`
	BatchDelay  Duration `yaml:"batch_delay"`
	ChunkDelay  Duration `yaml:"chunk_delay"`
	DefaultSpan uint64   `yaml:"default_span"`
	MinSpan     uint64   `yaml:"min_span"`
	MaxSpan     uint64   `yaml:"max_span"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	RPCURL string     `yaml:"rpc_url"`
	API    APIConfig  `yaml:"api"`
	Scan   ScanConfig `yaml:"scan"`
	Log    LogConfig  `yaml:"log"`
}

func Default() *Config {
	return &Config{
		RPCURL: "https://testnet-rpc.monad.xyz",
		API: APIConfig{
			Bind: "127.0.0.1",
			Port: 8480,
		},
		Scan: ScanConfig{
			BatchSize:   30,
			ChunkSize:   8,
			BatchDelay:  Duration(150 * time.Millisecond),
			ChunkDelay:  Duration(100 * time.Millisecond),
			DefaultSpan: 1000,
			MinSpan:     100,
			MaxSpan:     100_000,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
