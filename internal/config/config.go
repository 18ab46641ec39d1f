package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/framesight/metanet/internal/vocabulary"
)

type EndpointConfig struct {
	URL            string `toml:"url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type InputConfig struct {
	Metaphors []string `toml:"metaphors"`
}

type OutputConfig struct {
	Dir string `toml:"dir"`
}

type Config struct {
	Endpoint EndpointConfig `toml:"endpoint"`
	Input    InputConfig    `toml:"input"`
	Output   OutputConfig   `toml:"output"`
}

// Default returns the built-in configuration: the public Framester endpoint
// and the ten MetaNet metaphors the tool was written around.
func Default() *Config {
	return &Config{
		Endpoint: EndpointConfig{
			URL:            vocabulary.FramesterEndpoint,
			TimeoutSeconds: 60,
		},
		Input:  InputConfig{Metaphors: vocabulary.DefaultMetaphors},
		Output: OutputConfig{Dir: "."},
	}
}

// Load reads a TOML config file and fills unset fields from Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if cfg.Endpoint.URL == "" {
		cfg.Endpoint.URL = vocabulary.FramesterEndpoint
	}
	if cfg.Endpoint.TimeoutSeconds <= 0 {
		cfg.Endpoint.TimeoutSeconds = 60
	}
	if len(cfg.Input.Metaphors) == 0 {
		cfg.Input.Metaphors = vocabulary.DefaultMetaphors
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}
	return cfg, nil
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Endpoint.TimeoutSeconds) * time.Second
}
