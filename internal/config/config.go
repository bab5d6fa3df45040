package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
		// MessagesPerSecond caps inbound websocket frames per connection.
		MessagesPerSecond float64 `yaml:"messages_per_second"`
		Burst             int     `yaml:"burst"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Quiz struct {
		DefaultID string `yaml:"default_id"`
		TTL       string `yaml:"ttl"`
	} `yaml:"quiz"`
	Session struct {
		IdleTTL string `yaml:"idle_ttl"`
	} `yaml:"session"`
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the zero config so
// the portal can run with built-in content and in-memory stores.
func LoadOrDefault(path string) (Config, bool, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, false, nil
	}
	if err != nil {
		return cfg, false, err
	}
	return cfg, true, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
