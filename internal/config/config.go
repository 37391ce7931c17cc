package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the application configuration
type Config struct {
	Output OutputConfig `json:"output"`
	Batch  BatchConfig  `json:"batch"`
	Fetch  FetchConfig  `json:"fetch"`
}

// OutputConfig holds configuration for writing cropped images
type OutputConfig struct {
	DefaultFormat string `json:"default_format"`
	Quality       int    `json:"quality"`
	Lossless      bool   `json:"lossless"`
	Suffix        string `json:"suffix"`
	DebugDir      string `json:"debug_dir"`
}

// BatchConfig holds configuration for cropping a whole catalog
type BatchConfig struct {
	// Workers is the size of the worker pool, 0 means one per CPU
	Workers int `json:"workers"`
}

// FetchConfig holds configuration for downloading images
type FetchConfig struct {
	TimeoutSeconds int    `json:"timeout_seconds"`
	UserAgent      string `json:"user_agent"`
	MinImageSize   int    `json:"min_image_size"`
}

// Timeout returns the download timeout as a duration
func (f FetchConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: "jpg",
			Quality:       90,
			Lossless:      false,
			Suffix:        "_cropped",
			DebugDir:      "",
		},
		Batch: BatchConfig{
			Workers: 0,
		},
		Fetch: FetchConfig{
			TimeoutSeconds: 30,
			UserAgent:      "Stamp-Cropper/1.0 (+https://github.com/menta2k/stamp-cropper)",
			MinImageSize:   32,
		},
	}
}

// LoadFromFile loads configuration from a JSON file. Missing fields keep their defaults.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Load reads filename if it exists and falls back to defaults otherwise
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFromFile(filename)
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output.DefaultFormat) {
	case "jpg", "jpeg", "png", "webp":
	default:
		return fmt.Errorf("output.default_format must be one of jpg, png, webp")
	}

	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("output.quality must be between 1 and 100")
	}

	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch.workers cannot be negative")
	}

	if c.Fetch.TimeoutSeconds < 1 {
		return fmt.Errorf("fetch.timeout_seconds must be positive")
	}

	if c.Fetch.MinImageSize < 1 {
		return fmt.Errorf("fetch.min_image_size must be positive")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "stamp-cropper", "config.json")
}
