package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default config is invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"format", func(c *Config) { c.Output.DefaultFormat = "gif" }},
		{"quality low", func(c *Config) { c.Output.Quality = 0 }},
		{"quality high", func(c *Config) { c.Output.Quality = 101 }},
		{"workers", func(c *Config) { c.Batch.Workers = -1 }},
		{"timeout", func(c *Config) { c.Fetch.TimeoutSeconds = 0 }},
		{"min size", func(c *Config) { c.Fetch.MinImageSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(c)
			if err := c.Validate(); err == nil {
				t.Error("Expected a validation error")
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	c := Default()
	c.Output.DefaultFormat = "webp"
	c.Batch.Workers = 3
	if err := c.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Output.DefaultFormat != "webp" || loaded.Batch.Workers != 3 {
		t.Errorf("Unexpected config %+v", loaded)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"batch": {"workers": 8}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if c.Batch.Workers != 8 {
		t.Errorf("Expected 8 workers, got %d", c.Batch.Workers)
	}
	if c.Output.Quality != 90 || c.Fetch.Timeout() != 30*time.Second {
		t.Errorf("Expected defaults to be kept, got %+v", c)
	}
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Output.DefaultFormat != "jpg" {
		t.Errorf("Expected default config, got %+v", c)
	}

	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Expected LoadFromFile to fail on a missing file")
	}
}
