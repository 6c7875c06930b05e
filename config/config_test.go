package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LLM.Model != "gpt-3.5-turbo" {
		t.Errorf("expected Model=gpt-3.5-turbo, got %s", cfg.LLM.Model)
	}
	if cfg.LLM.Temperature != 0.5 {
		t.Errorf("expected Temperature=0.5, got %f", cfg.LLM.Temperature)
	}
	if cfg.LLM.MaxTokens != 200 {
		t.Errorf("expected MaxTokens=200, got %d", cfg.LLM.MaxTokens)
	}
	if cfg.LLM.Timeout != 0 {
		t.Errorf("expected no timeout, got %s", cfg.LLM.Timeout)
	}
	if len(cfg.Scan.Includes) != 1 || cfg.Scan.Includes[0] != "**/*.java" {
		t.Errorf("unexpected includes: %v", cfg.Scan.Includes)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "jdoc.yaml")

	content := `
llm:
  provider: ollama
  model: llama3
  temperature: 0.2
  timeout: 30s
scan:
  workers: 2
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LLM.Provider != "ollama" {
		t.Errorf("expected Provider=ollama, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.Temperature != 0.2 {
		t.Errorf("expected Temperature=0.2, got %f", cfg.LLM.Temperature)
	}
	if cfg.LLM.Timeout != 30*time.Second {
		t.Errorf("expected Timeout=30s, got %s", cfg.LLM.Timeout)
	}
	if cfg.LLM.MaxTokens != 200 {
		t.Errorf("expected default MaxTokens to survive, got %d", cfg.LLM.MaxTokens)
	}
	if cfg.Scan.Workers != 2 {
		t.Errorf("expected Workers=2, got %d", cfg.Scan.Workers)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, ".jdoc"), 0755); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(tmpDir, ".jdoc", "config.yaml")

	content := `
history:
  enabled: false
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.History.Enabled {
		t.Error("expected history to be disabled")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"gemini", func(c *Config) { c.LLM.Provider = "gemini" }, false},
		{"unknown provider", func(c *Config) { c.LLM.Provider = "foo" }, true},
		{"empty model", func(c *Config) { c.LLM.Model = "" }, true},
		{"temperature too high", func(c *Config) { c.LLM.Temperature = 2.5 }, true},
		{"zero max tokens", func(c *Config) { c.LLM.MaxTokens = 0 }, true},
		{"negative timeout", func(c *Config) { c.LLM.Timeout = -time.Second }, true},
		{"zero workers", func(c *Config) { c.Scan.Workers = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHistoryDBPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.History.Path = "/tmp/custom/history.db"

	path, err := cfg.HistoryDBPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/tmp/custom/history.db" {
		t.Errorf("expected configured path, got %s", path)
	}
}

func TestLoadEnvFrom(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte("JDOC_TEST_KEY=from-file\n"), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("JDOC_TEST_KEY", "")
	os.Unsetenv("JDOC_TEST_KEY")

	if err := LoadEnvFrom(tmpDir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := DefaultConfig()
	cfg.LLM.APIKeyEnv = "JDOC_TEST_KEY"
	if got := cfg.LLM.APIKey(); got != "from-file" {
		t.Errorf("expected key from .env, got %q", got)
	}
}

func TestLoadEnvFrom_Missing(t *testing.T) {
	if err := LoadEnvFrom(t.TempDir()); err != nil {
		t.Errorf("expected no error without .env, got %v", err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jdoc.yaml")

	cfg := DefaultConfig()
	cfg.LLM.Provider = "gemini"
	cfg.LLM.Timeout = 45 * time.Second
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.LLM.Provider != "gemini" {
		t.Errorf("expected Provider=gemini, got %s", loaded.LLM.Provider)
	}
	if loaded.LLM.Timeout != 45*time.Second {
		t.Errorf("expected Timeout=45s, got %s", loaded.LLM.Timeout)
	}
	if err := loaded.Validate(); err != nil {
		t.Errorf("saved defaults should validate: %v", err)
	}
}
