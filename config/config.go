package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the jdoc tool.
type Config struct {
	LLM     LLMConfig     `yaml:"llm"`
	Scan    ScanConfig    `yaml:"scan"`
	Display DisplayConfig `yaml:"display"`
	History HistoryConfig `yaml:"history"`
	Logging LoggingConfig `yaml:"logging"`
}

// LLMConfig holds documentation generation settings.
type LLMConfig struct {
	Provider    string        `yaml:"provider"`    // "openai", "deepseek", "ollama", "gemini"
	Model       string        `yaml:"model"`       // e.g., "gpt-3.5-turbo"
	BaseURL     string        `yaml:"base_url"`    // overrides the provider default
	APIKeyEnv   string        `yaml:"api_key_env"` // Environment variable for API key
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout"` // 0 waits forever
}

// ScanConfig holds file discovery settings used for directories.
type ScanConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	Workers  int      `yaml:"workers"`
}

// DisplayConfig holds terminal output settings.
type DisplayConfig struct {
	Color bool   `yaml:"color"`
	Style string `yaml:"style"` // chroma style name
}

// HistoryConfig holds settings for the generation history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Reuse   bool   `yaml:"reuse"` // reuse a recorded comment for an identical request
	Path    string `yaml:"path"`  // empty means the user cache dir
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:    "openai",
			Model:       "gpt-3.5-turbo",
			APIKeyEnv:   "OPENAI_API_KEY",
			Temperature: 0.5,
			MaxTokens:   200,
		},
		Scan: ScanConfig{
			Includes: []string{"**/*.java"},
			Excludes: []string{"**/.git/**", "**/target/**", "**/build/**", "**/out/**", "**/node_modules/**", "**/vendor/**"},
			Workers:  4,
		},
		Display: DisplayConfig{
			Color: true,
			Style: "monokai",
		},
		History: HistoryConfig{
			Enabled: true,
			Reuse:   true,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for jdoc.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "jdoc.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".jdoc", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that all configuration values are within acceptable ranges.
// Returns an error describing the first validation failure found.
func (c *Config) Validate() error {
	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("llm config: %w", err)
	}
	if c.Scan.Workers <= 0 {
		return fmt.Errorf("scan config: workers must be positive, got %d", c.Scan.Workers)
	}
	return nil
}

// Validate checks generation settings.
func (l *LLMConfig) Validate() error {
	switch l.Provider {
	case "openai", "deepseek", "ollama", "gemini":
	default:
		return fmt.Errorf("unsupported provider: %s", l.Provider)
	}
	if l.Model == "" {
		return fmt.Errorf("model must be set")
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %g", l.Temperature)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", l.MaxTokens)
	}
	if l.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", l.Timeout)
	}
	return nil
}

// APIKey returns the credential named by APIKeyEnv. An empty key is not an
// error here; the remote call reports it.
func (l *LLMConfig) APIKey() string {
	if l.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(l.APIKeyEnv)
}

// HistoryDBPath returns the path to the history database.
func (c *Config) HistoryDBPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate cache directory: %w", err)
	}
	return filepath.Join(dir, "jdoc", "history.db"), nil
}

// EnsureDir ensures the parent directory of path exists.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

// LoadEnv loads the .env file next to the running executable. Variables that
// are already set win. A missing file is not an error.
func LoadEnv() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return LoadEnvFrom(filepath.Dir(exe))
}

// LoadEnvFrom loads dir/.env if it exists.
func LoadEnvFrom(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
