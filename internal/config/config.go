// ABOUTME: Coach configuration management with backend and provider selection.
// ABOUTME: Loads config.json and .env, applies env overrides, and builds storage and generators.

package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/fitcoach/internal/charm"
	"github.com/harperreed/fitcoach/internal/llm"
	"github.com/harperreed/fitcoach/internal/logger"
	"github.com/harperreed/fitcoach/internal/storage"
	"github.com/joho/godotenv"
)

// Backend names.
const (
	BackendSQLite   = "sqlite"
	BackendMarkdown = "markdown"
	BackendCharm    = "charm"
)

// Environment variables read by the tool.
const (
	EnvProvider   = "COACH_PROVIDER"
	EnvModel      = "COACH_MODEL"
	EnvBackend    = "COACH_BACKEND"
	EnvLogLevel   = "COACH_LOG_LEVEL"
	EnvOpenAIKey  = "OPENAI_API_KEY"
	EnvGeminiKey  = "GEMINI_API_KEY"
	EnvOpenAIBase = "OPENAI_BASE_URL"
)

const (
	defaultOutDir  = "."
	configDirName  = "coach"
	configFileName = "config.json"
)

// Config stores coach tool configuration.
type Config struct {
	// Backend selects the run log backend: "sqlite" (default), "markdown" or "charm".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for the run log.
	// SQLite puts coach.db here. Markdown puts the runs/ folder here.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/coach.
	DataDir string `json:"data_dir,omitempty"`

	// OutputDir receives the plan files. Defaults to the working directory.
	OutputDir string `json:"output_dir,omitempty"`

	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`

	LogLevel  string `json:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty"`

	CORSOrigins []string `json:"cors_origins,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendSQLite
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetOutputDir returns the plan output directory with ~ expanded.
func (c *Config) GetOutputDir() string {
	if c.OutputDir == "" {
		return defaultOutDir
	}
	return ExpandPath(c.OutputDir)
}

// GetProvider returns the configured provider, defaulting to openai.
func (c *Config) GetProvider() string {
	if c.Provider == "" {
		return llm.ProviderOpenAI
	}
	return strings.ToLower(c.Provider)
}

// GetCORSOrigins returns the allowed origins for the HTTP API, defaulting to any.
func (c *Config) GetCORSOrigins() []string {
	if len(c.CORSOrigins) == 0 {
		return []string{"*"}
	}
	return c.CORSOrigins
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	backend := c.GetBackend()
	dataDir := c.GetDataDir()

	switch backend {
	case BackendSQLite:
		return storage.Open(filepath.Join(dataDir, storage.DBFileName))
	case BackendMarkdown:
		return storage.NewMarkdownStore(dataDir)
	case BackendCharm:
		return charm.InitClient()
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// APIKey returns the key for provider from the environment.
func APIKey(provider string) string {
	switch provider {
	case llm.ProviderOpenAI:
		return os.Getenv(EnvOpenAIKey)
	case llm.ProviderGemini:
		return os.Getenv(EnvGeminiKey)
	default:
		return ""
	}
}

// LLMOptions returns generator options for the configured provider.
func (c *Config) LLMOptions() llm.Options {
	provider := c.GetProvider()
	baseURL := c.BaseURL
	if baseURL == "" && provider == llm.ProviderOpenAI {
		baseURL = os.Getenv(EnvOpenAIBase)
	}
	return llm.Options{
		Provider: provider,
		Model:    c.Model,
		BaseURL:  baseURL,
		APIKey:   APIKey(provider),
	}
}

// Generator builds the configured text generator.
func (c *Config) Generator(ctx context.Context) (llm.Generator, error) {
	return llm.New(ctx, c.LLMOptions())
}

// LoggerConfig returns logger settings from the config.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{Level: c.LogLevel, Format: c.LogFormat}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, configDirName, configFileName)
}

// LoadDotEnv loads .env files into the environment without overriding set variables.
// Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads config from disk and applies environment overrides.
func Load() (*Config, error) {
	cfg, err := loadFile(GetConfigPath())
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyEnv overrides provider, model, backend and log level from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvProvider); v != "" {
		c.Provider = v
	}
	if v := os.Getenv(EnvModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvBackend); v != "" {
		c.Backend = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
