package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up when --config is not given.
const DefaultFile = "ledgerlens.yaml"

// Environment variables that override file settings.
const (
	EnvAddr      = "LEDGERLENS_ADDR"
	EnvLogLevel  = "LEDGERLENS_LOG_LEVEL"
	EnvLogFormat = "LEDGERLENS_LOG_FORMAT"
)

// Config represents the top-level ledgerlens.yaml configuration.
type Config struct {
	Title   string        `yaml:"title"`
	Sources SourcesConfig `yaml:"sources"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`

	baseDir string
}

// SourcesConfig lists the ledgers ingested at startup. Card sources are
// merged in the order listed.
type SourcesConfig struct {
	Cards []Source `yaml:"cards"`
	Bank  *Source  `yaml:"bank,omitempty"`
}

// Source is one CSV export on disk. Relative paths resolve against the
// directory holding the config file.
type Source struct {
	Name   string `yaml:"name"`
	Path   string `yaml:"path"`
	Format string `yaml:"format,omitempty"` // parser name; empty selects the default
}

// ServerConfig controls the HTTP query API.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

// Load reads a ledgerlens.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}
	cfg.baseDir = abs
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config for the usual two cards and one checking account.
func Default(title string) *Config {
	return &Config{
		Title: title,
		Sources: SourcesConfig{
			Cards: []Source{
				{Name: "flex", Path: "flex.csv"},
				{Name: "unlimited", Path: "unlimited.csv"},
			},
			Bank: &Source{Name: "checking", Path: "bank_account.csv"},
		},
		Server: ServerConfig{
			Addr:           ":4052",
			AllowedOrigins: []string{"*"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Resolve returns p relative to the config file's directory, or p itself when
// it is absolute or the config was not loaded from disk.
func (c *Config) Resolve(p string) string {
	if filepath.IsAbs(p) || c.baseDir == "" {
		return p
	}
	return filepath.Join(c.baseDir, p)
}

// LoadEnv loads KEY=value pairs from .env files into the process environment
// without overriding variables already set. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from LEDGERLENS_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var problems []string

	if len(c.Sources.Cards) == 0 && c.Sources.Bank == nil {
		problems = append(problems, "no sources configured")
	}

	names := make(map[string]bool)
	for i, src := range c.Sources.Cards {
		if src.Name == "" {
			problems = append(problems, fmt.Sprintf("card source %d: name is required", i+1))
		} else if names[src.Name] {
			problems = append(problems, fmt.Sprintf("card source %q: duplicate name", src.Name))
		}
		names[src.Name] = true
		if src.Path == "" {
			problems = append(problems, fmt.Sprintf("card source %d: path is required", i+1))
		}
	}
	if b := c.Sources.Bank; b != nil && b.Path == "" {
		problems = append(problems, "bank source: path is required")
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format %q: must be console or json", c.Log.Format))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
