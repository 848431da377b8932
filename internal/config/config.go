package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents calcx.yaml. Every field may be overridden by a flag.
type Config struct {
	// OutputDir is where result files go. Empty means the
	// <input>_<user>_<id> default next to the working directory.
	OutputDir string `yaml:"output_dir,omitempty"`

	// Identity supplies the name parts used in output file names.
	Identity Identity `yaml:"identity,omitempty"`

	// Jobs bounds how many files are evaluated at once. Defaults to NumCPU.
	Jobs int `yaml:"jobs,omitempty"`

	// LogLevel is one of debug, info, warn, error, none.
	LogLevel string `yaml:"log_level,omitempty"`

	// History is an optional SQLite database recording every result.
	History string `yaml:"history,omitempty"`

	// Report is an optional YAML file summarising a batch run.
	Report string `yaml:"report,omitempty"`

	// Listen is the gRPC listen address for `calcx serve`.
	Listen string `yaml:"listen,omitempty"`
}

// Identity is the name/lastname/id triple embedded in output names.
type Identity struct {
	Name     string `yaml:"name,omitempty"`
	Lastname string `yaml:"lastname,omitempty"`
	ID       string `yaml:"id,omitempty"`
}

// Default returns a Config with every default filled in.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfig reads and parses a calcx.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses calcx.yaml content.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// FindConfig searches for calcx.yaml starting from dir and walking up to
// parent directories. It returns "" and a nil error when there is none.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("checking %s: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	if c.Jobs < 0 {
		return fmt.Errorf("%s: jobs must not be negative (got %d)", path, c.Jobs)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error", "none":
	default:
		return fmt.Errorf("%s: unknown log_level %q", path, c.LogLevel)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Identity.Name == "" {
		c.Identity.Name = DefaultName
	}
	if c.Identity.Lastname == "" {
		c.Identity.Lastname = DefaultLastname
	}
	if c.Identity.ID == "" {
		c.Identity.ID = DefaultID
	}
	if c.Jobs == 0 {
		c.Jobs = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Listen == "" {
		c.Listen = DefaultListenAddr
	}
}
