// Package config resolves clientq settings from defaults, a YAML file,
// the environment and a .env file.
//
// Precedence, lowest first: Default, config file, CLIENTQ_* environment
// variables. Command-line flags are applied on top by the cli package.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file picked up from the working directory
// when no path is given.
const DefaultFile = ".clientq.yaml"

// Environment variable names.
const (
	EnvConfig         = "CLIENTQ_CONFIG"
	EnvFile           = "CLIENTQ_FILE"
	EnvFormat         = "CLIENTQ_FORMAT"
	EnvSearchField    = "CLIENTQ_SEARCH_FIELD"
	EnvDuplicateField = "CLIENTQ_DUPLICATE_FIELD"
	EnvStrict         = "CLIENTQ_STRICT"
	EnvLogLevel       = "CLIENTQ_LOG_LEVEL"
	EnvSQLiteTable    = "CLIENTQ_SQLITE_TABLE"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Config holds resolved settings.
type Config struct {
	File           string `yaml:"file"`            // Client data file
	Format         string `yaml:"format"`          // "text" | "json"
	SearchField    string `yaml:"search_field"`    // Field searched when --field is not given
	DuplicateField string `yaml:"duplicate_field"` // Field grouped when --field is not given
	Strict         bool   `yaml:"strict"`          // Reject unknown fields and missing keys
	LogLevel       string `yaml:"log_level"`       // slog level name
	SQLiteTable    string `yaml:"sqlite_table"`    // Table read from SQLite sources
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		File:           "clients.json",
		Format:         "text",
		SearchField:    "full_name",
		DuplicateField: "email",
		LogLevel:       "warn",
		SQLiteTable:    "clients",
	}
}

// Load resolves the config file path, reads it over the defaults and
// applies environment overrides.
//
// The file is explicitPath if set, else $CLIENTQ_CONFIG, else DefaultFile
// when it exists. An explicitly named file that does not exist is an error.
// Returns the resolved config and the file used ("" if none).
func Load(explicitPath string) (Config, string, error) {
	cfg := Default()

	path := explicitPath
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, "", err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, "", err
	}

	return cfg, path, nil
}

// mergeFile reads a YAML config file over cfg.
// ${VAR} references are expanded before parsing; unknown keys are rejected.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	expanded := os.ExpandEnv(string(data))

	decoder := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(c); err != nil {
		// An empty file decodes to io.EOF; keep the defaults
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return nil
}

// applyEnv overrides settings from CLIENTQ_* variables that are set.
func (c *Config) applyEnv() error {
	overrides := map[string]*string{
		EnvFile:           &c.File,
		EnvFormat:         &c.Format,
		EnvSearchField:    &c.SearchField,
		EnvDuplicateField: &c.DuplicateField,
		EnvLogLevel:       &c.LogLevel,
		EnvSQLiteTable:    &c.SQLiteTable,
	}
	for name, target := range overrides {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*target = v
		}
	}

	if v, ok := os.LookupEnv(EnvStrict); ok && v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvStrict, v, err)
		}
		c.Strict = strict
	}
	return nil
}

// Validate checks format and log level.
func (c Config) Validate() error {
	if !IsValidFormat(c.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", c.Format, ValidFormats)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.File == "" {
		return errors.New("no client data file configured")
	}
	return nil
}

// IsValidFormat checks if the format is one of the allowed values.
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// ParseLogLevel parses a slog level name such as "debug" or "WARN".
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Files that do not exist are skipped; variables already set
// are not overridden.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}
