package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// MalformedPolicy controls how the store treats undecodable lines on load.
type MalformedPolicy string

const (
	MalformedStrict MalformedPolicy = "strict" // Fail the whole load
	MalformedSkip   MalformedPolicy = "skip"   // Log and skip the line
)

// IsValid returns true if the policy is a known value.
func (p MalformedPolicy) IsValid() bool {
	return p == MalformedStrict || p == MalformedSkip
}

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`       // Unknown keys and similar non-fatal issues
	Storage  StorageConfig `toml:"storage"` // [storage] settings
	Log      LogConfig     `toml:"log"`     // [log] settings
}

// StorageConfig holds settings from the [storage] section.
type StorageConfig struct {
	Path        string          `toml:"path"`         // Path of the task file
	OnMalformed MalformedPolicy `toml:"on_malformed"` // Policy for undecodable lines
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"`          // Log level: debug, info, warn, error
	File  string `toml:"file,omitempty"` // Log file path; empty logs to stderr
}

// LogLevels lists the accepted values of log.level.
var LogLevels = []string{"debug", "info", "warn", "error"}

// IsValidLogLevel returns true if level is one of LogLevels.
func IsValidLogLevel(level string) bool {
	return slices.Contains(LogLevels, level)
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigFileName is the configuration file name inside the config directory.
const ConfigFileName = "config.toml"

// DataFileName is the default task file name inside the data directory.
const DataFileName = "duke.txt"

// NewDefaultConfig returns the configuration used when no file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path:        DefaultDataPath(),
			OnMalformed: MalformedStrict,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/duke, falling back to ~/.config/duke.
func DefaultConfigDir() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataPath returns $XDG_DATA_HOME/duke/duke.txt, falling back to
// ~/.local/share/duke/duke.txt, or ./data/duke.txt without a home directory.
func DefaultDataPath() string {
	dir := xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
	if dir == "" {
		return filepath.Join("data", DataFileName)
	}
	return filepath.Join(dir, DataFileName)
}

func xdgDir(env, homeRel string) string {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, homeRel)
	}
	return filepath.Join(base, "duke")
}

// templateData holds the values substituted into the config template.
type templateData struct {
	DataPath    string
	OnMalformed MalformedPolicy
	LogLevel    string
	LogFile     string
}

// RenderConfigTemplate renders a commented config file holding cfg's values.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		DataPath:    cfg.Storage.Path,
		OnMalformed: cfg.Storage.OnMalformed,
		LogLevel:    cfg.Log.Level,
		LogFile:     cfg.Log.File,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
