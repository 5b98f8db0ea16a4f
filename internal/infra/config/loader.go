// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/duke/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	path     string // Config file path
	explicit bool   // Path was given by the user; a missing file is an error
}

// NewLoader creates a Loader for the default config file
// ($XDG_CONFIG_HOME/duke/config.toml).
func NewLoader() *Loader {
	dir := domain.DefaultConfigDir()
	if dir == "" {
		return &Loader{}
	}
	return &Loader{path: filepath.Join(dir, domain.ConfigFileName)}
}

// NewLoaderWithPath creates a Loader for an explicit config file.
// Unlike the default file, an explicit file must exist.
func NewLoaderWithPath(path string) *Loader {
	return &Loader{path: path, explicit: true}
}

// Path returns the config file path the loader reads.
func (l *Loader) Path() string {
	return l.path
}

// Load returns the configuration: defaults overlaid with the file contents.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()
	if l.path == "" {
		return base, nil
	}

	file, err := l.loadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !l.explicit {
			return base, nil
		}
		return nil, err
	}

	cfg := mergeConfigs(base, file)
	if !cfg.Storage.OnMalformed.IsValid() {
		return nil, fmt.Errorf("%w: storage.on_malformed must be %q or %q, got %q",
			domain.ErrInvalidConfig, domain.MalformedStrict, domain.MalformedSkip, cfg.Storage.OnMalformed)
	}
	if !domain.IsValidLogLevel(cfg.Log.Level) {
		return nil, fmt.Errorf("%w: log.level must be one of %s, got %q",
			domain.ErrInvalidConfig, strings.Join(domain.LogLevels, ", "), cfg.Log.Level)
	}
	return cfg, nil
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrInvalidConfig, path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		switch section {
		case "storage":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "path":
						if s, ok := v.(string); ok {
							res.Storage.Path = expandHome(s)
						}
					case "on_malformed":
						if s, ok := v.(string); ok {
							res.Storage.OnMalformed = domain.MalformedPolicy(s)
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [storage]: %s", k))
					}
				}
			}
		case "log":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "level":
						if s, ok := v.(string); ok {
							res.Log.Level = s
						}
					case "file":
						if s, ok := v.(string); ok {
							res.Log.File = expandHome(s)
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
					}
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs overlays the non-empty values of override onto base.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	res := *base
	if override.Storage.Path != "" {
		res.Storage.Path = override.Storage.Path
	}
	if override.Storage.OnMalformed != "" {
		res.Storage.OnMalformed = override.Storage.OnMalformed
	}
	if override.Log.Level != "" {
		res.Log.Level = override.Log.Level
	}
	if override.Log.File != "" {
		res.Log.File = override.Log.File
	}
	res.Warnings = append(append([]string(nil), base.Warnings...), override.Warnings...)
	return &res
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
