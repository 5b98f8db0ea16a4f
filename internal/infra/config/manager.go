package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/duke/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages the config file.
type Manager struct {
	path string // Config file path
}

// NewManager creates a Manager for the given config file.
// An empty path means the default location.
func NewManager(path string) *Manager {
	if path == "" {
		path = NewLoader().Path()
	}
	return &Manager{path: path}
}

// GetConfigInfo returns information about the config file.
func (m *Manager) GetConfigInfo() domain.ConfigInfo {
	if m.path == "" {
		return domain.ConfigInfo{}
	}
	content, err := os.ReadFile(m.path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   m.path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    m.path,
		Content: string(content),
		Exists:  true,
	}
}

// InitConfig creates the config file from cfg, rendered with comments.
func (m *Manager) InitConfig(cfg *domain.Config) error {
	if m.path == "" {
		return fmt.Errorf("%w: config directory not available", domain.ErrInvalidConfig)
	}

	// Check if file already exists
	if _, err := os.Stat(m.path); err == nil {
		return fmt.Errorf("%w: %s", domain.ErrConfigExists, m.path)
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	content := domain.RenderConfigTemplate(cfg)
	return os.WriteFile(m.path, []byte(content), 0o600)
}
