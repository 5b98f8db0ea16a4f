package domain

// TaskStore persists the whole task collection.
type TaskStore interface {
	// Load reads the persisted collection. A store that does not exist yet
	// yields an empty collection.
	Load() ([]Task, error)

	// Save overwrites the persisted collection with tasks.
	Save(tasks []Task) error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration, falling back to defaults.
	Load() (*Config, error)
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	// GetConfigInfo returns the path and content of the config file.
	GetConfigInfo() ConfigInfo

	// InitConfig writes a commented config file rendered from cfg.
	// It fails with ErrConfigExists if the file is already present.
	InitConfig(cfg *Config) error
}
