// Package config loads and validates windlass configuration: the engine
// settings file (windlass.yaml), the cascade definitions scanned from the
// cascade directories, and environment-derived runtime settings.
package config

import "path/filepath"

// Config is the root configuration object handed to the rest of the engine.
type Config struct {
	configDir string

	// Operator defaults from windlass.yaml
	Defaults *Defaults

	// Worker pool configuration
	Queue *QueueConfig

	// Environment-derived runtime settings
	Settings *Settings

	// All loaded cascades
	CascadeRegistry *CascadeRegistry
}

// Stats summarizes loaded configuration for startup logging.
type Stats struct {
	Cascades   int
	Phases     int
	Validators int
}

// Stats returns counts of the loaded configuration.
func (c *Config) Stats() Stats {
	s := Stats{Cascades: c.CascadeRegistry.Len()}
	for _, cascade := range c.CascadeRegistry.GetAll() {
		s.Phases += len(cascade.Phases)
		s.Validators += len(cascade.Validators)
	}
	return s
}

// ConfigDir returns the directory windlass.yaml was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// CascadeDirs returns the directories scanned for cascade files: the
// configured WINDLASS_CASCADE_DIRS plus the conventional
// <configDir>/cascades directory.
func (c *Config) CascadeDirs() []string {
	dirs := make([]string, 0, len(c.Settings.CascadeDirs)+1)
	dirs = append(dirs, filepath.Join(c.configDir, "cascades"))
	dirs = append(dirs, c.Settings.CascadeDirs...)
	return dirs
}
