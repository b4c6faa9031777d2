package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// WindlassYAMLConfig represents the windlass.yaml file structure.
// Cascades live in their own files under the cascade directories; this file
// carries engine-level knobs only.
type WindlassYAMLConfig struct {
	Defaults *Defaults    `yaml:"defaults"`
	Queue    *QueueConfig `yaml:"queue"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load environment settings
//  2. Load windlass.yaml from configDir (optional; defaults apply)
//  3. Expand environment variables in all YAML
//  4. Scan cascade directories for *.yaml cascade definitions
//  5. Merge defaults, build the registry
//  6. Validate everything
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"cascades", stats.Cascades,
		"phases", stats.Phases,
		"validators", stats.Validators)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	settings, err := LoadSettingsFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment settings: %w", err)
	}

	loader := &configLoader{configDir: configDir}

	windlassCfg, err := loader.loadWindlassYAML()
	if err != nil {
		return nil, NewLoadError("windlass.yaml", err)
	}

	// Resolve defaults (YAML overrides environment, environment overrides builtin)
	defaults := windlassCfg.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.Model == "" {
		defaults.Model = settings.DefaultModel
	}
	if defaults.RewriteModel == "" {
		defaults.RewriteModel = settings.EffectiveRewriteModel()
	}
	if defaults.UtilityModel == "" {
		defaults.UtilityModel = defaults.Model
	}
	if defaults.KeepRecentTurns == 0 {
		defaults.KeepRecentTurns = settings.KeepRecentTurns
	}
	if defaults.KeepRecentImages == 0 {
		defaults.KeepRecentImages = settings.KeepRecentImages
	}
	defaults.ApplyFallbacks()

	// Resolve queue config (merge user YAML onto built-in defaults so unset
	// fields keep their defaults)
	queueConfig := DefaultQueueConfig()
	if windlassCfg.Queue != nil {
		if err := mergo.Merge(queueConfig, windlassCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	cfg := &Config{
		configDir: configDir,
		Defaults:  defaults,
		Queue:     queueConfig,
		Settings:  settings,
	}

	// Scan cascade directories
	cascades, err := loader.loadCascades(cfg.CascadeDirs())
	if err != nil {
		return nil, err
	}
	cfg.CascadeRegistry = NewCascadeRegistry(cascades)

	return cfg, nil
}

// validateConfig performs comprehensive validation on loaded configuration
func validateConfig(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes the original data through on template errors,
	// letting the YAML parser produce the clearer failure message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

// loadWindlassYAML loads windlass.yaml. A missing file is not an error;
// every engine knob has a default.
func (l *configLoader) loadWindlassYAML() (*WindlassYAMLConfig, error) {
	var config WindlassYAMLConfig

	path := filepath.Join(l.configDir, "windlass.yaml")
	if err := l.loadYAML(path, &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("No windlass.yaml found, using defaults", "path", path)
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}

// loadCascades scans the given directories for *.yaml / *.yml cascade files.
// Files are loaded in sorted path order; a duplicate cascade_id is an error.
func (l *configLoader) loadCascades(dirs []string) (map[string]*CascadeConfig, error) {
	cascades := make(map[string]*CascadeConfig)

	var files []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read cascade dir %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			ext := filepath.Ext(e.Name())
			if ext == ".yaml" || ext == ".yml" {
				files = append(files, filepath.Join(dir, e.Name()))
			}
		}
	}
	sort.Strings(files)

	for _, path := range files {
		var cascade CascadeConfig
		if err := l.loadYAML(path, &cascade); err != nil {
			return nil, NewLoadError(path, err)
		}
		if cascade.CascadeID == "" {
			return nil, NewLoadError(path, fmt.Errorf("%w: cascade_id", ErrMissingRequiredField))
		}
		if existing, ok := cascades[cascade.CascadeID]; ok {
			return nil, NewLoadError(path, fmt.Errorf("%w: cascade_id %q already defined in %s",
				ErrInvalidValue, cascade.CascadeID, existing.SourceFile))
		}
		cascade.SourceFile = path
		cascades[cascade.CascadeID] = &cascade
	}

	return cascades, nil
}
