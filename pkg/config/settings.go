package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Settings holds environment-derived runtime configuration: the provider
// endpoint, artifact roots, and engine intervals. YAML carries the
// declarative cascade material; the environment carries deployment concerns.
type Settings struct {
	// Provider endpoint (OpenAI-compatible chat completions + generation lookup)
	ProviderBaseURL string
	ProviderAPIKey  string

	// Model fallbacks (also settable in windlass.yaml defaults)
	DefaultModel string
	RewriteModel string

	// Artifact roots
	DataDir   string
	ImagesDir string
	AudioDir  string
	GraphDir  string

	// Directories scanned for cascade YAML files
	CascadeDirs []string

	// Engine intervals
	HeartbeatInterval time.Duration
	CostFetchDelay    time.Duration
	CostMaxWait       time.Duration

	// History culling
	KeepRecentTurns  int
	KeepRecentImages int

	// HTTP server bind
	Host string
	Port int
}

// LoadSettingsFromEnv reads WINDLASS_* variables, applying defaults for
// anything unset. Only the provider key is allowed to be empty (tests and
// scripted runs inject their own agent client).
func LoadSettingsFromEnv() (*Settings, error) {
	dataDir := getEnvOrDefault("WINDLASS_DATA_DIR", "./data")

	s := &Settings{
		ProviderBaseURL:   getEnvOrDefault("WINDLASS_PROVIDER_BASE_URL", "https://openrouter.ai/api/v1"),
		ProviderAPIKey:    os.Getenv("WINDLASS_PROVIDER_API_KEY"),
		DefaultModel:      getEnvOrDefault("WINDLASS_DEFAULT_MODEL", "openai/gpt-4o-mini"),
		RewriteModel:      os.Getenv("WINDLASS_REWRITE_MODEL"),
		DataDir:           dataDir,
		ImagesDir:         getEnvOrDefault("WINDLASS_IMAGES_DIR", filepath.Join(dataDir, "images")),
		AudioDir:          getEnvOrDefault("WINDLASS_AUDIO_DIR", filepath.Join(dataDir, "audio")),
		GraphDir:          getEnvOrDefault("WINDLASS_GRAPH_DIR", filepath.Join(dataDir, "graphs")),
		HeartbeatInterval: DefaultHeartbeatInterval,
		CostFetchDelay:    DefaultCostFetchDelay,
		CostMaxWait:       DefaultCostMaxWait,
		KeepRecentTurns:   DefaultKeepRecentTurns,
		KeepRecentImages:  DefaultKeepRecentImages,
		Host:              getEnvOrDefault("WINDLASS_HOST", "0.0.0.0"),
		Port:              8080,
	}

	if dirs := os.Getenv("WINDLASS_CASCADE_DIRS"); dirs != "" {
		for _, d := range strings.Split(dirs, string(os.PathListSeparator)) {
			if d = strings.TrimSpace(d); d != "" {
				s.CascadeDirs = append(s.CascadeDirs, d)
			}
		}
	}

	var err error
	if s.HeartbeatInterval, err = envDuration("WINDLASS_HEARTBEAT_INTERVAL", s.HeartbeatInterval); err != nil {
		return nil, err
	}
	if s.CostFetchDelay, err = envDuration("WINDLASS_COST_FETCH_DELAY", s.CostFetchDelay); err != nil {
		return nil, err
	}
	if s.CostMaxWait, err = envDuration("WINDLASS_COST_MAX_WAIT", s.CostMaxWait); err != nil {
		return nil, err
	}
	if s.KeepRecentTurns, err = envInt("WINDLASS_KEEP_RECENT_TURNS", s.KeepRecentTurns); err != nil {
		return nil, err
	}
	if s.KeepRecentImages, err = envInt("WINDLASS_KEEP_RECENT_IMAGES", s.KeepRecentImages); err != nil {
		return nil, err
	}
	if s.Port, err = envInt("WINDLASS_PORT", s.Port); err != nil {
		return nil, err
	}

	return s, nil
}

// EffectiveRewriteModel falls back to the default model when no rewrite
// model is configured.
func (s *Settings) EffectiveRewriteModel() string {
	if s.RewriteModel != "" {
		return s.RewriteModel
	}
	return s.DefaultModel
}

// SessionImagesDir returns the image root for one session.
func (s *Settings) SessionImagesDir(sessionID string) string {
	return filepath.Join(s.ImagesDir, sessionID)
}

// GraphPath returns the Mermaid artifact path for one session.
func (s *Settings) GraphPath(sessionID string) string {
	return filepath.Join(s.GraphDir, sessionID+".mmd")
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
