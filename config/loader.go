package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix = "PRIMMST_"
	// configEnvVar names a config file that takes precedence over the search paths.
	configEnvVar = "PRIMMST_CONFIG"
)

// Loader assembles a Config from layered sources.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	envPrefix   string
	configFile  string
	overrides   map[string]any
	source      string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// NewLoader returns a Loader with the default search paths and env prefix.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k: koanf.New("."),
		configPaths: []string{
			"primmst.yaml",
			"config/primmst.yaml",
		},
		envPrefix: envPrefix,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// WithConfigPaths replaces the config file search paths; the first existing one wins.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.configPaths = paths
	}
}

// WithConfigFile names a config file that must exist; it beats PRIMMST_CONFIG
// and the search paths.
func WithConfigFile(path string) LoaderOption {
	return func(l *Loader) {
		l.configFile = path
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithOverrides sets dotted keys (e.g. "mst.method") applied after every other source.
func WithOverrides(values map[string]any) LoaderOption {
	return func(l *Loader) {
		l.overrides = values
	}
}

// Source returns the config file used by the last Load, or "" if none was found.
func (l *Loader) Source() string { return l.source }

// Load merges, in increasing priority:
//  1. defaults
//  2. YAML file (optional)
//  3. environment variables
//  4. overrides
//
// and then unmarshals and validates the result.
func (l *Loader) Load() (*Config, error) {
	if err := l.loadDefaults(); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := l.loadConfigFile(); err != nil {
		return nil, err
	}

	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}

	if len(l.overrides) > 0 {
		if err := l.k.Load(confmap.Provider(l.overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load overrides: %w", err)
		}
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (l *Loader) loadDefaults() error {
	defaults := map[string]any{
		// MST
		"mst.method":       "prim",
		"mst.start_vertex": 0,
		"mst.symmetric":    false,

		// Log
		"log.level":       "info",
		"log.format":      "text",
		"log.output":      "stderr",
		"log.file_path":   "",
		"log.max_size":    100,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    true,

		// Metrics
		"metrics.enabled":   false,
		"metrics.namespace": "primweight",
		"metrics.textfile":  "",
	}

	return l.k.Load(confmap.Provider(defaults, "."), nil)
}

// loadConfigFile loads the first config file found. A missing file is not an
// error unless it was named explicitly by WithConfigFile or PRIMMST_CONFIG.
func (l *Loader) loadConfigFile() error {
	configPath := l.configFile
	if configPath == "" {
		configPath = os.Getenv(configEnvVar)
	}
	if configPath != "" {
		if err := l.k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		l.source = configPath
		return nil
	}

	for _, path := range l.configPaths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			continue
		}

		if _, err = os.Stat(absPath); err == nil {
			if err = l.k.Load(file.Provider(absPath), yaml.Parser()); err != nil {
				return fmt.Errorf("failed to load config file %s: %w", absPath, err)
			}
			l.source = absPath
			return nil
		}
	}

	return nil
}

// loadEnv maps PRIMMST_LOG_FILE_PATH style variables to dotted keys.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(envKey string, value string) (string, interface{}) {
		key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))

		if mappedKey, ok := envKeyMappings[key]; ok {
			key = mappedKey
		} else {
			key = strings.ReplaceAll(key, "_", ".")
		}

		return key, value
	}), nil)
}

// envKeyMappings covers keys whose leaf name contains an underscore.
var envKeyMappings = map[string]string{
	"mst_start_vertex": "mst.start_vertex",

	"log_file_path":   "log.file_path",
	"log_max_size":    "log.max_size",
	"log_max_backups": "log.max_backups",
	"log_max_age":     "log.max_age",
}

// MustLoad loads the configuration or panics.
func MustLoad(opts ...LoaderOption) *Config {
	cfg, err := NewLoader(opts...).Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// Load is NewLoader(opts...).Load().
func Load(opts ...LoaderOption) (*Config, error) {
	return NewLoader(opts...).Load()
}
