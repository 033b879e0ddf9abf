// Package config loads primmst settings from defaults, a YAML file,
// PRIMMST_* environment variables and explicit overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned by Validate; the message lists every problem.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full settings tree.
type Config struct {
	MST     MSTConfig     `koanf:"mst"`
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// MSTConfig selects the algorithm and how the input graph is read.
type MSTConfig struct {
	Method      string `koanf:"method"`       // prim, kruskal
	StartVertex int    `koanf:"start_vertex"` // vertex forced to label 0
	Symmetric   bool   `koanf:"symmetric"`    // store every input edge both ways
}

// LogConfig mirrors logger.Config.
type LogConfig struct {
	Level      string `koanf:"level"`     // debug, info, warn, error
	Format     string `koanf:"format"`    // json, text
	Output     string `koanf:"output"`    // stdout, stderr, file
	FilePath   string `koanf:"file_path"` // used when output is file
	MaxSize    int    `koanf:"max_size"`  // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"` // days
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig controls the Prometheus text-file export.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Namespace string `koanf:"namespace"`
	Textfile  string `koanf:"textfile"`
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	var errs []string

	validMethods := map[string]bool{"prim": true, "kruskal": true}
	if !validMethods[strings.ToLower(c.MST.Method)] {
		errs = append(errs, fmt.Sprintf("mst.method must be one of: prim, kruskal, got %q", c.MST.Method))
	}
	c.MST.Method = strings.ToLower(c.MST.Method)

	if c.MST.StartVertex < 0 {
		errs = append(errs, fmt.Sprintf("mst.start_vertex must be non-negative, got %d", c.MST.StartVertex))
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %s", c.Log.Level))
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format must be one of: json, text, got %s", c.Log.Format))
	}

	validOutputs := map[string]bool{"stdout": true, "stderr": true, "file": true}
	if !validOutputs[c.Log.Output] {
		errs = append(errs, fmt.Sprintf("log.output must be one of: stdout, stderr, file, got %s", c.Log.Output))
	}
	if c.Log.Output == "file" && c.Log.FilePath == "" {
		errs = append(errs, "log.file_path is required when log.output is file")
	}

	if c.Metrics.Enabled {
		if c.Metrics.Textfile == "" {
			errs = append(errs, "metrics.textfile is required when metrics are enabled")
		}
		if c.Metrics.Namespace == "" {
			errs = append(errs, "metrics.namespace is required when metrics are enabled")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}

	return nil
}
