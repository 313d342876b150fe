// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ManuGH/pairsum/internal/input"
	"github.com/ManuGH/pairsum/internal/output"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultLogLevel   = "warn"
	DefaultLogService = "pairsum"
)

// Loader handles configuration loading with precedence
type Loader struct {
	configPath      string
	version         string
	overrides       []func(*AppConfig)
	ConsumedEnvKeys map[string]struct{} // Mechanical tracking of consumed keys
}

// NewLoader creates a new configuration loader
func NewLoader(configPath, version string) *Loader {
	return &Loader{
		configPath:      configPath,
		version:         version,
		ConsumedEnvKeys: make(map[string]struct{}),
	}
}

// Override registers fn to run after environment merging and before
// validation. Command-line flags use this so they win over every other source.
func (l *Loader) Override(fn func(*AppConfig)) *Loader {
	if fn != nil {
		l.overrides = append(l.overrides, fn)
	}
	return l
}

func (l *Loader) envString(key, defaultVal string) string {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseString(key, defaultVal)
}

func (l *Loader) envBool(key string, defaultVal bool) bool {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseBool(key, defaultVal)
}

func (l *Loader) envInt(key string, defaultVal int) int {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseInt(key, defaultVal)
}

// AppliedEnvKeys returns, sorted, the consumed environment keys that carried
// a non-empty value and therefore replaced a file or default setting.
func (l *Loader) AppliedEnvKeys() []string {
	keys := make([]string, 0, len(l.ConsumedEnvKeys))
	for key := range l.ConsumedEnvKeys {
		if os.Getenv(key) != "" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	return AppConfig{
		LogLevel:   DefaultLogLevel,
		LogService: DefaultLogService,
		Input: InputConfig{
			Strict:   true,
			MaxCount: input.DefaultMaxCount,
		},
		Output: OutputConfig{
			NoMatch: output.DefaultNoMatch,
		},
	}
}

// Load loads configuration with precedence: Overrides > ENV > File > Defaults
// and validates the merged result.
func (l *Loader) Load() (AppConfig, error) {
	// 1. Set defaults
	cfg := Defaults()

	// 2. Load from file (if provided)
	if l.configPath != "" {
		fileCfg, err := l.loadFile(l.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		mergeFileConfig(&cfg, fileCfg)
	}

	// 3. Override with environment variables
	l.mergeEnvConfig(&cfg)

	// 4. Explicit overrides (command line)
	for _, fn := range l.overrides {
		fn(&cfg)
	}

	// 5. Version from binary
	cfg.Version = l.version

	// 6. Validate final configuration
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFile loads configuration from a YAML file with STRICT parsing.
// Unknown fields will cause a fatal error to prevent misconfiguration.
func (l *Loader) loadFile(path string) (*FileConfig, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unsupported config format: %s (only YAML supported)", ext)
	}

	// #nosec G304 -- configuration file paths are provided by the operator via CLI/ENV
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return parseFileConfig(data)
}

func parseFileConfig(data []byte) (*FileConfig, error) {
	var fileCfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Reject unknown fields

	if err := dec.Decode(&fileCfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &FileConfig{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("strict config parse error: %w: %w", ErrUnknownConfigField, err)
		}
		return nil, fmt.Errorf("strict config parse error: %w", err)
	}

	// Strict: Ensure no multiple documents or trailing content
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config file contains multiple documents or trailing content")
	}

	return &fileCfg, nil
}

func mergeFileConfig(cfg *AppConfig, src *FileConfig) {
	if src == nil {
		return
	}
	setString(&cfg.LogLevel, src.LogLevel)
	setString(&cfg.LogService, src.LogService)

	if in := src.Input; in != nil {
		setString(&cfg.Input.Path, in.Path)
		setBool(&cfg.Input.Strict, in.Strict)
		setInt(&cfg.Input.MaxCount, in.MaxCount)
	}
	if out := src.Output; out != nil {
		setString(&cfg.Output.Path, out.Path)
		setString(&cfg.Output.NoMatch, out.NoMatch)
		setBool(&cfg.Output.TrailingNewline, out.TrailingNewline)
	}
	if m := src.Metrics; m != nil {
		setString(&cfg.Metrics.Textfile, m.Textfile)
	}
}

func (l *Loader) mergeEnvConfig(cfg *AppConfig) {
	cfg.LogLevel = l.envString(EnvLogLevel, cfg.LogLevel)
	cfg.LogService = l.envString(EnvLogService, cfg.LogService)

	cfg.Input.Path = l.envString(EnvInputPath, cfg.Input.Path)
	cfg.Input.Strict = l.envBool(EnvInputStrict, cfg.Input.Strict)
	cfg.Input.MaxCount = l.envInt(EnvInputMaxCount, cfg.Input.MaxCount)

	cfg.Output.Path = l.envString(EnvOutputPath, cfg.Output.Path)
	cfg.Output.NoMatch = l.envString(EnvOutputNoMatch, cfg.Output.NoMatch)
	cfg.Output.TrailingNewline = l.envBool(EnvOutputTrailingNewline, cfg.Output.TrailingNewline)

	cfg.Metrics.Textfile = l.envString(EnvMetricsTextfile, cfg.Metrics.Textfile)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
