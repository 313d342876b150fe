// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

// AppConfig is the effective, merged configuration.
type AppConfig struct {
	Version    string
	LogLevel   string
	LogService string

	Input   InputConfig
	Output  OutputConfig
	Metrics MetricsConfig
}

// InputConfig controls where and how the problem is read.
type InputConfig struct {
	Path     string // empty means stdin
	Strict   bool
	MaxCount int
}

// OutputConfig controls how the result is rendered and where it goes.
type OutputConfig struct {
	Path            string // empty means stdout
	NoMatch         string
	TrailingNewline bool
}

// MetricsConfig controls the optional textfile export.
type MetricsConfig struct {
	Textfile string // empty disables export
}

// FileConfig mirrors the YAML document. Pointer fields distinguish
// "absent" from an explicit zero value.
type FileConfig struct {
	LogLevel   *string            `yaml:"logLevel,omitempty"`
	LogService *string            `yaml:"logService,omitempty"`
	Input      *InputFileConfig   `yaml:"input,omitempty"`
	Output     *OutputFileConfig  `yaml:"output,omitempty"`
	Metrics    *MetricsFileConfig `yaml:"metrics,omitempty"`
}

// InputFileConfig is the "input" section.
type InputFileConfig struct {
	Path     *string `yaml:"path,omitempty"`
	Strict   *bool   `yaml:"strict,omitempty"`
	MaxCount *int    `yaml:"maxCount,omitempty"`
}

// OutputFileConfig is the "output" section.
type OutputFileConfig struct {
	Path            *string `yaml:"path,omitempty"`
	NoMatch         *string `yaml:"noMatch,omitempty"`
	TrailingNewline *bool   `yaml:"trailingNewline,omitempty"`
}

// MetricsFileConfig is the "metrics" section.
type MetricsFileConfig struct {
	Textfile *string `yaml:"textfile,omitempty"`
}
