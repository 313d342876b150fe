// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/ManuGH/pairsum/internal/validate"
)

// Validate validates an AppConfig using the centralized validation package
func Validate(cfg AppConfig) error {
	v := validate.New()

	v.Level("logLevel", cfg.LogLevel)
	v.NotEmpty("logService", cfg.LogService)

	// 0 selects input.DefaultMaxCount.
	v.Range("input.maxCount", cfg.Input.MaxCount, 0, math.MaxInt32)
	v.ReadableFile("input.path", cfg.Input.Path)

	v.SingleLine("output.noMatch", cfg.Output.NoMatch)
	v.WritableFile("output.path", cfg.Output.Path)
	v.Custom("output.path", cfg.Output.Path, distinctFrom("input.path", cfg.Input.Path))

	v.WritableFile("metrics.textfile", cfg.Metrics.Textfile)
	v.Custom("metrics.textfile", cfg.Metrics.Textfile, distinctFrom("output.path", cfg.Output.Path))
	v.Custom("metrics.textfile", cfg.Metrics.Textfile, distinctFrom("input.path", cfg.Input.Path))

	if err := v.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// distinctFrom rejects a path that resolves to the same file as other.
func distinctFrom(otherField, other string) func(interface{}) error {
	return func(value interface{}) error {
		path, _ := value.(string)
		if path == "" || other == "" {
			return nil
		}
		a, errA := filepath.Abs(path)
		b, errB := filepath.Abs(other)
		if errA != nil || errB != nil {
			return errors.New("cannot resolve path")
		}
		if a == b {
			return fmt.Errorf("must differ from %s", otherField)
		}
		return nil
	}
}
