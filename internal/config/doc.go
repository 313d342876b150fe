// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package config provides configuration management for pairsum.
//
// Precedence, lowest to highest: built-in defaults, YAML file, PAIRSUM_*
// environment variables, command-line overrides. The merged result is
// validated once, after every source has been applied.
package config
