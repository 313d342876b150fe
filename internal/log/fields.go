// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldService = "service"
	FieldVersion = "version"
	FieldRunID   = "run_id"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"
	FieldOutcome   = "outcome"

	// Problem fields
	FieldLength  = "length"
	FieldTarget  = "target"
	FieldScanned = "scanned"
	FieldFirst   = "first"
	FieldSecond  = "second"

	// Path fields
	FieldPath       = "path"
	FieldConfigPath = "config_path"
	FieldInputPath  = "input_path"
	FieldOutputPath = "output_path"
	FieldEnvKeys    = "env_keys"
)
