// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package app

import "errors"

var (
	// ErrMissingStdin is returned when no input path is configured and no stdin reader was supplied.
	ErrMissingStdin = errors.New("stdin reader is required when input.path is empty")

	// ErrMissingStdout is returned when no output path is configured and no stdout writer was supplied.
	ErrMissingStdout = errors.New("stdout writer is required when output.path is empty")
)
