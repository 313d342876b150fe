// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package output

import (
	"context"
	"fmt"
	"io"

	xglog "github.com/ManuGH/pairsum/internal/log"
	"github.com/google/renameio/v2"
)

// Write copies data to w in full.
func Write(w io.Writer, data []byte) error {
	n, err := w.Write(data)
	if err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	if n != len(data) {
		return fmt.Errorf("write result: %w", io.ErrShortWrite)
	}
	return nil
}

// WriteFile replaces path with data atomically.
// Readers see either the previous content or the complete new result.
func WriteFile(ctx context.Context, path string, data []byte) error {
	logger := xglog.FromContext(ctx)

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending result file: %w", err)
	}
	defer func() {
		// No-op once committed.
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending result file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write result data: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace result file: %w", err)
	}
	return nil
}
