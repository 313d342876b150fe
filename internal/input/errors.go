// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package input

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCount is returned when the input holds no tokens at all.
	ErrMissingCount = errors.New("missing element count")
	// ErrMalformedToken is returned for tokens that are not base-10 integers,
	// including tokens too long for the scanner to buffer.
	ErrMalformedToken = errors.New("malformed integer token")
	// ErrNegativeCount is returned when the element count is below zero.
	ErrNegativeCount = errors.New("negative element count")
	// ErrCountTooLarge is returned when the element count exceeds Options.MaxCount.
	ErrCountTooLarge = errors.New("element count exceeds limit")
	// ErrShortInput is returned when fewer values than announced are supplied.
	ErrShortInput = errors.New("input ended early")
	// ErrTrailingInput is returned when tokens follow the target.
	ErrTrailingInput = errors.New("unexpected tokens after target")
)

// Phase names the part of the input a token belongs to.
type Phase string

const (
	PhaseCount    Phase = "count"
	PhaseValue    Phase = "value"
	PhaseTarget   Phase = "target"
	PhaseTrailing Phase = "trailing"
)

// TokenError reports which token failed and why.
// Use errors.Is(err, ErrMalformedToken) and friends to classify it.
type TokenError struct {
	Phase Phase
	Index int    // zero-based token position in the stream
	Token string // empty when the stream ended
	Err   error
}

func (e *TokenError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s at token %d: %v", e.Phase, e.Index, e.Err)
	}
	return fmt.Sprintf("%s at token %d (%q): %v", e.Phase, e.Index, e.Token, e.Err)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}
