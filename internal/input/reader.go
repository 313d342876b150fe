// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package input decodes the whitespace-separated problem format:
// an element count n, n integer values, then the target.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// DefaultMaxCount bounds the announced element count when Options.MaxCount is unset.
const DefaultMaxCount = 10_000_000

// preallocLimit caps the up-front slice capacity so a large announced count
// with a short stream does not allocate the full amount.
const preallocLimit = 1 << 16

// Options controls decoding.
type Options struct {
	// Strict rejects malformed, missing and trailing tokens.
	// When false, the first failed read and every read after it yield 0.
	Strict bool
	// MaxCount is the largest accepted element count (both modes).
	MaxCount int
}

// Problem is one decoded query.
type Problem struct {
	Values []int
	Target int
}

// Reader decodes a Problem from a token stream.
type Reader struct {
	sc     *bufio.Scanner
	opts   Options
	pos    int
	last   string
	failed bool
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader, opts Options) *Reader {
	if opts.MaxCount <= 0 {
		opts.MaxCount = DefaultMaxCount
	}
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Reader{sc: sc, opts: opts}
}

// Read decodes the count, the values and the target.
func (r *Reader) Read() (Problem, error) {
	n, err := r.next(PhaseCount)
	if err != nil {
		return Problem{}, err
	}
	if n < 0 {
		if r.opts.Strict {
			return Problem{}, &TokenError{Phase: PhaseCount, Index: 0, Token: r.last, Err: ErrNegativeCount}
		}
		n = 0
	}
	if n > r.opts.MaxCount {
		return Problem{}, &TokenError{
			Phase: PhaseCount,
			Index: 0,
			Token: r.last,
			Err:   fmt.Errorf("%w: %d > %d", ErrCountTooLarge, n, r.opts.MaxCount),
		}
	}

	values := make([]int, 0, min(n, preallocLimit))
	for i := 0; i < n; i++ {
		v, err := r.next(PhaseValue)
		if err != nil {
			return Problem{}, err
		}
		values = append(values, v)
	}

	target, err := r.next(PhaseTarget)
	if err != nil {
		return Problem{}, err
	}

	if r.opts.Strict {
		if err := r.ensureDrained(); err != nil {
			return Problem{}, err
		}
	}

	return Problem{Values: values, Target: target}, nil
}

func (r *Reader) next(phase Phase) (int, error) {
	if r.failed {
		return 0, nil
	}
	idx := r.pos
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			if !errors.Is(err, bufio.ErrTooLong) {
				return 0, fmt.Errorf("read %s: %w", phase, err)
			}
			if r.opts.Strict {
				return 0, &TokenError{Phase: phase, Index: idx, Err: errTokenTooLong(ErrMalformedToken)}
			}
			r.failed = true
			return 0, nil
		}
		if r.opts.Strict {
			sentinel := ErrShortInput
			if phase == PhaseCount {
				sentinel = ErrMissingCount
			}
			return 0, &TokenError{Phase: phase, Index: idx, Err: sentinel}
		}
		r.failed = true
		return 0, nil
	}
	r.pos++
	r.last = r.sc.Text()

	v, err := strconv.Atoi(r.last)
	if err != nil {
		if r.opts.Strict {
			return 0, &TokenError{Phase: phase, Index: idx, Token: r.last, Err: ErrMalformedToken}
		}
		r.failed = true
		return 0, nil
	}
	return v, nil
}

func (r *Reader) ensureDrained() error {
	if r.sc.Scan() {
		return &TokenError{Phase: PhaseTrailing, Index: r.pos, Token: r.sc.Text(), Err: ErrTrailingInput}
	}
	if err := r.sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return &TokenError{Phase: PhaseTrailing, Index: r.pos, Err: errTokenTooLong(ErrTrailingInput)}
		}
		return fmt.Errorf("read %s: %w", PhaseTrailing, err)
	}
	return nil
}

// errTokenTooLong reports a token the scanner refused to buffer.
func errTokenTooLong(sentinel error) error {
	return fmt.Errorf("%w: token exceeds %d bytes", sentinel, bufio.MaxScanTokenSize)
}
