// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package output renders scan results and delivers them to a stream or file.
package output

import "github.com/ManuGH/pairsum/internal/pairfind"

// DefaultNoMatch is printed when no pair exists.
const DefaultNoMatch = "[]"

// Options controls rendering.
type Options struct {
	NoMatch         string // sentinel for the absent result
	TrailingNewline bool
}

// Format renders res as "[i,j]" or the no-match sentinel.
func Format(res pairfind.Result, opts Options) []byte {
	var s string
	if res.Found {
		s = res.Pair.String()
	} else {
		s = opts.NoMatch
	}
	b := make([]byte, 0, len(s)+1)
	b = append(b, s...)
	if opts.TrailingNewline {
		b = append(b, '\n')
	}
	return b
}
