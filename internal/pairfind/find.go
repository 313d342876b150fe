// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package pairfind locates two positions in a sequence whose values sum to a target.
package pairfind

import "strconv"

// Pair holds two sequence indices with First < Second.
type Pair struct {
	First  int
	Second int
}

// String renders the pair as "[i,j]".
func (p Pair) String() string {
	b := make([]byte, 0, 24)
	b = append(b, '[')
	b = strconv.AppendInt(b, int64(p.First), 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(p.Second), 10)
	b = append(b, ']')
	return string(b)
}

// Result is the outcome of a single scan.
type Result struct {
	Pair    Pair
	Found   bool
	Scanned int // elements examined before the scan stopped
}

// Scan walks seq once from left to right and returns the first pair whose
// values add up to target. The returned pair has the smallest possible second
// index; its first index is the earliest occurrence of the complement.
func Scan(seq []int, target int) Result {
	seen := make(map[int]int, len(seq))
	for i, v := range seq {
		if c, ok := complement(target, v); ok {
			if j, hit := seen[c]; hit {
				return Result{Pair: Pair{First: j, Second: i}, Found: true, Scanned: i + 1}
			}
		}
		if _, dup := seen[v]; !dup {
			seen[v] = i
		}
	}
	return Result{Scanned: len(seq)}
}

// Find is Scan without the bookkeeping.
func Find(seq []int, target int) (Pair, bool) {
	res := Scan(seq, target)
	return res.Pair, res.Found
}

// complement returns target-v. ok is false when the subtraction overflows,
// in which case no int in the sequence can complete the pair.
func complement(target, v int) (int, bool) {
	c := target - v
	if (v > 0 && c > target) || (v < 0 && c < target) {
		return 0, false
	}
	return c, true
}
