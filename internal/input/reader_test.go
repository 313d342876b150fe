// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package input

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func read(t *testing.T, src string, opts Options) (Problem, error) {
	t.Helper()
	return NewReader(strings.NewReader(src), opts).Read()
}

func TestRead_Valid(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Problem
	}{
		{"one line", "4 2 7 11 15 9", Problem{Values: []int{2, 7, 11, 15}, Target: 9}},
		{"lines", "3\n3 2 4\n6\n", Problem{Values: []int{3, 2, 4}, Target: 6}},
		{"tabs and crlf", "2\r\n3\t3\r\n6\r\n", Problem{Values: []int{3, 3}, Target: 6}},
		{"signed", "2 -5 +5 0", Problem{Values: []int{-5, 5}, Target: 0}},
		{"empty sequence", "0\n42", Problem{Values: []int{}, Target: 42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := read(t, tt.src, Options{Strict: true})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead_StrictErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
		phase   Phase
		index   int
		token   string
	}{
		{"empty stream", "", ErrMissingCount, PhaseCount, 0, ""},
		{"whitespace only", " \n\t", ErrMissingCount, PhaseCount, 0, ""},
		{"bad count", "four 1 2", ErrMalformedToken, PhaseCount, 0, "four"},
		{"negative count", "-1 5", ErrNegativeCount, PhaseCount, 0, "-1"},
		{"bad value", "3 1 x 3 4", ErrMalformedToken, PhaseValue, 2, "x"},
		{"float value", "2 1.5 2 3", ErrMalformedToken, PhaseValue, 1, "1.5"},
		{"overflow value", "1 99999999999999999999999 3", ErrMalformedToken, PhaseValue, 1, "99999999999999999999999"},
		{"short values", "3 1 2", ErrShortInput, PhaseValue, 3, ""},
		{"missing target", "2 1 2", ErrShortInput, PhaseTarget, 3, ""},
		{"bad target", "2 1 2 t", ErrMalformedToken, PhaseTarget, 3, "t"},
		{"trailing", "2 1 2 3 4", ErrTrailingInput, PhaseTrailing, 4, "4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := read(t, tt.src, Options{Strict: true})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var te *TokenError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, tt.phase, te.Phase)
			assert.Equal(t, tt.index, te.Index)
			assert.Equal(t, tt.token, te.Token)
		})
	}
}

func TestRead_CountLimit(t *testing.T) {
	for _, strict := range []bool{true, false} {
		_, err := read(t, "5 1 2 3 4 5 0", Options{Strict: strict, MaxCount: 4})
		require.ErrorIs(t, err, ErrCountTooLarge, "strict=%v", strict)
		assert.Contains(t, err.Error(), "5 > 4")
	}

	_, err := read(t, "4 1 2 3 4 0", Options{Strict: true, MaxCount: 4})
	assert.NoError(t, err)
}

func TestRead_DefaultMaxCount(t *testing.T) {
	r := NewReader(strings.NewReader(""), Options{})
	assert.Equal(t, DefaultMaxCount, r.opts.MaxCount)
}

func TestRead_LargeCountShortStream(t *testing.T) {
	// Capacity is capped, so this must not try to allocate the announced size.
	_, err := read(t, "9000000 1 2", Options{Strict: true})
	assert.ErrorIs(t, err, ErrShortInput)
}

func TestRead_Permissive(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Problem
	}{
		{"valid input unchanged", "2 3 3 6", Problem{Values: []int{3, 3}, Target: 6}},
		{"empty stream", "", Problem{Values: []int{}, Target: 0}},
		{"short values zero filled", "3 4 5", Problem{Values: []int{4, 5, 0}, Target: 0}},
		{"failure is sticky", "3 1 x 7 8", Problem{Values: []int{1, 0, 0}, Target: 0}},
		{"negative count", "-2 8", Problem{Values: []int{}, Target: 8}},
		{"trailing ignored", "1 4 4 extra tokens", Problem{Values: []int{4}, Target: 4}},
		{"bad count", "x 1 2", Problem{Values: []int{}, Target: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := read(t, tt.src, Options{Strict: false})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead_IOError(t *testing.T) {
	boom := errors.New("boom")
	for _, strict := range []bool{true, false} {
		_, err := NewReader(iotest.ErrReader(boom), Options{Strict: strict}).Read()
		require.ErrorIs(t, err, boom, "strict=%v", strict)
		assert.Contains(t, err.Error(), "read count")
	}
}

func TestRead_OversizedToken(t *testing.T) {
	huge := strings.Repeat("9", 70000)

	tests := []struct {
		name      string
		src       string
		wantErr   error
		wantPhase Phase
		wantIndex int
	}{
		{"count", huge + " 1 2", ErrMalformedToken, PhaseCount, 0},
		{"value", "2 1 " + huge + " 5", ErrMalformedToken, PhaseValue, 2},
		{"target", "1 4 " + huge, ErrMalformedToken, PhaseTarget, 2},
		{"trailing", "1 4 4 " + huge, ErrTrailingInput, PhaseTrailing, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := read(t, tt.src, Options{Strict: true})
			require.ErrorIs(t, err, tt.wantErr)

			var te *TokenError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, tt.wantPhase, te.Phase)
			assert.Equal(t, tt.wantIndex, te.Index)
			assert.Empty(t, te.Token, "the oversized token is never echoed")
			assert.Contains(t, err.Error(), "token exceeds 65536 bytes")
		})
	}

	t.Run("permissive", func(t *testing.T) {
		got, err := read(t, "2 1 "+huge+" 5", Options{Strict: false})
		require.NoError(t, err)
		assert.Equal(t, Problem{Values: []int{1, 0}, Target: 0}, got)
	})
}

func TestTokenError_Message(t *testing.T) {
	err := &TokenError{Phase: PhaseValue, Index: 2, Token: "x", Err: ErrMalformedToken}
	assert.Equal(t, `value at token 2 ("x"): malformed integer token`, err.Error())

	err = &TokenError{Phase: PhaseTarget, Index: 3, Err: ErrShortInput}
	assert.Equal(t, "target at token 3: input ended early", err.Error())
}
