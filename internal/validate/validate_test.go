// SPDX-License-Identifier: MIT
package validate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidator_Range(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		min     int
		max     int
		wantErr bool
	}{
		{"in range", 5, 1, 10, false},
		{"at min", 1, 1, 10, false},
		{"at max", 10, 1, 10, false},
		{"below min", 0, 1, 10, true},
		{"above max", 11, 1, 10, true},
		{"negative range", -5, -10, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Range("testValue", tt.value, tt.min, tt.max)

			if tt.wantErr && v.IsValid() {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && !v.IsValid() {
				t.Errorf("unexpected error: %v", v.Err())
			}
		})
	}
}

func TestValidator_NotEmpty(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"non-empty", "hello", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"tab only", "\t", true},
		{"newline only", "\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.NotEmpty("testField", tt.value)

			if tt.wantErr && v.IsValid() {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && !v.IsValid() {
				t.Errorf("unexpected error: %v", v.Err())
			}
		})
	}
}

func TestValidator_Level(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid trace", "trace", false},
		{"valid warn", "warn", false},
		{"valid disabled", "disabled", false},
		{"invalid loud", "loud", true},
		{"invalid upper case", "WARN", true},
		{"invalid empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Level("logLevel", tt.value)

			if tt.wantErr && v.IsValid() {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && !v.IsValid() {
				t.Errorf("unexpected error: %v", v.Err())
			}
			if tt.wantErr {
				msg := v.Errors()[0].Message
				if !strings.Contains(msg, ErrInvalidLogLevel.Message) || !strings.Contains(msg, fmt.Sprintf("%q", tt.value)) {
					t.Errorf("message %q should name the allowed levels and the rejected value", msg)
				}
			}
		})
	}
}

func TestValidator_SingleLine(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"brackets", "[]", false},
		{"empty", "", false},
		{"newline", "a\nb", true},
		{"carriage return", "a\r", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.SingleLine("testField", tt.value)

			if tt.wantErr && v.IsValid() {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && !v.IsValid() {
				t.Errorf("unexpected error: %v", v.Err())
			}
		})
	}
}

func TestValidator_Custom(t *testing.T) {
	notZero := func(v interface{}) error {
		n, ok := v.(int)
		if !ok {
			return errors.New("expected int value")
		}
		if n == 0 {
			return errors.New("must not be zero")
		}
		return nil
	}

	v := New()
	v.Custom("a", 3, notZero)
	if !v.IsValid() {
		t.Errorf("unexpected error: %v", v.Err())
	}

	v.Custom("b", 0, notZero)
	if v.IsValid() {
		t.Fatal("expected error, got none")
	}
	if got := v.Errors()[0].Message; got != "must not be zero" {
		t.Errorf("message = %q", got)
	}
}

func TestValidator_WritableFile(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "existing.txt")
	if err := os.WriteFile(existing, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"empty allowed", "", false},
		{"new file in existing dir", filepath.Join(tmpDir, "out.txt"), false},
		{"existing file", existing, false},
		{"directory", tmpDir, true},
		{"missing parent", filepath.Join(tmpDir, "nope", "out.txt"), true},
		{"parent is a file", filepath.Join(existing, "out.txt"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.WritableFile("output", tt.path)

			if tt.wantErr && v.IsValid() {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && !v.IsValid() {
				t.Errorf("unexpected error: %v", v.Err())
			}
		})
	}
}

func TestValidator_ReadableFile(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "in.txt")
	if err := os.WriteFile(existing, []byte("1 1 1"), 0600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"empty allowed", "", false},
		{"existing file", existing, false},
		{"missing", filepath.Join(tmpDir, "missing.txt"), true},
		{"directory", tmpDir, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.ReadableFile("input", tt.path)

			if tt.wantErr && v.IsValid() {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && !v.IsValid() {
				t.Errorf("unexpected error: %v", v.Err())
			}
		})
	}
}

func TestValidator_MultipleErrors(t *testing.T) {
	v := New()

	v.Range("maxCount", 0, 1, 10)
	v.Level("logLevel", "loud")
	v.NotEmpty("name", "")

	if v.IsValid() {
		t.Fatal("expected errors, got none")
	}

	errs := v.Errors()
	if len(errs) != 3 {
		t.Errorf("expected 3 errors, got %d", len(errs))
	}

	err := v.Err()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(verr.Errors()) != 3 {
		t.Errorf("expected 3 wrapped errors, got %d", len(verr.Errors()))
	}

	errorMsg := err.Error()
	for _, field := range []string{"maxCount", "logLevel", "name"} {
		if !strings.Contains(errorMsg, field) {
			t.Errorf("error message should mention %q: %s", field, errorMsg)
		}
	}
}

func TestValidator_ErrIsSnapshot(t *testing.T) {
	v := New()
	v.NotEmpty("a", "")
	err := v.Err()
	v.NotEmpty("b", "")

	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(verr.Errors()) != 1 {
		t.Errorf("snapshot changed after Err(): %v", verr.Errors())
	}
}

func TestValidator_NoErrors(t *testing.T) {
	v := New()
	v.Range("days", 7, 1, 14)
	v.NotEmpty("service", "pairsum")
	if err := v.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if (ValidationError{}).Error() != "" {
		t.Error("empty ValidationError should render empty")
	}
}

func TestLogLevel_IsValid(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  bool
	}{
		{LogLevelTrace, true},
		{LogLevelDebug, true},
		{LogLevelInfo, true},
		{LogLevelWarn, true},
		{LogLevelError, true},
		{LogLevelDisabled, true},
		{LogLevel("invalid"), false},
		{LogLevel(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LogLevelDebug, false},
		{"warn", LogLevelWarn, false},
		{"disabled", LogLevelDisabled, false},
		{"invalid", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLogLevel() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseLogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}
