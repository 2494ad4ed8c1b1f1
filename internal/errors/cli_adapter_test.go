package errors

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
)

// TestExitCodeMapping verifies category to exit code mapping.
func TestExitCodeMapping(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	cases := []struct {
		err  error
		code int
	}{
		{nil, 0},
		{errors.New("plain"), 1},
		{ValidationError("bad args").Build(), 2},
		{AuthError("rejected").Build(), 5},
		{ConfigError("bad yaml").Build(), 7},
		{NetworkError("refused").Build(), 8},
		{TelemetryError("rejected payload").Build(), 8},
		{InternalError("bug").Build(), 10},
	}
	for _, c := range cases {
		if got := adapter.ExitCodeFor(c.err); got != c.code {
			t.Fatalf("err %v: expected exit code %d got %d", c.err, c.code, got)
		}
	}
}

// TestFormatErrorVerbose ensures verbose mode exposes the full classified string.
func TestFormatErrorVerbose(t *testing.T) {
	err := NetworkError("push failed").WithCause(errors.New("dial tcp: refused")).Build()

	terse := NewCLIErrorAdapter(false, slog.Default()).FormatError(err)
	if strings.Contains(terse, "dial tcp") {
		t.Fatalf("non-verbose output should omit the cause, got %q", terse)
	}
	if !strings.Contains(terse, "push failed") {
		t.Fatalf("expected message in terse output, got %q", terse)
	}

	verbose := NewCLIErrorAdapter(true, slog.Default()).FormatError(err)
	if !strings.Contains(verbose, "dial tcp") {
		t.Fatalf("verbose output should include the cause, got %q", verbose)
	}
}

// TestFormatErrorNil returns empty string for nil.
func TestFormatErrorNil(t *testing.T) {
	if got := NewCLIErrorAdapter(false, nil).FormatError(nil); got != "" {
		t.Fatalf("expected empty string got %q", got)
	}
}
