// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("no such file or directory")

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "resolve entry point"},
			want: "failed to resolve entry point",
		},
		{
			name: "operation and resource",
			err:  &ActionableError{Operation: "load project manifest", Resource: "./projectfile.cue"},
			want: "failed to load project manifest: ./projectfile.cue",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "load project manifest",
				Resource:  "./projectfile.cue",
				Cause:     cause,
			},
			want: "failed to load project manifest: ./projectfile.cue: no such file or directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorContextBuilder(t *testing.T) {
	t.Parallel()

	cause := errors.New("unknown entry point 'serve'")
	err := NewErrorContext().
		WithOperation("resolve entry point").
		WithResource("serve").
		WithSuggestion("Run 'mlproj entrypoints' to list declared entry points").
		WithSuggestion("Check for typos in the entry-point name").
		Wrap(cause).
		Build()

	if err.Operation != "resolve entry point" {
		t.Errorf("Operation = %q", err.Operation)
	}
	if err.Resource != "serve" {
		t.Errorf("Resource = %q", err.Resource)
	}
	if !err.HasSuggestions() || len(err.Suggestions) != 2 {
		t.Errorf("Suggestions = %v, want 2 entries", err.Suggestions)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want the cause to unwrap")
	}
}

func TestBuildErrorEmpty(t *testing.T) {
	t.Parallel()

	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() on empty context = %v, want nil", err)
	}
	if err := NewErrorContext().WithResource("x").WithSuggestion("y").BuildError(); err != nil {
		t.Errorf("BuildError() with neither operation nor cause = %v, want nil", err)
	}
	if err := NewErrorContext().Wrap(errors.New("boom")).BuildError(); err == nil {
		t.Error("BuildError() with a cause = nil, want error")
	}
}

func TestWrapWithOperation(t *testing.T) {
	t.Parallel()

	if got := WrapWithOperation(nil, "validate configuration"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}

	cause := errors.New("boom")
	err := WrapWithOperation(cause, "validate configuration")
	if err.Error() != "failed to validate configuration: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	inner := errors.New("file does not exist")
	middle := fmt.Errorf("failed to read manifest: %w", inner)
	err := NewErrorContext().
		WithOperation("load project manifest").
		WithResource("./projectfile.cue").
		WithSuggestion("Run 'mlproj init' to create one").
		Wrap(middle).
		Build()

	concise := err.Format(false)
	if !strings.Contains(concise, "failed to load project manifest") {
		t.Errorf("Format(false) missing message: %q", concise)
	}
	if !strings.Contains(concise, "• Run 'mlproj init' to create one") {
		t.Errorf("Format(false) missing suggestion bullet: %q", concise)
	}
	if strings.Contains(concise, "Error chain:") {
		t.Errorf("Format(false) should not include the error chain: %q", concise)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("Format(true) missing error chain: %q", verbose)
	}
	if !strings.Contains(verbose, "1. failed to read manifest: file does not exist") {
		t.Errorf("Format(true) missing chain entry: %q", verbose)
	}
	if !strings.Contains(verbose, "2. file does not exist") {
		t.Errorf("Format(true) missing unwrapped entry: %q", verbose)
	}
}
