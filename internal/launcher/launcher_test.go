// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"bytes"
	"context"
	"runtime"
	"sort"
	"strings"
	"testing"

	"mlproj-cli/internal/resolver"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests require a POSIX shell")
	}
}

func newTestLauncher() (*Launcher, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Launcher{
		Shell:  "/bin/sh",
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

func TestLaunchCapturesOutput(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	l, stdout, _ := newTestLauncher()
	result := l.Launch(context.Background(), &resolver.Invocation{
		EntryPoint:  "main",
		CommandLine: "echo training started",
	})

	if !result.Success() {
		t.Fatalf("Launch() = exit %d, error %v", result.ExitCode, result.Error)
	}
	if got := strings.TrimSpace(stdout.String()); got != "training started" {
		t.Errorf("stdout = %q, want %q", got, "training started")
	}
}

func TestLaunchExitCodePassthrough(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	tests := []struct {
		name        string
		commandLine string
		wantCode    int
	}{
		{"zero", "exit 0", 0},
		{"one", "exit 1", 1},
		{"arbitrary", "exit 42", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l, _, _ := newTestLauncher()
			result := l.Launch(context.Background(), &resolver.Invocation{
				EntryPoint:  "main",
				CommandLine: tt.commandLine,
			})
			if result.ExitCode != tt.wantCode {
				t.Errorf("ExitCode = %d, want %d", result.ExitCode, tt.wantCode)
			}
			if result.Error != nil {
				t.Errorf("Error = %v, want nil for a clean child exit", result.Error)
			}
		})
	}
}

func TestLaunchExportsParameterEnv(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	l, stdout, _ := newTestLauncher()
	result := l.Launch(context.Background(), &resolver.Invocation{
		EntryPoint:  "main",
		CommandLine: `printf '%s|%s' "$MLPROJ_PARAM_RUN_NAME" "$MLPROJ_PARAM_MAX_EPOCHS"`,
		Parameters: map[string]string{
			"run_name":   "exp42",
			"max-epochs": "10",
		},
	})

	if !result.Success() {
		t.Fatalf("Launch() = exit %d, error %v", result.ExitCode, result.Error)
	}
	if got := stdout.String(); got != "exp42|10" {
		t.Errorf("child env = %q, want %q", got, "exp42|10")
	}
}

func TestLaunchRespectsWorkingDirectory(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	dir := t.TempDir()
	l, stdout, _ := newTestLauncher()
	l.Dir = dir

	result := l.Launch(context.Background(), &resolver.Invocation{
		EntryPoint:  "main",
		CommandLine: "pwd",
	})

	if !result.Success() {
		t.Fatalf("Launch() = exit %d, error %v", result.ExitCode, result.Error)
	}
	// macOS may report the symlinked /private path; compare the suffix.
	if got := strings.TrimSpace(stdout.String()); !strings.HasSuffix(got, dir) {
		t.Errorf("child pwd = %q, want suffix %q", got, dir)
	}
}

func TestLaunchContextCancellation(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l, _, _ := newTestLauncher()
	result := l.Launch(ctx, &resolver.Invocation{
		EntryPoint:  "main",
		CommandLine: "sleep 30",
	})

	if result.Success() {
		t.Error("Launch() succeeded under a cancelled context")
	}
}

func TestLaunchMissingShell(t *testing.T) {
	t.Parallel()

	l := &Launcher{Shell: "/nonexistent/shell-binary"}
	result := l.Launch(context.Background(), &resolver.Invocation{
		EntryPoint:  "main",
		CommandLine: "true",
	})

	if result.Error == nil {
		t.Error("Launch() with missing shell returned nil error")
	}
	if result.ExitCode == 0 {
		t.Error("Launch() with missing shell returned exit code 0")
	}
}

func TestParamEnv(t *testing.T) {
	t.Parallel()

	got := paramEnv(map[string]string{
		"run_name":    "exp42",
		"max-epochs":  "10",
		"tracking":    "http://localhost:5000",
		"mixed-Case_": "x",
	})
	sort.Strings(got)

	want := []string{
		"MLPROJ_PARAM_MAX_EPOCHS=10",
		"MLPROJ_PARAM_MIXED_CASE_=x",
		"MLPROJ_PARAM_RUN_NAME=exp42",
		"MLPROJ_PARAM_TRACKING=http://localhost:5000",
	}
	if len(got) != len(want) {
		t.Fatalf("paramEnv() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("paramEnv()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestResultSuccess(t *testing.T) {
	t.Parallel()

	if !(&Result{ExitCode: 0}).Success() {
		t.Error("exit 0 should be a success")
	}
	if (&Result{ExitCode: 1}).Success() {
		t.Error("exit 1 should not be a success")
	}
}
