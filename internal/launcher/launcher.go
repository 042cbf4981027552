// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"mlproj-cli/internal/resolver"
)

// envPrefix is prepended to exported parameter names so the child process
// can read its resolved parameters without re-parsing argv.
const envPrefix = "MLPROJ_PARAM_"

// Launcher executes resolved invocations through the system shell.
type Launcher struct {
	// Shell overrides the default shell
	Shell string
	// Dir is the working directory for the child process (empty: inherit)
	Dir string
	// Stdin, Stdout, Stderr are wired to the child process.
	// Nil values default to the launcher process's own streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer
	// Logger receives structured launch/exit events. Nil disables logging.
	Logger *log.Logger
}

// New creates a Launcher wired to the current process streams, logging to stderr.
func New() *Launcher {
	return &Launcher{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "mlproj",
		}),
	}
}

// Launch runs the invocation's command line through the shell and returns
// the child's exit code unchanged. Each resolved parameter is exported as
// MLPROJ_PARAM_<NAME> in the child environment.
func (l *Launcher) Launch(ctx context.Context, inv *resolver.Invocation) *Result {
	shell, shellArgs, err := l.getShell()
	if err != nil {
		return &Result{ExitCode: 1, Error: err}
	}

	args := append(shellArgs, inv.CommandLine)
	cmd := exec.CommandContext(ctx, shell, args...)

	if l.Dir != "" {
		cmd.Dir = l.Dir
	}

	cmd.Env = append(os.Environ(), paramEnv(inv.Parameters)...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if l.Logger != nil {
		l.Logger.Info("launching entry point", "entry_point", inv.EntryPoint, "command", inv.CommandLine)
	}

	start := time.Now()
	err = cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			if l.Logger != nil {
				l.Logger.Warn("entry point exited nonzero",
					"entry_point", inv.EntryPoint, "exit_code", exitErr.ExitCode(), "duration", elapsed)
			}
			return &Result{ExitCode: exitErr.ExitCode()}
		}
		return &Result{ExitCode: 1, Error: fmt.Errorf("failed to launch command: %w", err)}
	}

	if l.Logger != nil {
		l.Logger.Info("entry point completed", "entry_point", inv.EntryPoint, "duration", elapsed)
	}
	return &Result{ExitCode: 0}
}

// getShell determines which shell to use and its script-argument prefix.
func (l *Launcher) getShell() (string, []string, error) {
	if l.Shell != "" {
		return l.Shell, []string{"-c"}, nil
	}

	if runtime.GOOS == "windows" {
		if comspec := os.Getenv("COMSPEC"); comspec != "" {
			return comspec, []string{"/C"}, nil
		}
		return "cmd.exe", []string{"/C"}, nil
	}

	if shell := os.Getenv("SHELL"); shell != "" {
		return shell, []string{"-c"}, nil
	}
	if _, err := os.Stat("/bin/sh"); err == nil {
		return "/bin/sh", []string{"-c"}, nil
	}
	return "", nil, fmt.Errorf("no usable shell found (set $SHELL)")
}

// paramEnv converts resolved parameters to MLPROJ_PARAM_<NAME>=value pairs.
// Hyphens become underscores so every exported name is a valid identifier.
func paramEnv(params map[string]string) []string {
	env := make([]string, 0, len(params))
	for name, value := range params {
		key := strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
		env = append(env, envPrefix+key+"="+value)
	}
	return env
}
