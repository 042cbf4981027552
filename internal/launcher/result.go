// SPDX-License-Identifier: MPL-2.0

package launcher

// Result contains the outcome of a launched invocation.
type Result struct {
	// ExitCode is the child process exit code, passed through unchanged.
	// Nonzero child exits are not errors; Error stays nil for them.
	ExitCode int
	// Error is set when the process could not be started or was torn down
	// abnormally, not when it exits nonzero.
	Error error
}

// Success returns true when the process ran and exited zero.
func (r *Result) Success() bool {
	return r.Error == nil && r.ExitCode == 0
}
