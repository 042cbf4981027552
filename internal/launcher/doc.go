// SPDX-License-Identifier: MPL-2.0

// Package launcher spawns resolved invocations as external processes.
//
// The resolver produces the command line; the launcher owns everything
// process-related: shell selection, environment construction, stdio wiring,
// cancellation, and exit-code passthrough. The child's exit code is reported
// unchanged.
package launcher
