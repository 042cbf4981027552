// SPDX-License-Identifier: MPL-2.0

// Package resolver implements entry-point resolution: merging caller-supplied
// overrides over declared defaults and substituting every placeholder in the
// entry point's command template to produce a concrete invocation.
//
// Resolution is a single-shot, pure transformation. Same entry point plus
// same overrides always yields the identical invocation; there is no I/O, no
// environment lookup, and no shared state. Spawning the resulting command is
// the launcher's job.
package resolver
