// SPDX-License-Identifier: MPL-2.0

// Package cueutil centralizes CUE parsing and validation helpers shared by
// the project manifest and application config loaders. It implements the
// 3-step flow (compile schema, compile user data, unify/validate/decode)
// and formats CUE errors with JSON-path prefixes for readable messages.
package cueutil
