// SPDX-License-Identifier: MPL-2.0

// Package projectfile provides types and parsing for ML project manifests.
//
// A project manifest declares named entry points (e.g., a training routine
// and a benchmarking routine), each with a typed parameter schema, default
// values, and a command template with {placeholder} substitution points.
// The native format is CUE (projectfile.cue), validated against an embedded
// schema; the MLflow "MLproject" YAML format is accepted for compatibility.
//
// Manifests are loaded once and treated as immutable for the process
// lifetime. All structural defects (duplicate names, placeholders without a
// declared parameter, invalid types) are detected at load time.
package projectfile
