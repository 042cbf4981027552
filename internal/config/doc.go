// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/mlproj/config.cue (or XDG equivalent
// on Linux, ~/Library/Application Support/mlproj/config.cue on macOS,
// %APPDATA%\mlproj\config.cue on Windows). Settings cover manifest discovery,
// the override policy for undeclared parameter keys, and UI preferences.
//
// Config files are validated against an embedded CUE schema so invalid
// values are reported with their JSON path before Viper ever sees them.
package config
