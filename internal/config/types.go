// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// PolicyStrict rejects parameter overrides not declared on the entry point.
	// Defined locally to avoid coupling config to internal/resolver;
	// the CLI layer casts to resolver.OverridePolicy at the boundary.
	PolicyStrict OverridePolicy = "strict"
	// PolicyPermissive silently ignores undeclared parameter overrides.
	PolicyPermissive OverridePolicy = "permissive"
)

// ErrInvalidConfigOverridePolicy is returned when a config OverridePolicy value is not recognized.
var ErrInvalidConfigOverridePolicy = errors.New("invalid override policy")

type (
	// OverridePolicy specifies how undeclared override keys are handled.
	OverridePolicy string

	// InvalidConfigOverridePolicyError is returned when a config OverridePolicy
	// value is not recognized. It wraps ErrInvalidConfigOverridePolicy for
	// errors.Is() compatibility.
	InvalidConfigOverridePolicyError struct {
		Value OverridePolicy
	}

	// RunConfig holds settings for the run command.
	RunConfig struct {
		// UniqueParam names the parameter rewritten by --unique (default "run_name").
		UniqueParam string `mapstructure:"unique_param"`
	}

	// UIConfig holds UI preferences.
	UIConfig struct {
		// Verbose enables verbose output by default.
		Verbose bool `mapstructure:"verbose"`
	}

	// Config is the complete application configuration.
	Config struct {
		// ManifestPath forces a specific manifest file. Empty means discover
		// projectfile.cue / MLproject in the working directory.
		ManifestPath string `mapstructure:"manifest_path"`
		// OverridePolicy is the default policy for undeclared override keys.
		OverridePolicy OverridePolicy `mapstructure:"override_policy"`
		// Run holds run-command settings.
		Run RunConfig `mapstructure:"run"`
		// UI holds UI preferences.
		UI UIConfig `mapstructure:"ui"`
	}
)

// Error implements the error interface for InvalidConfigOverridePolicyError.
func (e *InvalidConfigOverridePolicyError) Error() string {
	return fmt.Sprintf("invalid override policy %q (valid: strict, permissive)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidConfigOverridePolicyError) Unwrap() error {
	return ErrInvalidConfigOverridePolicy
}

// IsValid returns whether the OverridePolicy is one of the defined policies.
func (p OverridePolicy) IsValid() bool {
	switch p {
	case PolicyStrict, PolicyPermissive:
		return true
	default:
		return false
	}
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		OverridePolicy: PolicyStrict,
		Run: RunConfig{
			UniqueParam: "run_name",
		},
		UI: UIConfig{
			Verbose: false,
		},
	}
}

// Validate checks constraints the CUE schema cannot express for values set
// programmatically (the schema already constrains file-sourced values).
func (c *Config) Validate() error {
	if !c.OverridePolicy.IsValid() {
		return &InvalidConfigOverridePolicyError{Value: c.OverridePolicy}
	}
	return nil
}
