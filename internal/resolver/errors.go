// SPDX-License-Identifier: MPL-2.0

package resolver

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownEntryPoint is returned when the requested name is not declared in the manifest.
	ErrUnknownEntryPoint = errors.New("unknown entry point")
	// ErrUnknownParameter is returned when an override key is not declared on the entry point (strict policy).
	ErrUnknownParameter = errors.New("unknown parameter")
	// ErrInvalidParameterValue is returned when an override value fails coercion to the declared type.
	ErrInvalidParameterValue = errors.New("invalid parameter value")
	// ErrInvalidOverridePolicy is returned when an OverridePolicy value is not recognized.
	ErrInvalidOverridePolicy = errors.New("invalid override policy")
)

type (
	// UnknownEntryPointError identifies a requested entry point that is not
	// declared. It wraps ErrUnknownEntryPoint for errors.Is() compatibility.
	UnknownEntryPointError struct {
		Name string
		// Available lists the declared entry-point names, for the error message.
		Available []string
	}

	// UnknownParameterError identifies an override key with no declared
	// parameter. It wraps ErrUnknownParameter for errors.Is() compatibility.
	UnknownParameterError struct {
		EntryPoint string
		Name       string
	}

	// InvalidParameterValueError identifies an override value that fails
	// coercion to its declared type. It wraps ErrInvalidParameterValue for
	// errors.Is() compatibility.
	InvalidParameterValueError struct {
		EntryPoint string
		Name       string
		Value      string
		Reason     string
	}

	// InvalidOverridePolicyError is returned when an OverridePolicy value is
	// not recognized. It wraps ErrInvalidOverridePolicy for errors.Is().
	InvalidOverridePolicyError struct {
		Value OverridePolicy
	}
)

// Error implements the error interface for UnknownEntryPointError.
func (e *UnknownEntryPointError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("unknown entry point '%s'", e.Name)
	}
	return fmt.Sprintf("unknown entry point '%s' (declared: %s)", e.Name, joinNames(e.Available))
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *UnknownEntryPointError) Unwrap() error {
	return ErrUnknownEntryPoint
}

// Error implements the error interface for UnknownParameterError.
func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("entry point '%s' has no parameter '%s'", e.EntryPoint, e.Name)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *UnknownParameterError) Unwrap() error {
	return ErrUnknownParameter
}

// Error implements the error interface for InvalidParameterValueError.
func (e *InvalidParameterValueError) Error() string {
	return fmt.Sprintf("entry point '%s' parameter '%s' value '%s': %s",
		e.EntryPoint, e.Name, e.Value, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidParameterValueError) Unwrap() error {
	return ErrInvalidParameterValue
}

// Error implements the error interface for InvalidOverridePolicyError.
func (e *InvalidOverridePolicyError) Error() string {
	return fmt.Sprintf("invalid override policy %q (valid: strict, permissive)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidOverridePolicyError) Unwrap() error {
	return ErrInvalidOverridePolicy
}

func joinNames(names []string) string {
	s := ""
	for i, n := range names {
		if i > 0 {
			s += ", "
		}
		s += "'" + n + "'"
	}
	return s
}
