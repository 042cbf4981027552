// SPDX-License-Identifier: MPL-2.0

package projectfile

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// ParameterTypeString is the default parameter type for string values
	ParameterTypeString ParameterType = "string"
	// ParameterTypeInt is for integer parameters
	ParameterTypeInt ParameterType = "int"
	// ParameterTypeFloat is for floating-point parameters
	ParameterTypeFloat ParameterType = "float"
	// ParameterTypeBool is for boolean parameters (true/false)
	ParameterTypeBool ParameterType = "bool"
)

// ErrInvalidParameterType is returned when a ParameterType value is not one of the defined types.
var ErrInvalidParameterType = errors.New("invalid parameter type")

type (
	// ParameterType represents the data type of an entry-point parameter
	ParameterType string

	// InvalidParameterTypeError is returned when a ParameterType value is not recognized.
	// It wraps ErrInvalidParameterType for errors.Is() compatibility.
	InvalidParameterTypeError struct {
		Value ParameterType
	}

	// ParameterSpec declares a single entry-point parameter
	ParameterSpec struct {
		// Name is the parameter name, unique within its entry point
		// (starts with a letter, alphanumeric/hyphen/underscore)
		Name string `json:"name" yaml:"name"`
		// Description provides help text for the parameter
		Description string `json:"description,omitempty" yaml:"description,omitempty"`
		// Type specifies the data type of the parameter (optional, defaults to "string")
		// Supported types: "string", "int", "float", "bool"
		Type ParameterType `json:"type,omitempty" yaml:"type,omitempty"`
		// DefaultValue is the value used when no override is supplied.
		// Declared as a string regardless of Type; it must coerce to Type.
		DefaultValue string `json:"default_value,omitempty" yaml:"default,omitempty"`
	}
)

// Error implements the error interface for InvalidParameterTypeError.
func (e *InvalidParameterTypeError) Error() string {
	return fmt.Sprintf("invalid parameter type %q (valid: string, int, float, bool)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidParameterTypeError) Unwrap() error {
	return ErrInvalidParameterType
}

// IsValid returns whether the ParameterType is one of the defined types.
// Note: the zero value ("") is valid — it is treated as "string" by GetType().
func (pt ParameterType) IsValid() bool {
	switch pt {
	case ParameterTypeString, ParameterTypeInt, ParameterTypeFloat, ParameterTypeBool, "":
		return true
	default:
		return false
	}
}

// GetType returns the effective type of the parameter (defaults to "string" if not specified)
func (p *ParameterSpec) GetType() ParameterType {
	if p.Type == "" {
		return ParameterTypeString
	}
	return p.Type
}

// CoerceValue checks that a value is compatible with the given type.
// Values carry no implicit conversion: "true"/"false" for bool, optional
// leading minus plus digits for int, strconv syntax for float, any string
// for string.
func CoerceValue(value string, typeName ParameterType) error {
	switch typeName {
	case ParameterTypeBool:
		if value != "true" && value != "false" {
			return fmt.Errorf("must be 'true' or 'false'")
		}
	case ParameterTypeInt:
		for i, c := range value {
			if i == 0 && c == '-' {
				continue // Allow negative sign at start
			}
			if c < '0' || c > '9' {
				return fmt.Errorf("must be a valid integer")
			}
		}
		if value == "" || value == "-" {
			return fmt.Errorf("must be a valid integer")
		}
	case ParameterTypeFloat:
		if value == "" {
			return fmt.Errorf("must be a valid floating-point number")
		}
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("must be a valid floating-point number")
		}
	case ParameterTypeString:
		// Any string is valid
	default:
		// Defense-in-depth: the CUE schema enforces valid types at parse time.
		// This catches programmatic misuse where an invalid type bypasses parsing.
		return fmt.Errorf("unknown parameter type %q", typeName)
	}
	return nil
}

// ValidateValue validates a candidate value for this parameter against its
// declared type. Returns nil if the value is valid.
func (p *ParameterSpec) ValidateValue(value string) error {
	if err := CoerceValue(value, p.GetType()); err != nil {
		return fmt.Errorf("parameter '%s' value '%s' is invalid: %s", p.Name, value, err.Error())
	}
	return nil
}
