// SPDX-License-Identifier: MPL-2.0

package projectfile

import (
	"errors"
	"fmt"
)

// ErrMissingPlaceholderBinding is returned when a command template references
// a placeholder with no declared parameter. This is a manifest-authoring
// defect, detected at load time.
var ErrMissingPlaceholderBinding = errors.New("missing placeholder binding")

type (
	// MissingPlaceholderBindingError identifies an undeclared placeholder in
	// an entry point's command template. It wraps ErrMissingPlaceholderBinding
	// for errors.Is() compatibility.
	MissingPlaceholderBindingError struct {
		EntryPoint  string
		Placeholder string
	}

	// EntryPoint is a named, externally invocable command with a declared
	// parameter schema and default values.
	EntryPoint struct {
		// Name is the entry-point identifier, unique within the manifest
		Name string `json:"name" yaml:"name"`
		// Description provides help text for the entry point
		Description string `json:"description,omitempty" yaml:"description,omitempty"`
		// Parameters declares the parameter schema, in substitution order
		Parameters []ParameterSpec `json:"parameters,omitempty" yaml:"parameters,omitempty"`
		// Command is the command template with {placeholder} substitution points
		Command string `json:"command" yaml:"command"`
	}

	// Projectfile is the complete parsed project manifest
	Projectfile struct {
		// Name identifies the project (optional)
		Name string `json:"name,omitempty" yaml:"name,omitempty"`
		// Description provides a summary of this project's purpose
		Description string `json:"description,omitempty" yaml:"description,omitempty"`
		// EntryPoints defines the available entry points
		EntryPoints []EntryPoint `json:"entry_points" yaml:"entry_points"`

		// FilePath stores the path this manifest was loaded from (not in CUE)
		FilePath string `json:"-" yaml:"-"`
	}
)

// Error implements the error interface for MissingPlaceholderBindingError.
func (e *MissingPlaceholderBindingError) Error() string {
	return fmt.Sprintf("entry point '%s': command template references undeclared parameter '{%s}'",
		e.EntryPoint, e.Placeholder)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *MissingPlaceholderBindingError) Unwrap() error {
	return ErrMissingPlaceholderBinding
}

// GetParameter finds a parameter spec by name, or nil if not declared.
func (ep *EntryPoint) GetParameter(name string) *ParameterSpec {
	for i := range ep.Parameters {
		if ep.Parameters[i].Name == name {
			return &ep.Parameters[i]
		}
	}
	return nil
}

// Validate checks an entry point for structural defects: empty name or
// command, duplicate or invalid parameter declarations, defaults that do not
// coerce to their declared type, and undeclared placeholders.
func (ep *EntryPoint) Validate() error {
	if ep.Name == "" {
		return fmt.Errorf("entry point must have a name")
	}
	if ep.Command == "" {
		return fmt.Errorf("entry point '%s' must have a command", ep.Name)
	}

	seen := make(map[string]bool, len(ep.Parameters))
	for i := range ep.Parameters {
		p := &ep.Parameters[i]
		if p.Name == "" {
			return fmt.Errorf("entry point '%s' parameter #%d must have a name", ep.Name, i+1)
		}
		if seen[p.Name] {
			return fmt.Errorf("entry point '%s' declares parameter '%s' more than once", ep.Name, p.Name)
		}
		seen[p.Name] = true

		if !p.Type.IsValid() {
			return fmt.Errorf("entry point '%s' parameter '%s': %w",
				ep.Name, p.Name, &InvalidParameterTypeError{Value: p.Type})
		}
		if p.DefaultValue != "" || p.GetType() != ParameterTypeString {
			if err := CoerceValue(p.DefaultValue, p.GetType()); err != nil {
				return fmt.Errorf("entry point '%s' parameter '%s' default '%s': %s",
					ep.Name, p.Name, p.DefaultValue, err.Error())
			}
		}
	}

	for _, name := range Placeholders(ep.Command) {
		if !seen[name] {
			return &MissingPlaceholderBindingError{EntryPoint: ep.Name, Placeholder: name}
		}
	}

	return nil
}

// Validate checks the manifest for errors. Manifest-load-time errors are
// fatal: a manifest that fails validation is never partially usable.
func (pf *Projectfile) Validate() error {
	if len(pf.EntryPoints) == 0 {
		return fmt.Errorf("manifest at %s declares no entry points", pf.FilePath)
	}

	seen := make(map[string]bool, len(pf.EntryPoints))
	for i := range pf.EntryPoints {
		ep := &pf.EntryPoints[i]
		if err := ep.Validate(); err != nil {
			return err
		}
		if seen[ep.Name] {
			return fmt.Errorf("manifest at %s declares entry point '%s' more than once", pf.FilePath, ep.Name)
		}
		seen[ep.Name] = true
	}

	return nil
}

// GetEntryPoint finds an entry point by name, or nil if not declared.
func (pf *Projectfile) GetEntryPoint(name string) *EntryPoint {
	if name == "" {
		return nil
	}
	for i := range pf.EntryPoints {
		if pf.EntryPoints[i].Name == name {
			return &pf.EntryPoints[i]
		}
	}
	return nil
}

// ListEntryPoints returns all entry-point names in declaration order.
func (pf *Projectfile) ListEntryPoints() []string {
	names := make([]string, len(pf.EntryPoints))
	for i, ep := range pf.EntryPoints {
		names[i] = ep.Name
	}
	return names
}
