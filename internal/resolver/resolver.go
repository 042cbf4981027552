// SPDX-License-Identifier: MPL-2.0

package resolver

import (
	"fmt"
	"sort"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"mlproj-cli/pkg/projectfile"
)

const (
	// PolicyStrict rejects override keys not declared on the entry point.
	// This is the default: a misspelled parameter name should fail loudly,
	// not silently train with the default value.
	PolicyStrict OverridePolicy = "strict"
	// PolicyPermissive silently ignores undeclared override keys.
	PolicyPermissive OverridePolicy = "permissive"
)

type (
	// OverridePolicy controls how undeclared override keys are handled.
	// The zero value ("") is treated as PolicyStrict.
	OverridePolicy string

	// Request captures the inputs of a resolution as an immutable value.
	Request struct {
		// EntryPoint is the requested entry-point name.
		EntryPoint string
		// Overrides maps parameter names to caller-supplied string values.
		// May be empty.
		Overrides map[string]string
		// Policy controls undeclared-key handling. Zero value means strict.
		Policy OverridePolicy
	}

	// Invocation is a fully resolved, ready-to-spawn command.
	Invocation struct {
		// EntryPoint is the resolved entry-point name.
		EntryPoint string
		// CommandLine is the command template with every placeholder
		// substituted. Values that need it are shell-quoted so the line
		// tokenizes back to the exact resolved values.
		CommandLine string
		// Parameters maps every declared parameter to its effective value
		// (override when supplied, declared default otherwise).
		Parameters map[string]string
	}
)

// IsValid returns whether the OverridePolicy is one of the defined policies.
// The zero value ("") is valid and means strict.
func (p OverridePolicy) IsValid() bool {
	switch p {
	case PolicyStrict, PolicyPermissive, "":
		return true
	default:
		return false
	}
}

// Resolve maps a Request to an Invocation against a loaded manifest.
//
// For each declared parameter the effective value is the override when
// present, else the declared default. Overrides must coerce to the declared
// type. Under PolicyStrict (the default) an override key with no declared
// parameter is an error; under PolicyPermissive it is ignored. No partial
// resolution is performed: any failure returns before substitution starts.
func Resolve(pf *projectfile.Projectfile, req Request) (*Invocation, error) {
	if !req.Policy.IsValid() {
		return nil, &InvalidOverridePolicyError{Value: req.Policy}
	}

	ep := pf.GetEntryPoint(req.EntryPoint)
	if ep == nil {
		return nil, &UnknownEntryPointError{Name: req.EntryPoint, Available: pf.ListEntryPoints()}
	}

	if req.Policy != PolicyPermissive {
		// Sorted so the reported key is deterministic when several are unknown.
		keys := make([]string, 0, len(req.Overrides))
		for k := range req.Overrides {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if ep.GetParameter(k) == nil {
				return nil, &UnknownParameterError{EntryPoint: ep.Name, Name: k}
			}
		}
	}

	params := make(map[string]string, len(ep.Parameters))
	for i := range ep.Parameters {
		p := &ep.Parameters[i]
		value, overridden := req.Overrides[p.Name]
		if !overridden {
			value = p.DefaultValue
		} else if err := projectfile.CoerceValue(value, p.GetType()); err != nil {
			return nil, &InvalidParameterValueError{
				EntryPoint: ep.Name,
				Name:       p.Name,
				Value:      value,
				Reason:     err.Error(),
			}
		}
		params[p.Name] = value
	}

	commandLine := ep.Command
	for i := range ep.Parameters {
		name := ep.Parameters[i].Name
		quoted, err := quoteValue(params[name])
		if err != nil {
			return nil, &InvalidParameterValueError{
				EntryPoint: ep.Name,
				Name:       name,
				Value:      params[name],
				Reason:     err.Error(),
			}
		}
		commandLine = strings.ReplaceAll(commandLine, "{"+name+"}", quoted)
	}

	return &Invocation{
		EntryPoint:  ep.Name,
		CommandLine: commandLine,
		Parameters:  params,
	}, nil
}

// quoteValue shell-quotes a parameter value when needed. Plain words pass
// through unchanged, so simple invocations read exactly like their template.
func quoteValue(value string) (string, error) {
	quoted, err := syntax.Quote(value, syntax.LangPOSIX)
	if err != nil {
		return "", fmt.Errorf("cannot be represented on a command line: %w", err)
	}
	return quoted, nil
}
