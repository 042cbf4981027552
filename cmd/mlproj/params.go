// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"mlproj-cli/internal/issue"
)

// parseParamFlags converts repeated -P name=value flags to an override map.
// Later occurrences of the same name win, matching flag-ordering intuition.
func parseParamFlags(pairs []string) (map[string]string, error) {
	overrides := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q (expected name=value)", pair)
		}
		overrides[name] = value
	}
	return overrides, nil
}

// loadParamsFile reads parameter overrides from a flat TOML table.
// String, integer, float, and boolean values are accepted and carried as
// strings; type coercion against the declared parameter types happens during
// resolution, the same as for -P values.
func loadParamsFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("read parameters file").
			WithResource(path).
			Wrap(err).
			BuildError()
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("parse parameters file").
			WithResource(path).
			WithSuggestion("Expected a flat TOML table of name = value pairs").
			Wrap(err).
			BuildError()
	}

	overrides := make(map[string]string, len(raw))
	for name, value := range raw {
		s, err := stringifyParamValue(value)
		if err != nil {
			return nil, fmt.Errorf("%s: parameter %q: %w", path, name, err)
		}
		overrides[name] = s
	}
	return overrides, nil
}

// stringifyParamValue renders a TOML scalar as the string form the resolver
// coerces. Tables and arrays have no command-line representation.
func stringifyParamValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("unsupported value type %T (use string, integer, float, or boolean)", value)
	}
}

// mergeOverrides layers -P flag values over params-file values.
func mergeOverrides(fromFile, fromFlags map[string]string) map[string]string {
	merged := make(map[string]string, len(fromFile)+len(fromFlags))
	for k, v := range fromFile {
		merged[k] = v
	}
	for k, v := range fromFlags {
		merged[k] = v
	}
	return merged
}
