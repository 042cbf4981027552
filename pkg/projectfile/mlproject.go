// SPDX-License-Identifier: MPL-2.0

package projectfile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseMLprojectBytes parses a legacy MLflow "MLproject" YAML manifest into a
// Projectfile. Decoding walks yaml.Node mappings directly instead of
// unmarshalling to maps so that entry-point and parameter declaration order
// is preserved — substitution order is part of the manifest contract.
//
// Accepted parameter shapes, per the MLflow format:
//
//	alpha: {type: float, default: "0.4"}
//	data_file: path            # scalar shorthand: type only, no default
//
// MLflow's "path" and "uri" types carry no typed coercion and map to string.
func ParseMLprojectBytes(data []byte, path string) (*Projectfile, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse MLproject at %s: %w", path, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("MLproject at %s is empty", path)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("MLproject at %s: top level must be a mapping", path)
	}

	pf := &Projectfile{FilePath: path}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "name":
			pf.Name = value.Value
		case "entry_points":
			if value.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("MLproject at %s: entry_points must be a mapping", path)
			}
			for j := 0; j+1 < len(value.Content); j += 2 {
				ep, err := decodeMLprojectEntryPoint(value.Content[j].Value, value.Content[j+1])
				if err != nil {
					return nil, fmt.Errorf("MLproject at %s: %w", path, err)
				}
				pf.EntryPoints = append(pf.EntryPoints, *ep)
			}
		}
		// Unknown top-level keys (docker_env, conda_env, ...) describe the
		// execution environment, not the invocation contract; skip them.
	}

	if err := pf.Validate(); err != nil {
		return nil, err
	}

	return pf, nil
}

// decodeMLprojectEntryPoint decodes a single entry_points value node.
func decodeMLprojectEntryPoint(name string, node *yaml.Node) (*EntryPoint, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("entry point '%s' must be a mapping", name)
	}

	ep := &EntryPoint{Name: name}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "command":
			ep.Command = value.Value
		case "parameters":
			if value.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("entry point '%s': parameters must be a mapping", name)
			}
			for j := 0; j+1 < len(value.Content); j += 2 {
				spec, err := decodeMLprojectParameter(value.Content[j].Value, value.Content[j+1])
				if err != nil {
					return nil, fmt.Errorf("entry point '%s': %w", name, err)
				}
				ep.Parameters = append(ep.Parameters, *spec)
			}
		}
	}

	return ep, nil
}

// decodeMLprojectParameter decodes one parameter declaration, which is either
// a scalar type shorthand or a {type, default} mapping.
func decodeMLprojectParameter(name string, node *yaml.Node) (*ParameterSpec, error) {
	spec := &ParameterSpec{Name: name}

	switch node.Kind {
	case yaml.ScalarNode:
		spec.Type = mapMLflowType(node.Value)
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			switch key.Value {
			case "type":
				spec.Type = mapMLflowType(value.Value)
			case "default":
				// YAML scalars arrive as their source text; defaults stay
				// strings and are coerced against the declared type later.
				spec.DefaultValue = value.Value
			}
		}
	default:
		return nil, fmt.Errorf("parameter '%s' must be a scalar type or a mapping", name)
	}

	if !spec.Type.IsValid() {
		return nil, &InvalidParameterTypeError{Value: spec.Type}
	}

	return spec, nil
}

// mapMLflowType converts an MLflow parameter type to a ParameterType.
func mapMLflowType(t string) ParameterType {
	switch t {
	case "path", "uri", "string", "":
		return ParameterTypeString
	default:
		return ParameterType(t)
	}
}
