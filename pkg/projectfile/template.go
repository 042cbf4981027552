// SPDX-License-Identifier: MPL-2.0

package projectfile

import "strings"

// Placeholders returns the placeholder names referenced in a command
// template, in order of first appearance. A placeholder is a {name} span;
// braces without a well-formed name are treated as literal text.
func Placeholders(template string) []string {
	var names []string
	seen := make(map[string]bool)

	for i := 0; i < len(template); i++ {
		if template[i] != '{' {
			continue
		}
		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			break
		}
		name := template[i+1 : i+end]
		if isPlaceholderName(name) {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
			i += end
		}
	}

	return names
}

// isPlaceholderName reports whether name is a well-formed placeholder name:
// a letter followed by letters, digits, hyphens, or underscores.
func isPlaceholderName(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '-' || c == '_'):
		default:
			return false
		}
	}
	return true
}
