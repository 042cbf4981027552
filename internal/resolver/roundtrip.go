// SPDX-License-Identifier: MPL-2.0

package resolver

import (
	"fmt"
	"regexp"
	"strings"

	"mvdan.cc/sh/v3/shell"

	"mlproj-cli/pkg/projectfile"
)

// MatchCommandLine recovers the effective parameter values from a command
// line produced by Resolve for the given entry point. Both the template and
// the command line are tokenized with shell word-splitting rules, so quoted
// values (and quoted literals in the template itself) round-trip exactly.
// Parameters whose placeholder does not appear in the template are not
// recoverable and are absent from the result.
//
// Returns an error when the command line does not match the template shape,
// or when a placeholder appearing more than once binds conflicting values.
func MatchCommandLine(ep *projectfile.EntryPoint, commandLine string) (map[string]string, error) {
	unsetEnv := func(string) string { return "" }

	tmplFields, err := shell.Fields(ep.Command, unsetEnv)
	if err != nil {
		return nil, fmt.Errorf("cannot tokenize command template: %w", err)
	}

	cmdFields, err := shell.Fields(commandLine, unsetEnv)
	if err != nil {
		return nil, fmt.Errorf("cannot tokenize command line: %w", err)
	}

	if len(cmdFields) != len(tmplFields) {
		return nil, fmt.Errorf("command line has %d fields, template %q has %d",
			len(cmdFields), ep.Command, len(tmplFields))
	}

	values := make(map[string]string)
	for i, tf := range tmplFields {
		if err := matchField(tf, cmdFields[i], values); err != nil {
			return nil, err
		}
	}

	return values, nil
}

// matchField matches one whitespace-delimited template field against the
// corresponding (already unquoted) command-line field, binding any
// placeholders it contains.
func matchField(tmplField, cmdField string, values map[string]string) error {
	names := projectfile.Placeholders(tmplField)
	if len(names) == 0 {
		if tmplField != cmdField {
			return fmt.Errorf("field %q does not match template field %q", cmdField, tmplField)
		}
		return nil
	}

	re, groups, err := fieldPattern(tmplField)
	if err != nil {
		return err
	}

	m := re.FindStringSubmatch(cmdField)
	if m == nil {
		return fmt.Errorf("field %q does not match template field %q", cmdField, tmplField)
	}

	for i, name := range groups {
		bound := m[i+1]
		if prev, ok := values[name]; ok && prev != bound {
			return fmt.Errorf("placeholder '{%s}' binds both %q and %q", name, prev, bound)
		}
		values[name] = bound
	}

	return nil
}

// fieldPattern compiles a template field into an anchored regexp with one
// capture group per placeholder, in order. All groups are lazy except the
// last, which is greedy, so literal separators between placeholders are
// honored.
func fieldPattern(tmplField string) (*regexp.Regexp, []string, error) {
	var pattern strings.Builder
	var groups []string

	pattern.WriteString("^")
	rest := tmplField
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			pattern.WriteString(regexp.QuoteMeta(rest))
			break
		}
		end := strings.IndexByte(rest[start:], '}')
		name := ""
		if end > 0 {
			name = rest[start+1 : start+end]
		}
		if end < 0 || !isPlaceholder(name) {
			// Literal brace; emit up to and including it, keep scanning.
			pattern.WriteString(regexp.QuoteMeta(rest[:start+1]))
			rest = rest[start+1:]
			continue
		}

		pattern.WriteString(regexp.QuoteMeta(rest[:start]))
		groups = append(groups, name)
		rest = rest[start+end+1:]
		if len(projectfile.Placeholders(rest)) == 0 {
			pattern.WriteString("(.*)")
		} else {
			pattern.WriteString("(.*?)")
		}
	}
	pattern.WriteString("$")

	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, nil, fmt.Errorf("template field %q: %w", tmplField, err)
	}
	return re, groups, nil
}

// isPlaceholder reports whether name is a recoverable placeholder name,
// reusing the manifest's placeholder grammar.
func isPlaceholder(name string) bool {
	return len(projectfile.Placeholders("{"+name+"}")) == 1
}
