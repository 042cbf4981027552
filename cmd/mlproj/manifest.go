// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"

	"mlproj-cli/internal/issue"
	"mlproj-cli/pkg/projectfile"
)

// resolveManifestPath picks the manifest to load: the --file flag wins, then
// the configured manifest_path, then discovery in the working directory.
func resolveManifestPath() (string, error) {
	if manifestFile != "" {
		return manifestFile, nil
	}
	if loadedCfg.ManifestPath != "" {
		return loadedCfg.ManifestPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", issue.WrapWithOperation(err, "determine working directory")
	}

	path, err := projectfile.Discover(cwd)
	if err != nil {
		return "", issue.NewErrorContext().
			WithOperation("locate project manifest").
			WithResource(cwd).
			WithSuggestion("Run 'mlproj init' to create a projectfile.cue").
			WithSuggestion("Or point at a manifest with --file").
			Wrap(err).
			BuildError()
	}
	return path, nil
}

// loadManifest resolves the manifest path and parses it. All load-time
// validation (schema, duplicate names, placeholder bindings) happens here;
// a manifest that loads is safe to resolve against.
func loadManifest() (*projectfile.Projectfile, error) {
	path, err := resolveManifestPath()
	if err != nil {
		return nil, err
	}

	pf, err := projectfile.Parse(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load project manifest").
			WithResource(path).
			WithSuggestion("Run 'mlproj validate' for a detailed report").
			Wrap(err).
			BuildError()
	}
	return pf, nil
}
