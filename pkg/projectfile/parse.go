// SPDX-License-Identifier: MPL-2.0

package projectfile

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mlproj-cli/pkg/cueutil"
)

//go:embed projectfile_schema.cue
var projectfileSchema string

const (
	// ProjectfileName is the standard name for the native CUE manifest.
	ProjectfileName = "projectfile.cue"
	// MLprojectName is the legacy MLflow manifest name, accepted for compatibility.
	MLprojectName = "MLproject"
)

// Parse reads and parses a project manifest from the given path. Files named
// "MLproject" or carrying a YAML extension are parsed as legacy MLflow
// manifests; everything else is parsed as CUE.
func Parse(path string) (*Projectfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest at %s: %w", path, err)
	}

	if isMLprojectPath(path) {
		return ParseMLprojectBytes(data, path)
	}
	return ParseBytes(data, path)
}

// ParseBytes parses CUE manifest content from bytes.
// Uses cueutil.ParseAndDecodeString for the 3-step CUE parsing flow:
// compile schema → compile user data → validate and decode.
func ParseBytes(data []byte, path string) (*Projectfile, error) {
	result, err := cueutil.ParseAndDecodeString[Projectfile](
		projectfileSchema,
		data,
		"#Projectfile",
		cueutil.WithFilename(path),
	)
	if err != nil {
		return nil, err
	}

	pf := result.Value
	pf.FilePath = path

	if err := pf.Validate(); err != nil {
		return nil, err
	}

	return pf, nil
}

// Discover locates a manifest in dir: projectfile.cue first, then the legacy
// MLproject file. Returns the path, or an error when neither exists.
func Discover(dir string) (string, error) {
	for _, name := range []string{ProjectfileName, MLprojectName} {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no %s or %s found in %s", ProjectfileName, MLprojectName, dir)
}

// isMLprojectPath reports whether path names a legacy MLflow manifest.
func isMLprojectPath(path string) bool {
	base := filepath.Base(path)
	if base == MLprojectName {
		return true
	}
	switch strings.ToLower(filepath.Ext(base)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
