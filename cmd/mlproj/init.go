// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mlproj-cli/internal/issue"
	"mlproj-cli/pkg/projectfile"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Create a starter projectfile.cue",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		path := filepath.Join(dir, projectfile.ProjectfileName)
		if _, err := os.Stat(path); err == nil && !initForce {
			return issue.NewErrorContext().
				WithOperation("create project manifest").
				WithResource(path).
				WithSuggestion("Use --force to overwrite the existing file").
				Wrap(fmt.Errorf("file already exists")).
				BuildError()
		}

		content := projectfile.GenerateCUE(projectfile.DefaultProjectfile())
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return issue.WrapWithOperation(err, "write project manifest")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%screated %s\n", SuccessStyle.Render("✓ "), path)
		fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("Edit the entry points, then try: ")+CmdStyle.Render("mlproj run main --dry-run"))
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing projectfile.cue")
}
