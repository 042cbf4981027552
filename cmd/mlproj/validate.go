// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mlproj-cli/pkg/projectfile"
)

var validateCmd = &cobra.Command{
	Use:   "validate [manifest]",
	Short: "Validate a project manifest",
	Long: `Validate a project manifest without resolving or running anything.

Checks schema conformance, entry-point and parameter name uniqueness,
default-value type coercion, and that every {placeholder} in a command
template names a declared parameter.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		var err error
		if len(args) == 1 {
			path = args[0]
		} else if path, err = resolveManifestPath(); err != nil {
			return err
		}

		pf, err := projectfile.Parse(path)
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), ErrorStyle.Render("✗ ")+formatErrorForDisplay(err, verbose))
			// Report already printed; a wrapped cause would be re-emitted
			// by the error handler on exit.
			return &ExitError{Code: 1}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s%s is valid (%d entry points)\n",
			SuccessStyle.Render("✓ "), path, len(pf.EntryPoints))
		return nil
	},
}
