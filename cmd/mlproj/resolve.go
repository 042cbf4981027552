// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <entry-point>",
	Short: "Print the resolved command line without executing it",
	Long: `Resolve an entry point against the project manifest and print the
fully-substituted command line.

Resolution is pure: the same entry point and overrides always produce the
identical command line. Exits 0 on successful resolution, nonzero when the
entry point is unknown, an override key is undeclared (strict policy), or an
override value fails type coercion.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeEntryPoints,
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := resolveRequest(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), inv.CommandLine)
		return nil
	},
}

func init() {
	// resolve shares the run command's override inputs; the flag variables
	// are package-level so both commands read the same state.
	resolveCmd.Flags().StringArrayVarP(&runParamFlags, "param", "P", nil, "parameter override as name=value (repeatable)")
	resolveCmd.Flags().StringVar(&runParamsFile, "params-file", "", "TOML file with parameter overrides (-P wins on conflict)")
	resolveCmd.Flags().StringVar(&runPolicy, "policy", "", "undeclared-key policy: strict or permissive (default from config)")
}

// completeEntryPoints provides shell completion for entry-point names.
func completeEntryPoints(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	pf, err := loadManifest()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return pf.ListEntryPoints(), cobra.ShellCompDirectiveNoFileComp
}
