// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mlproj-cli/internal/launcher"
	"mlproj-cli/internal/resolver"
	"mlproj-cli/pkg/projectfile"
)

var (
	runParamFlags []string
	runParamsFile string
	runPolicy     string
	runDryRun     bool
	runUnique     bool
	runDir        string
)

var runCmd = &cobra.Command{
	Use:   "run <entry-point>",
	Short: "Resolve an entry point and launch it",
	Long: `Resolve an entry point against the project manifest and launch the
resulting command as a subprocess.

The effective value of each declared parameter is the override when supplied
(via -P or --params-file), else the declared default. The subprocess exit
code is passed through unchanged.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeEntryPoints,
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := resolveRequest(args[0])
		if err != nil {
			return err
		}

		if runDryRun {
			fmt.Fprintln(cmd.OutOrStdout(), inv.CommandLine)
			return nil
		}

		l := launcher.New()
		l.Dir = runDir
		if !verbose {
			l.Logger = nil
		}

		result := l.Launch(cmd.Context(), inv)
		if result.Error != nil {
			return &ExitError{Code: 1, Err: result.Error}
		}
		if result.ExitCode != 0 {
			return &ExitError{Code: result.ExitCode}
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringArrayVarP(&runParamFlags, "param", "P", nil, "parameter override as name=value (repeatable)")
	runCmd.Flags().StringVar(&runParamsFile, "params-file", "", "TOML file with parameter overrides (-P wins on conflict)")
	runCmd.Flags().StringVar(&runPolicy, "policy", "", "undeclared-key policy: strict or permissive (default from config)")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "print the resolved command line without executing")
	runCmd.Flags().BoolVar(&runUnique, "unique", false, "suffix the configured run parameter with a unique id")
	runCmd.Flags().StringVar(&runDir, "dir", "", "working directory for the subprocess")
}

// resolveRequest loads the manifest, gathers overrides from every source,
// and resolves the named entry point. Shared by run and resolve.
func resolveRequest(entryPoint string) (*resolver.Invocation, error) {
	pf, err := loadManifest()
	if err != nil {
		return nil, err
	}

	fromFlags, err := parseParamFlags(runParamFlags)
	if err != nil {
		return nil, err
	}

	var fromFile map[string]string
	if runParamsFile != "" {
		if fromFile, err = loadParamsFile(runParamsFile); err != nil {
			return nil, err
		}
	}
	overrides := mergeOverrides(fromFile, fromFlags)

	if runUnique {
		applyUniqueParam(pf, entryPoint, overrides)
	}

	inv, err := resolver.Resolve(pf, resolver.Request{
		EntryPoint: entryPoint,
		Overrides:  overrides,
		Policy:     effectivePolicy(),
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// effectivePolicy picks the override policy: --policy flag over config.
// Invalid flag values are rejected by the resolver.
func effectivePolicy() resolver.OverridePolicy {
	if runPolicy != "" {
		return resolver.OverridePolicy(runPolicy)
	}
	return resolver.OverridePolicy(loadedCfg.OverridePolicy)
}

// applyUniqueParam rewrites the configured run parameter (default "run_name")
// with a uuid-suffixed value. The suffix applies to the override when one was
// supplied, else to the declared default. Resolution itself stays
// deterministic; uniqueness is an explicit pre-resolution rewrite.
func applyUniqueParam(pf *projectfile.Projectfile, entryPoint string, overrides map[string]string) {
	ep := pf.GetEntryPoint(entryPoint)
	if ep == nil {
		return // resolution reports the unknown entry point
	}
	name := loadedCfg.Run.UniqueParam
	spec := ep.GetParameter(name)
	if spec == nil {
		return // nothing to rewrite; strict resolution rejects stray overrides
	}

	base, ok := overrides[name]
	if !ok {
		base = spec.DefaultValue
	}
	overrides[name] = base + "-" + uuid.NewString()[:8]
}
