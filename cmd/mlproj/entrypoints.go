// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"mlproj-cli/pkg/projectfile"
)

var entrypointsDescribe bool

var entrypointsCmd = &cobra.Command{
	Use:   "entrypoints",
	Short: "List the entry points declared in the project manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		pf, err := loadManifest()
		if err != nil {
			return err
		}

		if entrypointsDescribe {
			return describeEntryPoints(cmd, pf)
		}

		for _, ep := range pf.EntryPoints {
			line := CmdStyle.Render(ep.Name)
			if ep.Description != "" {
				line += "  " + SubtitleStyle.Render(ep.Description)
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func init() {
	entrypointsCmd.Flags().BoolVar(&entrypointsDescribe, "describe", false, "show parameters, defaults, and command templates")
}

// describeEntryPoints renders a markdown summary of the manifest through
// glamour. Falls back to the raw markdown when no renderer is available
// (e.g., a dumb terminal).
func describeEntryPoints(cmd *cobra.Command, pf *projectfile.Projectfile) error {
	md := entryPointsMarkdown(pf)

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	out, err := renderer.Render(md)
	if err != nil {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// entryPointsMarkdown builds the markdown document rendered by --describe.
func entryPointsMarkdown(pf *projectfile.Projectfile) string {
	var sb strings.Builder

	title := pf.Name
	if title == "" {
		title = pf.FilePath
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)
	if pf.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", pf.Description)
	}

	for i := range pf.EntryPoints {
		ep := &pf.EntryPoints[i]
		fmt.Fprintf(&sb, "## %s\n\n", ep.Name)
		if ep.Description != "" {
			fmt.Fprintf(&sb, "%s\n\n", ep.Description)
		}
		fmt.Fprintf(&sb, "```\n%s\n```\n\n", ep.Command)

		if len(ep.Parameters) > 0 {
			sb.WriteString("| parameter | type | default |\n")
			sb.WriteString("|---|---|---|\n")
			for _, p := range ep.Parameters {
				fmt.Fprintf(&sb, "| %s | %s | %s |\n", p.Name, p.GetType(), p.DefaultValue)
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
