// SPDX-License-Identifier: MPL-2.0

package projectfile

import (
	"fmt"
	"strings"
)

// GenerateCUE generates CUE text from a Projectfile struct.
// This is used by 'mlproj init' to scaffold projectfile.cue files.
func GenerateCUE(pf *Projectfile) string {
	var sb strings.Builder

	sb.WriteString("// Projectfile - entry-point definitions for mlproj\n\n")

	if pf.Name != "" {
		fmt.Fprintf(&sb, "name: %q\n", pf.Name)
	}
	if pf.Description != "" {
		fmt.Fprintf(&sb, "description: %q\n", pf.Description)
	}

	sb.WriteString("\nentry_points: [\n")
	for i := range pf.EntryPoints {
		generateEntryPoint(&sb, &pf.EntryPoints[i])
	}
	sb.WriteString("]\n")

	return sb.String()
}

func generateEntryPoint(sb *strings.Builder, ep *EntryPoint) {
	sb.WriteString("\t{\n")
	fmt.Fprintf(sb, "\t\tname: %q\n", ep.Name)
	if ep.Description != "" {
		fmt.Fprintf(sb, "\t\tdescription: %q\n", ep.Description)
	}

	if len(ep.Parameters) > 0 {
		sb.WriteString("\t\tparameters: [\n")
		for _, p := range ep.Parameters {
			sb.WriteString("\t\t\t{")
			fmt.Fprintf(sb, "name: %q", p.Name)
			if p.Type != "" && p.Type != ParameterTypeString {
				fmt.Fprintf(sb, ", type: %q", p.Type)
			}
			if p.DefaultValue != "" {
				fmt.Fprintf(sb, ", default_value: %q", p.DefaultValue)
			}
			if p.Description != "" {
				fmt.Fprintf(sb, ", description: %q", p.Description)
			}
			sb.WriteString("},\n")
		}
		sb.WriteString("\t\t]\n")
	}

	fmt.Fprintf(sb, "\t\tcommand: %q\n", ep.Command)
	sb.WriteString("\t},\n")
}

// DefaultProjectfile returns the starter manifest scaffolded by 'mlproj init':
// a training and a benchmarking entry point reporting to a remote
// experiment-tracking server.
func DefaultProjectfile() *Projectfile {
	return &Projectfile{
		Name: "torch-fastText",
		EntryPoints: []EntryPoint{
			{
				Name:        "main",
				Description: "Train the torch-fastText classifier",
				Parameters: []ParameterSpec{
					{Name: "remote_server_uri", DefaultValue: "https://user-meilametayebjee-mlflow.user.lab.sspcloud.fr"},
					{Name: "experiment_name", DefaultValue: "torch-fastText"},
					{Name: "run_name", DefaultValue: "default"},
				},
				Command: "python src/train.py {remote_server_uri} {experiment_name} {run_name}",
			},
			{
				Name:        "fasttext",
				Description: "Benchmark against the reference fastText implementation",
				Parameters: []ParameterSpec{
					{Name: "remote_server_uri", DefaultValue: "https://user-meilametayebjee-mlflow.user.lab.sspcloud.fr"},
					{Name: "experiment_name", DefaultValue: "fastText"},
					{Name: "run_name", DefaultValue: "default"},
				},
				Command: "python src/benchmark.py {remote_server_uri} {experiment_name} {run_name}",
			},
		},
	}
}
