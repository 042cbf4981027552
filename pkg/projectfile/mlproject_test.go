// SPDX-License-Identifier: MPL-2.0

package projectfile

import (
	"testing"
)

const sampleMLproject = `name: torch-fastText

entry_points:
  main:
    parameters:
      remote_server_uri: {type: string, default: "https://user-meilametayebjee-mlflow.user.lab.sspcloud.fr"}
      experiment_name: {type: string, default: torch-fastText}
      run_name: {type: string, default: default}
    command: "python src/train.py {remote_server_uri} {experiment_name} {run_name}"
  fasttext:
    parameters:
      remote_server_uri: {type: string, default: "https://user-meilametayebjee-mlflow.user.lab.sspcloud.fr"}
      experiment_name: {type: string, default: fastText}
      run_name: {type: string, default: default}
    command: "python src/benchmark.py {remote_server_uri} {experiment_name} {run_name}"
`

func TestParseMLproject(t *testing.T) {
	t.Parallel()

	pf, err := ParseMLprojectBytes([]byte(sampleMLproject), "MLproject")
	if err != nil {
		t.Fatalf("ParseMLprojectBytes() error = %v", err)
	}

	if pf.Name != "torch-fastText" {
		t.Errorf("Name = %q, want %q", pf.Name, "torch-fastText")
	}
	if len(pf.EntryPoints) != 2 {
		t.Fatalf("Expected 2 entry points, got %d", len(pf.EntryPoints))
	}

	// Declaration order must survive YAML decoding.
	if pf.EntryPoints[0].Name != "main" || pf.EntryPoints[1].Name != "fasttext" {
		t.Errorf("entry point order = [%s %s], want [main fasttext]",
			pf.EntryPoints[0].Name, pf.EntryPoints[1].Name)
	}

	main := pf.EntryPoints[0]
	wantOrder := []string{"remote_server_uri", "experiment_name", "run_name"}
	if len(main.Parameters) != len(wantOrder) {
		t.Fatalf("Expected %d parameters, got %d", len(wantOrder), len(main.Parameters))
	}
	for i, want := range wantOrder {
		if main.Parameters[i].Name != want {
			t.Errorf("Parameters[%d].Name = %q, want %q", i, main.Parameters[i].Name, want)
		}
	}
	if got := main.Parameters[1].DefaultValue; got != "torch-fastText" {
		t.Errorf("experiment_name default = %q, want %q", got, "torch-fastText")
	}
	if got := main.Command; got != "python src/train.py {remote_server_uri} {experiment_name} {run_name}" {
		t.Errorf("Command = %q", got)
	}
}

func TestParseMLprojectParameterShapes(t *testing.T) {
	t.Parallel()

	content := `name: shapes
entry_points:
  train:
    parameters:
      data_file: path
      alpha: {type: float, default: 0.4}
      epochs: {type: int, default: 10}
      sparse: {type: bool, default: false}
      tracking_uri: uri
    command: "python train.py {data_file} {alpha} {epochs} {sparse} {tracking_uri}"
`
	pf, err := ParseMLprojectBytes([]byte(content), "MLproject")
	if err != nil {
		t.Fatalf("ParseMLprojectBytes() error = %v", err)
	}

	ep := pf.EntryPoints[0]
	tests := []struct {
		name        string
		wantType    ParameterType
		wantDefault string
	}{
		{"data_file", ParameterTypeString, ""},
		{"alpha", ParameterTypeFloat, "0.4"},
		{"epochs", ParameterTypeInt, "10"},
		{"sparse", ParameterTypeBool, "false"},
		{"tracking_uri", ParameterTypeString, ""},
	}

	for i, tt := range tests {
		p := ep.Parameters[i]
		if p.Name != tt.name {
			t.Errorf("Parameters[%d].Name = %q, want %q", i, p.Name, tt.name)
			continue
		}
		if p.GetType() != tt.wantType {
			t.Errorf("parameter %q type = %q, want %q", tt.name, p.GetType(), tt.wantType)
		}
		if p.DefaultValue != tt.wantDefault {
			t.Errorf("parameter %q default = %q, want %q", tt.name, p.DefaultValue, tt.wantDefault)
		}
	}
}

func TestParseMLprojectRejectsDefects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"empty document", ""},
		{"scalar top level", "just a string"},
		{"no entry points", "name: x"},
		{"unknown parameter type", "entry_points: {main: {parameters: {p: duration}, command: \"x {p}\"}}"},
		{"undeclared placeholder", "entry_points: {main: {command: \"python x.py {missing}\"}}"},
		{"missing command", "entry_points: {main: {parameters: {p: string}}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ParseMLprojectBytes([]byte(tt.content), "MLproject"); err == nil {
				t.Errorf("ParseMLprojectBytes(%q) = nil error, want error", tt.content)
			}
		})
	}
}

func TestParseDispatchesMLprojectByName(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "MLproject", sampleMLproject)
	pf, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse(MLproject) error = %v", err)
	}
	if pf.GetEntryPoint("fasttext") == nil {
		t.Error("expected fasttext entry point from YAML manifest")
	}
}
