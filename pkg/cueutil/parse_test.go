// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Job: {
	name:     string
	retries?: int & >=0
	queue:    "cpu" | "gpu"
}
`

type testJob struct {
	Name    string `json:"name"`
	Retries int    `json:"retries"`
	Queue   string `json:"queue"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	data := []byte(`
name:    "train"
retries: 3
queue:   "gpu"
`)

	result, err := ParseAndDecodeString[testJob](testSchema, data, "#Job")
	if err != nil {
		t.Fatalf("ParseAndDecodeString() error = %v", err)
	}

	job := result.Value
	if job.Name != "train" || job.Retries != 3 || job.Queue != "gpu" {
		t.Errorf("decoded job = %+v", job)
	}
	if !result.Unified.Exists() {
		t.Error("Unified value should exist after a successful parse")
	}
}

func TestParseAndDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"syntax error", `name: "train`},
		{"wrong type", `{name: "train", queue: "gpu", retries: "three"}`},
		{"constraint violation", `{name: "train", queue: "tpu"}`},
		{"missing required field", `{name: "train"}`},
		{"negative retries", `{name: "train", queue: "cpu", retries: -1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseAndDecodeString[testJob](testSchema, []byte(tt.data), "#Job")
			if err == nil {
				t.Errorf("ParseAndDecodeString(%q) = nil error, want error", tt.data)
			}
		})
	}
}

func TestParseAndDecodeWithoutConcrete(t *testing.T) {
	t.Parallel()

	// queue is missing but incompleteness is allowed without concreteness.
	data := []byte(`name: "train"`)

	if _, err := ParseAndDecodeString[testJob](testSchema, data, "#Job", WithoutConcrete()); err != nil {
		t.Fatalf("ParseAndDecodeString(WithoutConcrete) error = %v", err)
	}
}

func TestParseAndDecodeFilenameInErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseAndDecodeString[testJob](testSchema, []byte(`name: 42`), "#Job",
		WithFilename("jobs/train.cue"))
	if err == nil {
		t.Fatal("expected error for mistyped field")
	}
	if !strings.Contains(err.Error(), "jobs/train.cue") {
		t.Errorf("error %q does not name the input file", err.Error())
	}
}

func TestParseAndDecodeSizeLimit(t *testing.T) {
	t.Parallel()

	data := []byte(`name: "train", queue: "cpu"`)
	_, err := ParseAndDecodeString[testJob](testSchema, data, "#Job", WithMaxFileSize(4))
	if err == nil {
		t.Fatal("expected size-limit error")
	}
	if !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("error %q is not a size-limit error", err.Error())
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 10), 10, "f.cue"); err != nil {
		t.Errorf("CheckFileSize(at limit) error = %v", err)
	}
	if err := CheckFileSize(make([]byte, 11), 10, "f.cue"); err == nil {
		t.Error("CheckFileSize(over limit) = nil error, want error")
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"name"}, "name"},
		{[]string{"entry_points", "0", "command"}, "entry_points[0].command"},
		{[]string{"entry_points", "2", "parameters", "1", "type"}, "entry_points[2].parameters[1].type"},
		{[]string{"run", "unique_param"}, "run.unique_param"},
	}

	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
