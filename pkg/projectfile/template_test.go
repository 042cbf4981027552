// SPDX-License-Identifier: MPL-2.0

package projectfile

import (
	"reflect"
	"testing"
)

func TestPlaceholders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		want     []string
	}{
		{
			name:     "positional template",
			template: "python src/train.py {remote_server_uri} {experiment_name} {run_name}",
			want:     []string{"remote_server_uri", "experiment_name", "run_name"},
		},
		{
			name:     "no placeholders",
			template: "python src/train.py",
			want:     nil,
		},
		{
			name:     "embedded in a field",
			template: "python train.py --lr={lr} --epochs={epochs}",
			want:     []string{"lr", "epochs"},
		},
		{
			name:     "repeated placeholder reported once",
			template: "echo {msg} {msg}",
			want:     []string{"msg"},
		},
		{
			name:     "literal braces are not placeholders",
			template: "awk '{print $1}' {input}",
			want:     []string{"input"},
		},
		{
			name:     "unterminated brace",
			template: "echo {oops",
			want:     nil,
		},
		{
			name:     "empty braces",
			template: "echo {}",
			want:     nil,
		},
		{
			name:     "hyphens and digits allowed after first letter",
			template: "run {max-n2}",
			want:     []string{"max-n2"},
		},
		{
			name:     "name must start with a letter",
			template: "run {1st}",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Placeholders(tt.template)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Placeholders(%q) = %v, want %v", tt.template, got, tt.want)
			}
		})
	}
}
