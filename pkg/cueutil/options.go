// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize is the maximum accepted size for user-provided CUE
// files. Manifests and configs are small; anything beyond this is either a
// mistake or an attempt to exhaust memory.
const DefaultMaxFileSize int64 = 1 << 20 // 1 MiB

// Option configures a parse operation.
type Option func(*options)

type options struct {
	filename    string
	maxFileSize int64
	concrete    bool
}

func defaultOptions() options {
	return options{
		maxFileSize: DefaultMaxFileSize,
		concrete:    true,
	}
}

// WithFilename sets the filename used in error messages.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// WithMaxFileSize overrides the maximum accepted file size in bytes.
func WithMaxFileSize(size int64) Option {
	return func(o *options) {
		o.maxFileSize = size
	}
}

// WithoutConcrete disables the concreteness requirement during validation.
// Use for schemas where fields are optional (e.g., the app config).
func WithoutConcrete() Option {
	return func(o *options) {
		o.concrete = false
	}
}
