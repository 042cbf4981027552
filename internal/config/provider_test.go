// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"testing"
)

// Provider tests pass explicit LoadOptions instead of mutating the
// package-level overrides, so they are safe to run in parallel.

func TestProviderLoadWithConfigDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfigFile(t, dir, `
override_policy: "permissive"
run: unique_param: "run_id"
`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OverridePolicy != PolicyPermissive {
		t.Errorf("OverridePolicy = %q, want %q", cfg.OverridePolicy, PolicyPermissive)
	}
	if cfg.Run.UniqueParam != "run_id" {
		t.Errorf("Run.UniqueParam = %q, want %q", cfg.Run.UniqueParam, "run_id")
	}
}

func TestProviderLoadEmptyDirUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OverridePolicy != PolicyStrict {
		t.Errorf("OverridePolicy = %q, want default %q", cfg.OverridePolicy, PolicyStrict)
	}
	if cfg.Run.UniqueParam != "run_name" {
		t.Errorf("Run.UniqueParam = %q, want default %q", cfg.Run.UniqueParam, "run_name")
	}
}

func TestProviderLoadExplicitFileWinsOverDir(t *testing.T) {
	t.Parallel()

	dirWide := t.TempDir()
	writeConfigFile(t, dirWide, `override_policy: "strict"`)
	explicit := writeConfigFile(t, t.TempDir(), `override_policy: "permissive"`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{
		ConfigFilePath: explicit,
		ConfigDirPath:  dirWide,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OverridePolicy != PolicyPermissive {
		t.Errorf("OverridePolicy = %q, want the explicit file's %q", cfg.OverridePolicy, PolicyPermissive)
	}
}

func TestProviderLoadCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()}); err == nil {
		t.Error("Load() with canceled context = nil error, want error")
	}
}
