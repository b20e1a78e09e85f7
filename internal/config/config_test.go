// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gearbox-cli/internal/issue"
	"gearbox-cli/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.PluginDirs) != 0 {
		t.Errorf("expected default plugin dirs to be empty, got %v", cfg.PluginDirs)
	}

	if len(cfg.Plugins) != 0 {
		t.Errorf("expected default plugin overrides to be empty, got %v", cfg.Plugins)
	}

	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("expected default color scheme to be auto, got %s", cfg.UI.ColorScheme)
	}

	if cfg.UI.Verbose {
		t.Error("expected default verbose to be false")
	}
}

func TestLoadWithoutConfigFile(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("load without config file should succeed, got: %v", err)
	}
	if path != "" {
		t.Errorf("expected no resolved path, got %q", path)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("expected defaults, got color scheme %s", cfg.UI.ColorScheme)
	}
}

func TestLoadFromConfigDir(t *testing.T) {
	cfgDir := t.TempDir()
	SetConfigDirOverride(cfgDir)
	t.Cleanup(Reset)

	content := `
plugin_dirs: ["/opt/gearbox/plugins"]

plugins: {
	remote: {color: "red"}
}

ui: {
	color_scheme: "dark"
	verbose: true
}
`
	cfgPath := filepath.Join(cfgDir, "config.cue")
	testutil.MustWriteFile(t, cfgPath, []byte(content))

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != cfgPath {
		t.Errorf("resolved path = %q, want %q", path, cfgPath)
	}
	if len(cfg.PluginDirs) != 1 || cfg.PluginDirs[0] != "/opt/gearbox/plugins" {
		t.Errorf("unexpected plugin dirs: %v", cfg.PluginDirs)
	}
	if cfg.UI.ColorScheme != ColorSchemeDark || !cfg.UI.Verbose {
		t.Errorf("unexpected UI config: %+v", cfg.UI)
	}

	overrides := cfg.RuntimeDefaults()
	if overrides["remote"]["color"] != "red" {
		t.Errorf("unexpected plugin overrides: %v", overrides)
	}
}

func TestLoadExplicitFilePath(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "custom.cue")
	testutil.MustWriteFile(t, cfgPath, []byte(`ui: {verbose: true}`))

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigFilePath: cfgPath})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != cfgPath {
		t.Errorf("resolved path = %q, want %q", path, cfgPath)
	}
	if !cfg.UI.Verbose {
		t.Error("expected verbose from the explicit config file")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, _, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigFilePath: filepath.Join(t.TempDir(), "missing.cue"),
	})
	if err == nil {
		t.Fatal("expected an error for a missing explicit config file")
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("expected an ActionableError, got %T", err)
	}
	if !ae.HasSuggestions() {
		t.Error("expected fix suggestions on the error")
	}
}

func TestLoadRejectsInvalidColorScheme(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.cue")
	testutil.MustWriteFile(t, cfgPath, []byte(`ui: {color_scheme: "sepia"}`))

	_, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigFilePath: cfgPath})
	if err == nil {
		t.Fatal("expected an error for an invalid color scheme")
	}
	if !strings.Contains(err.Error(), "color_scheme") {
		t.Errorf("expected the field name in the error, got: %v", err)
	}
}

func TestLoadCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := loadWithOptions(ctx, LoadOptions{}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestGenerateCUERoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PluginDirs = []PluginDirPath{"/opt/gearbox/plugins"}
	cfg.Plugins = map[string]map[string]any{
		"remote": {"color": "red"},
	}
	cfg.UI.Verbose = true

	cfgPath := filepath.Join(t.TempDir(), "config.cue")
	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(cfg)), 0o644); err != nil {
		t.Fatalf("failed to write generated config: %v", err)
	}

	loaded, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigFilePath: cfgPath})
	if err != nil {
		t.Fatalf("generated config should load back: %v", err)
	}
	if len(loaded.PluginDirs) != 1 || loaded.PluginDirs[0] != cfg.PluginDirs[0] {
		t.Errorf("plugin dirs did not round-trip: %v", loaded.PluginDirs)
	}
	if !loaded.UI.Verbose {
		t.Error("verbose did not round-trip")
	}
	if loaded.Plugins["remote"]["color"] != "red" {
		t.Errorf("plugin overrides did not round-trip: %v", loaded.Plugins)
	}
}

func TestConfigIsValid(t *testing.T) {
	cfg := Config{
		PluginDirs: []PluginDirPath{"   "},
		UI:         UIConfig{ColorScheme: "sepia"},
	}

	valid, errs := cfg.IsValid()
	if valid {
		t.Fatal("expected validation to fail")
	}
	if !errors.Is(errs[0], ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", errs[0])
	}

	var ce *InvalidConfigError
	if !errors.As(errs[0], &ce) {
		t.Fatalf("expected *InvalidConfigError, got %T", errs[0])
	}
	if len(ce.FieldErrors) != 2 {
		t.Errorf("expected 2 field errors, got %d: %v", len(ce.FieldErrors), ce.FieldErrors)
	}
}
