// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"gearbox-cli/internal/config"
	"gearbox-cli/internal/discovery"
	"gearbox-cli/internal/issue"
	"gearbox-cli/internal/testutil"

	"github.com/spf13/cobra"
)

// isolate points HOME and the config directory at temp dirs so tests never
// touch the real user environment.
func isolate(t *testing.T) {
	t.Helper()
	t.Cleanup(testutil.SetHomeDir(t, t.TempDir()))
	config.SetConfigDirOverride(t.TempDir())
	t.Cleanup(config.Reset)
}

func TestInitScaffoldsALoadablePlugin(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	initCmd.SetOut(&out)
	if err := initCmd.RunE(initCmd, nil); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	pluginsDir, err := config.PluginsDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dir := filepath.Join(pluginsDir, samplePluginName)
	if !discovery.IsPlugin(dir) {
		t.Fatalf("expected a plugin manifest under %s", dir)
	}

	cfg, err := loadConfig(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rt, err := buildRuntime(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := rt.Plugin(samplePluginName)
	if p == nil {
		t.Fatal("scaffolded plugin was not discovered")
	}
	if p.DefaultCommand() == nil {
		t.Error("scaffolded plugin should have a default command")
	}
	if p.CommandAtPath([]string{"wave"}) == nil {
		t.Error("scaffolded plugin should have the 'wave' command")
	}
}

func TestInitIsIdempotent(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	initCmd.SetOut(&out)
	if err := initCmd.RunE(initCmd, nil); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := initCmd.RunE(initCmd, nil); err != nil {
		t.Fatalf("second init should not fail: %v", err)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Error("second init should report the existing plugin")
	}
}

func TestDispatchNoMatchIsSoft(t *testing.T) {
	isolate(t)

	probe := &cobra.Command{Use: "probe"}
	probe.SetContext(context.Background())
	var stderr bytes.Buffer
	probe.SetErr(&stderr)

	if err := dispatch(probe, []string{"no-such-plugin", "no-such-command"}); err != nil {
		t.Fatalf("a no-match dispatch must not return an error, got: %v", err)
	}
	if !strings.Contains(stderr.String(), "No command matched") {
		t.Errorf("expected a no-match report, got:\n%s", stderr.String())
	}
}

func TestGetVersionString(t *testing.T) {
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("dev version string = %q", got)
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	ae := issue.NewErrorContext().
		WithOperation("load plugin").
		WithSuggestion("Check the manifest").
		Wrap(errors.New("boom")).
		Build()

	got := formatErrorForDisplay(ae, false)
	if !strings.Contains(got, "failed to load plugin") || !strings.Contains(got, "Check the manifest") {
		t.Errorf("unexpected rendering: %q", got)
	}

	plain := formatErrorForDisplay(errors.New("plain"), false)
	if plain != "plain" {
		t.Errorf("plain errors should pass through, got %q", plain)
	}
}
