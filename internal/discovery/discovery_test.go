// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"gearbox-cli/internal/issue"
	"gearbox-cli/internal/params"
	"gearbox-cli/internal/testutil"
	"gearbox-cli/pkg/toolkit"

	"github.com/charmbracelet/log"
)

func testLoader() *Loader {
	l := NewLoader(log.New(io.Discard))
	l.Stdout = &bytes.Buffer{}
	l.Stderr = &bytes.Buffer{}
	return l
}

func writePlugin(t *testing.T, root, dirName, manifestName, content string) string {
	t.Helper()
	dir := filepath.Join(root, dirName)
	testutil.MustWriteFile(t, filepath.Join(dir, manifestName), []byte(content))
	return dir
}

const remoteManifest = `
name: "remote"
description: "Manage remotes"
default: true
defaults: {color: "blue"}

commands: [
	{name: "remote", script: "echo top"},
	{name: "add", aliases: ["a"], script: "echo add"},
	{name: "list"},
]
`

func TestLoadFromDirectoryCUE(t *testing.T) {
	dir := writePlugin(t, t.TempDir(), "remote", ManifestFileCUE, remoteManifest)

	p, err := testLoader().LoadFromDirectory(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Name != "remote" || p.Description != "Manage remotes" {
		t.Errorf("unexpected identity: %q %q", p.Name, p.Description)
	}
	if !p.Default {
		t.Error("expected the default flag to carry through")
	}
	if p.Dir != dir {
		t.Errorf("Dir = %q, want %q", p.Dir, dir)
	}
	if p.Defaults["color"] != "blue" {
		t.Errorf("unexpected defaults: %v", p.Defaults)
	}

	def := p.DefaultCommand()
	if def == nil || def.Name != "remote" {
		t.Fatalf("expected the command named after the plugin to be the default, got %+v", def)
	}

	add := p.CommandAtPath([]string{"add"})
	if add == nil {
		t.Fatal("expected the 'add' command at path [add]")
	}
	if !slices.Equal(add.Aliases, []string{"a"}) {
		t.Errorf("aliases did not carry through: %v", add.Aliases)
	}
	if add.Run == nil {
		t.Error("script command should have a run function")
	}

	list := p.CommandAtPath([]string{"list"})
	if list == nil {
		t.Fatal("expected the 'list' command at path [list]")
	}
	if list.Run != nil {
		t.Error("scriptless command should have a nil run function")
	}
}

func TestLoadFromDirectoryTOML(t *testing.T) {
	manifest := `
name = "tools"
description = "Developer tools"

[defaults]
indent = 4

[[commands]]
name = "tools"
script = "echo hi"

[[commands]]
name = "fmt"
aliases = ["f"]
script = "echo fmt"
`
	dir := writePlugin(t, t.TempDir(), "tools", ManifestFileTOML, manifest)

	p, err := testLoader().LoadFromDirectory(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "tools" {
		t.Errorf("unexpected name %q", p.Name)
	}
	if p.Defaults["indent"] != int64(4) {
		t.Errorf("unexpected defaults: %#v", p.Defaults)
	}
	if p.DefaultCommand() == nil {
		t.Error("expected a default command")
	}
	if p.CommandAtPath([]string{"fmt"}) == nil {
		t.Error("expected the 'fmt' command")
	}
}

func TestLoadFromDirectoryPrefersCUE(t *testing.T) {
	root := t.TempDir()
	dir := writePlugin(t, root, "both", ManifestFileCUE, `name: "cue-wins"`)
	testutil.MustWriteFile(t, filepath.Join(dir, ManifestFileTOML), []byte(`name = "toml"`))

	p, err := testLoader().LoadFromDirectory(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "cue-wins" {
		t.Errorf("expected the CUE manifest to win, got %q", p.Name)
	}
}

func TestLoadFromDirectoryRejectsInvalidManifest(t *testing.T) {
	dir := writePlugin(t, t.TempDir(), "broken", ManifestFileCUE, `name: ""`)

	_, err := testLoader().LoadFromDirectory(dir)
	if err == nil {
		t.Fatal("expected an error for an empty plugin name")
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("expected an ActionableError, got %T", err)
	}
}

func TestLoadFromDirectoryWithoutManifest(t *testing.T) {
	dir := t.TempDir()

	if IsPlugin(dir) {
		t.Error("a bare directory is not a plugin")
	}
	if _, err := testLoader().LoadFromDirectory(dir); err == nil {
		t.Fatal("expected an error for a directory without a manifest")
	}
}

func TestLoadAllFromDirectory(t *testing.T) {
	root := t.TempDir()
	writePlugin(t, root, "bravo", ManifestFileCUE, `name: "bravo"`)
	writePlugin(t, root, "alpha", ManifestFileCUE, `name: "alpha"`)
	writePlugin(t, root, "broken", ManifestFileCUE, `name: 42`)
	testutil.MustMkdirAll(t, filepath.Join(root, "not-a-plugin"), 0o755)

	plugins, err := testLoader().LoadAllFromDirectory(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	for _, p := range plugins {
		names = append(names, p.Name)
	}
	if !slices.Equal(names, []string{"alpha", "bravo"}) {
		t.Errorf("expected [alpha bravo] in lexical order, got %v", names)
	}
}

func TestLoadAllFromMissingDirectory(t *testing.T) {
	plugins, err := testLoader().LoadAllFromDirectory(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("a missing plugin root is not an error, got: %v", err)
	}
	if plugins != nil {
		t.Errorf("expected no plugins, got %v", plugins)
	}
}

func TestManifestCommandPath(t *testing.T) {
	tests := []struct {
		name string
		cmd  ManifestCommand
		want []string
	}{
		{"explicit path", ManifestCommand{Name: "add", Path: []string{"remote", "add"}}, []string{"remote", "add"}},
		{"defaults to name", ManifestCommand{Name: "list"}, []string{"list"}},
		{"plugin-named command", ManifestCommand{Name: "remote"}, []string{"remote"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.commandPath("remote"); !slices.Equal(got, tt.want) {
				t.Errorf("commandPath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScriptCommandEnvironmentAndArgs(t *testing.T) {
	manifest := `
name: "remote"
defaults: {color: "blue"}

commands: [
	{
		name: "greet"
		script: "echo \"c=$GEARBOX_CFG_COLOR f=$GEARBOX_OPT_FORCE a=$1\""
	},
]
`
	loader := testLoader()
	dir := writePlugin(t, t.TempDir(), "remote", ManifestFileCUE, manifest)

	p, err := loader.LoadFromDirectory(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rt := toolkit.New("gear", toolkit.WithNormalizer(params.New()))
	if err := rt.AddPlugin(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rc, err := rt.Run(context.Background(), []string{"remote", "greet", "world", "--force"}, nil)
	if err != nil {
		t.Fatalf("unexpected dispatch error: %v", err)
	}
	if !rc.Matched() {
		t.Fatal("expected the invocation to match")
	}

	out := loader.Stdout.(*bytes.Buffer).String()
	if !strings.Contains(out, "c=blue f=true a=world") {
		t.Errorf("script did not observe config/options/args, output: %q", out)
	}
}

func TestScriptCommandExitStatus(t *testing.T) {
	manifest := `
name: "remote"

commands: [
	{name: "fail", script: "exit 3"},
]
`
	loader := testLoader()
	dir := writePlugin(t, t.TempDir(), "remote", ManifestFileCUE, manifest)

	p, err := loader.LoadFromDirectory(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rt := toolkit.New("gear")
	if err := rt.AddPlugin(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = rt.Run(context.Background(), []string{"remote", "fail"}, nil)
	var exitErr *ScriptExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected a ScriptExitError, got %v", err)
	}
	if exitErr.Code != 3 {
		t.Errorf("exit code = %d, want 3", exitErr.Code)
	}
}
