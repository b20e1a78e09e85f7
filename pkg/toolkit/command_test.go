// SPDX-License-Identifier: MPL-2.0

package toolkit

import (
	"errors"
	"testing"
)

func TestCommandValidate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		wantErr bool
	}{
		{
			name: "valid top-level command",
			cmd:  Command{Name: "config", CommandPath: []string{"config"}},
		},
		{
			name: "valid nested command",
			cmd:  Command{Name: "add", CommandPath: []string{"remote", "add"}},
		},
		{
			name: "final segment may be an alias",
			cmd:  Command{Name: "add", CommandPath: []string{"remote", "a"}, Aliases: []string{"a"}},
		},
		{
			name:    "empty name",
			cmd:     Command{CommandPath: []string{"x"}},
			wantErr: true,
		},
		{
			name:    "empty path",
			cmd:     Command{Name: "x"},
			wantErr: true,
		},
		{
			name:    "blank path segment",
			cmd:     Command{Name: "x", CommandPath: []string{"", "x"}},
			wantErr: true,
		},
		{
			name:    "final segment unrelated to name and aliases",
			cmd:     Command{Name: "add", CommandPath: []string{"remote", "other"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidCommand) {
				t.Errorf("expected ErrInvalidCommand, got: %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCommandMatchesToken(t *testing.T) {
	cmd := &Command{Name: "config", CommandPath: []string{"config"}, Aliases: []string{"cfg"}}

	if !cmd.MatchesToken("config") {
		t.Error("expected the canonical name to match")
	}
	if !cmd.MatchesToken("cfg") {
		t.Error("expected the alias to match")
	}
	if cmd.MatchesToken("conf") {
		t.Error("partial names must not match")
	}
}

func TestPluginValidateRejectsBadCommands(t *testing.T) {
	p := &Plugin{
		Name: "args",
		Commands: []*Command{
			{Name: "ok", CommandPath: []string{"ok"}},
			{Name: "bad", CommandPath: nil},
		},
	}
	if err := p.Validate(); !errors.Is(err, ErrInvalidCommand) {
		t.Errorf("expected the command error to surface, got: %v", err)
	}
}

func TestPluginVisibleCommands(t *testing.T) {
	p := &Plugin{
		Name: "args",
		Commands: []*Command{
			{Name: "shown", CommandPath: []string{"shown"}},
			{Name: "secret", CommandPath: []string{"secret"}, Hidden: true},
		},
	}

	visible := p.VisibleCommands()
	if len(visible) != 1 || visible[0].Name != "shown" {
		t.Errorf("expected only the visible command, got %v", visible)
	}
}
