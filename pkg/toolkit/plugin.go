// SPDX-License-Identifier: MPL-2.0

package toolkit

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidPlugin is the sentinel error wrapped by InvalidPluginError.
var ErrInvalidPlugin = errors.New("invalid plugin")

type (
	// Plugin is a named bundle of related commands plus default
	// configuration. A plugin's name is unique within a Runtime.
	Plugin struct {
		// Name identifies the plugin and forms the root segment of every
		// command path it owns.
		Name string
		// Description provides help text for listings.
		Description string
		// Defaults is the plugin's bundled configuration. It forms the base
		// layer of the effective configuration; runtime-level overrides win
		// key-by-key.
		Defaults map[string]any
		// Commands are the plugin's invocable units, in registration order.
		// Registration order is the tie-break order during resolution.
		Commands []*Command
		// Default marks this plugin as the runtime's default plugin,
		// targeted when no token names another plugin.
		Default bool
		// Dir is the source directory when the plugin was loaded from disk;
		// empty for programmatically built plugins.
		Dir string
	}

	// InvalidPluginError is returned when a Plugin fails Validate.
	InvalidPluginError struct {
		Plugin *Plugin
		Reason string
	}
)

// Error implements the error interface.
func (e *InvalidPluginError) Error() string {
	name := "<unnamed>"
	if e.Plugin != nil && e.Plugin.Name != "" {
		name = e.Plugin.Name
	}
	return fmt.Sprintf("invalid plugin %q: %s", name, e.Reason)
}

// Unwrap returns ErrInvalidPlugin so callers can use errors.Is.
func (e *InvalidPluginError) Unwrap() error { return ErrInvalidPlugin }

// Validate checks the plugin name and every owned command.
//
// Command paths are plugin-relative: a top-level command's path is just its
// own name, a nested command's path lists its parent segments first, and
// the default command's path is exactly [p.Name].
func (p *Plugin) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &InvalidPluginError{Plugin: p, Reason: "name must not be empty"}
	}
	for _, c := range p.Commands {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DefaultCommand returns the plugin's default command, defined as the
// command whose path equals exactly [p.Name]. Returns nil when the plugin
// has no default command.
func (p *Plugin) DefaultCommand() *Command {
	for _, c := range p.Commands {
		if len(c.CommandPath) == 1 && c.CommandPath[0] == p.Name {
			return c
		}
	}
	return nil
}

// CommandAtPath returns the command whose path equals exactly the given
// path, or nil.
func (p *Plugin) CommandAtPath(path []string) *Command {
	for _, c := range p.Commands {
		if slices.Equal(c.CommandPath, path) {
			return c
		}
	}
	return nil
}

// VisibleCommands returns the plugin's commands with Hidden ones filtered
// out, preserving registration order.
func (p *Plugin) VisibleCommands() []*Command {
	var out []*Command
	for _, c := range p.Commands {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}
