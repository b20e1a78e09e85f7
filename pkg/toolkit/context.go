// SPDX-License-Identifier: MPL-2.0

package toolkit

import (
	"context"
	"fmt"
	"strings"
)

type (
	// Parameters is the structured form of the tokens left after command
	// resolution, produced by the Normalizer collaborator.
	Parameters struct {
		// Plugin is the plugin name the invocation targeted.
		Plugin string
		// Command is the command name derived during plugin selection.
		Command string
		// Array holds the positional (non-option) tokens, in order.
		Array []string
		// Options holds the named options. Caller-supplied options are
		// shallow-merged on top and win on key conflicts.
		Options map[string]any
		// Raw is the unprocessed leftover token slice.
		Raw []string
	}

	// Normalizer converts leftover tokens into Parameters. It is an external
	// collaborator of the dispatch engine; the engine only consumes this
	// contract.
	Normalizer interface {
		Normalize(pluginName, commandName string, tokens []string) (*Parameters, error)
	}

	// RunContext is the per-invocation record carrying the resolved plugin
	// and command, the merged configuration, the normalized parameters, and
	// the eventual result. It is created at the start of Run, mutated
	// through the pipeline, and never shared across invocations.
	RunContext struct {
		// Context is the caller's context, threaded into the command body
		// for cancellation. The engine itself imposes no timeout.
		Context context.Context
		// Runtime is a back-reference to the owning runtime.
		Runtime *Runtime
		// PluginName is the plugin name derived from the token vector (the
		// brand for default-plugin invocations).
		PluginName string
		// CommandName is the command name derived from the token vector.
		CommandName string
		// Plugin is the resolved plugin; nil when no plugin matched.
		Plugin *Plugin
		// Command is the resolved command; nil when no command matched.
		Command *Command
		// Config is the effective configuration: the runtime's base config
		// with the plugin's layered defaults under the plugin's name.
		Config map[string]any
		// Parameters are the normalized invocation parameters.
		Parameters *Parameters
		// Result is whatever the command's Run returned, stored verbatim.
		Result any

		attachments map[string]any
	}
)

// First returns the first positional parameter, or "".
func (p *Parameters) First() string { return p.at(0) }

// Second returns the second positional parameter, or "".
func (p *Parameters) Second() string { return p.at(1) }

// Third returns the third positional parameter, or "".
func (p *Parameters) Third() string { return p.at(2) }

func (p *Parameters) at(i int) string {
	if p == nil || i >= len(p.Array) {
		return ""
	}
	return p.Array[i]
}

// String returns the positional parameters joined with spaces.
func (p *Parameters) String() string {
	if p == nil {
		return ""
	}
	return strings.Join(p.Array, " ")
}

// Matched reports whether the invocation resolved to a concrete plugin and
// command. Callers must check this before trusting Config, Parameters, or
// Result; a false value is the soft "no match" outcome, not an error.
func (c *RunContext) Matched() bool {
	return c.Plugin != nil && c.Command != nil
}

// PluginConfig returns the effective configuration object for the resolved
// plugin. The merge policy guarantees this is non-nil whenever the
// invocation matched.
func (c *RunContext) PluginConfig() map[string]any {
	if c.Plugin == nil || c.Config == nil {
		return nil
	}
	if m, ok := c.Config[c.Plugin.Name].(map[string]any); ok {
		return m
	}
	return nil
}

// Attach registers a named capability on the context. Extensions call this
// from their Setup; a later extension may override an earlier attachment of
// the same name.
func (c *RunContext) Attach(name string, capability any) {
	if c.attachments == nil {
		c.attachments = make(map[string]any)
	}
	c.attachments[name] = capability
}

// Capability returns the attachment registered under name, or nil.
func (c *RunContext) Capability(name string) any {
	return c.attachments[name]
}

// MustCapability returns the attachment registered under name and panics
// when it is absent. Intended for command bodies that declare a hard
// dependency on an extension the host is known to register.
func (c *RunContext) MustCapability(name string) any {
	v, ok := c.attachments[name]
	if !ok {
		panic(fmt.Sprintf("toolkit: no %q capability attached to this context", name))
	}
	return v
}
