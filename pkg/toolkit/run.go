// SPDX-License-Identifier: MPL-2.0

package toolkit

import (
	"context"
	"strings"
)

// RunString dispatches a raw command string whose tokens are separated by
// spaces. See Run for the full contract.
func (r *Runtime) RunString(ctx context.Context, raw string, options map[string]any) (*RunContext, error) {
	return r.Run(ctx, strings.Fields(raw), options)
}

// Run dispatches a token vector and returns the populated RunContext.
//
// A nil tokens slice falls back to the injected default argument vector
// (see WithArgv) with its first two entries stripped, since the executable
// and script path are not part of the logical command. An empty non-nil
// slice targets the default plugin's default command.
//
// Unknown plugin names and unresolvable command paths are soft outcomes:
// the returned context has nil Plugin and/or Command and no error. A
// resolved command with a nil Run body is never invoked and leaves Result
// unset. Errors from extension setup or from the command body propagate
// unwrapped to the caller; resolution itself is pure and never retried.
//
// The options map is shallow-merged into Parameters.Options after
// normalization; caller options win on key conflicts.
func (r *Runtime) Run(ctx context.Context, tokens []string, options map[string]any) (*RunContext, error) {
	if tokens == nil {
		tokens = r.defaultTokens()
	}

	run := &RunContext{
		Context: ctx,
		Runtime: r,
	}

	// Identify the target plugin and the tokens the resolver will see.
	var rest []string
	switch {
	case len(tokens) == 0:
		run.PluginName = r.brand
		run.CommandName = r.brand
		run.Plugin = r.DefaultPlugin()
	case r.Plugin(tokens[0]) != nil:
		run.PluginName = tokens[0]
		run.Plugin = r.Plugin(tokens[0])
		rest = tokens[1:]
		if len(rest) > 0 {
			run.CommandName = rest[0]
		} else {
			run.CommandName = run.PluginName
		}
	default:
		run.PluginName = r.brand
		run.CommandName = tokens[0]
		run.Plugin = r.DefaultPlugin()
		rest = tokens
	}

	var leftover []string
	if run.Plugin != nil {
		run.Command, leftover = run.Plugin.FindCommand(rest)
	}

	if !run.Matched() {
		// Not an error: the caller inspects the context for the "no match"
		// outcome.
		r.logger.Debug("no command matched",
			"plugin", run.PluginName, "command", run.CommandName)
		return run, nil
	}

	r.logger.Debug("resolved command",
		"plugin", run.Plugin.Name,
		"path", run.Command.PathString(),
		"leftover", leftover)

	run.Config = r.effectiveConfig(run.Plugin)

	params, err := r.normalizeParams(run, leftover)
	if err != nil {
		return run, err
	}
	if params.Options == nil {
		params.Options = make(map[string]any, len(options))
	}
	for k, v := range options {
		params.Options[k] = v
	}
	run.Parameters = params

	if run.Command.Run != nil {
		if err := r.applyExtensions(run); err != nil {
			return run, err
		}
		result, err := run.Command.Run(run)
		if err != nil {
			return run, err
		}
		run.Result = result
	}

	return run, nil
}

// defaultTokens derives the logical command tokens from the injected
// argument vector by dropping the executable and script entries.
func (r *Runtime) defaultTokens() []string {
	if len(r.argv) <= 2 {
		return []string{}
	}
	return r.argv[2:]
}

// normalizeParams delegates to the configured Normalizer; without one the
// leftover tokens pass through as positional parameters.
func (r *Runtime) normalizeParams(run *RunContext, leftover []string) (*Parameters, error) {
	if r.normalizer == nil {
		return &Parameters{
			Plugin:  run.PluginName,
			Command: run.CommandName,
			Array:   leftover,
			Options: make(map[string]any),
			Raw:     leftover,
		}, nil
	}
	return r.normalizer.Normalize(run.PluginName, run.CommandName, leftover)
}
