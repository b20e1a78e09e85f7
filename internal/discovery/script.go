// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gearbox-cli/pkg/toolkit"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

const (
	// EnvConfigPrefix prefixes effective plugin config keys in a script's
	// environment.
	EnvConfigPrefix = "GEARBOX_CFG_"
	// EnvOptionPrefix prefixes normalized option keys in a script's
	// environment.
	EnvOptionPrefix = "GEARBOX_OPT_"
)

// ScriptExitError reports a script that ran to completion but exited
// non-zero. The exit code is preserved for the CLI process exit status.
type ScriptExitError struct {
	Code int
}

// Error implements the error interface.
func (e *ScriptExitError) Error() string {
	return fmt.Sprintf("script exited with status %d", e.Code)
}

// scriptRunFunc binds a manifest script body to the embedded interpreter.
// The script runs with the plugin directory as its working directory, the
// positional parameters as $1..$n, and the merged config and options
// exported as GEARBOX_CFG_* / GEARBOX_OPT_* variables.
func (l *Loader) scriptRunFunc(dir, script string) toolkit.RunFunc {
	return func(rc *toolkit.RunContext) (any, error) {
		prog, err := syntax.NewParser().Parse(strings.NewReader(script), "script")
		if err != nil {
			return nil, fmt.Errorf("script syntax error: %w", err)
		}

		env := append(os.Environ(), scriptEnv(rc)...)

		opts := []interp.RunnerOption{
			interp.Dir(dir),
			interp.Env(expand.ListEnviron(env...)),
			interp.StdIO(l.Stdin, l.Stdout, l.Stderr),
		}

		// Prepend "--" so option-looking positionals like "-v" are not
		// interpreted as shell options by interp.Params()
		if rc.Parameters != nil && len(rc.Parameters.Array) > 0 {
			params := append([]string{"--"}, rc.Parameters.Array...)
			opts = append(opts, interp.Params(params...))
		}

		runner, err := interp.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create interpreter: %w", err)
		}

		execCtx := rc.Context
		if execCtx == nil {
			execCtx = context.Background()
		}

		if err := runner.Run(execCtx, prog); err != nil {
			var exitStatus interp.ExitStatus
			if errors.As(err, &exitStatus) {
				return nil, &ScriptExitError{Code: int(exitStatus)}
			}
			return nil, fmt.Errorf("script execution failed: %w", err)
		}

		return nil, nil
	}
}

// scriptEnv flattens the effective plugin config and the normalized options
// into environment variable assignments.
func scriptEnv(rc *toolkit.RunContext) []string {
	var env []string
	for k, v := range rc.PluginConfig() {
		env = append(env, EnvConfigPrefix+envKey(k)+"="+envValue(v))
	}
	if rc.Parameters != nil {
		for k, v := range rc.Parameters.Options {
			env = append(env, EnvOptionPrefix+envKey(k)+"="+envValue(v))
		}
	}
	return env
}

// envKey upper-cases a config or option key and replaces anything outside
// [A-Z0-9] with underscores.
func envKey(key string) string {
	var sb strings.Builder
	for _, r := range strings.ToUpper(key) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

func envValue(v any) string {
	return fmt.Sprintf("%v", v)
}
