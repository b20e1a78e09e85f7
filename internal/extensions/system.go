// SPDX-License-Identifier: MPL-2.0

package extensions

import (
	"bytes"
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

// SystemCapability is the attachment name for the system extension.
const SystemCapability = "system"

// System runs shell snippets through the embedded mvdan/sh interpreter,
// without spawning a shell process.
type System struct {
	// Env holds extra KEY=value assignments layered over the process
	// environment for every snippet.
	Env []string
}

// SnippetResult carries a completed snippet's output and exit code.
type SnippetResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes the snippet and returns its trimmed stdout. A non-zero exit
// status is returned as an error alongside the captured result.
func (s *System) Run(ctx context.Context, snippet string) (*SnippetResult, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(snippet), "snippet")
	if err != nil {
		return nil, fmt.Errorf("snippet syntax error: %w", err)
	}

	var stdout, stderr bytes.Buffer

	opts := []interp.RunnerOption{
		interp.StdIO(nil, &stdout, &stderr),
	}
	if len(s.Env) > 0 {
		env := append(os.Environ(), s.Env...)
		opts = append(opts, interp.Env(expand.ListEnviron(env...)))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create interpreter: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	result := &SnippetResult{}
	runErr := runner.Run(ctx, prog)
	result.Stdout = strings.TrimRight(stdout.String(), "\n")
	result.Stderr = strings.TrimRight(stderr.String(), "\n")

	if runErr != nil {
		var exitStatus interp.ExitStatus
		if errors.As(runErr, &exitStatus) {
			result.ExitCode = int(exitStatus)
			return result, fmt.Errorf("snippet exited with status %d", result.ExitCode)
		}
		return result, fmt.Errorf("snippet execution failed: %w", runErr)
	}

	return result, nil
}

// RegisterSystem registers the system extension on rt.
func RegisterSystem(rt *toolkit.Runtime) error {
	capability := &System{}
	return rt.AddExtension(SystemCapability, func(rc *toolkit.RunContext) error {
		rc.Attach(SystemCapability, capability)
		return nil
	})
}
