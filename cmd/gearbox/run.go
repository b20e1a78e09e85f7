// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"gearbox-cli/internal/discovery"
	"gearbox-cli/internal/issue"

	"github.com/spf13/cobra"
)

// runCmd dispatches a raw token vector through the plugin runtime.
// Flag parsing is disabled so option-looking tokens reach the normalizer
// untouched.
var runCmd = &cobra.Command{
	Use:   "run [tokens...]",
	Short: "Dispatch a token vector to the matching plugin command",
	Long: `Dispatch a token vector to the matching plugin command.

The first token selects a plugin by name; remaining tokens walk that
plugin's command tree, with unmatched tokens and inferred options handed
to the command as parameters. Without a plugin-name token the runtime's
default plugin receives the whole vector.`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// DisableFlagParsing swallows help as well; restore it.
		for _, arg := range args {
			if arg == "--help" || arg == "-h" {
				return cmd.Help()
			}
		}
		return dispatch(cmd, args)
	},
}

// dispatch runs the tokens through a freshly built runtime and maps the
// outcome onto the CLI surface.
func dispatch(cmd *cobra.Command, tokens []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	rt, err := buildRuntime(ctx, cfg)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	rc, err := rt.Run(ctx, tokens, nil)
	if err != nil {
		// Script exit codes pass through as the process exit status.
		var scriptErr *discovery.ScriptExitError
		if errors.As(err, &scriptErr) {
			return &ExitError{Code: scriptErr.Code, Err: scriptErr}
		}
		fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	// "No match" is a soft outcome: report it, render the help issue, and
	// exit zero so shell pipelines can probe for commands.
	if !rc.Matched() {
		fmt.Fprintln(cmd.ErrOrStderr(),
			WarningStyle.Render("No command matched: ")+CmdStyle.Render(fmt.Sprintf("%v", tokens)))
		renderNoMatchIssue(cmd, rc.Plugin != nil)
		return nil
	}

	return nil
}

// renderNoMatchIssue prints the catalog issue matching the failure shape:
// plugin resolved but no command, or no plugin at all.
func renderNoMatchIssue(cmd *cobra.Command, pluginMatched bool) {
	id := issue.PluginNotFoundId
	if pluginMatched {
		id = issue.CommandNotFoundId
	}

	rendered, err := issue.Get(id).Render("auto")
	if err != nil {
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), rendered)
}
