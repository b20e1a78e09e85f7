// SPDX-License-Identifier: MPL-2.0

package toolkit

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidCommand is the sentinel error wrapped by InvalidCommandError.
var ErrInvalidCommand = errors.New("invalid command")

type (
	// RunFunc is a command's executable behavior. It receives the fully
	// populated RunContext and returns an arbitrary result value that the
	// dispatcher stores verbatim on the context.
	RunFunc func(ctx *RunContext) (any, error)

	// Command is an invocable unit within a plugin, addressed by a path of
	// name segments and optionally reachable via aliases.
	Command struct {
		// Name is the command's own name, which must equal the last segment
		// of CommandPath.
		Name string
		// Description provides help text for the command.
		Description string
		// CommandPath is the plugin-relative sequence of segments addressing
		// this command: [name] for a top-level command, parent segments
		// first for a nested one. The plugin's default command has
		// CommandPath equal to exactly [pluginName].
		CommandPath []string
		// Aliases are alternate names accepted for the final path segment.
		Aliases []string
		// Run executes the command. A nil Run resolves successfully but is
		// never invoked.
		Run RunFunc
		// Hidden excludes the command from listings; it remains invocable.
		Hidden bool
	}

	// InvalidCommandError is returned when a Command violates the path
	// invariants checked by Validate.
	InvalidCommandError struct {
		Command *Command
		Reason  string
	}
)

// Error implements the error interface.
func (e *InvalidCommandError) Error() string {
	name := "<unnamed>"
	if e.Command != nil && e.Command.Name != "" {
		name = e.Command.Name
	}
	return fmt.Sprintf("invalid command %q: %s", name, e.Reason)
}

// Unwrap returns ErrInvalidCommand so callers can use errors.Is.
func (e *InvalidCommandError) Unwrap() error { return ErrInvalidCommand }

// Validate checks the Command invariants: a non-empty name, a non-empty
// path, and a final path segment that is an acceptable match target (the
// command's own name or one of its aliases).
func (c *Command) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &InvalidCommandError{Command: c, Reason: "name must not be empty"}
	}
	if len(c.CommandPath) == 0 {
		return &InvalidCommandError{Command: c, Reason: "command path must not be empty"}
	}
	for _, seg := range c.CommandPath {
		if strings.TrimSpace(seg) == "" {
			return &InvalidCommandError{Command: c, Reason: "command path segments must not be empty"}
		}
	}
	last := c.CommandPath[len(c.CommandPath)-1]
	if last != c.Name && !slices.Contains(c.Aliases, last) {
		return &InvalidCommandError{
			Command: c,
			Reason:  fmt.Sprintf("final path segment %q is neither the command name nor an alias", last),
		}
	}
	return nil
}

// MatchesToken reports whether the command's final path segment matches the
// given token, either exactly or through one of its aliases. Earlier path
// segments always match by exact name only.
func (c *Command) MatchesToken(token string) bool {
	if len(c.CommandPath) == 0 {
		return false
	}
	last := c.CommandPath[len(c.CommandPath)-1]
	return last == token || slices.Contains(c.Aliases, token)
}

// PathString returns the command path joined with spaces, as a user would
// type it.
func (c *Command) PathString() string {
	return strings.Join(c.CommandPath, " ")
}
