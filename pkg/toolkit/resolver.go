// SPDX-License-Identifier: MPL-2.0

package toolkit

import "slices"

// stepMatch is the tagged outcome of matching a single path segment during
// the resolver walk. Using an explicit found/not-found pair keeps the
// shortest-path tie-break and the "no match leaves the accumulated path
// unchanged" rule visible at the call site.
type stepMatch struct {
	cmd   *Command
	found bool
}

// matchSegment searches cmds for a command whose path minus its final
// segment equals prefix and whose final segment matches token (exactly, or
// via one of the command's aliases). Among candidates the shortest command
// path wins; equal-length ties go to the first command encountered, so
// registration order is the tie-break order.
func matchSegment(cmds []*Command, prefix []string, token string) stepMatch {
	var best *Command
	for _, c := range cmds {
		if len(c.CommandPath) == 0 {
			continue
		}
		parent := c.CommandPath[:len(c.CommandPath)-1]
		if !slices.Equal(parent, prefix) {
			continue
		}
		if !c.MatchesToken(token) {
			continue
		}
		if best == nil || len(c.CommandPath) < len(best.CommandPath) {
			best = c
		}
	}
	if best == nil {
		return stepMatch{}
	}
	return stepMatch{cmd: best, found: true}
}

// FindCommand resolves a token path against the plugin's commands and
// returns the best-matching command plus the tokens left over for parameter
// parsing.
//
// The walk consumes tokens in order. At each step a matching command
// advances the accumulated path to that command's full path (not just the
// literal token, so a later token may match an alias unrelated to the text
// consumed so far). A token that matches nothing is skipped and the walk
// continues against the same accumulated path. When nothing ever matched,
// resolution falls back to the plugin's default command and every token is
// returned as leftover. A nil command means "no match"; it is the caller's
// job to treat that as a soft outcome, not an error.
func (p *Plugin) FindCommand(tokens []string) (*Command, []string) {
	var acc []string
	rest := tokens
	for i, tok := range tokens {
		if m := matchSegment(p.Commands, acc, tok); m.found {
			acc = m.cmd.CommandPath
			rest = tokens[i+1:]
		}
	}
	if len(acc) == 0 {
		return p.DefaultCommand(), tokens
	}
	return p.CommandAtPath(acc), rest
}
