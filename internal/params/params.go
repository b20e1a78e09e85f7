// SPDX-License-Identifier: MPL-2.0

// Package params normalizes leftover command-line tokens into structured
// parameters without a declared flag schema. Option shapes are inferred
// from the tokens themselves: `--key`, `--key=value`, `--key value`, and
// `--no-key` all work for any key, and scalar values are coerced to bool,
// int, or float when they parse as one.
package params

import (
	"slices"
	"strconv"
	"strings"

	"gearbox-cli/pkg/toolkit"
)

// Normalizer infers options and positionals from raw tokens.
// It implements toolkit.Normalizer.
type Normalizer struct{}

// New creates a schema-less parameter normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

// Normalize converts the leftover tokens into Parameters. A literal "--"
// token ends option parsing; everything after it is positional.
func (n *Normalizer) Normalize(pluginName, commandName string, tokens []string) (*toolkit.Parameters, error) {
	p := &toolkit.Parameters{
		Plugin:  pluginName,
		Command: commandName,
		Options: map[string]any{},
		Raw:     slices.Clone(tokens),
	}

	optionsDone := false
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if optionsDone || !isOption(tok) {
			p.Array = append(p.Array, tok)
			continue
		}

		if tok == "--" {
			optionsDone = true
			continue
		}

		key := strings.TrimLeft(tok, "-")

		// --key=value binds inline
		if eq := strings.IndexByte(key, '='); eq >= 0 {
			p.Options[key[:eq]] = coerce(key[eq+1:])
			continue
		}

		// --no-key negates
		if rest, ok := strings.CutPrefix(key, "no-"); ok && rest != "" {
			p.Options[rest] = false
			continue
		}

		// --key value consumes the next token unless it looks like an option
		if i+1 < len(tokens) && !isOption(tokens[i+1]) {
			p.Options[key] = coerce(tokens[i+1])
			i++
			continue
		}

		// bare --key is a true flag
		p.Options[key] = true
	}

	return p, nil
}

// isOption reports whether tok starts an option. A lone "-" is positional
// (conventionally "read stdin"), and so are negative numbers.
func isOption(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' {
		return false
	}
	return tok[1] < '0' || tok[1] > '9'
}

// coerce converts an option value string to bool, int, or float when it
// parses cleanly as one, otherwise returns it unchanged.
func coerce(value string) any {
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.Atoi(value); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}
