// SPDX-License-Identifier: MPL-2.0

package toolkit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidExtension is the sentinel error returned for malformed
// extension registrations.
var ErrInvalidExtension = errors.New("invalid extension")

type (
	// SetupFunc attaches a named capability to a RunContext. It runs exactly
	// once per context, before the resolved command's body.
	SetupFunc func(ctx *RunContext) error

	// Extension is a (name, setup) pair registered once on a Runtime and
	// applied fresh to every RunContext.
	Extension struct {
		Name  string
		Setup SetupFunc
	}
)

// Validate checks that the extension carries a name and a setup function.
func (e *Extension) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidExtension)
	}
	if e.Setup == nil {
		return fmt.Errorf("%w: extension %q has no setup function", ErrInvalidExtension, e.Name)
	}
	return nil
}

// applyExtensions runs every registered extension's Setup against the
// context, in registration order. No extension is skipped; the first setup
// failure aborts the pipeline and propagates to the caller of Run.
func (r *Runtime) applyExtensions(ctx *RunContext) error {
	for _, ext := range r.extensions {
		if err := ext.Setup(ctx); err != nil {
			return fmt.Errorf("extension %q setup: %w", ext.Name, err)
		}
	}
	return nil
}
