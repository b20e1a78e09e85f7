// SPDX-License-Identifier: MPL-2.0

// Package toolkit implements the gearbox command resolution and dispatch
// engine. A host application builds a Runtime, registers plugins and
// extensions during a setup phase, and then dispatches raw token vectors
// through Runtime.Run. Each dispatch produces a RunContext carrying the
// resolved plugin and command, the merged configuration, the normalized
// parameters, and the command's result.
//
// # Dispatch flow
//
//	tokens → plugin selection → command resolution → config merge
//	       → parameter normalization → extension pipeline → command body
//
// Resolution failures are soft: an unknown plugin or command yields a
// RunContext whose Plugin/Command fields are nil, never an error. Only
// faults inside extension setup or the command body itself surface as
// errors from Run.
//
// The Runtime is read-only during dispatch, so concurrent Run calls against
// the same Runtime are safe; every invocation gets its own RunContext.
package toolkit
