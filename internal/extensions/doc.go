// SPDX-License-Identifier: MPL-2.0

// Package extensions provides the built-in runtime extensions registered on
// every Runtime the CLI builds: meta (brand and plugin introspection), print
// (styled terminal output), filesystem (afero-backed file helpers), and
// system (in-process shell snippets).
//
// Each extension attaches a capability object to the RunContext during
// setup; command bodies retrieve it via Capability or MustCapability.
package extensions
