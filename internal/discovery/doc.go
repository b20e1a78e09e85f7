// SPDX-License-Identifier: MPL-2.0

// Package discovery loads gearbox plugins from the filesystem.
//
// A plugin is a directory carrying a plugin.cue manifest (validated against
// an embedded CUE schema) or a plugin.toml manifest. Manifest commands with
// a script body execute through the embedded mvdan/sh interpreter, with the
// effective plugin configuration and the normalized options exported as
// GEARBOX_CFG_* / GEARBOX_OPT_* environment variables.
package discovery
