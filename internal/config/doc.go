// SPDX-License-Identifier: MPL-2.0

// Package config loads the gearbox application configuration.
//
// Configuration is layered: Viper holds the built-in defaults, and an
// optional CUE config file (validated against an embedded schema) is merged
// on top via MergeConfigMap. The resulting Config feeds the toolkit runtime
// as its base config map and per-plugin default overrides.
package config
