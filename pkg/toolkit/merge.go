// SPDX-License-Identifier: MPL-2.0

package toolkit

import "maps"

// MergeDefaults layers runtime-level overrides on top of a plugin's bundled
// defaults. The merge is shallow: the override value wins on key collision.
// Neither input map is mutated, and the result is always non-nil, so a
// command observes some configuration object even when both layers are
// empty. Merging the same inputs twice yields an equal result.
func MergeDefaults(pluginDefaults, overrides map[string]any) map[string]any {
	out := make(map[string]any, len(pluginDefaults)+len(overrides))
	maps.Copy(out, pluginDefaults)
	maps.Copy(out, overrides)
	return out
}

// effectiveConfig builds the configuration a command observes: a shallow
// clone of the runtime's base config with the plugin's merged defaults
// installed under the plugin's name.
func (r *Runtime) effectiveConfig(p *Plugin) map[string]any {
	out := make(map[string]any, len(r.config)+1)
	maps.Copy(out, r.config)
	out[p.Name] = MergeDefaults(p.Defaults, r.defaults[p.Name])
	return out
}
