// SPDX-License-Identifier: MPL-2.0

package extensions

import (
	"gearbox-cli/pkg/toolkit"
)

// MetaCapability is the attachment name for the meta extension.
const MetaCapability = "meta"

// Meta exposes read-only runtime introspection to command bodies.
type Meta struct {
	runtime *toolkit.Runtime
	version string
}

// Brand returns the runtime's brand name.
func (m *Meta) Brand() string { return m.runtime.Brand() }

// Version returns the host application version.
func (m *Meta) Version() string { return m.version }

// PluginNames returns the registered plugin names in registration order.
func (m *Meta) PluginNames() []string {
	plugins := m.runtime.Plugins()
	names := make([]string, 0, len(plugins))
	for _, p := range plugins {
		names = append(names, p.Name)
	}
	return names
}

// CommandCount returns the total number of commands across all plugins.
func (m *Meta) CommandCount() int {
	total := 0
	for _, p := range m.runtime.Plugins() {
		total += len(p.Commands)
	}
	return total
}

// RegisterMeta registers the meta extension on rt.
func RegisterMeta(rt *toolkit.Runtime, version string) error {
	return rt.AddExtension(MetaCapability, func(rc *toolkit.RunContext) error {
		rc.Attach(MetaCapability, &Meta{runtime: rc.Runtime, version: version})
		return nil
	})
}
