// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"gearbox-cli/pkg/toolkit"
)

type (
	// Manifest is the decoded form of a plugin.cue or plugin.toml file.
	Manifest struct {
		// Name is the plugin name, unique within a runtime.
		Name string `json:"name" toml:"name"`
		// Description is shown by the plugin listing.
		Description string `json:"description,omitempty" toml:"description,omitempty"`
		// Default marks the plugin as the runtime's default plugin.
		Default bool `json:"default,omitempty" toml:"default,omitempty"`
		// Defaults are the plugin-declared configuration defaults.
		Defaults map[string]any `json:"defaults,omitempty" toml:"defaults,omitempty"`
		// Commands lists the plugin's commands.
		Commands []ManifestCommand `json:"commands,omitempty" toml:"commands,omitempty"`
	}

	// ManifestCommand is a single command declaration in a manifest.
	//
	// Path holds the plugin-relative command path segments. When empty the
	// path defaults to [Name], except for the command sharing the plugin's
	// name, which becomes the plugin's default command. Script is a shell
	// body executed by the embedded interpreter; commands without a script
	// resolve but do not invoke.
	ManifestCommand struct {
		Name        string   `json:"name" toml:"name"`
		Description string   `json:"description,omitempty" toml:"description,omitempty"`
		Path        []string `json:"path,omitempty" toml:"path,omitempty"`
		Aliases     []string `json:"aliases,omitempty" toml:"aliases,omitempty"`
		Script      string   `json:"script,omitempty" toml:"script,omitempty"`
		Hidden      bool     `json:"hidden,omitempty" toml:"hidden,omitempty"`
	}
)

// commandPath resolves the effective command path for a manifest command
// within the plugin named pluginName.
func (c ManifestCommand) commandPath(pluginName string) []string {
	if len(c.Path) > 0 {
		return c.Path
	}
	if c.Name == pluginName {
		// The command named after its plugin is the default command.
		return []string{pluginName}
	}
	return []string{c.Name}
}

// ToPlugin converts the manifest into a toolkit Plugin rooted at dir.
// Script bodies are bound to run functions via the loader's interpreter
// settings; commands without a script get a nil Run.
func (m *Manifest) ToPlugin(dir string, loader *Loader) (*toolkit.Plugin, error) {
	p := &toolkit.Plugin{
		Name:        m.Name,
		Description: m.Description,
		Defaults:    m.Defaults,
		Default:     m.Default,
		Dir:         dir,
	}

	for _, mc := range m.Commands {
		cmd := &toolkit.Command{
			Name:        mc.Name,
			Description: mc.Description,
			CommandPath: mc.commandPath(m.Name),
			Aliases:     mc.Aliases,
			Hidden:      mc.Hidden,
		}
		if mc.Script != "" {
			cmd.Run = loader.scriptRunFunc(dir, mc.Script)
		}
		p.Commands = append(p.Commands, cmd)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
