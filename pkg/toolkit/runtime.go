// SPDX-License-Identifier: MPL-2.0

package toolkit

import (
	"fmt"
	"io"
	"maps"

	"github.com/charmbracelet/log"
)

type (
	// Runtime is the process-wide dispatch state: a brand identifier, the
	// ordered plugin registry, the registered extensions, runtime-level
	// per-plugin default overrides, and the base configuration map.
	//
	// Plugins and extensions are appended during a setup phase; the Runtime
	// is consulted, never mutated, during dispatch.
	Runtime struct {
		brand      string
		plugins    []*Plugin
		extensions []*Extension
		defaults   map[string]map[string]any
		config     map[string]any
		normalizer Normalizer
		argv       []string
		logger     *log.Logger
	}

	// Option configures a Runtime at construction time. Every exposed
	// behavior captures its owning Runtime when the Runtime is built; there
	// is no late binding and no implicit global state.
	Option func(*Runtime)
)

// WithConfig sets the runtime's base configuration map. Dispatch clones it
// per invocation; the original is never mutated.
func WithConfig(config map[string]any) Option {
	return func(r *Runtime) { r.config = config }
}

// WithDefaults sets runtime-level per-plugin configuration overrides, keyed
// by plugin name. These win key-by-key over each plugin's bundled defaults.
func WithDefaults(defaults map[string]map[string]any) Option {
	return func(r *Runtime) {
		r.defaults = make(map[string]map[string]any, len(defaults))
		maps.Copy(r.defaults, defaults)
	}
}

// WithNormalizer sets the parameter normalizer collaborator. Without one,
// leftover tokens pass through as positional parameters with no options.
func WithNormalizer(n Normalizer) Option {
	return func(r *Runtime) { r.normalizer = n }
}

// WithArgv injects the default argument vector used when Run is given no
// tokens. Hosts pass os.Args; the first two entries (executable and script
// path) are stripped before dispatch. Injecting the vector explicitly keeps
// resolution pure and testable.
func WithArgv(argv []string) Option {
	return func(r *Runtime) { r.argv = argv }
}

// WithLogger sets the structured logger used for dispatch tracing.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runtime) { r.logger = logger }
}

// New creates a Runtime for the given brand. The brand doubles as the name
// of the default plugin targeted when a token vector names no other plugin.
func New(brand string, opts ...Option) *Runtime {
	r := &Runtime{
		brand:    brand,
		defaults: make(map[string]map[string]any),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Brand returns the runtime's brand identifier.
func (r *Runtime) Brand() string { return r.brand }

// AddPlugin appends a plugin to the registry. The plugin is validated and
// its name must be unique within the runtime.
func (r *Runtime) AddPlugin(p *Plugin) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if existing := r.Plugin(p.Name); existing != nil {
		return &InvalidPluginError{Plugin: p, Reason: "a plugin with this name is already registered"}
	}
	r.plugins = append(r.plugins, p)
	return nil
}

// AddPlugins appends several plugins, stopping at the first failure.
func (r *Runtime) AddPlugins(plugins []*Plugin) error {
	for _, p := range plugins {
		if err := r.AddPlugin(p); err != nil {
			return err
		}
	}
	return nil
}

// AddExtension registers an extension. Registration order is the order the
// pipeline applies setups in, so later extensions may observe or override
// attachments made by earlier ones.
func (r *Runtime) AddExtension(name string, setup SetupFunc) error {
	ext := &Extension{Name: name, Setup: setup}
	if err := ext.Validate(); err != nil {
		return err
	}
	for _, existing := range r.extensions {
		if existing.Name == ext.Name {
			return fmt.Errorf("%w: extension %q is already registered", ErrInvalidExtension, name)
		}
	}
	r.extensions = append(r.extensions, ext)
	return nil
}

// SetDefaults installs runtime-level override configuration for a plugin.
// Intended for the setup phase, alongside AddPlugin.
func (r *Runtime) SetDefaults(pluginName string, overrides map[string]any) {
	r.defaults[pluginName] = overrides
}

// Plugin returns the registered plugin with the given name, or nil.
func (r *Runtime) Plugin(name string) *Plugin {
	for _, p := range r.plugins {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Plugins returns the plugin registry in registration order.
func (r *Runtime) Plugins() []*Plugin {
	return r.plugins
}

// Extensions returns the registered extensions in registration order.
func (r *Runtime) Extensions() []*Extension {
	return r.extensions
}

// DefaultPlugin returns the runtime's default plugin: the first plugin
// flagged Default, else the plugin named after the brand, else nil.
func (r *Runtime) DefaultPlugin() *Plugin {
	for _, p := range r.plugins {
		if p.Default {
			return p
		}
	}
	return r.Plugin(r.brand)
}
