// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gearbox-cli/internal/issue"
	"gearbox-cli/pkg/cueutil"
	"gearbox-cli/pkg/toolkit"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

const (
	// ManifestFileCUE is the preferred manifest file name.
	ManifestFileCUE = "plugin.cue"
	// ManifestFileTOML is the alternate manifest file name, consulted only
	// when no CUE manifest is present.
	ManifestFileTOML = "plugin.toml"
)

//go:embed plugin_schema.cue
var pluginSchema []byte

// Loader reads plugin directories and binds script commands to the
// embedded shell interpreter. The IO fields default to the process
// streams; tests redirect them.
type Loader struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// NewLoader creates a Loader wired to the process streams.
func NewLoader(logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
}

// IsPlugin reports whether dir carries a plugin manifest.
func IsPlugin(dir string) bool {
	for _, name := range []string{ManifestFileCUE, ManifestFileTOML} {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}

// LoadFromDirectory loads the plugin rooted at dir. The plugin.cue manifest
// is preferred; plugin.toml is the fallback.
func (l *Loader) LoadFromDirectory(dir string) (*toolkit.Plugin, error) {
	cuePath := filepath.Join(dir, ManifestFileCUE)
	if fileExists(cuePath) {
		return l.loadCUEManifest(dir, cuePath)
	}

	tomlPath := filepath.Join(dir, ManifestFileTOML)
	if fileExists(tomlPath) {
		return l.loadTOMLManifest(dir, tomlPath)
	}

	return nil, issue.NewErrorContext().
		WithOperation("load plugin").
		WithResource(dir).
		WithSuggestion("Add a plugin.cue manifest to the plugin directory").
		Wrap(fmt.Errorf("no %s or %s manifest found", ManifestFileCUE, ManifestFileTOML)).
		BuildError()
}

// LoadAllFromDirectory loads every plugin directory under root, in lexical
// order. Directories with invalid manifests are skipped with a warning so
// one broken plugin cannot take down the whole CLI.
func (l *Loader) LoadAllFromDirectory(root string) ([]*toolkit.Plugin, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, issue.WrapWithContext(err, "scan plugin directory", root)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var plugins []*toolkit.Plugin
	for _, name := range names {
		dir := filepath.Join(root, name)
		if !IsPlugin(dir) {
			continue
		}
		p, err := l.LoadFromDirectory(dir)
		if err != nil {
			l.Logger.Warn("skipping plugin with invalid manifest", "dir", dir, "err", err)
			continue
		}
		plugins = append(plugins, p)
	}

	return plugins, nil
}

func (l *Loader) loadCUEManifest(dir, path string) (*toolkit.Plugin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, issue.WrapWithContext(err, "read plugin manifest", path)
	}

	res, err := cueutil.ParseAndDecode[Manifest](pluginSchema, data, "#Plugin",
		cueutil.WithFilename(path))
	if err != nil {
		return nil, wrapManifestParseError(err, path)
	}

	return res.Value.ToPlugin(dir, l)
}

func (l *Loader) loadTOMLManifest(dir, path string) (*toolkit.Plugin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, issue.WrapWithContext(err, "read plugin manifest", path)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, wrapManifestParseError(err, path)
	}

	return m.ToPlugin(dir, l)
}

// wrapManifestParseError attaches the standard fix suggestions to a
// manifest parse failure.
func wrapManifestParseError(err error, path string) error {
	return issue.NewErrorContext().
		WithOperation("parse plugin manifest").
		WithResource(path).
		WithSuggestion("Check the manifest syntax").
		WithSuggestion("Verify every command declares a name").
		Wrap(err).
		BuildError()
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
