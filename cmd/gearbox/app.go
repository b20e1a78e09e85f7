// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"gearbox-cli/internal/config"
	"gearbox-cli/internal/discovery"
	"gearbox-cli/internal/extensions"
	"gearbox-cli/internal/params"
	"gearbox-cli/pkg/toolkit"

	"github.com/charmbracelet/log"
)

// loadConfig reads the application configuration, honoring the --config
// flag.
func loadConfig(ctx context.Context) (*config.Config, error) {
	return config.NewProvider().Load(ctx, config.LoadOptions{
		ConfigFilePath: cfgFile,
	})
}

// newLogger builds the runtime logger. Debug tracing stays off unless
// verbose output is requested via flag or config.
func newLogger(cfg *config.Config) *log.Logger {
	if verbose || (cfg != nil && cfg.UI.Verbose) {
		logger := log.New(os.Stderr)
		logger.SetLevel(log.DebugLevel)
		return logger
	}
	return log.New(io.Discard)
}

// buildRuntime assembles the dispatch runtime: configuration, discovered
// plugins, the parameter normalizer, and the built-in extensions.
func buildRuntime(ctx context.Context, cfg *config.Config) (*toolkit.Runtime, error) {
	logger := newLogger(cfg)
	loader := discovery.NewLoader(logger)

	rt := toolkit.New(config.AppName,
		toolkit.WithConfig(cfg.Base),
		toolkit.WithDefaults(cfg.RuntimeDefaults()),
		toolkit.WithNormalizer(params.New()),
		toolkit.WithLogger(logger),
	)

	roots := pluginRoots(cfg, logger)
	for _, root := range roots {
		plugins, err := loader.LoadAllFromDirectory(root)
		if err != nil {
			return nil, err
		}
		for _, p := range plugins {
			if err := rt.AddPlugin(p); err != nil {
				// A name collision across search directories; first wins.
				logger.Warn("skipping plugin", "name", p.Name, "dir", p.Dir, "err", err)
			}
		}
	}

	if err := extensions.RegisterBuiltins(rt, Version, os.Stdout, nil, logger); err != nil {
		return nil, err
	}

	return rt, nil
}

// pluginRoots returns the plugin search directories in precedence order:
// the built-in ~/.gearbox/plugins first, then configured plugin_dirs.
func pluginRoots(cfg *config.Config, logger *log.Logger) []string {
	var roots []string

	builtIn, err := config.PluginsDir()
	if err != nil {
		logger.Warn("cannot resolve the built-in plugins directory", "err", err)
	} else {
		roots = append(roots, builtIn)
	}

	for _, dir := range cfg.PluginDirs {
		roots = append(roots, dir.String())
	}

	return roots
}
