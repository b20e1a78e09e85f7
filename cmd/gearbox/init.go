// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gearbox-cli/internal/config"
	"gearbox-cli/internal/discovery"
	"gearbox-cli/internal/issue"

	"github.com/spf13/cobra"
)

// samplePluginName is the directory and plugin name created by `gearbox init`.
const samplePluginName = "hello"

const samplePluginManifest = `// A sample gearbox plugin. Edit freely.
name:        "hello"
description: "Sample plugin scaffolded by gearbox init"

defaults: {
	greeting: "Hello"
}

commands: [
	{
		name:   "hello"
		script: "echo \"$GEARBOX_CFG_GREETING from the hello plugin!\""
	},
	{
		name:    "wave"
		aliases: ["w"]
		script:  "echo \"$GEARBOX_CFG_GREETING, $1!\""
	},
]
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a sample plugin",
	Long: `Scaffold a sample plugin under ~/.gearbox/plugins.

The generated plugin demonstrates the manifest format: a default command,
an aliased command, and configuration defaults surfaced to scripts as
GEARBOX_CFG_* environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.EnsurePluginsDir(); err != nil {
			return issue.WrapWithOperation(err, "create plugins directory")
		}

		pluginsDir, err := config.PluginsDir()
		if err != nil {
			return err
		}

		dir := filepath.Join(pluginsDir, samplePluginName)
		manifestPath := filepath.Join(dir, discovery.ManifestFileCUE)

		if _, err := os.Stat(manifestPath); err == nil {
			fmt.Fprintln(cmd.OutOrStdout(),
				WarningStyle.Render("Plugin already exists: ")+CmdStyle.Render(dir))
			return nil
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return issue.WrapWithContext(err, "create plugin directory", dir)
		}
		if err := os.WriteFile(manifestPath, []byte(samplePluginManifest), 0o644); err != nil {
			return issue.WrapWithContext(err, "write plugin manifest", manifestPath)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, SuccessStyle.Render("Sample plugin created: ")+CmdStyle.Render(dir))
		fmt.Fprintln(out, "Try it:")
		fmt.Fprintln(out, "  "+CmdStyle.Render("gearbox run hello"))
		fmt.Fprintln(out, "  "+CmdStyle.Render("gearbox run hello wave world"))
		return nil
	},
}
