// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var pluginsShowCommands bool

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List installed plugins",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}
		rt, err := buildRuntime(ctx, cfg)
		if err != nil {
			return err
		}

		plugins := rt.Plugins()
		if len(plugins) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("No plugins installed."))
			fmt.Fprintln(cmd.OutOrStdout(), "Run "+CmdStyle.Render("gearbox init")+" to scaffold a sample plugin.")
			return nil
		}

		out := cmd.OutOrStdout()
		for _, p := range plugins {
			line := TitleStyle.Render(p.Name)
			if p.Default {
				line += SubtitleStyle.Render(" (default)")
			}
			if p.Description != "" {
				line += "  " + SubtitleStyle.Render(p.Description)
			}
			fmt.Fprintln(out, line)

			if !pluginsShowCommands {
				continue
			}
			for _, c := range p.VisibleCommands() {
				entry := "  " + CmdStyle.Render(c.PathString())
				if len(c.Aliases) > 0 {
					entry += SubtitleStyle.Render(" (" + strings.Join(c.Aliases, ", ") + ")")
				}
				if c.Description != "" {
					entry += "  " + SubtitleStyle.Render(c.Description)
				}
				fmt.Fprintln(out, entry)
			}
		}

		return nil
	},
}

func init() {
	pluginsCmd.Flags().BoolVar(&pluginsShowCommands, "commands", false, "list each plugin's commands")
}
