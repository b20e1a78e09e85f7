// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	PluginNotFoundId Id = iota + 1
	CommandNotFoundId
	ManifestParseErrorId
	ConfigLoadFailedId
	ScriptFailedId
	PluginDirNotFoundId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // links into the gearbox docs, when they exist
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	pluginNotFoundIssue = &Issue{
		id: PluginNotFoundId,
		mdMsg: `
# Plugin not found!

No installed plugin matches the name you gave.

## Things you can try:
- List all installed plugins:
~~~
$ gearbox plugins
~~~

- Check for typos in the plugin name
- Install the plugin by dropping its directory into:
~~~
~/.gearbox/plugins/<plugin-name>/
~~~`,
	}

	commandNotFoundIssue = &Issue{
		id: CommandNotFoundId,
		mdMsg: `
# Command not found!

The command you specified was not found in the selected plugin.

## Things you can try:
- List the plugin's commands:
~~~
$ gearbox plugins --commands
~~~

- Check for typos in the command name or its aliases
- Verify the plugin manifest declares your command`,
	}

	manifestParseErrorIssue = &Issue{
		id: ManifestParseErrorId,
		mdMsg: `
# Failed to parse plugin manifest!

A plugin.cue (or plugin.toml) manifest contains syntax errors or invalid
fields.

## Common issues:
- Invalid CUE/TOML syntax (missing quotes, braces, etc.)
- Unknown field names
- Missing required fields (every command needs a name)

## Things you can try:
- Check the error message above for the specific field
- Run with verbose mode for more details:
~~~
$ gearbox --verbose plugins
~~~

## Example of a valid manifest:
~~~cue
name: "remote"
description: "Manage remotes"

commands: [
	{
		name: "add"
		path: ["remote", "add"]
		script: "echo adding $1"
	},
]
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the gearbox configuration file.

## Configuration file locations:
- Linux: ~/.config/gearbox/config.cue
- macOS: ~/Library/Application Support/gearbox/config.cue
- Windows: %APPDATA%\gearbox\config.cue

## Things you can try:
- Check the configuration syntax
- Remove the config file to fall back to defaults:
~~~
$ rm ~/.config/gearbox/config.cue
~~~

## Example configuration:
~~~cue
plugin_dirs: [
	"/home/user/my-plugins"
]

plugins: {
	remote: {color: "red"}
}

ui: {
	color_scheme: "auto"
	verbose: false
}
~~~`,
	}

	scriptFailedIssue = &Issue{
		id: ScriptFailedId,
		mdMsg: `
# Script execution failed!

A plugin's script command exited with a non-zero status.

## Common causes:
- Command not found in PATH
- Permission denied
- Syntax error in the script
- Missing dependencies

## Things you can try:
- Run with verbose mode for more details:
~~~
$ gearbox --verbose <plugin> <command>
~~~

- Test the script manually in your shell
- Check file permissions and PATH settings`,
	}

	pluginDirNotFoundIssue = &Issue{
		id: PluginDirNotFoundId,
		mdMsg: `
# Plugin directory not found!

One of the configured plugin directories does not exist.

## Things you can try:
- Create the directory:
~~~
$ mkdir -p ~/.gearbox/plugins
~~~

- Or remove the stale entry from plugin_dirs in your config file`,
	}

	issues = map[Id]*Issue{
		pluginNotFoundIssue.Id():     pluginNotFoundIssue,
		commandNotFoundIssue.Id():    commandNotFoundIssue,
		manifestParseErrorIssue.Id(): manifestParseErrorIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		scriptFailedIssue.Id():       scriptFailedIssue,
		pluginDirNotFoundIssue.Id():  pluginDirNotFoundIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
