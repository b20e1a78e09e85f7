// SPDX-License-Identifier: MPL-2.0

package main

import cmd "gearbox-cli/cmd/gearbox"

func main() {
	cmd.Execute()
}
