// SPDX-License-Identifier: MPL-2.0

package extensions

import (
	"io"

	"gearbox-cli/pkg/toolkit"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// RegisterBuiltins registers the four built-in extensions on rt in their
// canonical order: meta, print, filesystem, system. out and fs may be nil
// to use the process defaults.
func RegisterBuiltins(rt *toolkit.Runtime, version string, out io.Writer, fs afero.Fs, logger *log.Logger) error {
	if err := RegisterMeta(rt, version); err != nil {
		return err
	}
	if err := RegisterPrint(rt, out, logger); err != nil {
		return err
	}
	if err := RegisterFilesystem(rt, fs); err != nil {
		return err
	}
	return RegisterSystem(rt)
}
