// SPDX-License-Identifier: MPL-2.0

package extensions

import (
	"os"

	"gearbox-cli/pkg/toolkit"

	"github.com/spf13/afero"
)

// FilesystemCapability is the attachment name for the filesystem extension.
const FilesystemCapability = "filesystem"

// Filesystem exposes file helpers over an afero backend, so command bodies
// stay testable against an in-memory filesystem.
type Filesystem struct {
	fs afero.Fs
}

// NewFilesystem creates a Filesystem over fs. A nil fs falls back to the
// real OS filesystem.
func NewFilesystem(fs afero.Fs) *Filesystem {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Filesystem{fs: fs}
}

// Exists reports whether path exists.
func (f *Filesystem) Exists(path string) (bool, error) {
	return afero.Exists(f.fs, path)
}

// IsDir reports whether path is a directory.
func (f *Filesystem) IsDir(path string) (bool, error) {
	return afero.IsDir(f.fs, path)
}

// Read returns the contents of the file at path.
func (f *Filesystem) Read(path string) ([]byte, error) {
	return afero.ReadFile(f.fs, path)
}

// Write writes data to path, creating parent directories as needed.
func (f *Filesystem) Write(path string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(f.fs, path, data, perm)
}

// MkdirAll creates the directory at path along with any parents.
func (f *Filesystem) MkdirAll(path string, perm os.FileMode) error {
	return f.fs.MkdirAll(path, perm)
}

// List returns the entry names directly under dir.
func (f *Filesystem) List(dir string) ([]string, error) {
	infos, err := afero.ReadDir(f.fs, dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names, nil
}

// RegisterFilesystem registers the filesystem extension on rt.
func RegisterFilesystem(rt *toolkit.Runtime, fs afero.Fs) error {
	capability := NewFilesystem(fs)
	return rt.AddExtension(FilesystemCapability, func(rc *toolkit.RunContext) error {
		rc.Attach(FilesystemCapability, capability)
		return nil
	})
}
