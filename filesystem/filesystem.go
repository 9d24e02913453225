// Package filesystem holds the afero backend every file access in sll goes
// through: config, logs, script files and transcript output.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// Use swaps the backend for fs.
func Use(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs restores the native filesystem.
func SetOsFs() {
	Use(afero.NewOsFs())
}

// SetMemMapFs switches to an in-memory filesystem, used by tests.
func SetMemMapFs() {
	Use(afero.NewMemMapFs())
}
