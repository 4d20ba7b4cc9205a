// Package paths centralizes file and directory names used across the project.
// All data directory file names are defined here as the single source of truth.
package paths

import "path/filepath"

// ///////////////////////////////////////////////
// Constants
// ///////////////////////////////////////////////

// Data directory file names.
const (
	ConfigFile     = "config.toml"
	LogFile        = "palette.log"
	PIDFile        = "watch.pid"
	RemoteCacheDir = "remote"
	BinaryName     = "palette"
	DataDirRel     = ".palette" // relative to $HOME
)

// Repository file names.
const (
	// ReleaseManifest maps module paths to released versions; the update
	// checker reads the root entry from the main branch.
	ReleaseManifest = ".release-manifest.json"
)

// ///////////////////////////////////////////////
// DataDir
// ///////////////////////////////////////////////

// DataDir provides path construction methods rooted at a data directory.
type DataDir struct {
	Root string
}

// Config returns the full path to the config file.
func (d DataDir) Config() string { return filepath.Join(d.Root, ConfigFile) }

// Log returns the full path to the log file.
func (d DataDir) Log() string { return filepath.Join(d.Root, LogFile) }

// PID returns the full path to the watch-mode PID file.
func (d DataDir) PID() string { return filepath.Join(d.Root, PIDFile) }

// RemoteCache returns the full path to the remote palette cache directory.
func (d DataDir) RemoteCache() string { return filepath.Join(d.Root, RemoteCacheDir) }
