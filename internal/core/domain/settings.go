package domain

import "path/filepath"

const (
	// DefaultStoreDir is the directory, relative to the working directory, that holds result blobs.
	DefaultStoreDir = ".graphcache/results"
	// DefaultParallelism bounds how many documents are resolved concurrently.
	DefaultParallelism = 4
	// SettingsFileName is the optional settings file looked up in the working directory.
	SettingsFileName = "graphcache"
	// EnvPrefix prefixes environment overrides, e.g. GRAPHCACHE_STORE_DIR.
	EnvPrefix = "GRAPHCACHE"

	// DirPerm is the default permission for directories created by the store.
	DirPerm = 0o750
	// FilePerm is the default permission for files created by the store.
	FilePerm = 0o600
)

// Settings configures the tool.
type Settings struct {
	StoreDir    string
	KeepBlobs   bool
	JSONLogs    bool
	Parallelism int
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		StoreDir:    DefaultStoreDir,
		Parallelism: DefaultParallelism,
	}
}

// ResolveStoreDir returns the store directory, joined to root when it is relative.
func (s Settings) ResolveStoreDir(root string) string {
	if filepath.IsAbs(s.StoreDir) {
		return s.StoreDir
	}
	return filepath.Join(root, s.StoreDir)
}
