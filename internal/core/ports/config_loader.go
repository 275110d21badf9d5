package ports

import "go.trai.ch/graphcache/internal/core/domain"

// ResolutionLoader reads a resolution document.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ResolutionLoader interface {
	// Load reads the document at path and returns the resolved graph it describes.
	Load(path string) (*domain.Resolution, error)
}

// SettingsLoader loads the tool settings.
type SettingsLoader interface {
	// Load reads settings for the given working directory. Missing sources fall back to defaults.
	Load(cwd string) (domain.Settings, error)
}

// DocumentFinder expands command line arguments into resolution document paths.
type DocumentFinder interface {
	// Find returns files as given and the resolution documents below every directory.
	Find(args []string) ([]string, error)
}
