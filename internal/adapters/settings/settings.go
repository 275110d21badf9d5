// Package settings loads the tool settings from an optional graphcache.yaml and
// GRAPHCACHE_* environment variables.
package settings

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// Setting keys.
const (
	KeyStoreDir    = "store.dir"
	KeyKeepBlobs   = "store.keep_blobs"
	KeyLogJSON     = "log.json"
	KeyParallelism = "resolve.parallelism"
)

// File mirrors the settings file.
type File struct {
	Store struct {
		Dir       string `mapstructure:"dir"`
		KeepBlobs bool   `mapstructure:"keep_blobs"`
	} `mapstructure:"store"`
	Log struct {
		JSON bool `mapstructure:"json"`
	} `mapstructure:"log"`
	Resolve struct {
		Parallelism int `mapstructure:"parallelism"`
	} `mapstructure:"resolve"`
}

// Loader implements ports.SettingsLoader with viper.
type Loader struct {
	// Env looks up environment variables. Nil means the process environment.
	Env func(string) (string, bool)
}

// NewLoader creates a Loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads settings for cwd. A missing settings file is not an error.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	v := viper.New()
	v.SetConfigName(domain.SettingsFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(cwd)

	defaults := domain.DefaultSettings()
	v.SetDefault(KeyStoreDir, defaults.StoreDir)
	v.SetDefault(KeyKeepBlobs, defaults.KeepBlobs)
	v.SetDefault(KeyLogJSON, defaults.JSONLogs)
	v.SetDefault(KeyParallelism, defaults.Parallelism)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error()), "dir", cwd)
		}
	}

	if l.Env != nil {
		for _, key := range []string{KeyStoreDir, KeyKeepBlobs, KeyLogJSON, KeyParallelism} {
			if val, ok := l.Env(EnvVar(key)); ok {
				v.Set(key, val)
			}
		}
	} else {
		v.SetEnvPrefix(domain.EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
	}

	s := domain.Settings{
		StoreDir:    f.Store.Dir,
		KeepBlobs:   f.Store.KeepBlobs,
		JSONLogs:    f.Log.JSON,
		Parallelism: f.Resolve.Parallelism,
	}
	if s.Parallelism < 1 {
		return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrSettingsLoadFailed, "parallelism must be positive"), KeyParallelism, s.Parallelism)
	}
	if s.StoreDir == "" {
		s.StoreDir = defaults.StoreDir
	}
	return s, nil
}

// EnvVar returns the environment variable overriding key, e.g. GRAPHCACHE_STORE_DIR.
func EnvVar(key string) string {
	return domain.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
