package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/keshon/minigit/internal/fs"
)

const (
	EnvPrefix = "MINIGIT"

	KeyLogLevel     = "log_level"
	KeyObjectFormat = "object_format"

	DefaultLogLevel = "none"
)

// Settings are the tunables of one invocation.
type Settings struct {
	LogLevel     string
	ObjectFormat string
}

// LoadSettings resolves settings from defaults, MINIGIT_* environment
// variables and the repository config file when it exists.
//
// The object format recorded in the repository config file always wins:
// ids written by earlier invocations must stay resolvable.
func LoadSettings(fsys fs.FS, cfg *RepoConfig) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	s := &Settings{
		LogLevel:     v.GetString(KeyLogLevel),
		ObjectFormat: v.GetString(KeyObjectFormat),
	}

	if fsys != nil && cfg != nil && fsys.Exists(cfg.ConfigFile()) {
		file := viper.New()
		file.SetFs(fsys.Afero())
		file.SetConfigFile(cfg.ConfigFile())
		file.SetConfigType("yaml")
		if err := file.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %q: %w", cfg.ConfigFile(), err)
		}
		if file.IsSet(KeyObjectFormat) {
			s.ObjectFormat = file.GetString(KeyObjectFormat)
		}
		if s.LogLevel == "" {
			s.LogLevel = file.GetString(KeyLogLevel)
		}
	}

	if s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}
	if s.ObjectFormat == "" {
		s.ObjectFormat = DefaultHash
	}

	if err := ValidateHash(s.ObjectFormat); err != nil {
		return nil, err
	}
	return s, nil
}

// Save persists the repository-scoped settings into the repository config file.
func (s *Settings) Save(fsys fs.FS, cfg *RepoConfig) error {
	v := viper.New()
	v.SetFs(fsys.Afero())
	v.SetConfigType("yaml")
	v.Set(KeyObjectFormat, s.ObjectFormat)
	if err := v.WriteConfigAs(cfg.ConfigFile()); err != nil {
		return fmt.Errorf("failed to write config %q: %w", cfg.ConfigFile(), err)
	}
	return nil
}

// ValidateHash reports whether algo names a supported object format.
func ValidateHash(algo string) error {
	switch algo {
	case "sha1", "sha256":
		return nil
	default:
		return fmt.Errorf("unsupported object format %q", algo)
	}
}
