package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides (KEEPER_BOOK_PATH, ...).
const EnvPrefix = "KEEPER"

// InitViper creates and returns a configured *viper.Viper.
// It sets defaults from NewDefaultConfig(), reads keeper.yaml from configDir
// (or the working directory and $HOME/.keeper when configDir is empty) and
// binds environment variables with the KEEPER_ prefix.
//
// Config precedence (highest to lowest):
//  1. CLI flags (once bound with BindPFlag)
//  2. Environment variables
//  3. keeper.yaml values
//  4. Defaults from NewDefaultConfig()
func InitViper(configDir string) (*viper.Viper, error) {
	v := viper.New()
	setViperDefaults(v)

	v.SetConfigName("keeper")
	v.SetConfigType("yaml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".keeper"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found errors are fine, defaults will apply.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

// Load decodes v into a validated Config.
func Load(v *viper.Viper) (*Config, error) {
	cfg := NewDefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setViperDefaults registers defaults from NewDefaultConfig() so every key
// is known to viper and can be overridden from the environment.
func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("book.path", d.Book.Path)
	v.SetDefault("book.file", d.Book.File)
	v.SetDefault("book.versioning", d.Book.Versioning)
	v.SetDefault("book.strict", d.Book.Strict)
	v.SetDefault("book.read_only", d.Book.ReadOnly)

	v.SetDefault("birthdays.window", d.Birthdays.Window)

	v.SetDefault("log.level", d.Log.Level)
}
