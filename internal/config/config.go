// Package config loads spvreflect settings from defaults, an optional config
// file and SPVREFLECT_ environment variables.
package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/spirv-reflect/errors"
	"github.com/wippyai/spirv-reflect/shaderfs"
	"github.com/wippyai/spirv-reflect/spirv"
)

const (
	// AppName is used for the config directory and environment prefix.
	AppName = "spvreflect"
	// EnvPrefix prefixes every environment override, e.g. SPVREFLECT_WORKERS.
	EnvPrefix = "SPVREFLECT"
	// ConfigFileName is the config file base name without extension.
	ConfigFileName = "config"
)

// Config holds every setting the CLI reads.
type Config struct {
	EntryPoint  string `mapstructure:"entry_point"`
	Pattern     string `mapstructure:"pattern"`
	LogLevel    string `mapstructure:"log_level"`
	Workers     int    `mapstructure:"workers"`
	Binding     uint32 `mapstructure:"binding"`
	ValidateIDs bool   `mapstructure:"validate"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		EntryPoint: spirv.DefaultEntryPoint,
		Pattern:    shaderfs.DefaultPattern,
		LogLevel:   "info",
		Workers:    runtime.NumCPU(),
	}
}

// Dir returns $XDG_CONFIG_HOME/spvreflect, falling back to ~/.config.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(errors.PhaseConfig, errors.KindNotFound, err, "home directory")
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName), nil
}

// New returns a viper instance with defaults and environment binding set up.
// Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("entry_point", d.EntryPoint)
	v.SetDefault("pattern", d.Pattern)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("binding", d.Binding)
	v.SetDefault("validate", d.ValidateIDs)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file into v and decodes the result. With an empty
// path the config directory is searched and a missing file is not an error;
// an explicit path must exist.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(errors.PhaseConfig, errors.KindNotFound, err, "read "+path)
		}
	} else {
		v.SetConfigName(ConfigFileName)
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !stderrors.As(err, &notFound) {
				return Config{}, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "parse config file")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the commands cannot run with.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Detail("workers must be at least 1, got %d", c.Workers).
			Build()
	}
	if c.Pattern == "" {
		return errors.InvalidInput(errors.PhaseConfig, "pattern must not be empty")
	}
	if _, err := filepath.Match(c.Pattern, ""); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "pattern "+c.Pattern)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "log_level "+c.LogLevel)
	}
	return lvl, nil
}
