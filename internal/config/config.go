// Package config loads wls settings from an optional YAML file, WLS_*
// environment variables and command line flags, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/wls/ejbjar"
	"github.com/spf13/viper"
)

const (
	KeyNamespace       = "namespace"
	KeyLogVerbosity    = "log.verbosity"
	KeyLogFile         = "log.file"
	KeyServerAddr      = "server.addr"
	KeyServerMaxBody   = "server.max_body_bytes"
	KeyValidateStrict  = "validate.strict"
	KeyValidateEnabled = "validate.enabled"

	envPrefix = "WLS"

	DefaultAddr         = "localhost:8080"
	DefaultMaxBodyBytes = 4 << 20
)

var (
	ErrEmptyAddr        = errors.New("server.addr is empty")
	ErrInvalidBodyLimit = errors.New("server.max_body_bytes must be positive")
	ErrEmptyNamespace   = errors.New("namespace is empty")
)

type Config struct {
	Namespace string         `mapstructure:"namespace"`
	Log       LogConfig      `mapstructure:"log"`
	Server    ServerConfig   `mapstructure:"server"`
	Validate  ValidateConfig `mapstructure:"validate"`
}

type LogConfig struct {
	Verbosity int    `mapstructure:"verbosity"`
	File      string `mapstructure:"file"`
}

type ServerConfig struct {
	Addr         string `mapstructure:"addr"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
}

type ValidateConfig struct {
	Strict  bool `mapstructure:"strict"`
	Enabled bool `mapstructure:"enabled"`
}

// Check reports the first setting that cannot be used.
func (c *Config) Check() error {
	if c.Namespace == "" {
		return ErrEmptyNamespace
	}
	if c.Server.Addr == "" {
		return ErrEmptyAddr
	}
	if c.Server.MaxBodyBytes <= 0 {
		return ErrInvalidBodyLimit
	}
	return nil
}

// New returns a viper instance with defaults and environment bindings but
// no config file.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyNamespace, ejbjar.Namespace)
	v.SetDefault(KeyLogVerbosity, 0)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyServerAddr, DefaultAddr)
	v.SetDefault(KeyServerMaxBody, DefaultMaxBodyBytes)
	v.SetDefault(KeyValidateStrict, false)
	v.SetDefault(KeyValidateEnabled, true)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path. With an empty path the first of
// ./.wls.yaml and $HOME/.config/wls/config.yaml that exists is used; having
// neither is not an error.
func Load(path string) (*viper.Viper, error) {
	v := New()
	v.SetConfigType("yaml")

	if path == "" {
		path = findConfigFile()
		if path == "" {
			return v, nil
		}
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func findConfigFile() string {
	candidates := []string{".wls.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "wls", "config.yaml"))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// Decode unmarshals v into a Config and validates it.
func Decode(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Check(); err != nil {
		return nil, err
	}
	return &c, nil
}
