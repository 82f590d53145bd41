package config

import (
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

type Config struct {
	Environment string `koanf:"environment"`
	Hostname    string `koanf:"-"`
	ServerHost  string `koanf:"server_host"`
	ServerPort  int    `koanf:"server_port"`
}

const (
	envPrefix     = "SHELFMARK_"
	configFileENV = "CONFIG_FILE"
)

// New loads configuration in three layers: built-in defaults, an optional
// YAML file named by CONFIG_FILE, and SHELFMARK_-prefixed environment
// variables. Later layers win.
func New() (*Config, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := &Config{
		Environment: "development",
		Hostname:    hostname,
		ServerHost:  "127.0.0.1",
		ServerPort:  9780,
	}

	k := koanf.New(".")

	if path := os.Getenv(configFileENV); path != "" {
		err := k.Load(file.Provider(path), yaml.Parser())
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.WithStack(err)
		}
	}

	err = k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	return cfg, nil
}
