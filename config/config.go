//lint:file-ignore SA5008 duplicated struct tags are ok for config

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"code.vegaprotocol.io/rgbwallet/config/encoding"
	"code.vegaprotocol.io/rgbwallet/logging"
	"code.vegaprotocol.io/rgbwallet/metrics"
	"code.vegaprotocol.io/rgbwallet/rgb/node"
	"code.vegaprotocol.io/rgbwallet/service"

	"github.com/BurntSushi/toml"
)

var (
	ErrConfigFileNotFound = errors.New("the configuration file does not exist, run `init` first")
	ErrConfigFileExists   = errors.New("the configuration file already exists, use --force to overwrite it")
)

// Config ties together all other application configuration types.
type Config struct {
	Logging  logging.Config    `group:"Logging" namespace:"logging"`
	LogLevel encoding.LogLevel `long:"log-level" description:"Level of the logs: debug, info, warning, error"`
	Server   service.Config    `group:"Server" namespace:"server"`
	Node     node.Config       `group:"Node" namespace:"node"`
	Metrics  metrics.Config    `group:"Metrics" namespace:"metrics"`
}

// NewDefaultConfig returns the configuration used when no file overrides a
// value.
func NewDefaultConfig() Config {
	return Config{
		Logging:  logging.NewDefaultConfig(),
		LogLevel: encoding.LogLevel{Level: logging.InfoLevel},
		Server:   service.NewDefaultConfig(),
		Node:     node.NewDefaultConfig(),
		Metrics:  metrics.NewDefaultConfig(),
	}
}

// Validate checks every section, the first invalid one is reported.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("invalid server configuration: %w", err)
	}
	if err := c.Node.Validate(); err != nil {
		return fmt.Errorf("invalid node configuration: %w", err)
	}
	if err := c.Metrics.Validate(); err != nil {
		return fmt.Errorf("invalid metrics configuration: %w", err)
	}
	return nil
}

// Load reads the file at path on top of the default configuration, and
// validates the result.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read is Load without the validation, for callers completing the
// configuration before validating it.
func Read(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if err := readInto(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes cfg at path. An existing file is only replaced when overwrite is
// set.
func Save(path string, cfg *Config, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return ErrConfigFileExists
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("couldn't create the configuration folder: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("couldn't open the configuration file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("couldn't write the configuration file: %w", err)
	}
	return nil
}

func readInto(path string, cfg *Config) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
		}
		return fmt.Errorf("couldn't read the configuration file: %w", err)
	}
	if _, err := toml.Decode(string(buf), cfg); err != nil {
		return fmt.Errorf("couldn't decode the configuration file %s: %w", path, err)
	}
	return nil
}
