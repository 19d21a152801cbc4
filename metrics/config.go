package metrics

import (
	"errors"
	"strings"

	"code.vegaprotocol.io/rgbwallet/config/encoding"
)

var (
	ErrInvalidPort = errors.New("the metrics port should be between 1 and 65535")
	ErrInvalidPath = errors.New("the metrics path should start with a slash")
)

type Config struct {
	Enabled encoding.Bool `long:"enabled" choice:"true" choice:"false" description:"Expose the prometheus metrics"`
	Host    string        `long:"host" description:"Host the metrics server binds to"`
	Port    int           `long:"port" description:"Port the metrics server listens on"`
	Path    string        `long:"path" description:"Path the metrics are exposed under"`
}

func NewDefaultConfig() Config {
	return Config{
		Enabled: false,
		Host:    "127.0.0.1",
		Port:    2112,
		Path:    "/metrics",
	}
}

func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Port <= 0 || c.Port > 65535 {
		return ErrInvalidPort
	}
	if !strings.HasPrefix(c.Path, "/") {
		return ErrInvalidPath
	}
	return nil
}
