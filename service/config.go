package service

import (
	"errors"
	"fmt"
	"strings"

	vhttp "code.vegaprotocol.io/rgbwallet/libs/http"
)

var (
	ErrServerHostUnset   = errors.New("the service host is unset")
	ErrServerPortInvalid = errors.New("the service port should be between 0 and 65535")
	ErrInvalidPathPrefix = errors.New("the path prefix should start with a slash and not end with one")
)

type Config struct {
	Host       string                `long:"host" description:"Host the API binds to"`
	Port       int                   `long:"port" description:"Port the API listens on, 0 picks a free one"`
	PathPrefix string                `long:"path-prefix" description:"Prefix of every route, e.g. /rgb"`
	CORS       vhttp.CORSConfig      `group:"CORS" namespace:"cors"`
	RateLimit  vhttp.RateLimitConfig `group:"RateLimit" namespace:"ratelimit"`
}

func NewDefaultConfig() Config {
	return Config{
		Host:      "0.0.0.0",
		Port:      8080,
		CORS:      vhttp.NewDefaultCORSConfig(),
		RateLimit: vhttp.NewDefaultRateLimitConfig(),
	}
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%v", c.Host, c.Port)
}

func (c Config) String() string {
	return fmt.Sprintf("http://%s%s", c.Address(), c.PathPrefix)
}

// Validate checks the values set in the server config file returning an error is anything is awry.
func (c Config) Validate() error {
	if c.Host == "" {
		return ErrServerHostUnset
	}
	if c.Port < 0 || c.Port > 65535 {
		return ErrServerPortInvalid
	}
	if c.PathPrefix != "" && (!strings.HasPrefix(c.PathPrefix, "/") || strings.HasSuffix(c.PathPrefix, "/")) {
		return ErrInvalidPathPrefix
	}
	if err := c.RateLimit.Validate(); err != nil {
		return fmt.Errorf("invalid rate limit configuration: %w", err)
	}
	return nil
}
