package node

import (
	"errors"
	"net/url"
	"time"

	"code.vegaprotocol.io/rgbwallet/config/encoding"
)

var (
	ErrNodeURLUnset      = errors.New("the node URL is unset")
	ErrInvalidNodeURL    = errors.New("the node URL is invalid")
	ErrInvalidTimeout    = errors.New("the node request timeout should be greater than 0")
	ErrInvalidRetryDelay = errors.New("the node retry interval should be greater than 0")
)

type Config struct {
	URL           string            `long:"url" description:"Base URL of the RGB node API"`
	Token         string            `long:"token" description:"Bearer token sent to the RGB node"`
	Timeout       encoding.Duration `long:"timeout" description:"Timeout of a single request to the node, e.g. 30s"`
	MaxRetries    uint64            `long:"max-retries" description:"Maximum retries of read-only requests when the node is unreachable"`
	RetryInterval encoding.Duration `long:"retry-interval" description:"Initial interval between two retries, e.g. 500ms"`
}

func NewDefaultConfig() Config {
	return Config{
		URL:           "http://127.0.0.1:3001",
		Timeout:       encoding.Duration{Duration: 2 * time.Minute},
		MaxRetries:    3,
		RetryInterval: encoding.Duration{Duration: 500 * time.Millisecond},
	}
}

func (c *Config) Validate() error {
	if c.URL == "" {
		return ErrNodeURLUnset
	}
	u, err := url.Parse(c.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidNodeURL
	}
	if c.Timeout.Get() <= 0 {
		return ErrInvalidTimeout
	}
	if c.RetryInterval.Get() <= 0 {
		return ErrInvalidRetryDelay
	}
	return nil
}
