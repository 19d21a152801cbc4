package encoding

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"code.vegaprotocol.io/rgbwallet/logging"
)

var ErrNegativeDuration = errors.New("the duration should not be negative")

// Duration is a time.Duration written as text, e.g. "1m30s", in the toml
// file and on the command line. Negative values are rejected.
type Duration struct {
	time.Duration
}

func (d Duration) Get() time.Duration {
	return d.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if parsed < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeDuration, text)
	}
	d.Duration = parsed
	return nil
}

func (d *Duration) UnmarshalFlag(s string) error {
	return d.UnmarshalText([]byte(s))
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// LogLevel is a logging.Level written by name.
type LogLevel struct {
	logging.Level
}

func (l LogLevel) Get() logging.Level {
	return l.Level
}

func (l *LogLevel) UnmarshalText(text []byte) error {
	level, err := logging.ParseLevel(string(text))
	if err != nil {
		return err
	}
	l.Level = level
	return nil
}

func (l *LogLevel) UnmarshalFlag(s string) error {
	return l.UnmarshalText([]byte(s))
}

func (l LogLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Bool is a toggle that can be turned off from the command line, with
// --flag=false, which a plain bool flag can't.
type Bool bool

func (b *Bool) UnmarshalText(text []byte) error {
	v, err := strconv.ParseBool(string(text))
	if err != nil {
		return fmt.Errorf("only `true' and `false' are valid values, not `%s'", text)
	}
	*b = Bool(v)
	return nil
}

func (b *Bool) UnmarshalFlag(s string) error {
	return b.UnmarshalText([]byte(s))
}

func (b Bool) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatBool(bool(b))), nil
}
