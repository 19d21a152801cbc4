package logging_test

import (
	"testing"

	"code.vegaprotocol.io/rgbwallet/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tcs := []struct {
		input    string
		expected logging.Level
	}{
		{input: "debug", expected: logging.DebugLevel},
		{input: "Info", expected: logging.InfoLevel},
		{input: "warn", expected: logging.WarnLevel},
		{input: "Warning", expected: logging.WarnLevel},
		{input: " error ", expected: logging.ErrorLevel},
	}

	for _, tc := range tcs {
		t.Run(tc.input, func(tt *testing.T) {
			level, err := logging.ParseLevel(tc.input)

			require.NoError(tt, err)
			assert.Equal(tt, tc.expected, level)
		})
	}

	t.Run("Unknown level fails", func(tt *testing.T) {
		_, err := logging.ParseLevel("verbose")

		require.Error(tt, err)
	})
}

func TestLevelStringRoundTrip(t *testing.T) {
	for _, level := range []logging.Level{logging.DebugLevel, logging.InfoLevel, logging.WarnLevel, logging.ErrorLevel} {
		parsed, err := logging.ParseLevel(level.String())

		require.NoError(t, err)
		assert.Equal(t, level, parsed)
	}
}

func TestNamedLoggerSharesLevel(t *testing.T) {
	// setup
	log := logging.NewTestLogger()
	child := log.Named("service").Named("handler")

	// when
	log.SetLevel(logging.ErrorLevel)

	// then
	assert.Equal(t, "service.handler", child.GetName())
	assert.Equal(t, logging.ErrorLevel, child.GetLevel())
}

func TestLoggerFromConfig(t *testing.T) {
	t.Run("Dev environment logs at debug", func(tt *testing.T) {
		log := logging.NewLoggerFromConfig(logging.Config{Environment: logging.EnvDev})

		assert.Equal(tt, logging.DebugLevel, log.GetLevel())
	})

	t.Run("Prod environment logs at info", func(tt *testing.T) {
		log := logging.NewLoggerFromConfig(logging.Config{Environment: logging.EnvProd})

		assert.Equal(tt, logging.InfoLevel, log.GetLevel())
	})
}
