package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"code.vegaprotocol.io/rgbwallet/config"
	"code.vegaprotocol.io/rgbwallet/logging"
	"code.vegaprotocol.io/rgbwallet/rgb/node"
	"code.vegaprotocol.io/rgbwallet/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("Saving then loading the default config succeeds", testSavingThenLoadingDefaultConfigSucceeds)
	t.Run("Saving over an existing file requires overwrite", testSavingOverExistingFileRequiresOverwrite)
	t.Run("Loading a missing file fails", testLoadingMissingFileFails)
	t.Run("Loading a partial file keeps the defaults", testLoadingPartialFileKeepsDefaults)
	t.Run("Loading an invalid file fails", testLoadingInvalidFileFails)
	t.Run("Loading a malformed file fails", testLoadingMalformedFileFails)
	t.Run("Reading an invalid file leaves the validation to the caller", testReadingInvalidFileLeavesValidation)
}

func TestWatcher(t *testing.T) {
	t.Run("Rewriting the file notifies the listeners", testRewritingFileNotifiesListeners)
}

func testSavingThenLoadingDefaultConfigSucceeds(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "rgbwallet", "config.toml")
	cfg := config.NewDefaultConfig()

	// when
	require.NoError(t, config.Save(path, &cfg, false))
	loaded, err := config.Load(path)

	// then
	require.NoError(t, err)
	assert.Equal(t, cfg, *loaded)
}

func testSavingOverExistingFileRequiresOverwrite(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.NewDefaultConfig()
	require.NoError(t, config.Save(path, &cfg, false))

	// when
	err := config.Save(path, &cfg, false)

	// then
	require.ErrorIs(t, err, config.ErrConfigFileExists)
	require.NoError(t, config.Save(path, &cfg, true))
}

func testLoadingMissingFileFails(t *testing.T) {
	// when
	_, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))

	// then
	require.ErrorIs(t, err, config.ErrConfigFileNotFound)
}

func testLoadingPartialFileKeepsDefaults(t *testing.T) {
	// given
	path := writeFile(t, `
LogLevel = "debug"

[Server]
  Port = 9090
  PathPrefix = "/rgb"

[Node]
  URL = "http://rgb-node:3001"
  Timeout = "10s"
`)

	// when
	cfg, err := config.Load(path)

	// then
	require.NoError(t, err)
	assert.Equal(t, logging.DebugLevel, cfg.LogLevel.Get())
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/rgb", cfg.Server.PathPrefix)
	assert.Equal(t, service.NewDefaultConfig().Host, cfg.Server.Host)
	assert.Equal(t, "http://rgb-node:3001", cfg.Node.URL)
	assert.Equal(t, 10*time.Second, cfg.Node.Timeout.Get())
	assert.Equal(t, node.NewDefaultConfig().MaxRetries, cfg.Node.MaxRetries)
}

func testLoadingInvalidFileFails(t *testing.T) {
	// given
	path := writeFile(t, `
[Server]
  Host = ""
`)

	// when
	_, err := config.Load(path)

	// then
	require.ErrorIs(t, err, service.ErrServerHostUnset)
}

func testReadingInvalidFileLeavesValidation(t *testing.T) {
	// given
	path := writeFile(t, `
[Node]
  URL = ""
`)

	// when
	cfg, err := config.Read(path)

	// then
	require.NoError(t, err)
	assert.Empty(t, cfg.Node.URL)
	require.ErrorIs(t, cfg.Validate(), node.ErrNodeURLUnset)

	cfg.Node.URL = "http://127.0.0.1:3001"
	require.NoError(t, cfg.Validate())
}

func testLoadingMalformedFileFails(t *testing.T) {
	// given
	path := writeFile(t, `LogLevel = "chatty"`)

	// when
	_, err := config.Load(path)

	// then
	require.Error(t, err)
}

func testRewritingFileNotifiesListeners(t *testing.T) {
	// given
	path := writeFile(t, `LogLevel = "info"`)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	// setup
	w, err := config.NewWatcher(ctx, logging.NewTestLogger(), path)
	require.NoError(t, err)
	initial := w.Get()
	assert.Equal(t, logging.InfoLevel, initial.LogLevel.Get())

	updates := make(chan config.Config, 1)
	w.OnConfigUpdate(func(cfg config.Config) {
		select {
		case updates <- cfg:
		default:
		}
	})

	// when
	require.NoError(t, os.WriteFile(path, []byte(`LogLevel = "error"`), 0o600))

	// then
	select {
	case cfg := <-updates:
		assert.Equal(t, logging.ErrorLevel, cfg.LogLevel.Get())
	case <-time.After(5 * time.Second):
		t.Fatal("the listener was not notified")
	}
	reloaded := w.Get()
	assert.Equal(t, logging.ErrorLevel, reloaded.LogLevel.Get())
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
