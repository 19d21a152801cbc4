package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"code.vegaprotocol.io/rgbwallet/paths"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigPaths(t *testing.T) {
	t.Run("Joining config path succeeds", testConfigPathsJoiningConfigPathSucceeds)
	t.Run("Custom home holds the config under its config folder", testCustomHomeHoldsConfig)
	t.Run("Creating a config path creates its parent folder", testCreatingConfigPathCreatesParent)
}

func testConfigPathsJoiningConfigPathSucceeds(t *testing.T) {
	// when
	builtPath := paths.JoinConfigPath(paths.WalletConfigHome, "a", "b")

	// then
	assert.Equal(t, paths.ConfigPath(filepath.Join("rgbwallet", "a", "b")), builtPath)
	assert.Equal(t, filepath.Join("rgbwallet", "config.toml"), paths.WalletConfigFile.String())
}

func testCustomHomeHoldsConfig(t *testing.T) {
	// given
	home := t.TempDir()
	p := paths.New(home)

	// when
	path := p.ConfigPathFor(paths.WalletConfigFile)

	// then
	assert.Equal(t, filepath.Join(home, "config", "rgbwallet", "config.toml"), path)
}

func testCreatingConfigPathCreatesParent(t *testing.T) {
	// given
	home := t.TempDir()
	p := paths.New(home)

	// when
	path, err := p.CreateConfigPathFor(paths.WalletConfigFile)

	// then
	require.NoError(t, err)
	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
