package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"code.vegaprotocol.io/rgbwallet/config"
	vclose "code.vegaprotocol.io/rgbwallet/libs/close"
	"code.vegaprotocol.io/rgbwallet/logging"
	"code.vegaprotocol.io/rgbwallet/paths"
	"code.vegaprotocol.io/rgbwallet/rgb/node"
	"code.vegaprotocol.io/rgbwallet/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type CommandSuite struct{}

func (suite *CommandSuite) RunMain(ctx context.Context, format string, args ...interface{}) ([]byte, error) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	cmd := fmt.Sprintf(format, args...)
	os.Args = append([]string{"rgbwallet"}, strings.Fields(cmd)...)
	err := Main(ctx)

	_ = w.Close()
	out, _ := io.ReadAll(r)
	os.Stdout = old

	return out, err
}

func TestSuite(t *testing.T) {
	s := &CommandSuite{}

	t.Run("Version", s.TestVersion)
	t.Run("Init", s.TestInit)
	t.Run("Run", s.TestRun)
	t.Run("Run with flags completing the file", s.TestRunWithFlagsCompletingFile)
}

func TestShutdown(t *testing.T) {
	t.Run("A failing serve loop is fatal", testFailingServeLoopIsFatal)
	t.Run("Cancelling the context stops gracefully", testCancellingContextStopsGracefully)
}

func (suite *CommandSuite) TestVersion(t *testing.T) {
	out, err := suite.RunMain(context.Background(), "version")
	require.NoError(t, err)
	assert.Contains(t, string(out), "RGB wallet v")

	out, err = suite.RunMain(context.Background(), "version --output json")
	require.NoError(t, err)
	assert.Contains(t, string(out), `"version":"v`)
}

func (suite *CommandSuite) TestInit(t *testing.T) {
	home := t.TempDir()

	out, err := suite.RunMain(context.Background(), "init --home %s", home)
	require.NoError(t, err)
	assert.Contains(t, string(out), "configuration written at")

	_, err = suite.RunMain(context.Background(), "init --home %s", home)
	assert.ErrorIs(t, err, config.ErrConfigFileExists)

	_, err = suite.RunMain(context.Background(), "init --home %s --force", home)
	require.NoError(t, err)
}

func (suite *CommandSuite) TestRun(t *testing.T) {
	home := t.TempDir()

	_, err := suite.RunMain(context.Background(), "init --home %s", home)
	require.NoError(t, err)

	_, err = suite.RunMain(context.Background(), "run --home %s", t.TempDir())
	assert.ErrorIs(t, err, config.ErrConfigFileNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	go func() { time.Sleep(200 * time.Millisecond); cancel() }()
	_, err = suite.RunMain(ctx, "run --home %s --server.host=127.0.0.1 --server.port=0", home)
	require.NoError(t, err)
}

func (suite *CommandSuite) TestRunWithFlagsCompletingFile(t *testing.T) {
	home := t.TempDir()

	_, err := suite.RunMain(context.Background(), "init --home %s", home)
	require.NoError(t, err)

	cfgPath := paths.New(home).ConfigPathFor(paths.WalletConfigFile)
	require.NoError(t, os.WriteFile(cfgPath, []byte("[Node]\n  URL = \"\"\n"), 0o600))

	_, err = suite.RunMain(context.Background(), "run --home %s --server.host=127.0.0.1 --server.port=0", home)
	require.ErrorIs(t, err, node.ErrNodeURLUnset)

	ctx, cancel := context.WithCancel(context.Background())
	go func() { time.Sleep(200 * time.Millisecond); cancel() }()
	_, err = suite.RunMain(ctx, "run --home %s --server.host=127.0.0.1 --server.port=0 --node.url=http://127.0.0.1:3001", home)
	require.NoError(t, err)
}

func testFailingServeLoopIsFatal(t *testing.T) {
	// given
	serveErr := make(chan error, 1)
	serveErr <- fmt.Errorf("%w: accept tcp: use of closed network connection", service.ErrServe)

	stopped := false
	closer := vclose.NewCloser()
	closer.Add("wallet server", func() error {
		stopped = true
		return nil
	})

	// when
	err := shutdown(context.Background(), logging.NewTestLogger(), serveErr, closer)

	// then
	require.ErrorIs(t, err, service.ErrServe)
	assert.True(t, stopped)
}

func testCancellingContextStopsGracefully(t *testing.T) {
	// given
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	errStop := errors.New("already closed")
	closer := vclose.NewCloser()
	closer.Add("wallet server", func() error { return nil })

	// when
	err := shutdown(ctx, logging.NewTestLogger(), make(chan error), closer)

	// then
	require.NoError(t, err)

	// a failing stop is reported
	closer.Add("metrics server", func() error { return errStop })
	err = shutdown(ctx, logging.NewTestLogger(), make(chan error), closer)
	require.ErrorIs(t, err, errStop)
}
