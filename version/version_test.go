package version_test

import (
	"testing"

	"code.vegaprotocol.io/rgbwallet/version"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	info := version.GetInfo()

	assert.Equal(t, version.Get(), info.Version)
	assert.Equal(t, version.GetCommitHash(), info.Hash)
	assert.NotEmpty(t, info.Version)
}
