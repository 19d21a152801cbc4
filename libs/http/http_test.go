package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	vhttp "code.vegaprotocol.io/rgbwallet/libs/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimit(t *testing.T) {
	t.Run("Requests beyond the burst are refused", testRequestsBeyondBurstAreRefused)
	t.Run("Each IP has its own bucket", testEachIPHasItsOwnBucket)
	t.Run("Allow-listed IPs are never refused", testAllowListedIPsAreNeverRefused)
	t.Run("Invalid configuration is rejected", testInvalidRateLimitConfigIsRejected)
}

func testRequestsBeyondBurstAreRefused(t *testing.T) {
	rl, err := vhttp.NewRateLimit(vhttp.RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: 0.001,
		Burst:             2,
	})
	require.NoError(t, err)

	assert.True(t, rl.Allow("10.1.1.1"))
	assert.True(t, rl.Allow("10.1.1.1"))
	assert.False(t, rl.Allow("10.1.1.1"))
}

func testEachIPHasItsOwnBucket(t *testing.T) {
	rl, err := vhttp.NewRateLimit(vhttp.RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: 0.001,
		Burst:             1,
	})
	require.NoError(t, err)

	assert.True(t, rl.Allow("10.1.1.1"))
	assert.False(t, rl.Allow("10.1.1.1"))
	assert.True(t, rl.Allow("10.1.1.2"))
}

func testAllowListedIPsAreNeverRefused(t *testing.T) {
	rl, err := vhttp.NewRateLimit(vhttp.RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: 0.001,
		Burst:             1,
		AllowList:         []string{"192.168.0.0/16"},
	})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow("192.168.3.4"))
	}
}

func testInvalidRateLimitConfigIsRejected(t *testing.T) {
	_, err := vhttp.NewRateLimit(vhttp.RateLimitConfig{Enabled: true, RequestsPerSecond: 0, Burst: 1})
	assert.ErrorIs(t, err, vhttp.ErrInvalidRequestsPerSecond)

	_, err = vhttp.NewRateLimit(vhttp.RateLimitConfig{Enabled: true, RequestsPerSecond: 1, Burst: 0})
	assert.ErrorIs(t, err, vhttp.ErrInvalidBurst)

	_, err = vhttp.NewRateLimit(vhttp.RateLimitConfig{Enabled: true, RequestsPerSecond: 1, Burst: 1, AllowList: []string{"not-a-cidr"}})
	assert.Error(t, err)

	assert.NoError(t, vhttp.RateLimitConfig{Enabled: false}.Validate())
}

func TestRemoteAddr(t *testing.T) {
	tcs := []struct {
		name       string
		remoteAddr string
		forwarded  string
		expected   string
	}{
		{
			name:       "connection address",
			remoteAddr: "10.0.0.1:5555",
			expected:   "10.0.0.1",
		}, {
			name:       "forwarded address takes precedence",
			remoteAddr: "10.0.0.1:5555",
			forwarded:  "203.0.113.7, 10.0.0.1",
			expected:   "203.0.113.7",
		}, {
			name:       "invalid forwarded address is ignored",
			remoteAddr: "10.0.0.1:5555",
			forwarded:  "garbage",
			expected:   "10.0.0.1",
		}, {
			name:       "address without port",
			remoteAddr: "10.0.0.1",
			expected:   "10.0.0.1",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(tt *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tc.remoteAddr
			if tc.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tc.forwarded)
			}

			assert.Equal(tt, tc.expected, vhttp.RemoteAddr(r))
		})
	}
}

func TestAllowedOrigin(t *testing.T) {
	assert.True(t, vhttp.AllowedOrigin(nil)("https://anything.io"))
	assert.True(t, vhttp.AllowedOrigin([]string{"*"})("https://anything.io"))

	allowed := vhttp.AllowedOrigin([]string{"https://wallet.example.com"})
	assert.True(t, allowed("https://wallet.example.com"))
	assert.True(t, allowed("http://wallet.example.com"))
	assert.False(t, allowed("https://evil.example.com"))
}

func TestCORSHandler(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := vhttp.CORSHandler(vhttp.CORSConfig{AllowedOrigins: []string{"https://wallet.example.com"}}, next)

	r := httptest.NewRequest(http.MethodGet, "/wallet/address", nil)
	r.Header.Set("Origin", "https://wallet.example.com")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, "https://wallet.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	r = httptest.NewRequest(http.MethodGet, "/wallet/address", nil)
	r.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
