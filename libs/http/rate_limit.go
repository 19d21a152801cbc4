package http

import (
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"code.vegaprotocol.io/rgbwallet/config/encoding"

	"golang.org/x/time/rate"
)

var (
	ErrInvalidRequestsPerSecond = errors.New("the rate limit requests per second should be greater than 0")
	ErrInvalidBurst             = errors.New("the rate limit burst should be greater than 0")
)

const defaultIdleTTL = 10 * time.Minute

type RateLimitConfig struct {
	Enabled           encoding.Bool `long:"enabled" choice:"true" choice:"false" description:"Limit the number of requests per remote IP"`
	RequestsPerSecond float64       `long:"requests-per-second" description:"Sustained requests per second allowed for a single IP"`
	Burst             int           `long:"burst" description:"Number of requests a single IP can issue at once"`
	AllowList         []string      `long:"allow-list" description:"a list of ip/subnets never limited, e.g. 10.0.0.0/8, 192.168.0.0/16"`
}

func NewDefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:           false,
		RequestsPerSecond: 10,
		Burst:             20,
	}
}

func (c RateLimitConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.RequestsPerSecond <= 0 {
		return ErrInvalidRequestsPerSecond
	}
	if c.Burst <= 0 {
		return ErrInvalidBurst
	}
	for _, allowItem := range c.AllowList {
		if _, _, err := net.ParseCIDR(allowItem); err != nil {
			return fmt.Errorf("failed to parse AllowList entry %q: %w", allowItem, err)
		}
	}
	return nil
}

// RateLimit applies a token bucket per IP. Idle buckets are evicted
// periodically, on the request path.
type RateLimit struct {
	limit     rate.Limit
	burst     int
	allowList []net.IPNet
	idleTTL   time.Duration

	mu     sync.Mutex
	byIP   map[string]*bucket
	hits   uint64
	nowFun func() time.Time
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimit(cfg RateLimitConfig) (*RateLimit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	allowList := make([]net.IPNet, 0, len(cfg.AllowList))
	for _, allowItem := range cfg.AllowList {
		_, ipnet, _ := net.ParseCIDR(allowItem)
		allowList = append(allowList, *ipnet)
	}

	return &RateLimit{
		limit:     rate.Limit(cfg.RequestsPerSecond),
		burst:     cfg.Burst,
		allowList: allowList,
		idleTTL:   defaultIdleTTL,
		byIP:      map[string]*bucket{},
		nowFun:    time.Now,
	}, nil
}

// Allow reports whether one more request from ip can be served now.
func (r *RateLimit) Allow(ip string) bool {
	if ip == "" || r.isAllowListed(ip) {
		return true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFun()
	b, ok := r.byIP[ip]
	if !ok {
		b = &bucket{
			limiter: rate.NewLimiter(r.limit, r.burst),
		}
		r.byIP[ip] = b
	}
	b.lastSeen = now
	allowed := b.limiter.AllowN(now, 1)

	r.hits++
	if r.hits%512 == 0 {
		cutoff := now.Add(-r.idleTTL)
		for k, v := range r.byIP {
			if v.lastSeen.Before(cutoff) {
				delete(r.byIP, k)
			}
		}
	}

	return allowed
}

func (r *RateLimit) isAllowListed(ip string) bool {
	netIP := net.ParseIP(ip)
	if netIP == nil {
		return false
	}
	for _, allowItem := range r.allowList {
		if allowItem.Contains(netIP) {
			return true
		}
	}
	return false
}
