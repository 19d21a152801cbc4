package http

import (
	"net"
	"net/http"
	"strings"
)

// RemoteAddr returns the IP of the caller. The first X-Forwarded-For entry,
// when set by a proxy, takes precedence over the connection address.
func RemoteAddr(r *http.Request) string {
	if forward := r.Header.Get("X-Forwarded-For"); forward != "" {
		first, _, _ := strings.Cut(forward, ",")
		if ip := strings.TrimSpace(first); net.ParseIP(ip) != nil {
			return ip
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
