package middleware

import (
	"fmt"
	"net"
	"net/http"

	internal_errors "github.com/itchan-dev/forumapi/internal/errors"
	"github.com/itchan-dev/forumapi/internal/middleware/ratelimiter"
	"github.com/itchan-dev/forumapi/internal/utils"
)

// RateLimit rejects requests with 429 once the bucket for the request identity is empty.
func RateLimit(rl *ratelimiter.KeyedRateLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, r, internal_errors.Invariant(err.Error()))
				return
			}
			if !rl.Allow(identity) {
				utils.WriteErrorAndStatusCode(w, r, internal_errors.TooManyRequests("terlalu banyak permintaan, coba lagi nanti"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetIP extracts the client ip from RemoteAddr. Forwarding headers are not trusted.
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("invalid IP address: %s", ip)
	}
	return ip, nil
}
