package http

import (
	"net"
	"net/http"

	"github.com/MKhiriev/go-gift-catalog/internal/logger"
)

// withRateLimit throttles requests per client IP and route. When the limiter
// is unavailable the request is let through.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.rateLimiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		key := r.URL.Path + ":" + clientIP(r)
		allowed, err := h.rateLimiter.Allow(r.Context(), key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable")
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			log.Info().Str("key", key).Msg("rate limit exceeded")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
