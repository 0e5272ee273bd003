package middleware

import (
	"net/http"

	"moviehub/pkg/metrics"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimit caps inbound requests with one token bucket shared by all
// clients.
func RateLimit(config utils.LimiterConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(config.RPS), config.Burst)

	return func(next http.Handler) http.Handler {
		if !config.Enabled {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				metrics.RateLimited.Inc()
				logger.Warn("Rate limit exceeded",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr),
				)
				utils.ResponseTooManyRequests(w, "Rate limit exceeded, please slow down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
