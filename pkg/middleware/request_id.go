package middleware

import (
	"net/http"

	"moviehub/pkg/utils"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses a well-formed inbound X-Request-ID or generates one, and
// stores it in the request context.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if !utils.ValidRequestID(id) {
				id = utils.GenerateRequestID()
			}

			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(utils.SetRequestIDContext(r.Context(), id)))
		})
	}
}
