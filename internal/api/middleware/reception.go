package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/api/handlers"
)

// ReceptionKeyHeader authenticates the reception reconciliation
// endpoints. The key is shared configuration, not a per-user credential.
const ReceptionKeyHeader = "X-Reception-Key"

// ReceptionAuth guards the attempt journal endpoints with the shared
// reception key.
func ReceptionAuth(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplied := r.Header.Get(ReceptionKeyHeader)
			if supplied == "" {
				handlers.RespondUnauthorized(w, "missing reception key")
				return
			}
			if subtle.ConstantTimeCompare([]byte(supplied), []byte(key)) != 1 {
				handlers.RespondForbidden(w, "invalid reception key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
