package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/giufus/workout-streak-bot/internal/api/apierr"
)

// AdminAuth guards privileged endpoints with a bearer token.
// An empty configured token disables the endpoints entirely rather than
// leaving them open.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				apierr.WriteError(w, apierr.NewForbiddenError())
				return
			}

			presented, ok := bearerToken(r)
			if !ok {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				apierr.WriteError(w, apierr.NewForbiddenError())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return "", false
	}
	return auth[len(prefix):], true
}
