package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey struct{}

// ActorFromContext returns the session subject set by Middleware, or
// the default Subject when the request skipped authentication (TUI and
// tests call services directly).
func ActorFromContext(ctx context.Context) string {
	if actor, ok := ctx.Value(contextKey{}).(string); ok {
		return actor
	}

	return Subject
}

// RefreshHeader carries the re-issued token back to the client on every
// authenticated response.
const RefreshHeader = "X-Session-Token"

// Middleware enforces a valid session token on every request in the
// group and slides the idle window by re-issuing the token.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			http.Error(w, "missing session token", http.StatusUnauthorized)
			return
		}

		subject, refreshed, err := s.Verify(token)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		w.Header().Set(RefreshHeader, refreshed)

		ctx := context.WithValue(r.Context(), contextKey{}, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
