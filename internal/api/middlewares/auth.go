package middlewares

import (
	"errors"
	"net/http"
	"strings"

	jwtutil "github.com/5w1tchy/passcheck-api/internal/security/jwt"
)

// RequireAdmin verifies the Bearer JWT issued by the admin login endpoint
// and injects the admin subject into the request context.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("Authorization")
		if raw == "" {
			http.Error(w, "missing Authorization header", http.StatusUnauthorized)
			return
		}
		tokenStr, err := bearer(raw)
		if err != nil {
			http.Error(w, "invalid Authorization header", http.StatusUnauthorized)
			return
		}
		claims, err := jwtutil.ParseAdmin(tokenStr)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := WithAdminSubject(r.Context(), claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearer(h string) (string, error) {
	if !strings.HasPrefix(h, "Bearer ") && !strings.HasPrefix(h, "bearer ") {
		return "", errors.New("no bearer")
	}
	s := strings.TrimSpace(h[len("Bearer "):])
	if s == "" {
		return "", errors.New("empty bearer")
	}
	return s, nil
}
