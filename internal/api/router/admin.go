package router

import (
	"net/http"

	admin "github.com/5w1tchy/passcheck-api/internal/api/handlers/admin"
	"github.com/5w1tchy/passcheck-api/internal/api/middlewares"
	"github.com/redis/go-redis/v9"
)

// MountAdmin wires all /admin/* endpoints. Login sits behind its own redis
// window; everything else requires the admin bearer token.
func MountAdmin(mux *http.ServeMux, adminH *admin.Handler, rdb *redis.Client) {
	gate := func(next http.Handler) http.Handler {
		return middlewares.RequireAdmin(next)
	}

	mux.Handle("POST /admin/login",
		middlewares.AdminLoginRateLimit(rdb, http.HandlerFunc(adminH.Login)))

	mux.Handle("POST /admin/wordlist/reload", gate(http.HandlerFunc(adminH.Reload)))
	mux.Handle("GET /admin/stats", gate(http.HandlerFunc(adminH.Stats)))
}
