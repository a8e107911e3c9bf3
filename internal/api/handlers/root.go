package handlers

import (
	"net/http"

	"github.com/5w1tchy/passcheck-api/internal/api/httpx"
)

// RootHandler is the service banner, doubling as a liveness probe.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"service": "passcheck-api",
		"status":  "ok",
		"endpoints": []string{
			"POST /strength/analyze",
			"POST /strength/generate",
		},
	})
}
