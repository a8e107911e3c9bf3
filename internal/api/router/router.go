package router

import (
	"net/http"

	"github.com/5w1tchy/passcheck-api/internal/api/handlers"
	strengthapi "github.com/5w1tchy/passcheck-api/internal/api/handlers/strength"
)

func Router(sh *strengthapi.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// Root / liveness
	mux.HandleFunc("GET /", handlers.RootHandler)

	// Scoring surface (method-specific 1.22 patterns)
	mux.HandleFunc("POST /strength/analyze", sh.Analyze)
	mux.HandleFunc("POST /strength/generate", sh.Generate)

	return mux
}
