package strengthapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/5w1tchy/passcheck-api/internal/api/apperr"
	"github.com/5w1tchy/passcheck-api/internal/api/httpx"
	"github.com/5w1tchy/passcheck-api/internal/generator"
	"github.com/5w1tchy/passcheck-api/internal/strength"
)

// Generate handles POST /strength/generate. The body is optional; a missing
// or empty body means the default length.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	req := generateRequest{Length: generator.DefaultLength}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad request", "Invalid JSON body")
		return
	}
	if req.Length == 0 {
		req.Length = generator.DefaultLength
	}

	pwd, err := generator.New(req.Length)
	if err != nil {
		apperr.Field(w, r, "length", "invalid", err.Error())
		return
	}

	// Analyzed with the same matcher users get; a generated password that
	// somehow scored poorly would be visible immediately.
	res := h.Provider.Matcher().Analyze(pwd)

	httpx.OK(w, generateResponse{
		Password: pwd,
		Analysis: analyzeResponse{
			Result:      res,
			TimeToCrack: strength.EstimateTimeToCrack(pwd, res.Score),
		},
	})
}
