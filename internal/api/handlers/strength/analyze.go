package strengthapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/5w1tchy/passcheck-api/internal/api/apperr"
	"github.com/5w1tchy/passcheck-api/internal/api/httpx"
	"github.com/5w1tchy/passcheck-api/internal/metrics/usage"
	"github.com/5w1tchy/passcheck-api/internal/strength"
	"github.com/5w1tchy/passcheck-api/internal/validate"
)

// Analyze handles POST /strength/analyze.
// An empty password is not an error: it yields the fixed empty result.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad request", "Invalid JSON body")
		return
	}

	pwd, err := validate.NormalizePassword(req.Password)
	if err != nil {
		if errors.Is(err, validate.ErrPasswordTooLong) {
			apperr.Field(w, r, "password", "too_long", err.Error())
			return
		}
		apperr.WriteStatus(w, r, http.StatusUnprocessableEntity, "Validation failed", err.Error())
		return
	}

	res := h.Provider.Matcher().Analyze(pwd)
	usage.Enqueue(string(res.Level))

	httpx.OK(w, analyzeResponse{
		Result:      res,
		TimeToCrack: strength.EstimateTimeToCrack(pwd, res.Score),
	})
}
