package admin

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/5w1tchy/passcheck-api/internal/api/httpx"
	jwtutil "github.com/5w1tchy/passcheck-api/internal/security/jwt"
	"github.com/5w1tchy/passcheck-api/internal/security/password"
)

// Login handles POST /admin/login: the single admin credential is an
// argon2id PHC string provisioned via env, never stored by this service.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ErrorCode(w, http.StatusBadRequest, "bad_request", "Invalid JSON")
		return
	}

	phc := os.Getenv("ADMIN_PASSWORD_HASH")
	ok, needsRehash, err := password.Verify(req.Password, phc)
	if err != nil || !ok {
		httpx.ErrorCode(w, http.StatusUnauthorized, "invalid_credentials", "Invalid password")
		return
	}
	if needsRehash {
		// env-provisioned hash can't be rotated here; flag it for the operator
		log.Println("[admin] ADMIN_PASSWORD_HASH is below current argon2 policy; re-provision it")
	}

	ttl := jwtutil.DefaultAdminTTL()
	access, _, err := jwtutil.SignAdmin("admin", ttl)
	if err != nil {
		httpx.ErrorCode(w, http.StatusInternalServerError, "jwt_error", "Failed to sign access token")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, LoginResponse{
		AccessToken: access,
		ExpiresIn:   int64(ttl.Seconds()),
	})
}
