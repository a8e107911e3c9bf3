package admin

import (
	"log"
	"net/http"

	"github.com/5w1tchy/passcheck-api/internal/api/httpx"
	"github.com/5w1tchy/passcheck-api/internal/api/middlewares"
	"github.com/5w1tchy/passcheck-api/internal/strength"
)

// Reload handles POST /admin/wordlist/reload: re-reads every configured
// external source, rebuilds the matcher, and swaps it in atomically.
// Sources are best-effort individually but the call fails if all
// configured sources fail, so a bad deploy doesn't silently shrink the list.
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var extras []string
	configured, failed := 0, 0

	if h.Words != nil {
		configured++
		words, err := h.Words.List(ctx)
		if err != nil {
			failed++
			log.Printf("[wordlist] database source failed: %v", err)
		} else {
			extras = append(extras, words...)
		}
	}
	if h.S3 != nil && h.S3Key != "" {
		configured++
		words, err := h.S3.FetchWordlist(ctx, h.S3Key)
		if err != nil {
			failed++
			log.Printf("[wordlist] object-store source failed: %v", err)
		} else {
			extras = append(extras, words...)
		}
	}

	if configured > 0 && failed == configured {
		writeError(w, http.StatusBadGateway, "all wordlist sources failed")
		return
	}

	m := strength.NewMatcher(extras)
	h.Provider.Swap(m)
	actor, _ := middlewares.AdminSubjectFrom(ctx)
	log.Printf("[wordlist] reloaded by %s: %d extra entries, matcher size %d", actor, len(extras), m.Size())

	httpx.OK(w, ReloadResponse{
		StaticEntries: strength.Default().Size(),
		ExtraEntries:  len(extras),
		MatcherSize:   m.Size(),
	})
}
