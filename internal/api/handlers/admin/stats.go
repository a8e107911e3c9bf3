package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/5w1tchy/passcheck-api/internal/metrics/usage"
)

const StatsCacheKey = "admin:stats"
const StatsCacheDuration = 30 * time.Second

// GET /admin/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.getCachedStats(ctx, w) {
		return
	}

	stats, err := h.fetchStats(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.cacheAndWriteStats(ctx, w, stats)
}

func (h *Handler) getCachedStats(ctx context.Context, w http.ResponseWriter) bool {
	if h.RDB == nil {
		return false
	}

	cached, err := h.RDB.Get(ctx, StatsCacheKey).Result()
	if err != nil || cached == "" {
		return false
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(cached))
	return true
}

func (h *Handler) fetchStats(ctx context.Context) (*StatsResponse, error) {
	stats := &StatsResponse{
		MatcherSize:   h.Provider.Matcher().Size(),
		AnalysesToday: map[string]int64{},
	}

	if h.RDB != nil {
		counts, err := usage.Today(ctx, h.RDB)
		if err != nil {
			return nil, err
		}
		stats.AnalysesToday = counts
	}

	if h.Words != nil && h.DB != nil {
		if counter, ok := h.Words.(interface {
			Count(context.Context) (int, error)
		}); ok {
			if n, err := counter.Count(ctx); err == nil {
				stats.WordlistDBSize = &n
			}
		}
	}

	return stats, nil
}

func (h *Handler) cacheAndWriteStats(ctx context.Context, w http.ResponseWriter, stats *StatsResponse) {
	body, err := json.Marshal(stats)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if h.RDB != nil {
		_ = h.RDB.Set(ctx, StatsCacheKey, body, StatsCacheDuration).Err()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
