package maintenance

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/5w1tchy/passcheck-api/internal/metrics/usage"
)

// StartUsageRetention runs a daily job that deletes usage counter hashes
// older than keepDays. The hashes also carry a TTL; this sweep is the
// belt for deployments where redis persistence outlives the TTL config.
// Call once at startup: go-routine is managed internally.
func StartUsageRetention(ctx context.Context, rdb *redis.Client, keepDays int) {
	if keepDays <= 0 {
		keepDays = 30
	}
	go func() {
		runOnce := func(ctx context.Context) {
			cutoff := time.Now().UTC().AddDate(0, 0, -keepDays)
			var deleted int
			// bounded scan: key space is one key per day
			for d := 0; d < 366; d++ {
				day := cutoff.AddDate(0, 0, -d)
				key := usage.DayKey(day)
				n, err := rdb.Del(ctx, key).Result()
				if err != nil {
					log.Printf("[retention] delete %s failed: %v", key, err)
					return
				}
				deleted += int(n)
			}
			if deleted > 0 {
				log.Printf("[retention] pruned %d expired usage keys", deleted)
			}
		}

		tk := time.NewTicker(24 * time.Hour)
		defer tk.Stop()
		runOnce(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-tk.C:
				runOnce(ctx)
			}
		}
	}()
}
