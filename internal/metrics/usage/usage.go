// Package usage counts analysis outcomes per strength level, per day.
// Only the level ever leaves the handler; passwords are never recorded.
package usage

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type event struct {
	level string
	at    time.Time
}

var (
	rdbRef *redis.Client
	ch     chan event
	done   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
)

// Start spins up N workers with a buffered channel.
// Suggested: buf=10000, workers=2
func Start(rdb *redis.Client, buf, workers int) {
	once.Do(func() {
		rdbRef = rdb
		ch = make(chan event, buf)
		done = make(chan struct{})
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go worker()
		}
	})
}

// Enqueue tries to queue an analysis event without blocking.
// If the buffer is full, the event is dropped (acceptable for metrics).
func Enqueue(level string) {
	if level == "" || ch == nil {
		return
	}
	ev := event{level: level, at: time.Now().UTC()}
	select {
	case ch <- ev:
	default:
		// buffer full; drop
	}
}

// Shutdown signals workers to stop, flushes remaining events, and waits.
func Shutdown() {
	if done == nil {
		return
	}
	close(done)
	wg.Wait()
}

const (
	batchSize  = 100
	flushEvery = 250 * time.Millisecond
	writeTO    = 500 * time.Millisecond
	keyPrefix  = "usage:"
	keyTTL     = 35 * 24 * time.Hour
)

// DayKey returns the redis hash key holding counters for a given day.
func DayKey(t time.Time) string {
	return keyPrefix + t.UTC().Format("2006-01-02")
}

func worker() {
	defer wg.Done()
	tk := time.NewTicker(flushEvery)
	defer tk.Stop()

	batch := make([]event, 0, batchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		_ = flushBatch(batch) // best-effort; errors are ignored for metrics
		batch = batch[:0]
	}

	for {
		select {
		case <-done:
			// drain quickly then flush
			for {
				select {
				case ev := <-ch:
					batch = append(batch, ev)
					if len(batch) >= batchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		case ev := <-ch:
			batch = append(batch, ev)
			if len(batch) >= batchSize {
				flush()
			}
		case <-tk.C:
			flush()
		}
	}
}

// foldCounts collapses a batch into per-day, per-level increments.
func foldCounts(batch []event) map[string]map[string]int64 {
	counts := make(map[string]map[string]int64)
	for _, ev := range batch {
		key := DayKey(ev.at)
		if counts[key] == nil {
			counts[key] = make(map[string]int64)
		}
		counts[key][ev.level]++
	}
	return counts
}

// flushBatch folds the batch into per-day level counters with one pipeline.
func flushBatch(batch []event) error {
	if len(batch) == 0 || rdbRef == nil {
		return nil
	}
	counts := foldCounts(batch)

	ctx, cancel := context.WithTimeout(context.Background(), writeTO)
	defer cancel()

	pipe := rdbRef.Pipeline()
	for key, byLevel := range counts {
		for level, n := range byLevel {
			pipe.HIncrBy(ctx, key, level, n)
		}
		pipe.Expire(ctx, key, keyTTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Today reads the current day's counters. Used by the admin stats endpoint.
func Today(ctx context.Context, rdb *redis.Client) (map[string]int64, error) {
	raw, err := rdb.HGetAll(ctx, DayKey(time.Now())).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(raw))
	for level, v := range raw {
		n, _ := strconv.ParseInt(v, 10, 64)
		out[level] = n
	}
	return out, nil
}
