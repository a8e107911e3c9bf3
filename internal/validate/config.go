package validate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Env validates required env configuration for the admin surface.
// Fail-fast on bad config.
func Env() error {
	secret := os.Getenv("AUTH_JWT_SECRET")
	if len(secret) < 32 {
		return errors.New("AUTH_JWT_SECRET must be at least 32 characters")
	}

	phc := os.Getenv("ADMIN_PASSWORD_HASH")
	if phc == "" {
		return errors.New("ADMIN_PASSWORD_HASH is required")
	}
	if !strings.HasPrefix(phc, "$argon2id$") {
		return errors.New("ADMIN_PASSWORD_HASH must be an argon2id PHC string")
	}

	if _, err := envDuration("ADMIN_TOKEN_TTL", "30m"); err != nil {
		return fmt.Errorf("ADMIN_TOKEN_TTL: %w", err)
	}
	if _, err := envDuration("ADMIN_LOGIN_WINDOW", "5m"); err != nil {
		return fmt.Errorf("ADMIN_LOGIN_WINDOW: %w", err)
	}
	return nil
}

// HardeningWarnings returns non-fatal warnings worth logging on startup.
func HardeningWarnings(appEnv string) []string {
	var warns []string

	if d, _ := envDuration("ADMIN_TOKEN_TTL", "30m"); d > 2*time.Hour {
		warns = append(warns, fmt.Sprintf("ADMIN_TOKEN_TTL=%s is > 2h; consider shorter admin tokens", d))
	}

	if strings.EqualFold(appEnv, "production") {
		if u := os.Getenv("UPSTASH_REDIS_URL"); u != "" && strings.HasPrefix(u, "redis://") {
			warns = append(warns, "UPSTASH_REDIS_URL uses redis:// (no TLS). Prefer rediss:// for TLS")
		}
		if os.Getenv("UPSTASH_REDIS_URL") == "" {
			if os.Getenv("REDIS_PASSWORD") == "" || os.Getenv("REDIS_USER") == "" {
				warns = append(warns, "REDIS_ADDR provided without REDIS_USER/REDIS_PASSWORD; require auth in production")
			}
		}
		if os.Getenv("DATABASE_URL") == "" && os.Getenv("AWS_BUCKET") == "" {
			warns = append(warns, "no external wordlist source configured; analysis uses only the embedded sample list")
		}
	}

	return warns
}

// PingRedis checks connectivity with a short timeout.
func PingRedis(rdb *redis.Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	_, err := rdb.Ping(ctx).Result()
	return err
}

func envDuration(key, def string) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		s = def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}
