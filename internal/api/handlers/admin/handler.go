package admin

import (
	"context"
	"database/sql"

	strengthapi "github.com/5w1tchy/passcheck-api/internal/api/handlers/strength"
	s3store "github.com/5w1tchy/passcheck-api/internal/storage/s3"
	"github.com/redis/go-redis/v9"
)

// WordSource is any backend that can list extra weak passwords.
type WordSource interface {
	List(ctx context.Context) ([]string, error)
}

type Handler struct {
	DB       *sql.DB // nil when no wordlist database is configured
	RDB      *redis.Client
	Words    WordSource        // nil when no wordlist database is configured
	S3       *s3store.S3Client // nil when no object-store wordlist is configured
	S3Key    string
	Provider *strengthapi.Provider
}

func NewHandler(db *sql.DB, rdb *redis.Client, words WordSource, s3c *s3store.S3Client, s3Key string, p *strengthapi.Provider) *Handler {
	return &Handler{
		DB:       db,
		RDB:      rdb,
		Words:    words,
		S3:       s3c,
		S3Key:    s3Key,
		Provider: p,
	}
}
