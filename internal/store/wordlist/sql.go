// Package wordlist reads deployment-specific weak passwords from Postgres.
// The table is maintained out of band; the service only ever selects from it.
package wordlist

import (
	"context"
	"database/sql"

	"github.com/5w1tchy/passcheck-api/internal/store/dbx"
)

type Store struct{ db *sql.DB }

func New(db *sql.DB) *Store { return &Store{db: db} }

const listQuery = `SELECT word FROM public.weak_passwords WHERE length(word) >= 2 ORDER BY word`

// List returns every configured weak password, lowercasing is left to the
// matcher so the table can keep its entries verbatim.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := dbx.Query(ctx, s.db, listQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Count reports the table size for the admin stats endpoint.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := dbx.Get(ctx, s.db, `SELECT COUNT(*) FROM public.weak_passwords`).Scan(&n)
	return n, err
}
