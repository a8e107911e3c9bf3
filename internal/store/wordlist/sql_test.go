package wordlist_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/5w1tchy/passcheck-api/internal/store/wordlist"
	"github.com/DATA-DOG/go-sqlmock"
)

func TestList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	store := wordlist.New(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT word FROM public.weak_passwords WHERE length(word) >= 2 ORDER BY word`,
	)).WillReturnRows(
		sqlmock.NewRows([]string{"word"}).AddRow("hunter2").AddRow("trustno1"),
	)

	words, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(words) != 2 || words[0] != "hunter2" || words[1] != "trustno1" {
		t.Fatalf("unexpected words: %v", words)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	store := wordlist.New(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COUNT(*) FROM public.weak_passwords`,
	)).WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(1337),
	)

	n, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 1337 {
		t.Fatalf("want 1337, got %d", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
