package repository_test

import (
	"errors"
	"testing"

	"github.com/vibast-solutions/ms-go-authn/app/repository"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestParseDialect(t *testing.T) {
	for _, name := range []string{"mysql", "SQLite", " postgres "} {
		if _, err := repository.ParseDialect(name); err != nil {
			t.Fatalf("expected %q to parse, got %v", name, err)
		}
	}
	if _, err := repository.ParseDialect("oracle"); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
}

func TestDialect_Rebind(t *testing.T) {
	query := "UPDATE t SET a = ? WHERE b = ? AND c = ?"

	if got := repository.DialectMySQL.Rebind(query); got != query {
		t.Fatalf("mysql query should be unchanged, got %q", got)
	}
	want := "UPDATE t SET a = $1 WHERE b = $2 AND c = $3"
	if got := repository.DialectPostgres.Rebind(query); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDialect_IsDuplicate(t *testing.T) {
	if !repository.DialectMySQL.IsDuplicate(&mysql.MySQLError{Number: 1062}) {
		t.Fatalf("expected mysql 1062 to be a duplicate")
	}
	if repository.DialectMySQL.IsDuplicate(&mysql.MySQLError{Number: 1045}) {
		t.Fatalf("expected mysql 1045 not to be a duplicate")
	}
	if !repository.DialectPostgres.IsDuplicate(&pgconn.PgError{Code: "23505"}) {
		t.Fatalf("expected postgres 23505 to be a duplicate")
	}
	if repository.DialectPostgres.IsDuplicate(errors.New("boom")) {
		t.Fatalf("expected plain error not to be a duplicate")
	}
}
