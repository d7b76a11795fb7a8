package isolang

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec("CREATE TABLE docs (lang TEXT)"); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func TestSQLRoundTrip(t *testing.T) {
	db := openTestDB(t)

	deu, _ := FromISO3("deu")
	if _, err := db.Exec("INSERT INTO docs (lang) VALUES (?)", deu); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var got Language
	if err := db.QueryRow("SELECT lang FROM docs").Scan(&got); err != nil {
		t.Fatalf("select: %v", err)
	}
	if got != deu {
		t.Fatalf("round trip read %v, want %v", got, deu)
	}
}

func TestScanUnknownCode(t *testing.T) {
	db := openTestDB(t)

	if _, err := db.Exec("INSERT INTO docs (lang) VALUES (?)", "xyz"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var got Language
	err := db.QueryRow("SELECT lang FROM docs").Scan(&got)
	if err == nil {
		t.Fatal("scanning an unknown code should fail")
	}
	var unknown *UnknownCodeError
	if !errors.As(err, &unknown) {
		t.Fatalf("scan error %v, want *UnknownCodeError", err)
	}
	if unknown.Code != "xyz" {
		t.Fatalf("UnknownCodeError.Code = %q, want \"xyz\"", unknown.Code)
	}
}

func TestScanNull(t *testing.T) {
	db := openTestDB(t)

	if _, err := db.Exec("INSERT INTO docs (lang) VALUES (NULL)"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var got Language
	if err := db.QueryRow("SELECT lang FROM docs").Scan(&got); err == nil {
		t.Fatal("scanning NULL into Language should fail")
	}

	// sql.Null is the supported shape for nullable columns.
	var nullable sql.Null[Language]
	if err := db.QueryRow("SELECT lang FROM docs").Scan(&nullable); err != nil {
		t.Fatalf("scan into sql.Null: %v", err)
	}
	if nullable.Valid {
		t.Fatal("sql.Null.Valid = true for a NULL column")
	}
}

func TestScanBytes(t *testing.T) {
	var l Language
	if err := l.Scan([]byte("spa")); err != nil {
		t.Fatalf("Scan([]byte) failed: %v", err)
	}
	if l.ISO3() != "spa" {
		t.Fatalf("Scan decoded %s, want spa", l.ISO3())
	}
}

func TestScanUnsupportedType(t *testing.T) {
	var l Language
	if err := l.Scan(42); err == nil {
		t.Fatal("Scan(int) should fail")
	}
}

func TestValueOutOfRange(t *testing.T) {
	if _, err := Language(len(languages)).Value(); err == nil {
		t.Fatal("Value of an out-of-range language should fail")
	}
}
