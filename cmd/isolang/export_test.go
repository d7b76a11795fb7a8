//go:build isolang_list

package main

import (
	"bytes"
	"database/sql"
	"path/filepath"
	"testing"
)

func TestExport(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "languages.db")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"export", dbPath})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open exported database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM languages").Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count < 7000 {
		t.Fatalf("exported %d languages, want at least 7000", count)
	}

	var code1 sql.NullString
	if err := db.QueryRow("SELECT code1 FROM languages WHERE code3 = ?", "deu").Scan(&code1); err != nil {
		t.Fatalf("select deu: %v", err)
	}
	if !code1.Valid || code1.String != "de" {
		t.Fatalf("deu code1 = %+v, want de", code1)
	}

	if err := db.QueryRow("SELECT code1 FROM languages WHERE code3 = ?", "und").Scan(&code1); err != nil {
		t.Fatalf("select und: %v", err)
	}
	if code1.Valid {
		t.Fatalf("und code1 = %q, want NULL", code1.String)
	}
}
