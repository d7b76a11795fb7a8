//go:build isolang_list

package main

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/humenda/isolang"
)

func init() {
	rootCmd.AddCommand(newExportCommand())
}

func newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "export <database>",
		Short:        "Write the language table to a SQLite database",
		Long:         "Write every table entry into the languages table of a SQLite database, creating the file when it does not exist.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runExport,
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	db, err := sql.Open("sqlite", args[0])
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	schema := `CREATE TABLE IF NOT EXISTS languages (
		code3   TEXT PRIMARY KEY,
		code1   TEXT,
		name    TEXT,
		autonym TEXT
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create languages table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT OR REPLACE INTO languages (code3, code1, name, autonym) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for l := range isolang.All() {
		// The code3 column goes through the driver.Valuer on Language;
		// absent optional columns are stored as NULL.
		var code1, name, auto any
		if v, ok := l.ISO1(); ok {
			code1 = v
		}
		if v := englishName(l); v != "" {
			name = v
		}
		if v := autonym(l); v != "" {
			auto = v
		}
		if _, err := stmt.ExecContext(ctx, l, code1, name, auto); err != nil {
			return fmt.Errorf("insert %s: %w", l, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "exported %d languages to %s\n", count, args[0])
	return nil
}
