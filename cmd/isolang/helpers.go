package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/humenda/isolang"
)

// outputFormatter writes results as JSON or human-readable text depending
// on the global --json flag.
type outputFormatter struct {
	jsonMode bool
	out      io.Writer
}

func newOutputFormatter(cmd *cobra.Command) *outputFormatter {
	jsonMode, _ := cmd.Flags().GetBool("json")
	return &outputFormatter{jsonMode: jsonMode, out: cmd.OutOrStdout()}
}

func (f *outputFormatter) printJSON(data any) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(f.out, string(encoded))
	return err
}

// languageRecord is the CLI-facing shape of one table entry. Name and
// autonym come through the tag-gated accessors and stay empty in builds
// that compile the capability out.
type languageRecord struct {
	Code3   string `json:"iso639_3"`
	Code1   string `json:"iso639_1,omitempty"`
	Name    string `json:"name,omitempty"`
	Autonym string `json:"autonym,omitempty"`
}

func newLanguageRecord(l isolang.Language) languageRecord {
	rec := languageRecord{
		Code3:   l.ISO3(),
		Name:    englishName(l),
		Autonym: autonym(l),
	}
	if c1, ok := l.ISO1(); ok {
		rec.Code1 = c1
	}
	return rec
}
