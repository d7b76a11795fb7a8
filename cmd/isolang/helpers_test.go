//go:build !isolang_no_names && !isolang_autonyms

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/humenda/isolang"
)

func TestNewLanguageRecord(t *testing.T) {
	deu, ok := isolang.FromISO3("deu")
	if !ok {
		t.Fatal("FromISO3(\"deu\") not found")
	}

	rec := newLanguageRecord(deu)
	if rec.Code3 != "deu" || rec.Code1 != "de" || rec.Name != "German" {
		t.Fatalf("record = %+v, want deu/de/German", rec)
	}
	if rec.Autonym != "" {
		t.Fatalf("record carries autonym %q in a build without autonyms", rec.Autonym)
	}
}

func TestLookupJSON(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"lookup", "de", "--json"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	var rec languageRecord
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if rec.Code3 != "deu" || rec.Code1 != "de" {
		t.Fatalf("lookup de = %+v, want deu/de", rec)
	}
}

func TestLookupHuman(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"lookup", "spa", "--json=false"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	for _, want := range []string{"spa", "es", "Spanish"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"lookup", "no such language", "--json=false"})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("lookup of an unknown language should fail")
	}
}
