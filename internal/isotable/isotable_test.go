package isotable

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleISO = `Id	Part2B	Part2T	Part1	Scope	Language_Type	Ref_Name	Comment
deu	ger	deu	de	I	L	German
gha				I	L	Ghadamès
swa	swa	swa	sw	M	L	Swahili (macrolanguage)
und	und	und		S	S	Undetermined
`

const sampleAutonyms = `tag3	tag1	name	autonym	source
deu	de	German	Deutsch	wikipedia
gha		Ghadamès
swa	sw	Swahili	Kiswahili	wikipedia
und		Undetermined
`

func TestParseISO6393(t *testing.T) {
	got, err := ParseISO6393(strings.NewReader(sampleISO))
	if err != nil {
		t.Fatalf("ParseISO6393 failed: %v", err)
	}

	want := []Entry{
		{Code3: "deu", Code1: "de", Name: "German"},
		{Code3: "gha", Name: "Ghadamès"},
		{Code3: "swa", Code1: "sw", Name: "Swahili"},
		{Code3: "und", Name: "Undetermined"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestParseISO6393Errors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
	}{
		{"too few columns", "Id\ndeu\tger\tdeu\n"},
		{"bad code length", "Id\nde\tger\tdeu\tde\tI\tL\tGerman\t\n"},
		{"empty reference name", "Id\nxxx\t\t\t\tI\tL\t(only a qualifier)\t\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseISO6393(strings.NewReader(tc.input)); err == nil {
				t.Error("ParseISO6393 should fail")
			}
		})
	}
}

func TestParseAutonyms(t *testing.T) {
	got, err := ParseAutonyms(strings.NewReader(sampleAutonyms))
	if err != nil {
		t.Fatalf("ParseAutonyms failed: %v", err)
	}

	// Rows with an empty autonym column are dropped.
	want := map[string]string{
		"deu": "Deutsch",
		"swa": "Kiswahili",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("autonyms mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAutonymsTooFewColumns(t *testing.T) {
	if _, err := ParseAutonyms(strings.NewReader("tag3\ndeu\tde\n")); err == nil {
		t.Error("ParseAutonyms should fail")
	}
}

func TestAssemble(t *testing.T) {
	entries := []Entry{
		{Code3: "deu", Code1: "de", Name: "German"},
		{Code3: "und", Name: "Undetermined"},
		{Code3: "aaa", Name: "Ghotuo"},
	}
	autonyms := map[string]string{"deu": "Deutsch"}

	got, warnings, err := Assemble(entries, autonyms)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	want := []Entry{
		{Code3: "und", Name: "Undetermined"},
		{Code3: "aaa", Name: "Ghotuo"},
		{Code3: "deu", Code1: "de", Name: "German", Autonym: "Deutsch"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("assembled entries mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleDoesNotMutateInput(t *testing.T) {
	entries := []Entry{
		{Code3: "und", Name: "Undetermined"},
		{Code3: "deu", Code1: "de", Name: "German"},
	}
	if _, _, err := Assemble(entries, map[string]string{"deu": "Deutsch"}); err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if entries[1].Autonym != "" {
		t.Error("Assemble mutated its input slice")
	}
}

func TestAssembleErrors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		entries []Entry
	}{
		{
			"duplicate 639-3 code",
			[]Entry{
				{Code3: "und", Name: "Undetermined"},
				{Code3: "deu", Name: "German"},
				{Code3: "deu", Name: "German again"},
			},
		},
		{
			"duplicate 639-1 code",
			[]Entry{
				{Code3: "und", Name: "Undetermined"},
				{Code3: "deu", Code1: "de", Name: "German"},
				{Code3: "nld", Code1: "de", Name: "Dutch"},
			},
		},
		{
			"missing und entry",
			[]Entry{
				{Code3: "deu", Code1: "de", Name: "German"},
			},
		},
		{
			"quote in name",
			[]Entry{
				{Code3: "und", Name: "Undetermined"},
				{Code3: "xxx", Name: `So "called"`},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := Assemble(tc.entries, nil); err == nil {
				t.Error("Assemble should fail")
			}
		})
	}
}

func TestRenderFiles(t *testing.T) {
	entries := []Entry{
		{Code3: "und", Name: "Undetermined"},
		{Code3: "deu", Code1: "de", Name: "German", Autonym: "Deutsch"},
		{Code3: "gha", Name: "Ghadamès"},
	}

	files := RenderFiles(entries)

	wantCodes := `// Code generated by gen.go from iso-639-3.tab and iso639-autonyms.tsv; DO NOT EDIT.

package isolang

// languages holds the code columns of all 3 registry entries, und first
// so that it is the zero value of Language, the rest ascending by ISO
// 639-3 code. englishNames and autonyms are index-parallel with this
// table.
var languages = []languageData{
	{"und", ""},
	{"deu", "de"},
	{"gha", ""},
}
`
	wantNames := `// Code generated by gen.go from iso-639-3.tab and iso639-autonyms.tsv; DO NOT EDIT.

//go:build !isolang_no_names

package isolang

// englishNames holds the English reference name of each languages entry,
// with any parenthesized registry qualifier stripped.
var englishNames = []string{
	"Undetermined",
	"German",
	"Ghadamès",
}
`
	wantAutonyms := `// Code generated by gen.go from iso-639-3.tab and iso639-autonyms.tsv; DO NOT EDIT.

//go:build isolang_autonyms

package isolang

// autonyms holds the native name of each languages entry, "" where the
// autonym table has none.
var autonyms = []string{
	"",
	"Deutsch",
	"",
}
`

	for _, tc := range []struct {
		file string
		want string
	}{
		{CodesFile, wantCodes},
		{NamesFile, wantNames},
		{AutonymsFile, wantAutonyms},
	} {
		t.Run(tc.file, func(t *testing.T) {
			got, ok := files[tc.file]
			if !ok {
				t.Fatalf("RenderFiles did not produce %s", tc.file)
			}
			if diff := cmp.Diff(tc.want, string(got)); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tc.file, diff)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	isoPath := filepath.Join(dir, "iso-639-3.tab")
	autonymsPath := filepath.Join(dir, "iso639-autonyms.tsv")
	if err := os.WriteFile(isoPath, []byte(sampleISO), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(autonymsPath, []byte(sampleAutonyms), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, _, err := Load(isoPath, autonymsPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []Entry{
		{Code3: "und", Name: "Undetermined"},
		{Code3: "deu", Code1: "de", Name: "German", Autonym: "Deutsch"},
		{Code3: "gha", Name: "Ghadamès"},
		{Code3: "swa", Code1: "sw", Name: "Swahili", Autonym: "Kiswahili"},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := Load(filepath.Join(dir, "nope.tab"), filepath.Join(dir, "nope.tsv")); err == nil {
		t.Error("Load should fail for a missing code table")
	}
}
