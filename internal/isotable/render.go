package isotable

import (
	"fmt"
	"strings"
)

// Generated file names, relative to the isolang package root.
const (
	CodesFile    = "table.go"
	NamesFile    = "table_names.go"
	AutonymsFile = "table_autonyms.go"
)

const generatedHeader = "// Code generated by gen.go from iso-639-3.tab and iso639-autonyms.tsv; DO NOT EDIT.\n"

// RenderFiles produces the generated sources for the given assembled
// entries, keyed by file name. The output is stable: rendering the same
// entries twice yields byte-identical files, which the freshness test
// relies on.
func RenderFiles(entries []Entry) map[string][]byte {
	return map[string][]byte{
		CodesFile:    renderCodes(entries),
		NamesFile:    renderNames(entries),
		AutonymsFile: renderAutonyms(entries),
	}
}

func renderCodes(entries []Entry) []byte {
	var b strings.Builder
	b.WriteString(generatedHeader)
	b.WriteString("\npackage isolang\n\n")
	fmt.Fprintf(&b, "// languages holds the code columns of all %d registry entries, und first\n", len(entries))
	b.WriteString("// so that it is the zero value of Language, the rest ascending by ISO\n")
	b.WriteString("// 639-3 code. englishNames and autonyms are index-parallel with this\n")
	b.WriteString("// table.\n")
	b.WriteString("var languages = []languageData{\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "\t{%q, %q},\n", e.Code3, e.Code1)
	}
	b.WriteString("}\n")
	return []byte(b.String())
}

func renderNames(entries []Entry) []byte {
	var b strings.Builder
	b.WriteString(generatedHeader)
	b.WriteString("\n//go:build !isolang_no_names\n")
	b.WriteString("\npackage isolang\n\n")
	b.WriteString("// englishNames holds the English reference name of each languages entry,\n")
	b.WriteString("// with any parenthesized registry qualifier stripped.\n")
	b.WriteString("var englishNames = []string{\n")
	for _, e := range entries {
		b.WriteString("\t\"" + e.Name + "\",\n")
	}
	b.WriteString("}\n")
	return []byte(b.String())
}

func renderAutonyms(entries []Entry) []byte {
	var b strings.Builder
	b.WriteString(generatedHeader)
	b.WriteString("\n//go:build isolang_autonyms\n")
	b.WriteString("\npackage isolang\n\n")
	b.WriteString("// autonyms holds the native name of each languages entry, \"\" where the\n")
	b.WriteString("// autonym table has none.\n")
	b.WriteString("var autonyms = []string{\n")
	for _, e := range entries {
		b.WriteString("\t\"" + e.Autonym + "\",\n")
	}
	b.WriteString("}\n")
	return []byte(b.String())
}
