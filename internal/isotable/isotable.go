// Package isotable assembles the generated language tables of the isolang
// package from the authoritative registry files: the SIL ISO 639-3 code
// table and a tab-separated autonym table. It is used by the gen.go
// generator and by the freshness test; nothing in here runs at lookup
// time.
package isotable

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Entry is one language row assembled from the registry sources.
type Entry struct {
	Code3   string // ISO 639-3 code, canonical key
	Code1   string // ISO 639-1 code, "" when the registry assigns none
	Name    string // English reference name, parenthesized qualifier stripped
	Autonym string // native name, "" when the autonym table has none
}

// undCode is the ISO 639-3 "undetermined" entry, pinned to table index 0
// so that it becomes the zero value of the generated Language type.
const undCode = "und"

// ParseISO6393 reads the SIL iso-639-3.tab format: UTF-8, tab-separated,
// one header row, columns Id / Part2B / Part2T / Part1 / Scope /
// Language_Type / Ref_Name / Comment. Only Id, Part1 and Ref_Name feed
// the tables; Part1 counts as an ISO 639-1 code only when it is exactly
// two characters. Ref_Name is cut at the first "(" to drop registry
// qualifiers such as "(macrolanguage)".
func ParseISO6393(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue // header
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) < 7 {
			return nil, fmt.Errorf("isotable: iso-639-3 line %d: %d columns, want at least 7", lineNo, len(cols))
		}

		code3 := cols[0]
		if len(code3) != 3 {
			return nil, fmt.Errorf("isotable: iso-639-3 line %d: bad code %q", lineNo, code3)
		}

		code1 := ""
		if len(cols[3]) == 2 {
			code1 = cols[3]
		}

		name, _, _ := strings.Cut(cols[6], "(")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("isotable: iso-639-3 line %d: entry %q has no reference name", lineNo, code3)
		}

		entries = append(entries, Entry{Code3: code3, Code1: code1, Name: name})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("isotable: read iso-639-3 table: %w", err)
	}

	return entries, nil
}

// ParseAutonyms reads the autonym table format: UTF-8, tab-separated, one
// header row, columns tag3 / tag1 / name / autonym / source. The result
// maps ISO 639-3 codes to non-empty autonyms; rows with an empty autonym
// column are skipped.
func ParseAutonyms(r io.Reader) (map[string]string, error) {
	autonyms := make(map[string]string)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue // header
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) < 4 {
			return nil, fmt.Errorf("isotable: autonym line %d: %d columns, want at least 4", lineNo, len(cols))
		}
		if cols[3] != "" {
			autonyms[cols[0]] = cols[3]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("isotable: read autonym table: %w", err)
	}

	return autonyms, nil
}

// Assemble joins the code table with the autonym table and fixes the
// final declaration order: und first, the remainder ascending by ISO
// 639-3 code. It enforces the table invariants (unique 639-3 codes,
// unique 639-1 codes, an und entry present) and returns warnings for
// 639-1 codes that golang.org/x/text does not recognize — those are
// suspect but not fatal, since x/text canonicalizes a few legacy codes.
func Assemble(entries []Entry, autonyms map[string]string) ([]Entry, []string, error) {
	out := make([]Entry, len(entries))
	copy(out, entries)

	seen3 := make(map[string]bool, len(out))
	seen1 := make(map[string]bool)
	hasUnd := false
	var warnings []string

	for i := range out {
		e := &out[i]
		if seen3[e.Code3] {
			return nil, nil, fmt.Errorf("isotable: duplicate ISO 639-3 code %q", e.Code3)
		}
		seen3[e.Code3] = true

		if e.Code1 != "" {
			if seen1[e.Code1] {
				return nil, nil, fmt.Errorf("isotable: duplicate ISO 639-1 code %q", e.Code1)
			}
			seen1[e.Code1] = true

			if _, err := language.ParseBase(e.Code1); err != nil {
				warnings = append(warnings, fmt.Sprintf("ISO 639-1 code %q (%s) unknown to golang.org/x/text", e.Code1, e.Code3))
			}
		}

		if e.Code3 == undCode {
			hasUnd = true
		}
		e.Autonym = autonyms[e.Code3]

		// The renderers embed names as raw string literals.
		if strings.ContainsAny(e.Name, "\"\\") || strings.ContainsAny(e.Autonym, "\"\\") {
			return nil, nil, fmt.Errorf("isotable: entry %s: quote or backslash in name data", e.Code3)
		}
	}

	if !hasUnd {
		return nil, nil, fmt.Errorf("isotable: registry table has no %q entry", undCode)
	}

	sort.SliceStable(out, func(i, j int) bool {
		// und sorts before everything so that it lands on index 0.
		if out[i].Code3 == undCode || out[j].Code3 == undCode {
			return out[i].Code3 == undCode
		}
		return out[i].Code3 < out[j].Code3
	})

	return out, warnings, nil
}

// Load reads both registry files from disk and assembles the final entry
// list. It is the one-call form used by gen.go and the freshness test.
func Load(isoPath, autonymsPath string) ([]Entry, []string, error) {
	isoFile, err := os.Open(isoPath)
	if err != nil {
		return nil, nil, fmt.Errorf("isotable: open code table: %w", err)
	}
	defer isoFile.Close()

	entries, err := ParseISO6393(isoFile)
	if err != nil {
		return nil, nil, err
	}

	autonymFile, err := os.Open(autonymsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("isotable: open autonym table: %w", err)
	}
	defer autonymFile.Close()

	autonyms, err := ParseAutonyms(autonymFile)
	if err != nil {
		return nil, nil, err
	}

	return Assemble(entries, autonyms)
}
