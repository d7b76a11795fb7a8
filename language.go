package isolang

import "strconv"

// languageData holds the code columns of one registry entry. The English
// name and autonym columns live in separate build-tag gated parallel
// arrays (table_names.go, table_autonyms.go) so that a disabled
// capability stays out of the binary entirely.
type languageData struct {
	code3 string // ISO 639-3, always three letters, unique
	code1 string // ISO 639-1, two letters or "" when the registry assigns none
}

// Language identifies one entry of the ISO 639-3 registry. The zero value
// is Und, the "undetermined" language, so an unset Language field refers
// to a well-defined entry rather than garbage.
//
// The numeric value is an index into the generated tables and is not
// stable across dataset regenerations; persist the ISO 639-3 code (via
// MarshalText or Value) instead of the number.
type Language uint16

// Und is the ISO 639-3 "undetermined" language. The table generator pins
// it to index 0, making it the zero value of Language.
const Und Language = 0

var (
	iso3Index map[string]Language
	iso1Index map[string]Language
)

func init() {
	withISO1 := 0
	for i := range languages {
		if languages[i].code1 != "" {
			withISO1++
		}
	}

	iso3Index = make(map[string]Language, len(languages))
	iso1Index = make(map[string]Language, withISO1)
	for i := range languages {
		l := Language(i)
		iso3Index[languages[i].code3] = l
		if c1 := languages[i].code1; c1 != "" {
			iso1Index[c1] = l
		}
	}
}

// Default returns Und, the entry used when no language is known.
func Default() Language { return Und }

// FromISO1 returns the language assigned the given two-letter ISO 639-1
// code, e.g. "de" for German. The match is exact and case-sensitive
// (registry codes are lowercase); any other input reports false.
func FromISO1(code string) (Language, bool) {
	if len(code) != 2 {
		return Und, false
	}
	l, ok := iso1Index[code]
	return l, ok
}

// FromISO3 returns the language with the given three-letter ISO 639-3
// code, the canonical key, e.g. "deu" for German. The match is exact and
// case-sensitive; any other input reports false.
func FromISO3(code string) (Language, bool) {
	if len(code) != 3 {
		return Und, false
	}
	l, ok := iso3Index[code]
	return l, ok
}

// FromString resolves a code or name of unspecified kind. Standardized
// codes are tried before free-text names so that short inputs stay
// unambiguous: ISO 639-1 first, then ISO 639-3, then — when compiled
// in — the English name and finally the autonym. The first match wins.
func FromString(s string) (Language, bool) {
	if l, ok := FromISO1(s); ok {
		return l, true
	}
	if l, ok := FromISO3(s); ok {
		return l, true
	}
	if l, ok := lookupByName(s); ok {
		return l, true
	}
	return lookupByAutonym(s)
}

// ISO3 returns the three-letter ISO 639-3 code, e.g. "deu" for German.
// Every entry has one.
func (l Language) ISO3() string {
	if !l.valid() {
		return ""
	}
	return languages[l].code3
}

// ISO1 returns the two-letter ISO 639-1 code, e.g. "de" for German. Only
// the most common languages carry one; ok reports whether this entry
// does.
func (l Language) ISO1() (string, bool) {
	if !l.valid() {
		return "", false
	}
	c1 := languages[l].code1
	return c1, c1 != ""
}

// String returns the ISO 639-3 code. The code is the canonical textual
// form and is available under every build configuration; use Name for
// the English name. Out-of-range values format stringer-style as
// "Language(n)".
func (l Language) String() string {
	if !l.valid() {
		return "Language(" + strconv.Itoa(int(l)) + ")"
	}
	return languages[l].code3
}

// valid reports whether l indexes the generated tables. Values outside
// the table can only be forged by arithmetic; methods treat them as
// absent rather than panicking.
func (l Language) valid() bool {
	return int(l) < len(languages)
}
