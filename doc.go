// Package isolang converts between ISO 639 language identifiers:
// two-letter ISO 639-1 codes, three-letter ISO 639-3 codes, English
// reference names and autonyms (the name of a language in the language
// itself).
//
// The data set is generated from the SIL ISO 639-3 code table and an
// autonym table (see iso-639-3.tab and iso639-autonyms.tsv at the module
// root) and compiled into the package as read-only parallel arrays. All
// lookups are plain map probes against indices built once at package
// init; nothing is read, allocated or mutated afterwards, so a Language
// and every function in this package are safe for unsynchronized
// concurrent use.
//
//	if l, ok := isolang.FromISO1("de"); ok {
//		fmt.Println(l.ISO3(), l.Name()) // deu German
//	}
//
// Lookups never fail with an error: a miss — unknown code, wrong length,
// empty string — reports ok == false. Only deserialization (UnmarshalText,
// Scan) returns an error for unrecognized input, so that malformed data
// cannot silently decode as Und.
//
// # Build tags
//
// Capabilities that cost binary size are selected at compile time.
// Disabling one removes both its data tables and its methods from the
// build:
//
//   - default: codes and English names, exact-match name lookup
//   - isolang_no_names: drop English names (Name, FromName)
//   - isolang_autonyms: add autonyms (Autonym, FromAutonym)
//   - isolang_lowercase_names: case-insensitive FromName/FromAutonym;
//     no effect when English names are compiled out
//   - isolang_list: add All, the full-table iterator
//
//go:generate go run gen.go
package isolang
