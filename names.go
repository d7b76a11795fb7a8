//go:build !isolang_no_names

package isolang

// nameIndex maps English names (keyed through nameKey) to entries. A few
// registry names repeat, e.g. a macrolanguage and its dominant member
// both named "Swahili"; the first entry in table order wins.
var nameIndex map[string]Language

func init() {
	nameIndex = make(map[string]Language, len(englishNames))
	for i, name := range englishNames {
		key := nameKey(name)
		if _, dup := nameIndex[key]; !dup {
			nameIndex[key] = Language(i)
		}
	}
}

// Name returns the English reference name from the ISO 639-3 registry,
// e.g. "German" for deu. Parenthesized registry qualifiers such as
// "(macrolanguage)" are already stripped by the table generator.
func (l Language) Name() string {
	if !l.valid() {
		return ""
	}
	return englishNames[l]
}

// FromName returns the language whose English name matches name. The
// match is exact unless the binary was built with the
// isolang_lowercase_names tag, which lowercases both sides. Duplicate
// registry names resolve to the entry earliest in table order.
func FromName(name string) (Language, bool) {
	l, ok := nameIndex[nameKey(name)]
	return l, ok
}

func lookupByName(s string) (Language, bool) { return FromName(s) }
