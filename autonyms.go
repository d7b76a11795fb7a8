//go:build isolang_autonyms

package isolang

// autonymIndex maps autonyms (keyed through nameKey) to entries. Autonyms
// are not unique either; the first entry in table order wins.
var autonymIndex map[string]Language

func init() {
	withAutonym := 0
	for _, name := range autonyms {
		if name != "" {
			withAutonym++
		}
	}

	autonymIndex = make(map[string]Language, withAutonym)
	for i, name := range autonyms {
		if name == "" {
			continue
		}
		key := nameKey(name)
		if _, dup := autonymIndex[key]; !dup {
			autonymIndex[key] = Language(i)
		}
	}
}

// Autonym returns the name of the language in the language itself, e.g.
// "Deutsch" for German. The registry has no autonym for every entry; ok
// reports whether this one does.
func (l Language) Autonym() (string, bool) {
	if !l.valid() {
		return "", false
	}
	a := autonyms[l]
	return a, a != ""
}

// FromAutonym returns the language whose autonym matches name, with the
// same matching policy as FromName.
func FromAutonym(name string) (Language, bool) {
	l, ok := autonymIndex[nameKey(name)]
	return l, ok
}

func lookupByAutonym(s string) (Language, bool) { return FromAutonym(s) }
