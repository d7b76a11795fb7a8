//go:build !isolang_no_names

package isolang

import (
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	for _, tc := range []struct {
		code3 string
		name  string
	}{
		{"deu", "German"},
		{"spa", "Spanish"},
		{"und", "Undetermined"},
	} {
		l, ok := FromISO3(tc.code3)
		if !ok {
			t.Fatalf("FromISO3(%q) not found", tc.code3)
		}
		if got := l.Name(); got != tc.name {
			t.Errorf("%s.Name() = %q, want %q", tc.code3, got, tc.name)
		}
	}
}

func TestFromName(t *testing.T) {
	l, ok := FromName("German")
	if !ok || l.ISO3() != "deu" {
		t.Fatalf("FromName(\"German\") = %v, %v, want deu", l, ok)
	}

	if l, ok := FromName("No Such Language"); ok {
		t.Fatalf("FromName of unknown name = %v, want a miss", l)
	}
	if l, ok := FromName(""); ok {
		t.Fatalf("FromName(\"\") = %v, want a miss", l)
	}
}

func TestFromNameDuplicatesFirstMatch(t *testing.T) {
	// Both swa (the macrolanguage) and swh carry the reference name
	// "Swahili"; swa precedes swh in table order and must win.
	l, ok := FromName("Swahili")
	if !ok {
		t.Fatal("FromName(\"Swahili\") not found")
	}
	if got := l.ISO3(); got != "swa" {
		t.Fatalf("FromName(\"Swahili\") resolved to %s, want swa", got)
	}
}

func TestFromStringName(t *testing.T) {
	l, ok := FromString("German")
	if !ok || l.ISO3() != "deu" {
		t.Fatalf("FromString(\"German\") = %v, %v, want deu", l, ok)
	}
}

func TestEveryEntryHasName(t *testing.T) {
	if len(englishNames) != len(languages) {
		t.Fatalf("englishNames holds %d entries, languages %d", len(englishNames), len(languages))
	}
	for i, name := range englishNames {
		if name == "" {
			t.Fatalf("entry %s has an empty English name", languages[i].code3)
		}
		if strings.ContainsAny(name, "()") {
			t.Fatalf("entry %s: name %q still carries a registry qualifier", languages[i].code3, name)
		}
	}
}

func TestNameOutOfRange(t *testing.T) {
	if got := Language(len(languages)).Name(); got != "" {
		t.Fatalf("Name() = %q, want empty", got)
	}
}
