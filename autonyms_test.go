//go:build isolang_autonyms

package isolang

import "testing"

func TestAutonym(t *testing.T) {
	l, ok := FromISO3("deu")
	if !ok {
		t.Fatal("FromISO3(\"deu\") not found")
	}
	if got, ok := l.Autonym(); !ok || got != "Deutsch" {
		t.Fatalf("deu.Autonym() = %q, %v, want \"Deutsch\", true", got, ok)
	}

	// The autonym table does not cover every registry entry.
	ghotuo, ok := FromISO3("aaa")
	if !ok {
		t.Fatal("FromISO3(\"aaa\") not found")
	}
	if got, ok := ghotuo.Autonym(); ok {
		t.Fatalf("aaa.Autonym() = %q, want absent", got)
	}
}

func TestFromAutonym(t *testing.T) {
	for _, tc := range []struct {
		autonym string
		code3   string
	}{
		{"Deutsch", "deu"},
		{"Español", "spa"},
	} {
		l, ok := FromAutonym(tc.autonym)
		if !ok || l.ISO3() != tc.code3 {
			t.Errorf("FromAutonym(%q) = %v, %v, want %s", tc.autonym, l, ok, tc.code3)
		}
	}

	if l, ok := FromAutonym("no such autonym"); ok {
		t.Errorf("FromAutonym of unknown name = %v, want a miss", l)
	}
	if l, ok := FromAutonym(""); ok {
		t.Errorf("FromAutonym(\"\") = %v, want a miss", l)
	}
}

func TestFromStringAutonym(t *testing.T) {
	l, ok := FromString("Deutsch")
	if !ok || l.ISO3() != "deu" {
		t.Fatalf("FromString(\"Deutsch\") = %v, %v, want deu", l, ok)
	}
}

func TestAutonymTableParallel(t *testing.T) {
	if len(autonyms) != len(languages) {
		t.Fatalf("autonyms holds %d entries, languages %d", len(autonyms), len(languages))
	}
}

func TestAutonymOutOfRange(t *testing.T) {
	if got, ok := Language(len(languages)).Autonym(); ok {
		t.Fatalf("Autonym() = %q, want absent", got)
	}
}
