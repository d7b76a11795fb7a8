//go:build !isolang_no_names && isolang_lowercase_names

package isolang

import "testing"

func TestFromNameCaseInsensitive(t *testing.T) {
	want, ok := FromName("German")
	if !ok {
		t.Fatal("FromName(\"German\") missed")
	}
	for _, input := range []string{"GERMAN", "german", "gErMaN"} {
		got, ok := FromName(input)
		if !ok || got != want {
			t.Errorf("FromName(%q) = %v, %v, want %v, true", input, got, ok, want)
		}
	}

	l, ok := FromName("spanish")
	if !ok || l.ISO3() != "spa" {
		t.Errorf("FromName(\"spanish\") = %v, %v, want spa", l, ok)
	}
}

func TestFromStringCodesBeforeFoldedNames(t *testing.T) {
	// Codes keep priority over names even when folding widens the
	// name index.
	l, ok := FromString("de")
	if !ok || l.ISO3() != "deu" {
		t.Fatalf("FromString(\"de\") = %v, %v, want deu", l, ok)
	}
}
