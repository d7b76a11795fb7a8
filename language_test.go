package isolang

import (
	"sort"
	"strconv"
	"testing"
)

func TestRoundTripISO3(t *testing.T) {
	for i := range languages {
		l := Language(i)
		got, ok := FromISO3(l.ISO3())
		if !ok {
			t.Fatalf("FromISO3(%q) not found", l.ISO3())
		}
		if got != l {
			t.Fatalf("FromISO3(%q) = %v, want %v", l.ISO3(), got, l)
		}
	}
}

func TestISO1AgreesWithISO3(t *testing.T) {
	seen := 0
	for i := range languages {
		l := Language(i)
		c1, ok := l.ISO1()
		if !ok {
			continue
		}
		seen++
		got, ok := FromISO1(c1)
		if !ok {
			t.Fatalf("FromISO1(%q) not found", c1)
		}
		if got != l {
			t.Fatalf("FromISO1(%q) = %v, want %v (%s)", c1, got, l, l.ISO3())
		}
	}
	// The 639-1 set is small and stable; a floor guards against a
	// parser regression silently dropping the Part1 column.
	if seen < 150 {
		t.Fatalf("only %d entries carry an ISO 639-1 code, want at least 150", seen)
	}
}

func TestDefault(t *testing.T) {
	if Default() != Und {
		t.Fatalf("Default() = %v, want Und", Default())
	}

	var zero Language
	if zero != Und {
		t.Fatalf("zero value = %v, want Und", zero)
	}

	l, ok := FromISO3("und")
	if !ok || l != Und {
		t.Fatalf("FromISO3(\"und\") = %v, %v, want Und, true", l, ok)
	}
	if got := Und.ISO3(); got != "und" {
		t.Fatalf("Und.ISO3() = %q, want \"und\"", got)
	}
	if c1, ok := Und.ISO1(); ok {
		t.Fatalf("Und.ISO1() = %q, want absent", c1)
	}
}

func TestKnownEntries(t *testing.T) {
	for _, tc := range []struct {
		code3 string
		code1 string
	}{
		{"deu", "de"},
		{"spa", "es"},
		{"swa", "sw"},
		{"eng", "en"},
	} {
		t.Run(tc.code3, func(t *testing.T) {
			l, ok := FromISO3(tc.code3)
			if !ok {
				t.Fatalf("FromISO3(%q) not found", tc.code3)
			}
			c1, ok := l.ISO1()
			if !ok || c1 != tc.code1 {
				t.Fatalf("ISO1() = %q, %v, want %q, true", c1, ok, tc.code1)
			}
			viaC1, ok := FromISO1(tc.code1)
			if !ok || viaC1 != l {
				t.Fatalf("FromISO1(%q) = %v, %v, want %v, true", tc.code1, viaC1, ok, l)
			}
		})
	}
}

func TestLookupMisses(t *testing.T) {
	for _, tc := range []struct {
		name string
		fn   func(string) (Language, bool)
		in   string
	}{
		{"iso3 unknown", FromISO3, "xyz"},
		{"iso3 empty", FromISO3, ""},
		{"iso3 too short", FromISO3, "de"},
		{"iso3 too long", FromISO3, "germ"},
		{"iso3 uppercase", FromISO3, "DEU"},
		{"iso1 unknown", FromISO1, "qq"},
		{"iso1 empty", FromISO1, ""},
		{"iso1 too long", FromISO1, "deu"},
		{"iso1 too short", FromISO1, "d"},
		{"iso1 uppercase", FromISO1, "DE"},
		{"any unknown", FromString, "no such language"},
		{"any empty", FromString, ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if l, ok := tc.fn(tc.in); ok {
				t.Fatalf("lookup of %q = %v, want a miss", tc.in, l)
			}
		})
	}
}

func TestFromStringCodes(t *testing.T) {
	// Standardized codes resolve before any free-text name step.
	de, ok := FromString("de")
	if !ok || de.ISO3() != "deu" {
		t.Fatalf("FromString(\"de\") = %v, %v, want deu", de, ok)
	}
	deu, ok := FromString("deu")
	if !ok || deu != de {
		t.Fatalf("FromString(\"deu\") = %v, %v, want %v", deu, ok, de)
	}
}

func TestStringIsISO3(t *testing.T) {
	l, _ := FromISO3("spa")
	if got := l.String(); got != "spa" {
		t.Fatalf("String() = %q, want \"spa\"", got)
	}
}

func TestOutOfRange(t *testing.T) {
	l := Language(len(languages))
	if got := l.ISO3(); got != "" {
		t.Errorf("ISO3() = %q, want empty", got)
	}
	if c1, ok := l.ISO1(); ok {
		t.Errorf("ISO1() = %q, want absent", c1)
	}
	if got, want := l.String(), "Language("+strconv.Itoa(len(languages))+")"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTableInvariants(t *testing.T) {
	if len(languages) < 7000 {
		t.Fatalf("table holds %d entries, want at least 7000", len(languages))
	}
	if languages[0].code3 != "und" {
		t.Fatalf("index 0 = %q, want \"und\"", languages[0].code3)
	}

	seen3 := make(map[string]bool, len(languages))
	seen1 := make(map[string]bool)
	for i, e := range languages {
		if len(e.code3) != 3 {
			t.Fatalf("entry %d: code3 %q is not three characters", i, e.code3)
		}
		if seen3[e.code3] {
			t.Fatalf("duplicate ISO 639-3 code %q", e.code3)
		}
		seen3[e.code3] = true

		if e.code1 == "" {
			continue
		}
		if len(e.code1) != 2 {
			t.Fatalf("entry %s: code1 %q is not two characters", e.code3, e.code1)
		}
		if seen1[e.code1] {
			t.Fatalf("duplicate ISO 639-1 code %q", e.code1)
		}
		seen1[e.code1] = true
	}

	rest := languages[1:]
	if !sort.SliceIsSorted(rest, func(i, j int) bool { return rest[i].code3 < rest[j].code3 }) {
		t.Fatal("entries after und are not in ascending ISO 639-3 order")
	}
}
