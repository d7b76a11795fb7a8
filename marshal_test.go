package isolang

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestMarshalText(t *testing.T) {
	l, _ := FromISO3("deu")
	got, err := l.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(got) != "deu" {
		t.Fatalf("MarshalText = %q, want \"deu\"", got)
	}
}

func TestMarshalTextOutOfRange(t *testing.T) {
	if _, err := Language(len(languages)).MarshalText(); err == nil {
		t.Fatal("MarshalText of an out-of-range value should fail")
	}
}

func TestUnmarshalText(t *testing.T) {
	var l Language
	if err := l.UnmarshalText([]byte("spa")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if l.ISO3() != "spa" {
		t.Fatalf("UnmarshalText decoded %s, want spa", l.ISO3())
	}
}

func TestUnmarshalTextUnknownCode(t *testing.T) {
	for _, input := range []string{"xyz", "de", "german", ""} {
		var l Language
		err := l.UnmarshalText([]byte(input))
		if err == nil {
			t.Fatalf("UnmarshalText(%q) should fail", input)
		}
		var unknown *UnknownCodeError
		if !errors.As(err, &unknown) {
			t.Fatalf("UnmarshalText(%q) error %v, want *UnknownCodeError", input, err)
		}
		if unknown.Code != input {
			t.Fatalf("UnknownCodeError.Code = %q, want %q", unknown.Code, input)
		}
		// A failed decode must not move the value off Und.
		if l != Und {
			t.Fatalf("failed decode left value %v, want Und", l)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	type doc struct {
		Lang Language `json:"lang"`
	}

	spa, _ := FromISO3("spa")
	data, err := json.Marshal(doc{Lang: spa})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"lang":"spa"}` {
		t.Fatalf("Marshal = %s, want {\"lang\":\"spa\"}", data)
	}

	var decoded doc
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Lang != spa {
		t.Fatalf("round trip decoded %v, want %v", decoded.Lang, spa)
	}
}
