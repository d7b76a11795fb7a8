package version

import "testing"

func TestForTestingRestores(t *testing.T) {
	original := String()

	restore := ForTesting("1.2.3")
	if got := String(); got != "1.2.3" {
		t.Fatalf("String() = %q after ForTesting, want %q", got, "1.2.3")
	}

	restore()
	if got := String(); got != original {
		t.Fatalf("String() = %q after restore, want %q", got, original)
	}
}

func TestFormatVersion(t *testing.T) {
	cases := map[string]string{
		"":       "",
		"dev":    "dev",
		"0.3.0":  "v0.3.0",
		"v0.3.0": "v0.3.0",
		"1.0":    "v1.0",
	}
	for input, want := range cases {
		if got := FormatVersion(input); got != want {
			t.Errorf("FormatVersion(%q) = %q, want %q", input, got, want)
		}
	}
}
