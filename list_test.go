//go:build isolang_list

package isolang

import "testing"

func TestAllOrder(t *testing.T) {
	var got []Language
	for l := range All() {
		got = append(got, l)
	}

	if len(got) != len(languages) {
		t.Fatalf("All() yielded %d entries, want %d", len(got), len(languages))
	}
	if got[0] != Und {
		t.Fatalf("All() starts at %v, want Und", got[0])
	}
	for i := 2; i < len(got); i++ {
		if got[i-1].ISO3() >= got[i].ISO3() {
			t.Fatalf("entries %d and %d out of order: %s >= %s", i-1, i, got[i-1].ISO3(), got[i].ISO3())
		}
	}
}

func TestAllRestartable(t *testing.T) {
	seq := All()

	var first, second []Language
	for l := range seq {
		first = append(first, l)
	}
	for l := range seq {
		second = append(second, l)
	}

	if len(first) != len(second) {
		t.Fatalf("passes yielded %d and %d entries", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("entry %d differs between passes: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestAllEarlyBreak(t *testing.T) {
	n := 0
	for range All() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("consumed %d entries, want 3", n)
	}
}
