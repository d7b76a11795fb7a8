//go:build !isolang_no_names && !isolang_lowercase_names

package isolang

import "testing"

func TestFromNameCaseSensitive(t *testing.T) {
	if _, ok := FromName("GERMAN"); ok {
		t.Error("FromName(\"GERMAN\") matched, want a miss in an exact-match build")
	}
	if _, ok := FromName("german"); ok {
		t.Error("FromName(\"german\") matched, want a miss in an exact-match build")
	}
	if _, ok := FromName("German"); !ok {
		t.Error("FromName(\"German\") missed")
	}
}
