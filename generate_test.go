package isolang_test

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/humenda/isolang/internal/isotable"
)

// TestGeneratedTablesFresh regenerates the table sources from the
// checked-in registry snapshots and compares them with the checked-in
// files. A mismatch means gen.go was not rerun after touching the
// snapshots or the renderers.
func TestGeneratedTablesFresh(t *testing.T) {
	entries, warnings, err := isotable.Load("iso-639-3.tab", "iso639-autonyms.tsv")
	if err != nil {
		t.Fatalf("load registry snapshots: %v", err)
	}
	for _, w := range warnings {
		t.Log("warning:", w)
	}

	for name, want := range isotable.RenderFiles(entries) {
		t.Run(name, func(t *testing.T) {
			got, err := os.ReadFile(name)
			if err != nil {
				t.Fatalf("read checked-in table: %v", err)
			}
			if diff := cmp.Diff(string(want), string(got)); diff != "" {
				t.Errorf("%s is stale, rerun go generate (-generated +checked-in):\n%s", name, clipDiff(diff))
			}
		})
	}
}

// clipDiff keeps failure output readable; a stale table diffs in
// thousands of lines.
func clipDiff(diff string) string {
	const max = 4096
	if len(diff) <= max {
		return diff
	}
	return diff[:max] + "\n... (diff truncated)"
}
