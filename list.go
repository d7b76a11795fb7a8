//go:build isolang_list

package isolang

import "iter"

// All returns an iterator over every registry entry in a fixed order:
// Und first, then ascending by ISO 639-3 code. The sequence is finite
// and restartable; each range starts over from Und.
func All() iter.Seq[Language] {
	return func(yield func(Language) bool) {
		for i := range languages {
			if !yield(Language(i)) {
				return
			}
		}
	}
}
