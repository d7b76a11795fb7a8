//go:build !isolang_lowercase_names

package isolang

// nameKey normalizes keys for the name and autonym indices. The default
// build matches names exactly.
func nameKey(s string) string { return s }
