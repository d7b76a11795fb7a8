//go:build isolang_lowercase_names

package isolang

import "strings"

// nameKey normalizes keys for the name and autonym indices. Built with
// the isolang_lowercase_names tag, both table keys and lookup inputs are
// lowercased, making FromName and FromAutonym case-insensitive.
func nameKey(s string) string { return strings.ToLower(s) }
