//go:build isolang_no_names

package isolang

// English names are compiled out; FromString skips the name step.
func lookupByName(string) (Language, bool) { return Und, false }
