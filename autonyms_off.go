//go:build !isolang_autonyms

package isolang

// Autonyms are compiled out; FromString skips the autonym step.
func lookupByAutonym(string) (Language, bool) { return Und, false }
