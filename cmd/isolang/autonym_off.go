//go:build !isolang_autonyms

package main

import "github.com/humenda/isolang"

// Autonyms are compiled out of this build.
func autonym(isolang.Language) string { return "" }
