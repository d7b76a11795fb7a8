//go:build isolang_no_names

package main

import "github.com/humenda/isolang"

// English names are compiled out of this build.
func englishName(isolang.Language) string { return "" }
