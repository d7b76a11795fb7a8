//go:build !isolang_no_names

package main

import "github.com/humenda/isolang"

func englishName(l isolang.Language) string { return l.Name() }
