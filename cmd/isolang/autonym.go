//go:build isolang_autonyms

package main

import "github.com/humenda/isolang"

func autonym(l isolang.Language) string {
	a, _ := l.Autonym()
	return a
}
