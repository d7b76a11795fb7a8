//go:build !isolang_no_names

package isolang_test

import (
	"fmt"

	"github.com/humenda/isolang"
)

func ExampleFromISO1() {
	if l, ok := isolang.FromISO1("de"); ok {
		fmt.Println(l.ISO3(), l.Name())
	}
	// Output: deu German
}

func ExampleFromISO3() {
	l, ok := isolang.FromISO3("spa")
	fmt.Println(ok)
	if c1, ok := l.ISO1(); ok {
		fmt.Println(c1)
	}
	// Output:
	// true
	// es
}

func ExampleFromString() {
	for _, s := range []string{"en", "eng", "English"} {
		l, _ := isolang.FromString(s)
		fmt.Println(l)
	}
	// Output:
	// eng
	// eng
	// eng
}

func ExampleDefault() {
	l := isolang.Default()
	_, hasISO1 := l.ISO1()
	fmt.Println(l.ISO3(), hasISO1)
	// Output: und false
}
