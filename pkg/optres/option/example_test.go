package option_test

import (
	"fmt"
	"strings"

	"github.com/ib-77/optres/pkg/optres/option"
)

func lookup(env map[string]string, key string) option.Option[string] {
	v, ok := env[key]
	return option.FromPair(v, ok)
}

func Example() {
	env := map[string]string{"HOME": "/root", "EMPTY": ""}

	home := option.Map(lookup(env, "HOME"), strings.ToUpper)
	fmt.Println(home)

	// An empty string is still a value.
	fmt.Println(lookup(env, "EMPTY").IsPresent())

	shell := lookup(env, "SHELL").UnwrapOr("/bin/sh")
	fmt.Println(shell)

	// Output:
	// Present(/ROOT)
	// true
	// /bin/sh
}

func ExampleZipWith() {
	width := option.Present(3)
	height := option.Present(4)

	area := option.ZipWith(width, height, func(w, h int) int { return w * h })
	fmt.Println(area)

	area = option.ZipWith(width, option.Absent[int](), func(w, h int) int { return w * h })
	fmt.Println(area)

	// Output:
	// Present(12)
	// Absent
}

func ExampleOption_Xor() {
	fmt.Println(option.Present(2).Xor(option.Absent[int]()))
	fmt.Println(option.Present(2).Xor(option.Present(3)))

	// Output:
	// Present(2)
	// Absent
}
