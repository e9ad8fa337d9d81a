package argp_test

import (
	"fmt"

	"github.com/ardnew/argp/argp"
)

func Example() {
	s := argp.From("-vq", "--out", "=", "build", "--level=3", "main.go", "--", "x", "y")

	s.Short("-")
	verbose := s.Flag("-v", "--verbose")
	quiet := s.Flag("-q", "--quiet")

	out := "."
	s.OptionVar(&out, "-o", "--out")

	level, _ := s.Option("--level")
	file, _ := s.Suffix(".go")
	tail := s.Attach()

	fmt.Println(verbose, quiet, out, level, file, tail)
	fmt.Println(s.Args(), len(s.Origin()))
	// Output:
	// true true build 3 main [x y]
	// [x y] 9
}

func ExampleSet_Option() {
	for _, args := range [][]string{
		{"--name", "=", "alice", "rest"},
		{"--name", "bob"},
		{"--name=carol"},
		{"--name"},
	} {
		s := argp.From(args...)
		value, ok := s.Option("--name")
		fmt.Printf("%q %v %q\n", value, ok, s.Args())
	}
	// Output:
	// "alice" true ["rest"]
	// "bob" true []
	// "carol" true []
	// "" false ["--name"]
}

func ExampleSet_OptionVar() {
	s := argp.From("-v")

	dir := "/tmp"
	s.OptionVar(&dir, "--dir")

	verbose := true
	s.FlagVar(&verbose, "-q")

	fmt.Println(dir, verbose)
	// Output:
	// /tmp false
}

func ExampleSet_Short() {
	s := argp.From("-abc", "--long", "-x-")

	fmt.Println(s.Short("-").Args())
	// Output:
	// [--long -x- -a -b -c]
}

func ExampleSet_Before() {
	s := argp.From("build", "./...", "--", "-run", "TestX")

	head, at := s.Before("--")
	tail, _ := s.After("--")

	fmt.Println(head, at, tail)
	// Output:
	// [build ./...] 2 [-run TestX]
}
