package argp

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// Set is a mutable view over a sequence of argument tokens.
//
// Matching methods search and consume tokens from the working set. The
// original snapshot taken at construction is kept for reference and is never
// modified.
type Set struct {
	args   []string
	origin []string
}

// New returns a Set over the arguments of the current process, excluding the
// program name.
func New() *Set {
	if len(os.Args) < 2 {
		return From()
	}

	return From(os.Args[1:]...)
}

// From returns a Set over the given tokens.
// The Set keeps its own copies; later changes to tokens are not observed.
func From(tokens ...string) *Set {
	return &Set{
		args:   slices.Clone(tokens),
		origin: slices.Clone(tokens),
	}
}

// Args returns a copy of the working set.
func (s *Set) Args() []string { return slices.Clone(s.args) }

// Origin returns a copy of the tokens the Set was constructed with.
func (s *Set) Origin() []string { return slices.Clone(s.origin) }

// Len returns the number of tokens in the working set.
func (s *Set) Len() int { return len(s.args) }

// String returns a diagnostic rendering of both the working set and the
// original snapshot. The layout is not stable.
func (s *Set) String() string {
	var sb strings.Builder

	sb.WriteString("argp.Set{\n")
	fmt.Fprintf(&sb, "  args:   %q,\n", s.args)
	fmt.Fprintf(&sb, "  origin: %q,\n", s.origin)
	sb.WriteString("}")

	return sb.String()
}

// Index returns the index of the first token equal to target,
// or -1 if there is none.
func (s *Set) Index(target string) int {
	return slices.Index(s.args, target)
}

// IndexFunc returns the index of the first token for which
// match(token, target) reports true, or -1 if there is none.
func (s *Set) IndexFunc(target string, match func(arg, target string) bool) int {
	return slices.IndexFunc(s.args, func(arg string) bool {
		return match(arg, target)
	})
}

// Remove deletes length consecutive tokens from the working set starting at
// index.
//
// Remove panics with an [*Error] wrapping [ErrOutOfRange] if the range does
// not lie entirely within the current working set.
func (s *Set) Remove(index, length int) {
	if index < 0 || length < 0 || index+length > len(s.args) {
		panic(ErrOutOfRange.With(rangeAttrs(index, length, len(s.args))...))
	}

	s.args = slices.Delete(s.args, index, index+length)
}
