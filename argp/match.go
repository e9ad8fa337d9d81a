package argp

import "strings"

// Flag reports whether any token in the working set equals one of names.
// The first such token is removed.
//
// Tokens are scanned in order, and each token is compared against names in
// the order given.
func (s *Set) Flag(names ...string) bool {
	for i, arg := range s.args {
		for _, name := range names {
			if arg == name {
				s.Remove(i, 1)

				return true
			}
		}
	}

	return false
}

// FlagVar stores the result of [Set.Flag] in v.
// v is always overwritten, including with false.
func (s *Set) FlagVar(v *bool, names ...string) {
	*v = s.Flag(names...)
}

// Option returns the value associated with the first of names found in the
// working set, and removes every token that made up the match.
//
// Names are tried in the order given. For each name, tokens are scanned in
// order and the first of the following shapes wins:
//
//	name "=" value  // 3 tokens consumed
//	name value      // 2 tokens consumed
//	name=value      // 1 token consumed
//
// A token equal to name with nothing after it does not match.
func (s *Set) Option(names ...string) (string, bool) {
	for _, name := range names {
		for i, arg := range s.args {
			if arg == name && i+1 < len(s.args) {
				if s.args[i+1] == "=" && i+2 < len(s.args) {
					value := s.args[i+2]
					s.Remove(i, 3)

					return value, true
				}

				value := s.args[i+1]
				s.Remove(i, 2)

				return value, true
			}

			if value, ok := strings.CutPrefix(arg, name+"="); ok {
				s.Remove(i, 1)

				return value, true
			}
		}
	}

	return "", false
}

// OptionVar stores the value found by [Set.Option] in v.
// v is left unchanged when no option matched, so it may hold a default.
func (s *Set) OptionVar(v *string, names ...string) {
	if value, ok := s.Option(names...); ok {
		*v = value
	}
}

// Prefix removes the first token that starts with prefix and is longer than
// it, returning the rest of that token.
func (s *Set) Prefix(prefix string) (string, bool) {
	for i, arg := range s.args {
		if len(arg) > len(prefix) && strings.HasPrefix(arg, prefix) {
			s.Remove(i, 1)

			return arg[len(prefix):], true
		}
	}

	return "", false
}

// Suffix removes the first token that ends with suffix and is longer than
// it, returning the leading part of that token.
func (s *Set) Suffix(suffix string) (string, bool) {
	for i, arg := range s.args {
		if len(arg) > len(suffix) && strings.HasSuffix(arg, suffix) {
			s.Remove(i, 1)

			return arg[:len(arg)-len(suffix)], true
		}
	}

	return "", false
}

// Short expands clusters of short flags.
//
// Every token that starts with prefix, is longer than prefix, and whose
// remainder does not itself contain prefix is removed. For each character of
// the remainder, in order, a token prefix+character is appended to the end of
// the working set. Tokens appended this way are not expanded again.
//
// Short returns s for chaining.
func (s *Set) Short(prefix string) *Set {
	var expanded []string

	// end excludes tokens appended by an earlier expansion.
	for i, end := 0, len(s.args); i < end; {
		rest, ok := strings.CutPrefix(s.args[i], prefix)
		if !ok || rest == "" || strings.Contains(rest, prefix) {
			i++

			continue
		}

		s.Remove(i, 1)
		end--

		for _, c := range rest {
			expanded = append(expanded, prefix+string(c))
		}
	}

	s.args = append(s.args, expanded...)

	return s
}
