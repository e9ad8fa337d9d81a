package argp

import "slices"

// Before returns the tokens preceding the first occurrence of marker at an
// index greater than zero, along with that index.
// If there is no such occurrence, Before returns nil and -1.
//
// The working set is not modified.
func (s *Set) Before(marker string) ([]string, int) {
	for i, arg := range s.args {
		if i > 0 && arg == marker {
			return slices.Clone(s.args[:i]), i
		}
	}

	return nil, -1
}

// After returns the tokens following the first occurrence of marker that is
// not the last token, along with the index of that occurrence.
// If there is no such occurrence, After returns nil and -1.
//
// The working set is not modified.
func (s *Set) After(marker string) ([]string, int) {
	for i, arg := range s.args {
		if i+1 < len(s.args) && arg == marker {
			return slices.Clone(s.args[i+1:]), i
		}
	}

	return nil, -1
}

// Attach splits the working set at "--".
//
// If "--" is followed by at least one token, the marker and everything before
// it are removed, and the remaining tokens are returned. Otherwise the working
// set is unchanged and Attach returns nil.
func (s *Set) Attach() []string {
	after, at := s.After(terminator)
	if at < 0 {
		return nil
	}

	s.Remove(0, at+1)

	return after
}

const terminator = "--"
