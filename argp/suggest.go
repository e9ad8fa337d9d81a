package argp

import "github.com/sahilm/fuzzy"

// Suggest returns the tokens of the working set that fuzzily resemble name,
// best match first. Exact matches are included.
//
// It is intended for "did you mean" diagnostics after a name failed to
// match, and does not modify the working set.
func (s *Set) Suggest(name string) []string {
	if name == "" || len(s.args) == 0 {
		return nil
	}

	matches := fuzzy.Find(name, s.args)
	if len(matches) == 0 {
		return nil
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}

	return out
}
