// Package argp extracts recognized tokens from a flat sequence of
// command-line style strings.
//
// A [Set] holds two views of the same token sequence: the working set, which
// shrinks as tokens are matched and consumed, and the original snapshot,
// which never changes after construction. Each extraction method searches the
// working set, reports whether it matched, and removes whatever it consumed so
// the remaining tokens can be inspected independently.
//
// # Construction
//
//	s := argp.New()                     // os.Args without the program name
//	s := argp.From("-v", "--out", "x")  // any caller-supplied sequence
//
// # Flags and Options
//
// [Set.Flag] consumes a single token equal to any of the given names:
//
//	verbose := s.Flag("-v", "--verbose")
//
// [Set.Option] recognizes three shapes of key/value pair and consumes all of
// the tokens involved:
//
//	["--out", "=", "x"]  // 3 tokens
//	["--out", "x"]       // 2 tokens
//	["--out=x"]          // 1 token
//
// The Var variants write the result into a destination. [Set.FlagVar] always
// assigns, while [Set.OptionVar] only assigns when a value was found, so a
// default held by the destination survives a missing option.
//
// # Positional Slicing
//
// [Set.Before] and [Set.After] return the tokens on either side of a marker
// without mutating the set. [Set.Attach] splits at "--", keeping only the
// trailing tokens in the working set.
//
// # Short Flag Clusters
//
// [Set.Short] explodes combined short flags so they can be matched one at a
// time:
//
//	s := argp.From("-abc")
//	s.Short("-").Flag("-b") // true; working set is now [-a -c]
//
// # Errors
//
// Nothing in this package returns an error. Not-found outcomes are reported
// through a boolean or a -1 index. [Set.Remove] panics with an [*Error]
// wrapping [ErrOutOfRange] when asked to remove tokens that do not exist,
// since continuing with a truncated set would corrupt later scans.
//
// A Set is not safe for concurrent mutation.
package argp
