package cmd

import (
	"context"
	"slices"

	"github.com/ardnew/argp/argp"
)

// Flag consumes a boolean flag.
type Flag struct {
	Names []string `help:"Flag name to match; repeat for aliases (use --name=-v for dashed names)." name:"name" required:"" sep:"none" short:"n"`

	Tokens `embed:""`
}

// Run executes the flag command.
func (f *Flag) Run(ctx context.Context) error {
	return f.apply(ctx, "flag", func(set *argp.Set, res *Result) error {
		set.FlagVar(&res.Matched, f.Names...)

		if !res.Matched {
			res.Suggest = suggest(set, f.Names)
		}

		return nil
	})
}

// Option consumes a key/value option.
type Option struct {
	Names   []string `help:"Option name to match; repeat for aliases." name:"name" required:"" sep:"none" short:"n"`
	Default string   `help:"Value reported when no option matches."`

	Tokens `embed:""`
}

// Run executes the option command.
func (o *Option) Run(ctx context.Context) error {
	return o.apply(ctx, "option", func(set *argp.Set, res *Result) error {
		value := o.Default

		// Every match consumes at least one token.
		n := set.Len()
		set.OptionVar(&value, o.Names...)
		res.Matched = set.Len() < n

		if res.Matched || o.Default != "" {
			res.Value = ref(value)
		}

		if !res.Matched {
			res.Suggest = suggest(set, o.Names)
		}

		return nil
	})
}

// Prefix consumes the first token starting with a prefix.
type Prefix struct {
	Match string `help:"Prefix to match (e.g. --match=--define=)." required:"" short:"m"`

	Tokens `embed:""`
}

// Run executes the prefix command.
func (p *Prefix) Run(ctx context.Context) error {
	return p.apply(ctx, "prefix", func(set *argp.Set, res *Result) error {
		value, ok := set.Prefix(p.Match)
		res.Matched = ok

		if ok {
			res.Value = ref(value)
		}

		return nil
	})
}

// Suffix consumes the first token ending with a suffix.
type Suffix struct {
	Match string `help:"Suffix to match (e.g. --match=.go)." required:"" short:"m"`

	Tokens `embed:""`
}

// Run executes the suffix command.
func (s *Suffix) Run(ctx context.Context) error {
	return s.apply(ctx, "suffix", func(set *argp.Set, res *Result) error {
		value, ok := set.Suffix(s.Match)
		res.Matched = ok

		if ok {
			res.Value = ref(value)
		}

		return nil
	})
}

// Short expands short flag clusters.
type Short struct {
	Prefix string   `default:"-" help:"Short flag prefix."`
	Names  []string `help:"Flag to match after expansion; repeat for several." name:"name" sep:"none" short:"n"`

	Tokens `embed:""`
}

// Run executes the short command.
func (s *Short) Run(ctx context.Context) error {
	return s.apply(ctx, "short", func(set *argp.Set, res *Result) error {
		set.Short(s.Prefix)

		if len(s.Names) == 0 {
			// Report whether any cluster was expanded.
			res.Matched = !slices.Equal(set.Args(), set.Origin())

			return nil
		}

		res.Matched = true

		for _, name := range s.Names {
			if set.Flag(name) {
				res.Values = append(res.Values, name)
			} else {
				res.Matched = false
			}
		}

		return nil
	})
}
