package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/argp/argp"
)

// Before reports the tokens preceding a marker.
type Before struct {
	Marker string `default:"--" help:"Marker token." short:"m"`

	Tokens `embed:""`
}

// Run executes the before command.
func (b *Before) Run(ctx context.Context) error {
	return b.apply(ctx, "before", func(set *argp.Set, res *Result) error {
		values, at := set.Before(b.Marker)
		res.Matched = at >= 0
		res.Values = nonNil(values)
		res.Position = ref(at)

		return nil
	})
}

// After reports the tokens following a marker.
type After struct {
	Marker string `default:"--" help:"Marker token." short:"m"`

	Tokens `embed:""`
}

// Run executes the after command.
func (a *After) Run(ctx context.Context) error {
	return a.apply(ctx, "after", func(set *argp.Set, res *Result) error {
		values, at := set.After(a.Marker)
		res.Matched = at >= 0
		res.Values = nonNil(values)
		res.Position = ref(at)

		return nil
	})
}

// Attach keeps only the tokens after the first "--".
type Attach struct {
	Tokens `embed:""`
}

// Run executes the attach command.
func (a *Attach) Run(ctx context.Context) error {
	return a.apply(ctx, "attach", func(set *argp.Set, res *Result) error {
		n := set.Len()
		res.Values = nonNil(set.Attach())
		res.Matched = set.Len() < n

		return nil
	})
}

// Index locates a token.
type Index struct {
	Target string `arg:"" help:"Token to look for." name:"target"`
	Where  string `help:"Predicate over 'arg' and 'target' used instead of equality, e.g. 'arg startsWith target'." short:"w"`

	Tokens `embed:""`
}

// predicateEnv is the environment of an Index --where expression.
type predicateEnv struct {
	Arg    string `expr:"arg"`
	Target string `expr:"target"`
}

// Run executes the index command.
func (x *Index) Run(ctx context.Context) error {
	match, err := compilePredicate(x.Where)
	if err != nil {
		return err
	}

	return x.apply(ctx, "index", func(set *argp.Set, res *Result) error {
		var at int

		if match == nil {
			at = set.Index(x.Target)
		} else {
			var evalErr error

			at = set.IndexFunc(x.Target, func(arg, target string) bool {
				ok, err := match(arg, target)
				if err != nil && evalErr == nil {
					evalErr = err
				}

				return ok
			})

			if evalErr != nil {
				return ErrExprEvaluate.With(slog.String("where", x.Where)).Wrap(evalErr)
			}
		}

		res.Matched = at >= 0
		res.Position = ref(at)

		return nil
	})
}

// compilePredicate compiles source into a token predicate.
// An empty source yields a nil predicate.
func compilePredicate(source string) (func(arg, target string) (bool, error), error) {
	if source == "" {
		return nil, nil
	}

	program, err := expr.Compile(source, expr.Env(predicateEnv{}), expr.AsBool())
	if err != nil {
		return nil, ErrExprCompile.With(slog.String("where", source)).Wrap(err)
	}

	return func(arg, target string) (bool, error) {
		return runPredicate(program, predicateEnv{Arg: arg, Target: target})
	}, nil
}

func runPredicate(program *vm.Program, env predicateEnv) (bool, error) {
	out, err := expr.Run(program, env)
	if err != nil {
		return false, err
	}

	ok, _ := out.(bool)

	return ok, nil
}

// Remove deletes a range of tokens.
type Remove struct {
	Index  int `help:"Index of the first token to remove." required:"" short:"i"`
	Length int `default:"1" help:"Number of tokens to remove." short:"l"`

	Tokens `embed:""`
}

// Run executes the remove command.
func (r *Remove) Run(ctx context.Context) error {
	return r.apply(ctx, "remove", func(set *argp.Set, res *Result) (err error) {
		defer func() {
			if v := recover(); v != nil {
				e, ok := v.(error)
				if !ok {
					e = fmt.Errorf("%v", v)
				}

				err = e
			}
		}()

		set.Remove(r.Index, r.Length)
		res.Matched = true

		return nil
	})
}

// Dump renders the token set without modifying it.
type Dump struct {
	Tokens `embed:""`
}

// Run executes the dump command.
func (d *Dump) Run(ctx context.Context) error {
	out := outputFrom(ctx)
	if out.Format == FormatText {
		_, err := fmt.Fprintln(out.Writer, argp.From(d.Tokens.Tokens...))

		return err
	}

	return d.apply(ctx, "dump", func(_ *argp.Set, res *Result) error {
		res.Matched = true

		return nil
	})
}
