package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/argp/argp"
	"github.com/ardnew/argp/log"
)

// Tokens is embedded by every subcommand that operates on a token set.
type Tokens struct {
	Tokens []string `arg:"" help:"Tokens to operate on; place them after '--'." name:"tokens" optional:""`
}

// apply builds a token set from t, runs op against it, and reports the
// result according to the Output stored in ctx.
func (t Tokens) apply(
	ctx context.Context,
	name string,
	op func(*argp.Set, *Result) error,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	out := outputFrom(ctx)
	set := argp.From(t.Tokens...)
	res := Result{Op: name}

	log.TraceContext(ctx, "apply",
		slog.String("op", name),
		slog.Any("tokens", t.Tokens),
	)

	if err := op(set, &res); err != nil {
		return err
	}

	res.Args = nonNil(set.Args())
	res.Origin = nonNil(set.Origin())

	log.DebugContext(ctx, "applied",
		slog.String("op", name),
		slog.Bool("matched", res.Matched),
		slog.Int("consumed", len(res.Origin)-len(res.Args)),
	)

	if err := res.Render(ctx, out.Writer, out.Format); err != nil {
		return err
	}

	if out.Strict && !res.Matched {
		return ErrNoMatch.With(slog.String("op", name))
	}

	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

// suggest collects fuzzy matches for each name from the working set,
// without duplicates.
func suggest(set *argp.Set, names []string) []string {
	var (
		out  []string
		seen = make(map[string]struct{})
	)

	for _, name := range names {
		for _, s := range set.Suggest(name) {
			if _, ok := seen[s]; ok {
				continue
			}

			seen[s] = struct{}{}
			out = append(out, s)
		}
	}

	return out
}
