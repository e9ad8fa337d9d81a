package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// Output controls how subcommands report their results.
type Output struct {
	// Writer receives rendered results. Nil means os.Stdout.
	Writer io.Writer
	// Format is one of "text", "json", or "yaml". Empty means "text".
	Format string
	// Strict makes a subcommand fail with [ErrNoMatch] when its operation
	// did not match.
	Strict bool
}

type outputKey struct{}

// WithOutput returns a new context.Context carrying the given Output.
func WithOutput(ctx context.Context, out Output) context.Context {
	return context.WithValue(ctx, outputKey{}, out)
}

func outputFrom(ctx context.Context) Output {
	out, _ := ctx.Value(outputKey{}).(Output)

	if out.Writer == nil {
		out.Writer = os.Stdout
	}

	if out.Format == "" {
		out.Format = FormatText
	}

	return out
}
