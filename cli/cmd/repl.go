package cmd

import (
	"context"

	"github.com/ardnew/argp/cli/cmd/repl"
	"github.com/ardnew/argp/log"
)

// Repl starts an interactive session over a token set.
type Repl struct {
	Tokens `embed:""`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	var cacheDir string

	if ktx := kongContextFrom(ctx); ktx != nil {
		cacheDir = ktx.Model.Vars()[CacheIdentifier]
	}

	return repl.Run(ctx, r.Tokens.Tokens, cacheDir, log.Default())
}
