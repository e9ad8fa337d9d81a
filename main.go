package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/argp/argp"
	"github.com/ardnew/argp/cli"
	"github.com/ardnew/argp/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, argp.New().Args()...)
	if err != nil {
		log.Error(
			"run failed",
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
