package cli

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/argp/cli/cmd"
	"github.com/ardnew/argp/pkg"
)

// CLI is the top-level command-line interface for argp.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Format string `default:"text" enum:"${formatEnum}" help:"Result format (${enum})."`
	Strict bool   `help:"Exit with an error when the operation does not match."`

	Flag    cmd.Flag    `cmd:"" help:"Consume a boolean flag"`
	Option  cmd.Option  `cmd:"" help:"Consume an option and report its value"`
	Prefix  cmd.Prefix  `cmd:"" help:"Consume the first token with a prefix"`
	Suffix  cmd.Suffix  `cmd:"" help:"Consume the first token with a suffix"`
	Short   cmd.Short   `cmd:"" help:"Expand combined short flags"`
	Before  cmd.Before  `cmd:"" help:"Report tokens before a marker"`
	After   cmd.After   `cmd:"" help:"Report tokens after a marker"`
	Attach  cmd.Attach  `cmd:"" help:"Keep only tokens after '--'"`
	Index   cmd.Index   `cmd:"" help:"Report the position of a token"`
	Remove  cmd.Remove  `cmd:"" help:"Remove a range of tokens"`
	Dump    cmd.Dump    `cmd:"" help:"Print the token set"`
	Repl    cmd.Repl    `cmd:"" help:"Start an interactive session"`
	Init    cmd.Init    `cmd:"" help:"Initialize configuration file"`
	Version cmd.Version `cmd:"" help:"Print version"`
}

// Run executes the argp CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath + ".yaml",
		cmd.CacheIdentifier:  cachePath(),
		"formatEnum":         strings.Join(cmd.Formats, ","),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(resolve(baseConfig), configFilePath+".yaml"),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithOutput(ctx, cmd.Output{
		Writer: ktx.Stdout,
		Format: cli.Format,
		Strict: cli.Strict,
	})

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	defer cli.Log.start(ctx)()

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}
