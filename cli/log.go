package cli

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/argp/argp"
	"github.com/ardnew/argp/log"
)

// logFormat is a custom type that configures the logger format as a side
// effect of parsing via encoding.TextUnmarshaler.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-format flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during parsing.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel is a custom type that configures the logger level as a side
// effect of parsing via encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"${logLevelEnum}"  help:"Set log level."`
	Format     logFormat `default:"text"    enum:"${logFormatEnum}" help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                         help:"Set timestamp format."`
	Caller     bool      `default:"false"                           help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                            help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	var levels, formats []string

	for l := range log.Levels() {
		levels = append(levels, l)
	}

	for f := range log.Formats() {
		formats = append(formats, f)
	}

	return kong.Vars{
		"logLevelEnum":  strings.Join(levels, ","),
		"logFormatEnum": strings.Join(formats, ","),
	}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start(ctx context.Context) func() {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)

	return func() {}
}

// scan performs an early pass over command-line arguments to extract and
// apply logger configuration before Kong begins parsing, so the logger is
// configured regardless of flag position. Tokens after "--" are ignored.
//
// The arguments themselves are not modified.
func (f *logConfig) scan(args []string) {
	set := argp.From(args...)
	if before, at := set.Before("--"); at >= 0 {
		set = argp.From(before...)
	}

	if level, ok := set.Option("--log-level"); ok {
		_ = f.Level.UnmarshalText([]byte(level))
	}

	if format, ok := set.Option("--log-format"); ok {
		_ = f.Format.UnmarshalText([]byte(format))
	}

	if v, ok := scanBool(set, "log-pretty"); ok {
		f.Pretty = v
		log.Config(log.WithPretty(v))
	}

	if v, ok := scanBool(set, "log-caller"); ok {
		f.Caller = v
		log.Config(log.WithCaller(v))
	}
}

// scanBool consumes the negatable boolean flag name from set in any of the
// forms --name, --no-name, --name=<bool>, or --no-name=<bool>.
// Bare forms are consumed first so that only assigned forms reach Option.
func scanBool(set *argp.Set, name string) (value, ok bool) {
	if set.Flag("--" + name) {
		value, ok = true, true
	}

	if set.Flag("--no-" + name) {
		value, ok = false, true
	}

	for _, neg := range []bool{false, true} {
		key := "--" + name
		if neg {
			key = "--no-" + name
		}

		s, found := set.Option(key)
		if !found {
			continue
		}

		if b, err := strconv.ParseBool(s); err == nil {
			value, ok = b != neg, true
		}
	}

	return value, ok
}
