// Package cli contains the command line interface for argp.
//
// # Usage
//
// Each subcommand applies one token-set operation to the tokens given after
// "--" and reports the result:
//
//	argp flag --name=-v --name=--verbose -- -v build ./...
//	argp option --name=-o -- -o out.txt build
//	argp index --where='arg startsWith target' --o -- a --out=x
//
// Results are rendered as text, JSON, or YAML (--format). With --strict, an
// operation that does not match exits with an error.
//
// # Configuration
//
// Flag defaults may be set in config.yaml (or config.json) in the user
// configuration directory. The init subcommand writes the current flag values
// to config.yaml. Keys are flag names, optionally nested:
//
//	format: json
//	log:
//	  level: debug
//
// Command-line flags override config file values.
//
// # Logging Options
//
// Logging flags are scanned before parsing, so they apply to parse errors too:
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, etc.)
//   - --[no-]log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o argp .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: <cache>/pprof)
package cli
