// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers are configured with functional options at creation time:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
//	logger.Info("tokens matched", slog.Int("count", 3))
//
// Attributes added with [Logger.With] are included in every subsequent
// message of the returned logger.
//
// # Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Messages below the configured level are
// discarded.
//
// # Formats
//
// [FormatJSON] (default) writes one JSON object per message. [FormatText]
// writes key=value pairs; with [WithPretty] enabled, text output is
// colorized when the destination is a terminal.
//
// # Package-Level Logger
//
// The package-level functions ([Info], [Debug], ...) write through a default
// logger that is reconfigured with [Config].
package log
