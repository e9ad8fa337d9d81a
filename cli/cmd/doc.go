// Package cmd implements the argp subcommands.
//
// Each subcommand builds an [argp.Set] from its trailing token arguments,
// applies one operation, and renders a [Result] as text, JSON, or YAML.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
