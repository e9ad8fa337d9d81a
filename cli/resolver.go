package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/argp/log"
)

// resolve returns a [kong.ConfigurationLoader] that parses YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(baseConfig), "/path/to/config.yaml")
//
// Keys are flag names. Nested mappings are joined with "-", and flag names
// may use underscores in place of hyphens, so these are equivalent:
//
//	log-level: debug
//	log_level: debug
//	log:
//	  level: debug
//
// If the document has a top-level mapping named name, only that mapping is
// used. A document that cannot be parsed is logged and ignored.
//
// Command-line flags override config file values.
func resolve(name string) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			if err != io.EOF {
				log.Warn("ignoring configuration file",
					slog.String("error", err.Error()),
				)
			}

			return config{}, nil
		}

		if sub, ok := doc[name].(map[string]any); ok {
			doc = sub
		}

		cfg := make(config)
		cfg.flatten("", doc)

		return cfg, nil
	}
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[normalize(flag.Name)]; ok {
		return value, nil
	}

	return nil, nil
}

// flatten stores every leaf of m in r, keyed by its normalized path.
func (r config) flatten(prefix string, m map[string]any) {
	for key, val := range m {
		key = normalize(key)
		if prefix != "" {
			key = prefix + "-" + key
		}

		switch v := val.(type) {
		case map[string]any:
			r.flatten(key, v)

		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			// Kong parses numbers from their string form.
			r[key] = fmt.Sprint(v)

		default:
			r[key] = v
		}
	}
}

func normalize(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}
