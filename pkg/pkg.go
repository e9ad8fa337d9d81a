//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// version holds the contents of the VERSION file.
//
//go:embed VERSION
var version string

// Version returns the embedded version string with surrounding whitespace
// removed.
func Version() string { return strings.TrimSpace(version) }

const (
	// Name is the canonical command and module identifier. It appears in help
	// text and in the default config and cache paths.
	Name = "argp"
	// Description is a short summary of the project used in help output.
	Description = "Extract flags, options, and positional slices from argument tokens"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the primary author(s) of the project.
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
