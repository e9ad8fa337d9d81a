package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// Prefix returns the base name used for the configuration and cache
// directories.
//
// It is the base name of the executable, without extension, after these
// substitutions:
//   - "__debug_bin<N>" (default output of the dlv debugger) becomes [Name]
//   - leading dots are removed
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(
	func() string {
		id := Name
		if len(os.Args) > 0 {
			id = os.Args[0]
		}

		if exe, err := os.Executable(); err == nil {
			id = exe
		}

		base := filepath.Base(id)
		id = strings.TrimSuffix(base, filepath.Ext(base))

		id = debugBin.ReplaceAllString(id, Name)
		id = leadingDots.ReplaceAllString(id, "")

		if id == "" {
			return Name
		}

		return id
	},
)

var (
	debugBin    = regexp.MustCompile(`^__debug_bin\d*$`)
	leadingDots = regexp.MustCompile(`^\.+`)
)

// ConfigDir returns the directory holding configuration files.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(
	func() string { return userDir(os.UserConfigDir, ".config") },
)

// CacheDir returns the directory holding transient files such as profiles and
// REPL history.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(
	func() string { return userDir(os.UserCacheDir, ".cache") },
)

// userDir joins [Prefix] to the directory returned by base. If base fails,
// home/fallback is used, and failing that the working directory.
func userDir(base func() (string, error), fallback string) string {
	dir, err := base()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, fallback)
		} else if wd, werr := os.Getwd(); werr == nil {
			dir = wd
		} else {
			dir = "."
		}
	}

	return filepath.Join(dir, Prefix())
}
