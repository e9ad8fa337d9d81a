package repl

import (
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/argp/argp"
)

func TestSessionExec(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		lines   []string
		want    string
		wantErr error
	}{
		{"flag_found", []string{"-v", "x"}, []string{"flag -v --verbose"}, "true", nil},
		{"flag_missing", []string{"x"}, []string{"flag -v"}, "false", nil},
		{"flag_consumed", []string{"-v", "x"}, []string{"flag -v", "args"}, `["x"]`, nil},
		{"option_separate", []string{"-o", "out", "x"}, []string{"option -o"}, `"out"`, nil},
		{"option_assigned", []string{"--out=a.txt"}, []string{"option --out"}, `"a.txt"`, nil},
		{"option_missing", []string{"x"}, []string{"option -o"}, "not found", nil},
		{"prefix", []string{"-Dfoo=1"}, []string{"prefix -D"}, `"foo=1"`, nil},
		{"suffix", []string{"main.go"}, []string{"suffix .go"}, `"main"`, nil},
		{"short", []string{"-abc", "x"}, []string{"short"}, `["x" "-a" "-b" "-c"]`, nil},
		{"before_default", []string{"a", "--", "b"}, []string{"before"}, `["a"] @1`, nil},
		{"after_marker", []string{"a", "=", "b"}, []string{"after ="}, `["b"] @1`, nil},
		{"before_missing", []string{"a"}, []string{"before"}, "not found", nil},
		{"attach", []string{"a", "--", "b", "c"}, []string{"attach", "args"}, `["b" "c"]`, nil},
		{"attach_missing", []string{"a", "b"}, []string{"attach"}, `[]`, nil},
		{"index", []string{"a", "b"}, []string{"index b"}, "1", nil},
		{"index_missing", []string{"a"}, []string{"index z"}, "-1", nil},
		{"remove", []string{"a", "b", "c"}, []string{"remove 0 2"}, `["c"]`, nil},
		{"remove_default_length", []string{"a", "b"}, []string{"remove 1"}, `["a"]`, nil},
		{"suggest", []string{"--verbose", "x"}, []string{"suggest verbose"}, `["--verbose"]`, nil},
		{"load_reset", nil, []string{"load a b", "flag a", "reset"}, `["a" "b"]`, nil},
		{"origin", []string{"a", "b"}, []string{"flag a", "origin"}, `["a" "b"]`, nil},
		{"dump", []string{"a"}, []string{"dump"}, argp.From("a").String(), nil},
		{"unknown", nil, []string{"frobnicate"}, "", ErrUnknownCommand},
		{"missing_argument", nil, []string{"prefix"}, "", ErrMissingArgument},
		{"invalid_index", []string{"a"}, []string{"remove x"}, "", ErrInvalidArgument},
		{"remove_out_of_range", []string{"a"}, []string{"remove 0 2"}, "", argp.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(tt.tokens...)

			var (
				out string
				err error
			)

			for _, line := range tt.lines {
				out, _, err = s.exec(line)
			}

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("exec() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("exec() error = %v", err)
			}

			if out != tt.want {
				t.Errorf("exec() = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestSessionRemoveOutOfRangeKeepsTokens(t *testing.T) {
	s := newSession("a", "b")

	if _, _, err := s.exec("remove 1 5"); err == nil {
		t.Fatal("exec() expected error")
	}

	if got := s.set.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestSessionActions(t *testing.T) {
	tests := []struct {
		line string
		want action
	}{
		{"quit", actionQuit},
		{"q", actionQuit},
		{"exit", actionQuit},
		{"clear", actionClear},
		{"edit", actionEdit},
		{"help", actionNone},
		{"args", actionNone},
		{"", actionNone},
	}

	for _, tt := range tests {
		s := newSession()

		if _, got, err := s.exec(tt.line); err != nil || got != tt.want {
			t.Errorf("exec(%q) = (%v, %v), want (%v, nil)", tt.line, got, err, tt.want)
		}
	}
}

func TestHelpListsEveryCommand(t *testing.T) {
	out, _, err := newSession().exec("help")
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range commandNames() {
		if !strings.Contains(out, name) {
			t.Errorf("help output missing %q", name)
		}
	}
}
