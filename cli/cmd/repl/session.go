package repl

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/ardnew/argp/argp"
)

// action is a side effect requested by a command that the session itself
// cannot perform.
type action int

const (
	actionNone action = iota
	actionQuit
	actionClear
	actionEdit
	actionHelp
)

// session holds the token set operated on by REPL commands.
type session struct {
	set *argp.Set
}

func newSession(tokens ...string) *session {
	return &session{set: argp.From(tokens...)}
}

// command is a REPL command. run returns the text to print.
type command struct {
	name   string
	alias  []string
	usage  string
	help   string
	action action
	run    func(s *session, args []string) (string, error)
}

// commands lists every REPL command in help order.
var commands = []command{
	{name: "help", alias: []string{"h", "?"}, help: "Print this cruft", action: actionHelp},
	{name: "load", usage: "TOKEN...", help: "Replace the token set", run: (*session).load},
	{name: "reset", help: "Restore the token set to its origin", run: (*session).reset},
	{name: "flag", usage: "NAME...", help: "Consume a boolean flag", run: (*session).flag},
	{name: "option", usage: "NAME...", help: "Consume an option and print its value", run: (*session).option},
	{name: "prefix", usage: "PREFIX", help: "Consume a token by prefix", run: (*session).prefix},
	{name: "suffix", usage: "SUFFIX", help: "Consume a token by suffix", run: (*session).suffix},
	{name: "short", usage: "[PREFIX]", help: "Expand combined short flags", run: (*session).short},
	{name: "before", usage: "[MARKER]", help: "Print tokens before a marker", run: (*session).before},
	{name: "after", usage: "[MARKER]", help: "Print tokens after a marker", run: (*session).after},
	{name: "attach", help: "Keep only tokens after the first \"--\"", run: (*session).attach},
	{name: "index", usage: "TOKEN", help: "Print the position of a token", run: (*session).index},
	{name: "remove", usage: "INDEX [LENGTH]", help: "Remove a range of tokens", run: (*session).remove},
	{name: "suggest", usage: "NAME", help: "Print tokens resembling a name", run: (*session).suggest},
	{name: "args", help: "Print the working tokens", run: (*session).args},
	{name: "origin", help: "Print the original tokens", run: (*session).origin},
	{name: "dump", help: "Print the debug rendering", run: (*session).dump},
	{name: "edit", help: "Edit the working tokens in $EDITOR", action: actionEdit},
	{name: "clear", help: "Clear screen", action: actionClear},
	{name: "quit", alias: []string{"q", "exit"}, help: "Exit REPL", action: actionQuit},
}

// commandNames returns the primary name of every command.
func commandNames() []string {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.name
	}

	return names
}

func lookup(name string) (command, bool) {
	i := slices.IndexFunc(commands, func(c command) bool {
		return c.name == name || slices.Contains(c.alias, name)
	})
	if i < 0 {
		return command{}, false
	}

	return commands[i], true
}

// exec runs one line of input. Words are separated by whitespace.
func (s *session) exec(line string) (string, action, error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return "", actionNone, nil
	}

	c, ok := lookup(words[0])
	if !ok {
		return "", actionNone, fmt.Errorf("%w: %s (try 'help')", ErrUnknownCommand, words[0])
	}

	switch {
	case c.action == actionHelp:
		return helpText(), actionNone, nil

	case c.run == nil:
		return "", c.action, nil
	}

	out, err := c.run(s, words[1:])

	return out, c.action, err
}

func helpText() string {
	var b strings.Builder

	b.WriteString("Commands:\n\n")

	for _, c := range commands {
		use := strings.TrimSpace(c.name + " " + c.usage)
		fmt.Fprintf(&b, "  %-22s %s\n", use, c.help)
	}

	b.WriteString(`
Usage:
  Tokens are separated by whitespace; use 'edit' for tokens containing spaces
  Press Tab / Shift-Tab to cycle through candidates
  Use Up/Down arrows for history navigation
  Press Ctrl+C on empty line or Ctrl+D to exit`)

	return b.String()
}

func (s *session) load(args []string) (string, error) {
	s.set = argp.From(args...)

	return s.args(nil)
}

func (s *session) reset([]string) (string, error) {
	s.set = argp.From(s.set.Origin()...)

	return s.args(nil)
}

func (s *session) flag(args []string) (string, error) {
	if len(args) == 0 {
		return "", missing("NAME")
	}

	return strconv.FormatBool(s.set.Flag(args...)), nil
}

func (s *session) option(args []string) (string, error) {
	if len(args) == 0 {
		return "", missing("NAME")
	}

	return found(s.set.Option(args...))
}

func (s *session) prefix(args []string) (string, error) {
	if len(args) == 0 {
		return "", missing("PREFIX")
	}

	return found(s.set.Prefix(args[0]))
}

func (s *session) suffix(args []string) (string, error) {
	if len(args) == 0 {
		return "", missing("SUFFIX")
	}

	return found(s.set.Suffix(args[0]))
}

func (s *session) short(args []string) (string, error) {
	prefix := "-"
	if len(args) > 0 {
		prefix = args[0]
	}

	s.set.Short(prefix)

	return s.args(nil)
}

func (s *session) before(args []string) (string, error) {
	return position(s.set.Before(marker(args)))
}

func (s *session) after(args []string) (string, error) {
	return position(s.set.After(marker(args)))
}

func (s *session) attach([]string) (string, error) {
	return quote(s.set.Attach()), nil
}

func (s *session) index(args []string) (string, error) {
	if len(args) == 0 {
		return "", missing("TOKEN")
	}

	return strconv.Itoa(s.set.Index(args[0])), nil
}

// remove converts the out-of-range panic of [argp.Set.Remove] into an error
// so that a bad range does not end the session.
func (s *session) remove(args []string) (out string, err error) {
	if len(args) == 0 {
		return "", missing("INDEX")
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("%w: INDEX %q", ErrInvalidArgument, args[0])
	}

	length := 1

	if len(args) > 1 {
		length, err = strconv.Atoi(args[1])
		if err != nil {
			return "", fmt.Errorf("%w: LENGTH %q", ErrInvalidArgument, args[1])
		}
	}

	defer func() {
		if v := recover(); v != nil {
			e, ok := v.(error)
			if !ok {
				e = fmt.Errorf("%v", v)
			}

			out, err = "", e
		}
	}()

	s.set.Remove(index, length)

	return s.args(nil)
}

func (s *session) suggest(args []string) (string, error) {
	if len(args) == 0 {
		return "", missing("NAME")
	}

	return quote(s.set.Suggest(args[0])), nil
}

func (s *session) args([]string) (string, error) {
	return quote(s.set.Args()), nil
}

func (s *session) origin([]string) (string, error) {
	return quote(s.set.Origin()), nil
}

func (s *session) dump([]string) (string, error) {
	return s.set.String(), nil
}

func missing(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingArgument, name)
}

func marker(args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	return "--"
}

func found(value string, ok bool) (string, error) {
	if !ok {
		return "not found", nil
	}

	return strconv.Quote(value), nil
}

func position(values []string, at int) (string, error) {
	if at < 0 {
		return "not found", nil
	}

	return fmt.Sprintf("%s @%d", quote(values), at), nil
}

func quote(s []string) string {
	q := make([]string, len(s))
	for i, v := range s {
		q[i] = strconv.Quote(v)
	}

	return "[" + strings.Join(q, " ") + "]"
}
