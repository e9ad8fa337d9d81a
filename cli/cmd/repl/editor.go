package repl

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/argp/log"
)

const defaultEditor = "vi"

// editCommand implements [tea.ExecCommand] for the edit-parse-retry loop.
// It writes the working tokens to a temp file as a YAML sequence, opens the
// user's editor, and decodes the result. On a decode error the user is
// prompted to re-edit; declining exits the program.
type editCommand struct {
	tokens  []string
	ctxFunc func() context.Context
	edited  []string
	changed bool
	logger  log.Logger
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// SetStdin sets the stdin reader for the command.
func (c *editCommand) SetStdin(r io.Reader) { c.stdin = r }

// SetStdout sets the stdout writer for the command.
func (c *editCommand) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr sets the stderr writer for the command.
func (c *editCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run executes the edit-parse-retry loop. An empty file cancels the edit.
// If the user declines to re-edit, it returns [ErrEditDeclined].
func (c *editCommand) Run() error {
	ctx := c.ctxFunc()

	content, err := encodeTokens(ctx, c.tokens)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(os.TempDir(), "argp-repl-*.yaml")
	if err != nil {
		return err
	}

	tmpPath := f.Name()

	defer os.Remove(tmpPath)

	if err := f.Chmod(0o600); err != nil {
		f.Close()

		return err
	}

	f.Close()

	for {
		if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
			return err
		}

		data, err := runEditor(ctx, c.stdin, c.stdout, c.stderr, tmpPath)
		if err != nil {
			return err
		}

		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}

		tokens, decodeErr := decodeTokens(data)
		c.logger.TraceContext(
			ctx,
			"editor decode attempt",
			slog.Int("content_length", len(data)),
			slog.Bool("success", decodeErr == nil),
		)

		if decodeErr == nil {
			c.edited, c.changed = tokens, true

			return nil
		}

		fmt.Fprintf(c.stderr, "\nDecode error: %s\n", decodeErr)
		fmt.Fprintf(c.stdout, "Re-edit? [Y/n] ")

		scanner := bufio.NewScanner(c.stdin)
		if !scanner.Scan() {
			return ErrEditDeclined
		}

		response := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if response == "n" || response == "no" {
			return ErrEditDeclined
		}

		content = data
	}
}

// encodeTokens renders tokens as a YAML sequence of strings.
func encodeTokens(ctx context.Context, tokens []string) ([]byte, error) {
	if len(tokens) == 0 {
		return []byte("[]\n"), nil
	}

	return yaml.MarshalContext(ctx, tokens)
}

// decodeTokens parses a YAML sequence of strings.
func decodeTokens(data []byte) ([]string, error) {
	var tokens []string
	if err := yaml.Unmarshal(data, &tokens); err != nil {
		return nil, err
	}

	if tokens == nil {
		tokens = []string{}
	}

	return tokens, nil
}

// runEditor launches the user's editor on the given file path and returns the
// edited file content.
func runEditor(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	path string,
) ([]byte, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return nil, err
	}

	return os.ReadFile(path)
}
