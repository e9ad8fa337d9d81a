package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
)

// Output formats accepted by [Output.Format].
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Result is the outcome of applying one operation to a token set.
type Result struct {
	Op       string   `json:"op"                 yaml:"op"`
	Matched  bool     `json:"matched"            yaml:"matched"`
	Value    *string  `json:"value,omitempty"    yaml:"value,omitempty"`
	Values   []string `json:"values,omitempty"   yaml:"values,omitempty"`
	Position *int     `json:"position,omitempty" yaml:"position,omitempty"`
	Suggest  []string `json:"suggest,omitempty"  yaml:"suggest,omitempty"`
	Args     []string `json:"args"               yaml:"args"`
	Origin   []string `json:"origin"             yaml:"origin"`
}

func ref[T any](v T) *T { return &v }

// Render writes r to w in the given format.
func (r Result) Render(ctx context.Context, w io.Writer, format string) error {
	switch format {
	case FormatText:
		return r.renderText(w)

	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return ErrMarshal.With(slog.String("format", format)).Wrap(err)
		}

		_, err = fmt.Fprintln(w, string(data))

		return err

	case FormatYAML:
		data, err := yaml.MarshalContext(ctx, r, yaml.Indent(2))
		if err != nil {
			return ErrMarshal.With(slog.String("format", format)).Wrap(err)
		}

		_, err = w.Write(data)

		return err

	default:
		return ErrInvalidFormat.With(
			slog.String("format", format),
			slog.String("valid", strings.Join(Formats, ",")),
		)
	}
}

const labelWidth = 9

func (r Result) renderText(w io.Writer) error {
	re := lipgloss.NewRenderer(w)
	label := re.NewStyle().Foreground(lipgloss.Color("8"))
	yes := re.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	no := re.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	value := re.NewStyle().Foreground(lipgloss.Color("6"))

	var sb strings.Builder

	line := func(key, val string) {
		sb.WriteString(label.Render(key))
		sb.WriteString(strings.Repeat(" ", max(1, labelWidth-len(key))))
		sb.WriteString(val)
		sb.WriteByte('\n')
	}

	line("op", r.Op)

	if r.Matched {
		line("matched", yes.Render("true"))
	} else {
		line("matched", no.Render("false"))
	}

	if r.Value != nil {
		line("value", value.Render(strconv.Quote(*r.Value)))
	}

	if r.Values != nil {
		line("values", value.Render(quoteAll(r.Values)))
	}

	if r.Position != nil {
		line("position", strconv.Itoa(*r.Position))
	}

	if len(r.Suggest) > 0 {
		line("suggest", quoteAll(r.Suggest))
	}

	line("args", quoteAll(r.Args))
	line("origin", quoteAll(r.Origin))

	_, err := io.WriteString(w, sb.String())

	return err
}

func quoteAll(s []string) string {
	return fmt.Sprintf("%q", s)
}
