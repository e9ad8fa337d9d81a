package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by prettyHandler. Styles are bound to a
// renderer for the handler's writer, so color is dropped automatically when
// the writer is not a terminal.
type palette struct {
	key, str, num, dur, tim lipgloss.Style
	yes, no                 lipgloss.Style
	trace, debug            lipgloss.Style
	info, warn, err         lipgloss.Style
}

func makePalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:   fg("8"),
		str:   fg("6"),
		num:   fg("3"),
		dur:   fg("5"),
		tim:   fg("4"),
		yes:   fg("2"),
		no:    fg("1"),
		trace: fg("8"),
		debug: fg("4"),
		info:  fg("2"),
		warn:  fg("3").Bold(true),
		err:   fg("1").Bold(true),
	}
}

func (p palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.err
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// prettyHandler writes unquoted, colorized key=value lines.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	style  palette
	attrs  []slog.Attr
	groups []string
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{
		opts:  *opts,
		mu:    &sync.Mutex{},
		w:     w,
		style: makePalette(w),
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeAttr(buf, nil, slog.Time(slog.TimeKey, r.Time))
	}

	h.writeAttr(buf, nil, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeAttr(buf, nil,
				slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	h.writeAttr(buf, nil, slog.String(slog.MessageKey, r.Message))

	for _, a := range h.attrs {
		h.writeAttr(buf, h.groups, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.groups, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &c
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, groups []string, a slog.Attr) {
	// The level keeps its slog.Level value so it can be colored by severity.
	isLevel := groups == nil && a.Key == slog.LevelKey
	if rep := h.opts.ReplaceAttr; rep != nil && !isLevel && a.Value.Kind() != slog.KindGroup {
		a = rep(groups, a)
	}

	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		sub := append(groups[:len(groups):len(groups)], a.Key)
		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, sub, ga)
		}

		return
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	key := a.Key
	for i := len(groups) - 1; i >= 0; i-- {
		key = groups[i] + "." + key
	}

	buf.WriteString(h.style.key.Render(key))
	buf.WriteByte('=')
	buf.WriteString(h.renderValue(a.Value))
}

func (h *prettyHandler) renderValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return h.style.str.Render(v.String())

	case slog.KindInt64:
		return h.style.num.Render(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return h.style.num.Render(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return h.style.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			return h.style.yes.Render("true")
		}

		return h.style.no.Render("false")

	case slog.KindDuration:
		return h.style.dur.Render(v.Duration().String())

	case slog.KindTime:
		return h.style.tim.Render(v.Time().Format(time.RFC3339))

	case slog.KindAny:
		if level, ok := v.Any().(slog.Level); ok {
			return h.style.level(level).Render(Level(level).String())
		}

		return h.style.str.Render(v.String())

	default:
		return h.style.str.Render(v.String())
	}
}
