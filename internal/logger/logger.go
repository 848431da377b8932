package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// LevelNone sits above every real level and so disables logging.
const LevelNone = slog.Level(16)

const timeFormat = "2006-01-02 15:04:05.000"

// ParseLevel parses a level name. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "none":
		return LevelNone
	default:
		return slog.LevelInfo
	}
}

// Options configures a Handler.
type Options struct {
	Level slog.Level
	Color bool // colour the level tag
}

// Handler writes `time [LEVEL] message key=value ...` lines.
type Handler struct {
	mu     *sync.Mutex
	w      io.Writer
	opts   Options
	groups []string
	attrs  []slog.Attr
	now    func() time.Time
}

func NewHandler(w io.Writer, opts Options) *Handler {
	return &Handler{mu: &sync.Mutex{}, w: w, opts: opts, now: time.Now}
}

// New returns a logger writing to w at the named level.
func New(w io.Writer, level string, useColor bool) *slog.Logger {
	return slog.New(NewHandler(w, Options{Level: ParseLevel(level), Color: useColor}))
}

// NewStderr returns a logger on stderr, coloured when stderr is a terminal.
func NewStderr(level string) *slog.Logger {
	return New(os.Stderr, level, IsTerminal(os.Stderr))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(NewHandler(io.Discard, Options{Level: LevelNone}))
}

// IsTerminal reports whether f is attached to a terminal (Cygwin included).
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.opts.Level < LevelNone && level >= h.opts.Level
}

func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder

	ts := record.Time
	if ts.IsZero() {
		ts = h.now()
	}
	b.WriteString(ts.Format(timeFormat))
	b.WriteString(" [")
	b.WriteString(h.levelTag(record.Level))
	b.WriteString("] ")
	b.WriteString(record.Message)

	first := record.Message == ""
	for _, attr := range h.attrs {
		first = writeAttr(&b, attr, nil, first)
	}
	record.Attrs(func(attr slog.Attr) bool {
		first = writeAttr(&b, attr, h.groups, first)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, attr := range attrs {
		clone.attrs = append(clone.attrs, prefixed(attr, h.groups))
	}
	return &clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.groups = append([]string(nil), h.groups...)
	if name != "" {
		clone.groups = append(clone.groups, name)
	}
	return &clone
}

func (h *Handler) levelTag(level slog.Level) string {
	tag := level.String()
	if !h.opts.Color {
		return tag
	}

	var c *color.Color
	switch {
	case level >= slog.LevelError:
		c = color.New(color.FgRed, color.Bold)
	case level >= slog.LevelWarn:
		c = color.New(color.FgYellow)
	case level >= slog.LevelInfo:
		c = color.New(color.FgCyan)
	default:
		c = color.New(color.FgHiBlack)
	}
	c.EnableColor()
	return c.Sprint(tag)
}

// prefixed folds the handler's open groups into the attribute key so that
// attrs bound with WithAttrs keep the groups active at bind time.
func prefixed(attr slog.Attr, groups []string) slog.Attr {
	if len(groups) == 0 {
		return attr
	}
	attr.Key = strings.Join(append(append([]string(nil), groups...), attr.Key), ".")
	return attr
}

func writeAttr(b *strings.Builder, attr slog.Attr, prefix []string, first bool) bool {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return first
	}

	if attr.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix = append(append([]string(nil), prefix...), attr.Key)
		}
		for _, nested := range attr.Value.Group() {
			first = writeAttr(b, nested, groupPrefix, first)
		}
		return first
	}

	key := attr.Key
	if key == "" {
		key = "attr"
	}
	if len(prefix) > 0 {
		key = strings.Join(prefix, ".") + "." + key
	}
	if !first {
		b.WriteByte(' ')
	}
	fmt.Fprintf(b, "%s=%s", key, quoteIfNeeded(attr.Value.String()))
	return false
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
