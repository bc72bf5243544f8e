package slogcustom

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"

	"github.com/fatih/color"
)

// CustomHandler печатает записи slog в одну строку с цветным уровнем.
type CustomHandler struct {
	l     *log.Logger
	level slog.Leveler
	attrs []slog.Attr
	group string
}

func NewCustomHandler(out io.Writer, level slog.Leveler) *CustomHandler {
	return &CustomHandler{
		l:     log.New(out, "", 0),
		level: level,
	}
}

// ParseLevel переводит "debug", "info", "warn" или "error" в slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}

	return level, nil
}

func (c *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.HiBlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	var attrs strings.Builder
	for _, a := range c.attrs {
		c.writeAttr(&attrs, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		c.writeAttr(&attrs, a)
		return true
	})

	c.l.Println(
		r.Time.Format("15:04:05.000"),
		level,
		r.Message,
		strings.TrimSpace(attrs.String()),
	)
	return nil
}

func (c *CustomHandler) writeAttr(b *strings.Builder, a slog.Attr) {
	key := a.Key
	if c.group != "" {
		key = c.group + "." + key
	}
	b.WriteString(color.GreenString(key) + "=" + fmt.Sprint(a.Value.Any()) + " ")
}

func (c *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *c
	clone.attrs = append(append([]slog.Attr{}, c.attrs...), attrs...)
	return &clone
}

func (c *CustomHandler) WithGroup(name string) slog.Handler {
	clone := *c
	if clone.group != "" {
		name = clone.group + "." + name
	}
	clone.group = name
	return &clone
}

func (c *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= c.level.Level()
}
