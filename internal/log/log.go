// Package log provides leveled, optionally colored diagnostics. Output goes to
// stderr by default so that anything the forwarded cargo prints on stdout
// reaches the caller untouched.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Level represents the logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Option is a functional option for Logger construction.
type Option func(*Logger)

// Logger writes one line per message with a level prefix.
type Logger struct {
	mu    sync.Mutex
	level Level
	color bool
	out   io.Writer
}

// WithLevel sets the minimum level that is written.
func WithLevel(l Level) Option {
	return func(lg *Logger) {
		lg.level = l
	}
}

// WithWriter sets the output writer (defaults to os.Stderr).
func WithWriter(w io.Writer) Option {
	return func(lg *Logger) {
		lg.out = w
	}
}

// WithColor enables ANSI colors on the level prefix.
func WithColor(enabled bool) Option {
	return func(lg *Logger) {
		lg.color = enabled
	}
}

// New creates a new Logger with the given options.
func New(opts ...Option) *Logger {
	l := &Logger{
		level: LevelInfo,
		out:   os.Stderr,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Discard returns a Logger that writes nothing.
func Discard() *Logger {
	return New(WithWriter(io.Discard), WithLevel(LevelError+1))
}

var prefixes = map[Level]struct {
	text  string
	style *color.Color
}{
	LevelDebug: {"[D]", color.New(color.FgHiBlack)},
	LevelInfo:  {"[+]", color.New(color.FgGreen)},
	LevelWarn:  {"[!]", color.New(color.FgYellow, color.Bold)},
	LevelError: {"[x]", color.New(color.FgRed, color.Bold)},
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any) { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any) { l.logf(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

// Enabled reports whether messages at lvl are written.
func (l *Logger) Enabled(lvl Level) bool {
	return l != nil && lvl >= l.level
}

func (l *Logger) logf(lvl Level, format string, args ...any) {
	if !l.Enabled(lvl) {
		return
	}
	p := prefixes[lvl]
	prefix := p.text
	if l.color {
		// Bypass color.NoColor: the caller already decided.
		c := *p.style
		c.EnableColor()
		prefix = c.Sprint(p.text)
	}
	line := prefix + " " + fmt.Sprintf(format, args...) + "\n"

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, line)
}
