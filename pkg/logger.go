package pkg

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Level is the severity of a diagnostic line
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Logger receives diagnostics produced while scanning
type Logger interface {
	Log(level Level, message string, err error)
}

// TextLogger writes one plain line per diagnostic. Warnings and errors
// are printed as the bare message so they read the same with or without
// a terminal; debug lines carry a level tag and are dropped unless
// Verbose is set.
type TextLogger struct {
	mu      sync.Mutex
	writer  io.Writer
	verbose bool
	tag     *color.Color
}

// NewTextLogger creates a logger writing to w, defaulting to stderr
func NewTextLogger(w io.Writer, verbose bool) *TextLogger {
	if w == nil {
		w = os.Stderr
	}
	return &TextLogger{
		writer:  w,
		verbose: verbose,
		tag:     color.New(color.FgHiBlack),
	}
}

// WithColor forces the debug tag color on or off
func (l *TextLogger) WithColor(enabled bool) *TextLogger {
	if enabled {
		l.tag.EnableColor()
	} else {
		l.tag.DisableColor()
	}
	return l
}

// Log writes the diagnostic line
func (l *TextLogger) Log(level Level, message string, err error) {
	if level == LevelDebug && !l.verbose {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if level == LevelDebug {
		fmt.Fprintf(l.writer, "%s %s\n", l.tag.Sprintf("[%s]", level), message)
		return
	}

	if err != nil && l.verbose {
		fmt.Fprintf(l.writer, "%s: %v\n", message, err)
		return
	}
	fmt.Fprintln(l.writer, message)
}

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Log(Level, string, error) {}
