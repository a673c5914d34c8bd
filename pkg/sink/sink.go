// Package sink defines the diagnostic channel the parser reports malformed
// input through. Callers may install their own Sink at any time; the default
// writes severity-prefixed lines to standard output.
package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Severity classifies a diagnostic message.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
	SeverityNone
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "Debug"
	case SeverityInfo:
		return "Info"
	case SeverityWarn:
		return "Warn"
	case SeverityError:
		return "Error"
	default:
		return "None"
	}
}

// Sink receives diagnostic messages from a parser session.
type Sink interface {
	Log(severity Severity, message string)
}

// Func adapts a plain function to the Sink interface.
type Func func(severity Severity, message string)

// Log implements Sink.
func (f Func) Log(severity Severity, message string) {
	f(severity, message)
}

var severityColors = map[Severity]func(format string, a ...interface{}) string{
	SeverityDebug: color.HiBlackString,
	SeverityInfo:  color.CyanString,
	SeverityWarn:  color.YellowString,
	SeverityError: color.RedString,
}

type writerSink struct {
	out      io.Writer
	colorize bool
}

// NewWriterSink returns a Sink that writes "Severity:message" lines to out.
// Severity prefixes are colorized when colorize is set.
func NewWriterSink(out io.Writer, colorize bool) Sink {
	return &writerSink{out: out, colorize: colorize}
}

func (w *writerSink) Log(severity Severity, message string) {
	prefix := fmt.Sprintf("%-5s:", severity)
	if w.colorize {
		if colorFn, ok := severityColors[severity]; ok {
			prefix = colorFn("%-5s:", severity)
		}
	}
	fmt.Fprintf(w.out, "%s%s\n", prefix, message)
}

// Default returns the standard sink: severity-prefixed lines on stdout,
// colorized only when stdout is a terminal.
func Default() Sink {
	return NewWriterSink(os.Stdout, isatty.IsTerminal(os.Stdout.Fd()))
}
