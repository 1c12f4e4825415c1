// Package output handles CLI output for fastaheader: the confirmation line on
// stdout, errors on stderr and structured diagnostics in verbose mode.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// Config holds output configuration.
type Config struct {
	Verbose   bool      // Enable verbose output
	Writer    io.Writer // Output destination (default: os.Stdout)
	ErrWriter io.Writer // Error and log destination (default: os.Stderr)
	IsTTY     bool      // Whether ErrWriter is a terminal
}

// Output handles formatted output with verbose support.
type Output struct {
	config Config
	logger *log.Logger
}

// New creates a new Output instance with the given configuration.
func New(config Config) *Output {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	if config.ErrWriter == nil {
		config.ErrWriter = os.Stderr
	}

	level := log.InfoLevel
	if config.Verbose {
		level = log.DebugLevel
	}
	// Styled text on a terminal, logfmt records when stderr is redirected.
	formatter := log.TextFormatter
	if !config.IsTTY {
		formatter = log.LogfmtFormatter
	}
	logger := log.NewWithOptions(config.ErrWriter, log.Options{
		Level:     level,
		Prefix:    "fastaheader",
		Formatter: formatter,
	})

	return &Output{
		config: config,
		logger: logger,
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Verbose logs a debug record with key/value pairs, only when verbose mode is enabled.
func (o *Output) Verbose(msg string, keyvals ...interface{}) {
	o.logger.Debug(msg, keyvals...)
}

// Warn logs a warning record with key/value pairs (always shown).
func (o *Output) Warn(msg string, keyvals ...interface{}) {
	o.logger.Warn(msg, keyvals...)
}

// Info prints an informational message to the standard writer (always shown).
func (o *Output) Info(format string, args ...interface{}) {
	fmt.Fprint(o.config.Writer, line(format, args...))
}

// Error prints an error message to the error writer.
func (o *Output) Error(format string, args ...interface{}) {
	fmt.Fprint(o.config.ErrWriter, line(format, args...))
}

// line formats a message and terminates it with exactly one newline.
func line(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	return msg
}
