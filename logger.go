package seascript

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Logger handles logging for SeaScript
type Logger struct {
	enabled bool
	out     io.Writer
	errOut  io.Writer
}

// NewLogger creates a new logger
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.enabled {
		fmt.Fprintf(l.out, "[DEBUG] "+format+"\n", args...)
	}
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.enabled {
		fmt.Fprintf(l.errOut, "[SeaScript WARN] "+format+"\n", args...)
	}
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	if l.enabled {
		fmt.Fprintf(l.errOut, "[SeaScript ERROR] "+format+"\n", args...)
	}
}

// ExpansionError logs a script expansion error with position information
// and surrounding source context (always visible)
func (l *Logger) ExpansionError(err *ScriptError, contextLines int) {
	message := fmt.Sprintf("[SeaScript ERROR] %s: %s", err.Kind, err.Message)

	if pos := err.Position; pos != nil {
		filename := pos.Filename
		if filename == "" {
			filename = "<script>"
		}
		message += fmt.Sprintf("\n  at line %d in %s", pos.Line, filename)

		if len(err.Context) > 0 && contextLines >= 0 {
			message += l.formatSourceContext(pos, err.Context, contextLines)
		}
	}

	fmt.Fprintln(l.errOut, message)
}

// formatSourceContext formats source context with line numbers and a
// caret marker under the offending line
func (l *Logger) formatSourceContext(position *SourcePosition, context []string, contextLines int) string {
	var message strings.Builder
	message.WriteString("\n")

	contextStart := max(0, position.Line-1-contextLines)
	contextEnd := min(len(context), position.Line+contextLines)

	for i := contextStart; i < contextEnd; i++ {
		lineNum := i + 1
		isErrorLine := lineNum == position.Line

		prefix := " "
		if isErrorLine {
			prefix = ">"
		}

		message.WriteString(fmt.Sprintf("\n  %s %3d | %s", prefix, lineNum, context[i]))

		if isErrorLine && position.Column > 0 {
			indent := "      | " + strings.Repeat(" ", position.Column-1)
			caret := strings.Repeat("^", max(1, position.Length))
			message.WriteString(fmt.Sprintf("\n  %s%s", indent, caret))
		}
	}

	return message.String()
}

// SetEnabled enables or disables logging
func (l *Logger) SetEnabled(enabled bool) {
	l.enabled = enabled
}

// SetOutput redirects the logger's streams; nil writers keep the current one
func (l *Logger) SetOutput(out, errOut io.Writer) {
	if out != nil {
		l.out = out
	}
	if errOut != nil {
		l.errOut = errOut
	}
}
