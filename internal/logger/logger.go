// Package logger prints colored, leveled process logs.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

var (
	gray   = color.New(color.FgHiBlack)
	blue   = color.New(color.FgBlue)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)

	out   io.Writer = os.Stdout
	debug bool
)

// SetOutput redirects all log output. nil restores stdout.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	out = w
}

// SetDebug enables or disables Debug output
func SetDebug(enabled bool) {
	debug = enabled
}

func write(c *color.Color, prefix, message string, args ...interface{}) {
	timestamp := gray.Sprintf("[%s]", time.Now().Format("15:04:05"))
	fmt.Fprintf(out, "%s %s\n", timestamp, c.Sprint(prefix+fmt.Sprintf(message, args...)))
}

// Info logs general information
func Info(message string, args ...interface{}) {
	write(blue, "", message, args...)
}

// Success logs a completed step
func Success(message string, args ...interface{}) {
	write(green, "✓ ", message, args...)
}

// Warning logs a recoverable problem
func Warning(message string, args ...interface{}) {
	write(yellow, "⚠ ", message, args...)
}

// Error logs a failure
func Error(message string, args ...interface{}) {
	write(red, "✗ ", message, args...)
}

// Debug logs only when debug output is enabled
func Debug(message string, args ...interface{}) {
	if !debug {
		return
	}
	write(gray, "DEBUG: ", message, args...)
}
