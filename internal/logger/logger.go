package logger

import (
	"io"

	"github.com/fatih/color" // Colored console output
)

// Level printers. They behave like fmt.Printf and write to color.Output, so
// NO_COLOR and non-terminal outputs fall back to plain text.

// Step announces an installation phase in bold blue.
var Step = color.New(color.FgHiBlue, color.Bold).PrintfFunc()

// Info logs informational messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warnings in bright magenta.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs errors in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs cyan debug messages once Init(true) has been called. It starts as
// a no-op so packages may log before the CLI has parsed --debug.
var Debug = func(format string, a ...any) {}

// Init turns debug output on or off.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}

// SetOutput redirects every level printer to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := color.Output
	color.Output = w
	return prev
}
