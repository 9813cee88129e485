// Package logger provides centralized logging for ratbagctl. It configures
// structured logging on stderr with support for the tool's verbosity levels.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger is the global logger instance used throughout ratbagctl.
var Logger *log.Logger

func init() {
	Logger = log.New(os.Stderr)

	// Diagnostic output stays timestamp-free; the tool runs one command
	// and exits.
	Logger.SetTimeFormat("")
	Logger.SetLevel(log.WarnLevel)
}

// Configure sets up the logger from the CLI verbosity flag and the
// RATBAGCTL_LOG_LEVEL environment variable. The flag takes precedence.
func Configure(verbose bool, level string) {
	if level == "" {
		level = strings.ToLower(os.Getenv("RATBAGCTL_LOG_LEVEL"))
	}
	if verbose {
		level = "debug"
	}
	if level == "" {
		level = "warn"
	}
	Logger.SetLevel(parseLogLevel(level))
}

// SetOutput redirects log output, used by tests to capture diagnostics.
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// parseLogLevel converts a string to a log level.
func parseLogLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.WarnLevel
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// NewStyledLogger creates a component logger with a prefix and styled
// levels, used by the device backend for protocol logging.
func NewStyledLogger(prefix string) *log.Logger {
	styles := log.DefaultStyles()

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("240")).
		Foreground(lipgloss.Color("15"))

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("196")).
		Foreground(lipgloss.Color("15"))

	styles.Keys["device"] = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	styles.Keys["path"] = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	componentLogger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: prefix + " ",
	})
	componentLogger.SetStyles(styles)
	componentLogger.SetTimeFormat("")
	componentLogger.SetLevel(Logger.GetLevel())

	return componentLogger
}
