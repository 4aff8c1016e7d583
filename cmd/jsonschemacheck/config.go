package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
)

// logFlags names the CLI flags that configure structured logging, mirroring
// the flag-name/value split used throughout this codebase's flag wiring.
type logFlags struct {
	level  string
	format string
}

// logConfig holds the resolved values of logFlags after parsing.
type logConfig struct {
	flags  logFlags
	level  string
	format string
}

func newLogConfig() *logConfig {
	return &logConfig{
		flags: logFlags{level: "log-level", format: "log-format"},
	}
}

func (c *logConfig) registerFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.level, c.flags.level, "info", "log level, one of: debug, info, warn, error")
	flags.StringVar(&c.format, c.flags.format, "text", "log format, one of: text, json")
}

func (c *logConfig) newHandler(w io.Writer) (slog.Handler, error) {
	level, err := parseLogLevel(c.level)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(c.format) {
	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case "text", "":
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", c.format)
	}
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}
