package main

import (
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// logger is the subset of go-logger used by the command.
type logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}

// newLogger returns a console logger at level, or a logger that discards
// everything when level is empty.
func newLogger(level string) (logger, error) {
	if strings.TrimSpace(level) == "" {
		return nopLogger{}, nil
	}
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	root := glog.NewLogger(glog.WithLevel(lvl), glog.WithLoggerTypeConsole())
	return root.GetLogger("mdnotion"), nil
}

func parseLevel(level string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace, nil
	case "debug":
		return glog.Debug, nil
	case "info":
		return glog.Info, nil
	case "warn", "warning":
		return glog.Warn, nil
	case "error":
		return glog.Error, nil
	default:
		return "", fmt.Errorf("unknown log level %q", level)
	}
}
