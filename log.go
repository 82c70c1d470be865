package vlist

import (
	"log/slog"
	"os"
)

// listLogLevel controls the log level for list debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) or the VLIST_DEBUG environment variable sets it to
// LevelDebug.
var listLogLevel = new(slog.LevelVar)

func init() {
	if os.Getenv("VLIST_DEBUG") != "" {
		listLogLevel.Set(slog.LevelDebug)
	}
}

// SetVerbose enables or disables verbose/debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		listLogLevel.Set(slog.LevelDebug)
	} else {
		listLogLevel.Set(slog.LevelInfo)
	}
}

// listVerbose returns true if debug logging is enabled.
func listVerbose() bool {
	return listLogLevel.Level() <= slog.LevelDebug
}

// listLogger is the logger for list internals.
var listLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: listLogLevel}))
