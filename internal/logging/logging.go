// Package logging configures the process-wide slog logger. Logs go to
// stdout; when a log file is configured they are additionally written
// there with size-based rotation.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup installs the default slog logger. In development the level is
// Debug; otherwise Info. logFile may be empty to disable file output.
func Setup(dev bool, logFile string) *slog.Logger {
	level := slog.LevelInfo
	if dev {
		level = slog.LevelDebug
	}

	var out io.Writer = os.Stdout
	if logFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
