package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the process-wide logger. It writes JSON to stdout until Init replaces it.
var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// Options controls logger output.
type Options struct {
	Level string // debug, info, warn, error
	File  string // optional rotated log file
}

func Init(opts Options) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
		level = slog.LevelInfo
	}

	var out io.Writer = os.Stdout
	if opts.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
