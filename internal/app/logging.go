package app

import (
	"io"
	"log/slog"
	"os"
)

// newLogger builds the application logger. Without a log file the logger
// discards everything: the terminal belongs to the screen while running.
func newLogger(file string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if file == "" {
		return slog.New(slog.DiscardHandler), nil, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("app", "collview"), f, nil
}
