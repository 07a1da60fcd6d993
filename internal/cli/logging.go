package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// createLumberjackLogger creates the rotating file sink behind --log-file.
func createLumberjackLogger(logFilePath string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1,  // megabytes
		MaxBackups: 2,  // old files kept
		MaxAge:     30, // days
		Compress:   false,
	}
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			errs = append(errs, handler.Handle(ctx, record.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// newLogger builds the command logger: text records on stderr, plus JSON
// records in a rotating file when logFile is set. The returned closer
// releases the file sink and is safe to call when there is none.
func newLogger(stderr io.Writer, verbose bool, logFile string) (*slog.Logger, io.Closer) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
	}

	var closer io.Closer = nopCloser{}
	if logFile != "" {
		lj := createLumberjackLogger(logFile)
		handlers = append(handlers, slog.NewJSONHandler(lj, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closer = lj
	}

	return slog.New(&multiHandler{handlers: handlers}), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
