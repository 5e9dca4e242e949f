// Package logging builds the application logger. A terminal UI owns stdout
// and stderr, so records go to a file.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	attrService = "service"
	service     = "sortviz"
)

// Options configures the logger.
type Options struct {
	Level slog.Level
	JSON  bool
}

// Open appends log records to path, creating its directory if needed. The
// returned closer flushes and closes the file.
func Open(path string, opts Options) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, opts), f, nil
}

// New builds a logger writing to w.
func New(w io.Writer, opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	var inner slog.Handler
	if opts.JSON {
		inner = slog.NewJSONHandler(w, handlerOpts)
	} else {
		inner = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(NewServiceHandler(inner, service))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ServiceHandler attaches the service name to every record. The attribute
// is bound before any WithGroup call so it stays at the top level.
type ServiceHandler struct {
	inner slog.Handler
}

// NewServiceHandler wraps inner.
func NewServiceHandler(inner slog.Handler, name string) *ServiceHandler {
	return &ServiceHandler{inner: inner.WithAttrs([]slog.Attr{slog.String(attrService, name)})}
}

// Enabled delegates to the inner handler.
func (h *ServiceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle delegates to the inner handler.
func (h *ServiceHandler) Handle(ctx context.Context, record slog.Record) error {
	if err := h.inner.Handle(ctx, record); err != nil {
		return fmt.Errorf("service handler: %w", err)
	}
	return nil
}

// WithAttrs returns a handler with additional attributes.
func (h *ServiceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ServiceHandler{inner: h.inner.WithAttrs(attrs)}
}

// WithGroup returns a handler with a group prefix.
func (h *ServiceHandler) WithGroup(name string) slog.Handler {
	return &ServiceHandler{inner: h.inner.WithGroup(name)}
}
