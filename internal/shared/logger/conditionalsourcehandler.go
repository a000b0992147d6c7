package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type conditionalSourceHandler struct {
	handler    slog.Handler
	sourceFrom slog.Level
}

// NewConditionalSourceHandler wraps handler so that records at or above
// sourceFrom carry their call site. The wrapped handler should be built
// with AddSource disabled.
func NewConditionalSourceHandler(handler slog.Handler, sourceFrom slog.Level) slog.Handler {
	return &conditionalSourceHandler{
		handler:    handler,
		sourceFrom: sourceFrom,
	}
}

func (h *conditionalSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.sourceFrom {
		var pcs [1]uintptr
		// skip runtime.Callers, this frame and the slog frame
		runtime.Callers(3, pcs[:])
		f, _ := runtime.CallersFrames(pcs[:]).Next()

		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: f.Function,
			File:     f.File,
			Line:     f.Line,
		}))
	}

	return h.handler.Handle(ctx, r)
}

func (h *conditionalSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &conditionalSourceHandler{handler: h.handler.WithAttrs(attrs), sourceFrom: h.sourceFrom}
}

func (h *conditionalSourceHandler) WithGroup(name string) slog.Handler {
	return &conditionalSourceHandler{handler: h.handler.WithGroup(name), sourceFrom: h.sourceFrom}
}

func (h *conditionalSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}
