package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor returns a request scoped attribute, such as the request ID
// or client IP, from ctx.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// LogHandlerDecorator adds context attributes to every record. An extracted
// attribute is skipped when its key is already set in the same scope, by the
// record or by a With call, so request_id logged explicitly by the error
// handler appears once.
type LogHandlerDecorator struct {
	next       slog.Handler
	extractors []ContextExtractor
	keys       map[string]struct{} // keys bound by With in the current group
}

func NewLogHandlerDecorator(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &LogHandlerDecorator{next: next, extractors: clean}
}

func (h *LogHandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	if len(h.extractors) == 0 {
		return h.next.Handle(ctx, rec)
	}

	present := make(map[string]struct{}, rec.NumAttrs())
	rec.Attrs(func(a slog.Attr) bool {
		present[a.Key] = struct{}{}
		return true
	})

	for _, ex := range h.extractors {
		attr, ok := ex(ctx)
		if !ok {
			continue
		}
		if _, dup := present[attr.Key]; dup {
			continue
		}
		if _, dup := h.keys[attr.Key]; dup {
			continue
		}
		rec.AddAttrs(attr)
	}
	return h.next.Handle(ctx, rec)
}

func (h *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	keys := make(map[string]struct{}, len(h.keys)+len(attrs))
	for k := range h.keys {
		keys[k] = struct{}{}
	}
	for _, a := range attrs {
		keys[a.Key] = struct{}{}
	}
	return &LogHandlerDecorator{next: h.next.WithAttrs(attrs), extractors: h.extractors, keys: keys}
}

// WithGroup opens a new scope: keys bound before it no longer collide.
func (h *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &LogHandlerDecorator{next: h.next.WithGroup(name), extractors: h.extractors}
}
