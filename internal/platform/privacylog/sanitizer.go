// Package privacylog wraps slog handlers so key material and phrases never
// reach log output.
package privacylog

import (
	"context"
	"log/slog"
	"strings"
)

const redactedValue = "[REDACTED]"

var sensitiveKeyParts = []string{
	"phrase", "mnemonic", "seed", "passphrase", "password", "secret", "private", "xprv", "token",
}

// SanitizingHandler redacts attributes whose keys name secrets.
type SanitizingHandler struct {
	next slog.Handler
}

// WrapHandler returns next wrapped in a SanitizingHandler.
func WrapHandler(next slog.Handler) slog.Handler {
	if next == nil {
		return nil
	}
	return &SanitizingHandler{next: next}
}

func (h *SanitizingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *SanitizingHandler) Handle(ctx context.Context, rec slog.Record) error {
	out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	rec.Attrs(func(attr slog.Attr) bool {
		out.AddAttrs(SanitizeAttr(attr))
		return true
	})
	return h.next.Handle(ctx, out)
}

func (h *SanitizingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &SanitizingHandler{next: h.next.WithAttrs(sanitizeAttrs(attrs))}
}

func (h *SanitizingHandler) WithGroup(name string) slog.Handler {
	return &SanitizingHandler{next: h.next.WithGroup(name)}
}

// SanitizeAttr redacts attr when its key is sensitive and descends into groups.
func SanitizeAttr(attr slog.Attr) slog.Attr {
	if isSensitiveKey(attr.Key) || isExtendedPrivateKey(attr.Value) {
		return slog.String(attr.Key, redactedValue)
	}
	if attr.Value.Kind() == slog.KindGroup {
		return slog.Attr{Key: attr.Key, Value: slog.GroupValue(sanitizeAttrs(attr.Value.Group())...)}
	}
	return attr
}

func sanitizeAttrs(attrs []slog.Attr) []slog.Attr {
	out := make([]slog.Attr, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, SanitizeAttr(attr))
	}
	return out
}

func isSensitiveKey(key string) bool {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, part := range sensitiveKeyParts {
		if strings.Contains(key, part) {
			return true
		}
	}
	return false
}

// isExtendedPrivateKey catches serialized private nodes logged under an
// innocent key.
func isExtendedPrivateKey(v slog.Value) bool {
	if v.Kind() != slog.KindString {
		return false
	}
	s := v.String()
	return len(s) > 100 && len(s) < 120 && (strings.HasPrefix(s, "xprv") || strings.HasPrefix(s, "tprv"))
}
