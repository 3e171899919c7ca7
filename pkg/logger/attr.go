package logger

import (
	"fmt"
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RIF records a fiscal identifier under the key "rif" using its String form.
// A nil value returns an empty Attr.
func RIF(v fmt.Stringer) slog.Attr {
	if v == nil {
		return slog.Attr{}
	}
	return slog.String("rif", v.String())
}

// Input records raw user input under the key "input".
func Input(s string) slog.Attr {
	return slog.String("input", s)
}
