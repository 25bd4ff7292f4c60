package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Username records the acting or looked-up username. Anonymous callers
// produce an empty Attr.
func Username(username string) slog.Attr {
	if username == "" {
		return slog.Attr{}
	}
	return slog.String("username", username)
}

// ShopID records a coffee shop identifier.
func ShopID(id string) slog.Attr {
	return slog.String("shop_id", id)
}

// ReviewID records a review identifier.
func ReviewID(id string) slog.Attr {
	return slog.String("review_id", id)
}

// Duration records a duration in milliseconds under the key "duration_ms".
func Duration(d time.Duration) slog.Attr {
	return slog.Float64("duration_ms", float64(d.Microseconds())/1000)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
