package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Locale records a dataset locale code under the key "locale".
func Locale(code string) slog.Attr {
	return slog.String("locale", code)
}

// GeoMode records the geography mode under the key "geo".
func GeoMode(mode string) slog.Attr {
	return slog.String("geo", mode)
}

// Category records a dataset category under the key "category".
func Category(name string) slog.Attr {
	return slog.String("category", name)
}

// Size records a sample or dataset size under the key "size".
func Size(n int) slog.Attr {
	return slog.Int("size", n)
}

func RetryCount(count int) slog.Attr {
	return slog.Int("retry_count", count)
}
