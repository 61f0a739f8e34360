package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyConfig  = "config"
	KeyPrefix  = "prefix"
	KeyLocale  = "locale"
	KeyPage    = "page"
	KeyPath    = "path"
	KeyVersion = "version"
	KeyError   = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Config(path string) slog.Attr { return slog.String(KeyConfig, path) }
func Prefix(p string) slog.Attr     { return slog.String(KeyPrefix, p) }
func Locale(tag string) slog.Attr   { return slog.String(KeyLocale, tag) }
func Page(ref string) slog.Attr     { return slog.String(KeyPage, ref) }
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func Version(v string) slog.Attr    { return slog.String(KeyVersion, v) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
