// Package i18n defines the closed set of supported locales and the rules for
// resolving one from an incoming request.
package i18n

import (
	"fmt"
	"strings"
)

// Locale is a supported language tag.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleSV Locale = "sv"

	// DefaultLocale is the built-in fallback, in effect until SetDefault
	// overrides it from configuration.
	DefaultLocale = LocaleEN
)

var defaultLocale = DefaultLocale

// Default returns the locale used whenever resolution fails.
func Default() Locale {
	return defaultLocale
}

// SetDefault overrides the fallback locale from configuration. Called once
// during startup, before any request is served. Tags outside the supported
// set are rejected so resolution always lands inside the closed set.
func SetDefault(tag string) error {
	if !IsSupported(tag) {
		return fmt.Errorf("unsupported default locale %q", tag)
	}
	defaultLocale = Locale(tag)
	return nil
}

// Locales lists every supported locale. Route handling must always resolve
// to exactly one member of this set.
var Locales = []Locale{LocaleEN, LocaleSV}

func (l Locale) String() string {
	return string(l)
}

// IsSupported reports whether the given tag is a member of the locale set.
func IsSupported(tag string) bool {
	for _, l := range Locales {
		if tag == string(l) {
			return true
		}
	}
	return false
}

// FromPath returns the locale prefixing the given request path. The prefix
// only counts when the segment is exact ("/en") or followed by a slash
// ("/en/contact"); "/ensemble" does not match.
func FromPath(path string) (Locale, bool) {
	for _, l := range Locales {
		prefix := "/" + string(l)
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return l, true
		}
	}
	return "", false
}

// ResolveFromHeader computes a locale from an Accept-Language header value.
// Only the first offered token is considered and only its first two
// characters; quality weights are ignored. Unknown or empty input resolves
// to the default locale.
func ResolveFromHeader(acceptLanguage string) Locale {
	primary := acceptLanguage
	if idx := strings.Index(primary, ","); idx >= 0 {
		primary = primary[:idx]
	}
	primary = strings.TrimSpace(primary)
	if len(primary) > 2 {
		primary = primary[:2]
	}
	if IsSupported(primary) {
		return Locale(primary)
	}
	return Default()
}
