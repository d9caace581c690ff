package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Destiny653/sayessport/internal/shared/i18n"
)

// LocaleRedirect resolves a locale for every page request and redirects
// non-prefixed paths to their locale-prefixed form, so the address bar always
// reflects the active locale. Paths under skipPrefixes and paths containing a
// dot (static files) pass through untouched.
func LocaleRedirect(skipPrefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		for _, prefix := range skipPrefixes {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				c.Next()
				return
			}
		}
		if strings.Contains(path, ".") {
			c.Next()
			return
		}

		if _, ok := i18n.FromPath(path); ok {
			c.Next()
			return
		}

		locale := i18n.ResolveFromHeader(c.GetHeader("Accept-Language"))

		target := "/" + locale.String() + path
		if path == "/" {
			// Root resolves to /{locale}, not /{locale}/.
			target = "/" + locale.String()
		}
		if raw := c.Request.URL.RawQuery; raw != "" {
			target += "?" + raw
		}

		c.Redirect(http.StatusTemporaryRedirect, target)
		c.Abort()
	}
}

// PageLocale stamps the locale parsed from the matched route onto the request
// context, once, so downstream renderers never re-parse the path.
func PageLocale(locale i18n.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		i18n.SetContext(c, locale)
		c.Next()
	}
}
