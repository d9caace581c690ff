package i18n

import "github.com/gin-gonic/gin"

// contextKey is the gin context key carrying the request's locale. It is set
// once at the routing boundary so downstream renderers never re-parse the
// URL path.
const contextKey = "request_locale"

// SetContext stores the resolved locale on the request context.
func SetContext(c *gin.Context, locale Locale) {
	c.Set(contextKey, locale)
}

// FromContext returns the locale resolved for this request, falling back to
// the default when the routing layer never set one.
func FromContext(c *gin.Context) Locale {
	if v, ok := c.Get(contextKey); ok {
		if l, ok := v.(Locale); ok {
			return l
		}
	}
	return Default()
}
