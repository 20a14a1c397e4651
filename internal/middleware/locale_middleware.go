package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/hecho/catalog_api/internal/i18n"
)

// LocaleMiddleware resolves the request language and stores a Translator in
// the context. The explicit ?lang= query parameter wins over the
// Accept-Language header; anything unrecognized falls back to Portuguese.
func LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("lang")
		if raw == "" {
			raw = c.GetHeader("Accept-Language")
		}
		locale := i18n.ParseLocale(raw)
		c.Set("locale", string(locale))
		c.Set("translator", i18n.New(locale))
		c.Next()
	}
}

// Translator returns the request's Translator, defaulting to Portuguese when
// the locale middleware did not run (as in handler unit tests).
func Translator(c *gin.Context) *i18n.Translator {
	if v, ok := c.Get("translator"); ok {
		if tr, ok := v.(*i18n.Translator); ok {
			return tr
		}
	}
	return i18n.New(i18n.DefaultLocale)
}
