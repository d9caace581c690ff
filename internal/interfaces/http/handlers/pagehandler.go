package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domaincatalog "github.com/Destiny653/sayessport/internal/domain/catalog"
	"github.com/Destiny653/sayessport/internal/infrastructure/catalog"
	"github.com/Destiny653/sayessport/internal/infrastructure/content"
	"github.com/Destiny653/sayessport/internal/infrastructure/dictionary"
	"github.com/Destiny653/sayessport/internal/shared/i18n"
	"github.com/Destiny653/sayessport/internal/shared/logger"
)

// PageHandler renders the localized marketing pages. All text comes from the
// dictionary store; offerings come from the package catalog.
type PageHandler struct {
	dict    *dictionary.Store
	catalog *catalog.Loader
	content *content.Loader
	logger  logger.Interface
}

func NewPageHandler(dict *dictionary.Store, cat *catalog.Loader, cnt *content.Loader, log logger.Interface) *PageHandler {
	return &PageHandler{
		dict:    dict,
		catalog: cat,
		content: cnt,
		logger:  log.Named("pages"),
	}
}

// localeLink is one entry in the header's language switcher: the same page
// under another locale prefix.
type localeLink struct {
	Label  string
	Href   string
	Active bool
}

func localeLinks(c *gin.Context, current i18n.Locale) []localeLink {
	path := c.Request.URL.Path
	if l, ok := i18n.FromPath(path); ok {
		path = strings.TrimPrefix(path, "/"+l.String())
	}

	links := make([]localeLink, 0, len(i18n.Locales))
	for _, l := range i18n.Locales {
		links = append(links, localeLink{
			Label:  strings.ToUpper(l.String()),
			Href:   "/" + l.String() + path,
			Active: l == current,
		})
	}
	return links
}

func (h *PageHandler) Home(c *gin.Context) {
	locale := i18n.FromContext(c)

	packages, err := h.catalog.Load(locale)
	if err != nil {
		// The page still renders; the packages section shows its fallback.
		packages = nil
	}

	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"Locale":       locale.String(),
		"LocaleSwitch": localeLinks(c, locale),
		"Common":       h.dict.Get(locale, "common"),
		"Dict":         h.dict.Get(locale, "home"),
		"Offer":        h.dict.Get(locale, "what-we-offer"),
		"WhyChoose":    h.dict.Get(locale, "why-choose"),
		"Packages":     packages,
	})
}

func (h *PageHandler) Contact(c *gin.Context) {
	locale := i18n.FromContext(c)

	c.HTML(http.StatusOK, "contact.tmpl", gin.H{
		"Locale":       locale.String(),
		"LocaleSwitch": localeLinks(c, locale),
		"Common":       h.dict.Get(locale, "common"),
		"Dict":         h.dict.Get(locale, "contact"),
	})
}

func (h *PageHandler) Terms(c *gin.Context) {
	h.legalPage(c, "terms")
}

func (h *PageHandler) Privacy(c *gin.Context) {
	h.legalPage(c, "privacy")
}

func (h *PageHandler) legalPage(c *gin.Context, page string) {
	locale := i18n.FromContext(c)
	common := h.dict.Get(locale, "common")

	body, err := h.content.PageHTML(locale, page)
	if err != nil {
		c.HTML(http.StatusOK, "legal.tmpl", gin.H{
			"Locale":       locale.String(),
			"LocaleSwitch": localeLinks(c, locale),
			"Common":       common,
			"Page":         page,
			"Unavailable":  true,
		})
		return
	}

	c.HTML(http.StatusOK, "legal.tmpl", gin.H{
		"Locale":       locale.String(),
		"LocaleSwitch": localeLinks(c, locale),
		"Common":       common,
		"Page":         page,
		"Body":         template.HTML(body),
	})
}

// Booking renders the package detail plus booking form. An unknown id or
// unavailable catalog renders not-found content with a 200 status; the page
// itself exists, the package does not.
func (h *PageHandler) Booking(c *gin.Context) {
	locale := i18n.FromContext(c)
	id := c.Param("id")

	data := gin.H{
		"Locale":       locale.String(),
		"LocaleSwitch": localeLinks(c, locale),
		"Common":       h.dict.Get(locale, "common"),
		"Dict":         h.dict.Get(locale, "booking-form"),
	}

	packages, err := h.catalog.Load(locale)
	if err != nil {
		data["DataUnavailable"] = true
		c.HTML(http.StatusOK, "booking.tmpl", data)
		return
	}

	pkg, ok := domaincatalog.FindByID(packages, id)
	if !ok {
		h.logger.Debugw("booking page for unknown package", "id", id, "locale", locale.String())
		c.HTML(http.StatusOK, "booking.tmpl", data)
		return
	}

	data["Package"] = pkg
	c.HTML(http.StatusOK, "booking.tmpl", data)
}
