// Package http wires the site's HTTP surface: locale-aware page routes, the
// submission API, and static assets.
package http

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/Destiny653/sayessport/internal/application/submission/usecases"
	"github.com/Destiny653/sayessport/internal/infrastructure/catalog"
	"github.com/Destiny653/sayessport/internal/infrastructure/config"
	"github.com/Destiny653/sayessport/internal/infrastructure/content"
	"github.com/Destiny653/sayessport/internal/infrastructure/dictionary"
	"github.com/Destiny653/sayessport/internal/infrastructure/email"
	"github.com/Destiny653/sayessport/internal/interfaces/http/handlers"
	"github.com/Destiny653/sayessport/internal/interfaces/http/middleware"
	"github.com/Destiny653/sayessport/internal/shared/i18n"
	"github.com/Destiny653/sayessport/internal/shared/logger"
	"github.com/Destiny653/sayessport/internal/shared/services/markdown"
)

// Prefixes exempt from locale redirection, besides any path with a dot.
var localeSkipPrefixes = []string{"/api", "/static", "/healthz"}

type Router struct {
	engine            *gin.Engine
	cfg               *config.Config
	pageHandler       *handlers.PageHandler
	submissionHandler *handlers.SubmissionHandler
	logger            logger.Interface
}

// NewRouter builds the full dependency graph from configuration: content
// filesystem, dictionary store, catalog and content loaders, SMTP notifier,
// and the two submission use cases.
func NewRouter(cfg *config.Config, log logger.Interface) *Router {
	contentFS := os.DirFS(cfg.Site.ContentDir)

	dictStore := dictionary.NewStore(contentFS, log)
	catalogLoader := catalog.NewLoader(contentFS, log)
	contentLoader := content.NewLoader(contentFS, markdown.NewService(), log)

	notifier := email.NewSMTPNotifier(cfg.Email, log)
	contactUC := usecases.NewSubmitContactUseCase(notifier, log)
	bookingUC := usecases.NewSubmitBookingUseCase(notifier, log)

	return &Router{
		engine:            gin.New(),
		cfg:               cfg,
		pageHandler:       handlers.NewPageHandler(dictStore, catalogLoader, contentLoader, log),
		submissionHandler: handlers.NewSubmissionHandler(contactUC, bookingUC, log),
		logger:            log,
	}
}

// SetupRoutes configures middleware, templates, and all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.LocaleRedirect(localeSkipPrefixes...))

	r.engine.LoadHTMLGlob(filepath.Join(r.cfg.Site.ContentDir, "templates", "*.tmpl"))
	r.engine.Static("/static", filepath.Join(r.cfg.Site.ContentDir, "static"))

	r.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")
	{
		api.POST("/contact", r.submissionHandler.SubmitContact)
		api.POST("/submit-booking", r.submissionHandler.SubmitBooking)
	}

	// The locale set is closed, so every page route is registered per locale
	// and the locale is stamped on the context once at the group boundary.
	for _, locale := range i18n.Locales {
		pages := r.engine.Group("/" + locale.String())
		pages.Use(middleware.PageLocale(locale))
		{
			pages.GET("", r.pageHandler.Home)
			pages.GET("/contact", r.pageHandler.Contact)
			pages.GET("/terms", r.pageHandler.Terms)
			pages.GET("/privacy", r.pageHandler.Privacy)
			pages.GET("/booking/:id", r.pageHandler.Booking)
		}
	}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
