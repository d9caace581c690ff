// Package content serves the markdown-backed legal pages (terms, privacy).
package content

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/Destiny653/sayessport/internal/shared/errors"
	"github.com/Destiny653/sayessport/internal/shared/i18n"
	"github.com/Destiny653/sayessport/internal/shared/logger"
	"github.com/Destiny653/sayessport/internal/shared/services/markdown"
)

// Loader reads content/{locale}/{page}.md from the content filesystem and
// renders it to sanitized HTML. Missing locale files fall back to the default
// locale before surfacing a not-found outcome.
type Loader struct {
	fsys   fs.FS
	md     markdown.Service
	logger logger.Interface
}

func NewLoader(fsys fs.FS, md markdown.Service, log logger.Interface) *Loader {
	return &Loader{
		fsys:   fsys,
		md:     md,
		logger: log.Named("content"),
	}
}

// PageHTML returns the rendered body of a content page for the locale.
func (l *Loader) PageHTML(locale i18n.Locale, page string) (string, error) {
	body, err := l.render(locale, page)
	if err == nil {
		return body, nil
	}

	l.logger.Warnw("failed to load content page, falling back to default locale",
		"locale", locale.String(),
		"page", page,
		"error", err)

	if locale != i18n.Default() {
		body, err = l.render(i18n.Default(), page)
		if err == nil {
			return body, nil
		}
	}

	return "", errors.NewNotFoundError("content not available")
}

func (l *Loader) render(locale i18n.Locale, page string) (string, error) {
	name := path.Join("content", locale.String(), page+".md")
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return l.md.ToHTMLSanitized(string(data))
}
