// Package catalog loads locale-specific offering data from the site content
// tree.
package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"

	"github.com/Destiny653/sayessport/internal/domain/catalog"
	"github.com/Destiny653/sayessport/internal/shared/errors"
	"github.com/Destiny653/sayessport/internal/shared/i18n"
	"github.com/Destiny653/sayessport/internal/shared/logger"
)

// Loader reads package catalogs from locales/{locale}/packages.json under the
// content filesystem. It holds no cache; the files are small and read per
// request.
type Loader struct {
	fsys   fs.FS
	logger logger.Interface
}

func NewLoader(fsys fs.FS, log logger.Interface) *Loader {
	return &Loader{
		fsys:   fsys,
		logger: log.Named("catalog"),
	}
}

// Load returns the catalog for the requested locale. A failed read or parse
// retries once against the default locale; when that also fails the caller
// receives a not-found error so the page layer can render its fallback
// message instead of crashing the request.
func (l *Loader) Load(locale i18n.Locale) ([]catalog.Package, error) {
	packages, err := l.read(locale)
	if err == nil {
		return packages, nil
	}

	l.logger.Warnw("failed to load package catalog, falling back to default locale",
		"locale", locale.String(),
		"error", err)

	if locale != i18n.Default() {
		packages, err = l.read(i18n.Default())
		if err == nil {
			return packages, nil
		}
		l.logger.Errorw("failed to load fallback package catalog",
			"locale", i18n.Default().String(),
			"error", err)
	}

	return nil, errors.NewNotFoundError("package data not available")
}

func (l *Loader) read(locale i18n.Locale) ([]catalog.Package, error) {
	name := path.Join("locales", locale.String(), "packages.json")
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return decodePackages(data)
}

// decodePackages accepts either a top-level array or an object wrapping a
// "packages" array; anything else is malformed.
func decodePackages(data []byte) ([]catalog.Package, error) {
	// A literal null also unmarshals into a nil slice; only a real array
	// counts as the list shape.
	var list []catalog.Package
	if err := json.Unmarshal(data, &list); err == nil && list != nil {
		return list, nil
	}

	var wrapped struct {
		Packages []catalog.Package `json:"packages"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("malformed package data: %w", err)
	}
	if wrapped.Packages == nil {
		return nil, fmt.Errorf("malformed package data: not a list and no packages field")
	}
	return wrapped.Packages, nil
}
