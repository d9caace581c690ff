// Package dictionary serves translation mappings scoped by locale and
// namespace, cached for the lifetime of the process.
package dictionary

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"github.com/Destiny653/sayessport/internal/shared/i18n"
	"github.com/Destiny653/sayessport/internal/shared/logger"
)

// Dictionary is a validated translation record: every value is either a
// string or a flat string map (one nesting level, used for grouped copy such
// as per-field error messages).
type Dictionary map[string]any

// Str returns the string stored under key, or "" when the key is absent or
// holds a section.
func (d Dictionary) Str(key string) string {
	if s, ok := d[key].(string); ok {
		return s
	}
	return ""
}

// Section returns the nested string map stored under key, or an empty map.
func (d Dictionary) Section(key string) map[string]string {
	if m, ok := d[key].(map[string]string); ok {
		return m
	}
	return map[string]string{}
}

// Store loads and caches dictionaries from locales/{locale}/{namespace}.json
// under the content filesystem. Entries are write-once: after a successful
// load, every Get for the same pair returns the identical map. A racing
// first population is benign since both writers compute the same value.
type Store struct {
	fsys   fs.FS
	logger logger.Interface

	mu    sync.RWMutex
	cache map[string]Dictionary
}

func NewStore(fsys fs.FS, log logger.Interface) *Store {
	return &Store{
		fsys:   fsys,
		logger: log.Named("dictionary"),
		cache:  make(map[string]Dictionary),
	}
}

// Get returns the dictionary for (locale, namespace). Lookup failures are
// logged and produce an empty dictionary; callers never see an error.
func (s *Store) Get(locale i18n.Locale, namespace string) Dictionary {
	key := locale.String() + ":" + namespace

	s.mu.RLock()
	dict, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return dict
	}

	dict, err := s.load(locale, namespace)
	if err != nil {
		s.logger.Errorw("failed to load translations",
			"locale", locale.String(),
			"namespace", namespace,
			"error", err)
		return Dictionary{}
	}

	s.mu.Lock()
	if cached, ok := s.cache[key]; ok {
		// Lost the populate race; keep the first value so repeated calls
		// stay reference-equal.
		dict = cached
	} else {
		s.cache[key] = dict
	}
	s.mu.Unlock()

	return dict
}

func (s *Store) load(locale i18n.Locale, namespace string) (Dictionary, error) {
	name := path.Join("locales", locale.String(), namespace+".json")
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	return validate(raw)
}

// validate normalizes the decoded JSON into the Dictionary shape, rejecting
// values deeper than one nesting level or of non-string leaf types. A
// rejected file takes the same recovery path as a missing one.
func validate(raw map[string]any) (Dictionary, error) {
	dict := make(Dictionary, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			dict[key] = v
		case map[string]any:
			section := make(map[string]string, len(v))
			for k, nested := range v {
				s, ok := nested.(string)
				if !ok {
					return nil, fmt.Errorf("key %q.%q: expected string, got %T", key, k, nested)
				}
				section[k] = s
			}
			dict[key] = section
		default:
			return nil, fmt.Errorf("key %q: expected string or section, got %T", key, value)
		}
	}
	return dict, nil
}
