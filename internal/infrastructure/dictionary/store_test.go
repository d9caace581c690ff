package dictionary

import (
	"reflect"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Destiny653/sayessport/internal/shared/i18n"
	"github.com/Destiny653/sayessport/internal/shared/logger"
)

func newTestStore(files map[string]string) *Store {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return NewStore(fsys, logger.NewLogger())
}

func TestGetLoadsAndParses(t *testing.T) {
	store := newTestStore(map[string]string{
		"locales/en/home.json": `{"title": "Unleash Your Athletic Potential", "cta": {"book": "Book now"}}`,
	})

	dict := store.Get(i18n.LocaleEN, "home")
	assert.Equal(t, "Unleash Your Athletic Potential", dict.Str("title"))
	assert.Equal(t, "Book now", dict.Section("cta")["book"])
}

func TestGetCachesByLocaleAndNamespace(t *testing.T) {
	store := newTestStore(map[string]string{
		"locales/en/home.json": `{"title": "Home"}`,
		"locales/sv/home.json": `{"title": "Hem"}`,
	})

	first := store.Get(i18n.LocaleEN, "home")
	second := store.Get(i18n.LocaleEN, "home")

	// Same pair returns the identical cached object, not a re-read.
	assert.Equal(t, reflect.ValueOf(first).Pointer(), reflect.ValueOf(second).Pointer())

	sv := store.Get(i18n.LocaleSV, "home")
	assert.Equal(t, "Hem", sv.Str("title"))
	assert.Equal(t, "Home", first.Str("title"))
}

func TestGetMissingFileReturnsEmpty(t *testing.T) {
	store := newTestStore(nil)

	dict := store.Get(i18n.LocaleEN, "home")
	require.NotNil(t, dict)
	assert.Empty(t, dict)
	assert.Equal(t, "", dict.Str("anything"))
}

func TestGetMalformedJSONReturnsEmpty(t *testing.T) {
	store := newTestStore(map[string]string{
		"locales/en/home.json": `{"title": `,
	})

	assert.Empty(t, store.Get(i18n.LocaleEN, "home"))
}

func TestGetRejectsDeepNesting(t *testing.T) {
	store := newTestStore(map[string]string{
		"locales/en/home.json": `{"a": {"b": {"c": "too deep"}}}`,
	})

	assert.Empty(t, store.Get(i18n.LocaleEN, "home"))
}

func TestGetRejectsNonStringLeaves(t *testing.T) {
	store := newTestStore(map[string]string{
		"locales/en/home.json": `{"count": 3}`,
	})

	assert.Empty(t, store.Get(i18n.LocaleEN, "home"))
}

func TestGetConcurrentFirstAccess(t *testing.T) {
	store := newTestStore(map[string]string{
		"locales/en/home.json": `{"title": "Home"}`,
	})

	var wg sync.WaitGroup
	results := make([]Dictionary, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = store.Get(i18n.LocaleEN, "home")
		}(i)
	}
	wg.Wait()

	for _, dict := range results {
		assert.Equal(t, "Home", dict.Str("title"))
	}
	// After the race settles, the cache serves one canonical value.
	canonical := store.Get(i18n.LocaleEN, "home")
	again := store.Get(i18n.LocaleEN, "home")
	assert.Equal(t, reflect.ValueOf(canonical).Pointer(), reflect.ValueOf(again).Pointer())
}
