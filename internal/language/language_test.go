package language

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wassat/website/internal/i18n"
)

type recordingView struct {
	mu      sync.Mutex
	applied []*i18n.Dictionary
	labels  []i18n.Language
	loaded  int
}

func (v *recordingView) ApplyAll(dict *i18n.Dictionary) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.applied = append(v.applied, dict)
	return len(dict.Keys())
}

func (v *recordingView) SetLabels(lang i18n.Language) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.labels = append(v.labels, lang)
}

func (v *recordingView) MarkLoaded() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loaded++
}

func mustDict(t *testing.T, payload string) *i18n.Dictionary {
	t.Helper()
	d, err := i18n.ParseDictionary([]byte(payload))
	require.NoError(t, err)
	return d
}

type staticFetcher struct {
	dicts map[i18n.Language]*i18n.Dictionary
	err   error
}

func (f staticFetcher) Fetch(ctx context.Context, lang i18n.Language) (*i18n.Dictionary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.dicts[lang], nil
}

func TestDetectInitialLanguage(t *testing.T) {
	assert.Equal(t, i18n.English, DetectInitialLanguage("en-US"))
	assert.Equal(t, i18n.German, DetectInitialLanguage("de-AT"))
	assert.Equal(t, i18n.German, DetectInitialLanguage("fr-FR"))
	assert.Equal(t, i18n.German, DetectInitialLanguage(""))
}

func TestLoadLanguageSuccess(t *testing.T) {
	en := mustDict(t, `{"nav":{"about":"About"}}`)
	store := i18n.NewStore(i18n.German, nil)
	view := &recordingView{}
	c := New(staticFetcher{dicts: map[i18n.Language]*i18n.Dictionary{i18n.English: en}}, store, view, nil)

	res := c.LoadLanguage(t.Context(), i18n.English)

	require.True(t, res.OK())
	assert.Equal(t, 1, res.Applied)
	lang, dict := store.Active()
	assert.Equal(t, i18n.English, lang)
	assert.Same(t, en, dict)
	assert.Equal(t, []i18n.Language{i18n.English}, view.labels)
	assert.Equal(t, 1, view.loaded)
}

func TestLoadLanguageFailureKeepsContent(t *testing.T) {
	de := mustDict(t, `{"k":"v"}`)
	store := i18n.NewStore(i18n.German, de)
	view := &recordingView{}
	c := New(staticFetcher{err: errors.New("network down")}, store, view, nil)

	res := c.LoadLanguage(t.Context(), i18n.English)

	require.Error(t, res.Err)
	assert.False(t, res.OK())
	lang, dict := store.Active()
	assert.Equal(t, i18n.German, lang)
	assert.Same(t, de, dict)
	assert.Empty(t, view.applied)
	assert.Empty(t, view.labels)
	assert.Equal(t, 1, view.loaded, "loading state must be cleared on failure")
}

func TestToggleLanguage(t *testing.T) {
	dicts := map[i18n.Language]*i18n.Dictionary{
		i18n.German:  mustDict(t, `{"k":"Hallo"}`),
		i18n.English: mustDict(t, `{"k":"Hello"}`),
	}
	store := i18n.NewStore(i18n.German, dicts[i18n.German])
	c := New(staticFetcher{dicts: dicts}, store, &recordingView{}, nil)

	assert.Equal(t, i18n.English, c.ToggleLanguage(t.Context()).Language)
	assert.Equal(t, i18n.English, c.Current())
	assert.Equal(t, i18n.German, c.ToggleLanguage(t.Context()).Language)
	assert.Equal(t, i18n.German, c.Current())
}

// gatedFetcher blocks each fetch until its language's gate is released.
type gatedFetcher struct {
	dicts   map[i18n.Language]*i18n.Dictionary
	started map[i18n.Language]chan struct{}
	release map[i18n.Language]chan struct{}
}

func newGatedFetcher(dicts map[i18n.Language]*i18n.Dictionary) *gatedFetcher {
	f := &gatedFetcher{
		dicts:   dicts,
		started: make(map[i18n.Language]chan struct{}),
		release: make(map[i18n.Language]chan struct{}),
	}
	for lang := range dicts {
		f.started[lang] = make(chan struct{})
		f.release[lang] = make(chan struct{})
	}
	return f
}

func (f *gatedFetcher) Fetch(ctx context.Context, lang i18n.Language) (*i18n.Dictionary, error) {
	close(f.started[lang])
	select {
	case <-f.release[lang]:
		return f.dicts[lang], nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestLaterLoadWinsOverSlowerEarlierLoad(t *testing.T) {
	dicts := map[i18n.Language]*i18n.Dictionary{
		i18n.German:  mustDict(t, `{"k":"Hallo"}`),
		i18n.English: mustDict(t, `{"k":"Hello"}`),
	}
	fetcher := newGatedFetcher(dicts)
	store := i18n.NewStore(i18n.German, nil)
	view := &recordingView{}
	c := New(fetcher, store, view, nil)
	ctx := t.Context()

	results := make(chan Result, 2)
	go func() { results <- c.LoadLanguage(ctx, i18n.English) }()
	<-fetcher.started[i18n.English]
	go func() { results <- c.LoadLanguage(ctx, i18n.German) }()
	<-fetcher.started[i18n.German]

	close(fetcher.release[i18n.German])
	deRes := <-results
	close(fetcher.release[i18n.English])
	enRes := <-results

	assert.True(t, deRes.OK())
	assert.True(t, enRes.Stale)

	lang, dict := store.Active()
	assert.Equal(t, i18n.German, lang)
	assert.Same(t, dicts[i18n.German], dict)
	require.Len(t, view.applied, 1)
	assert.Same(t, dicts[i18n.German], view.applied[0])
}

func TestCatalogFetcher(t *testing.T) {
	cat, err := i18n.Embedded()
	require.NoError(t, err)

	dict, err := CatalogFetcher{Catalog: cat}.Fetch(t.Context(), i18n.English)
	require.NoError(t, err)
	assert.Equal(t, "About", dict.Lookup("nav.about", ""))

	_, err = CatalogFetcher{Catalog: cat}.Fetch(t.Context(), i18n.Language("fr"))
	assert.ErrorIs(t, err, i18n.ErrUnknownLanguage)
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/locales/en.json":
			w.Write([]byte(`{"nav":{"about":"About"}}`))
		case "/locales/de.json":
			w.Write([]byte(`{"nav": 42}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL+"/locales/", time.Second)

	dict, err := f.Fetch(t.Context(), i18n.English)
	require.NoError(t, err)
	assert.Equal(t, "About", dict.Lookup("nav.about", ""))

	_, err = f.Fetch(t.Context(), i18n.German)
	assert.ErrorIs(t, err, i18n.ErrMalformedDictionary)

	_, err = f.Fetch(t.Context(), i18n.Language("fr"))
	assert.Error(t, err)
}

func TestHTTPFetcherRejectsOversizedDictionary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pad":"`))
		w.Write([]byte(strings.Repeat("x", maxDictionarySize)))
		w.Write([]byte(`"}`))
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(srv.URL, time.Second).Fetch(t.Context(), i18n.English)
	assert.ErrorIs(t, err, ErrDictionaryTooLarge)
	assert.NotErrorIs(t, err, i18n.ErrMalformedDictionary)
}
