package site

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wassat/website/internal/i18n"
	"github.com/wassat/website/internal/markup"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	cat, err := i18n.Embedded()
	require.NoError(t, err)
	r, err := NewRenderer(cat)
	require.NoError(t, err)
	return r
}

func TestRenderGerman(t *testing.T) {
	r := newRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, Options{PageID: "p-1"}))
	out := buf.String()

	assert.Contains(t, out, `<html lang="de">`)
	assert.Contains(t, out, `data-page-id="p-1"`)
	assert.Contains(t, out, `data-i18n="nav.about">Über mich</a>`)
	assert.Contains(t, out, `<span id="lang-toggle-label">EN</span>`)
	assert.Contains(t, out, `<span id="mobile-lang-label">English</span>`)
	assert.NotContains(t, out, `id="chat-panel"`)
}

func TestRenderEnglishWithChat(t *testing.T) {
	r := newRenderer(t)

	doc, err := r.NewDocument(Options{Language: i18n.English, ChatEnabled: true})
	require.NoError(t, err)

	assert.Equal(t, "en", doc.Lang())
	assert.Equal(t, "DE", doc.Text(IDLangToggleLabel))
	assert.Equal(t, "Deutsch", doc.Text(IDMobileLangLabel))
	for _, id := range []string{IDBody, IDNav, IDMobileMenu, IDModal, IDZoomModal, IDZoomImage, IDChatPanel, IDChatMessages, IDChatInput} {
		assert.True(t, doc.Has(id), id)
	}
	ph, ok := doc.Attr(IDChatInput, "placeholder")
	require.True(t, ok)
	assert.Equal(t, "Your question...", ph)

	assert.True(t, doc.HasClass(IDBody, "loading"))
	assert.True(t, doc.HasClass(IDMobileMenu, "translate-x-full"))
	assert.True(t, doc.HasClass(IDModal, "hidden"))
	assert.True(t, doc.HasClass(IDZoomModal, "hidden"))
}

func TestRenderRepeatedItems(t *testing.T) {
	r := newRenderer(t)

	doc, err := r.NewDocument(Options{})
	require.NoError(t, err)

	reveals := doc.ElementsByClass("reveal")
	ids := make(map[string]bool)
	for _, el := range reveals {
		require.NotEmpty(t, el.ID, "every reveal element needs an id")
		assert.False(t, ids[el.ID], "duplicate id %s", el.ID)
		ids[el.ID] = true
	}
	assert.True(t, ids["reveal-expertise-3"])
	assert.True(t, ids["reveal-lecture-2"])

	speeds := doc.ElementsWithAttr(markup.AttrSpeed)
	require.Len(t, speeds, 1)
	assert.Equal(t, "hero-bg", speeds[0].ID)

	out := doc.String()
	assert.Contains(t, out, `data-i18n="expertise.items.3.title"`)
	assert.Contains(t, out, `data-i18n="contact.subjects.3"`)
	assert.Contains(t, out, `data-src="https://picsum.photos/seed/lecture1/800/600"`)
}

func TestEveryRenderedKeyIsTranslated(t *testing.T) {
	cat, err := i18n.Embedded()
	require.NoError(t, err)
	r, err := NewRenderer(cat)
	require.NoError(t, err)

	keys, err := r.Keys()
	require.NoError(t, err)
	assert.Greater(t, len(keys), 50)
	assert.Empty(t, cat.Check(keys))
}

func TestRenderUnknownLanguage(t *testing.T) {
	r := newRenderer(t)
	err := r.Render(&bytes.Buffer{}, Options{Language: "fr"})
	assert.ErrorIs(t, err, i18n.ErrUnknownLanguage)
}

func TestAssetHandler(t *testing.T) {
	h := http.StripPrefix("/assets", AssetHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/app.js", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "application/javascript"))
	assert.Contains(t, rec.Body.String(), "/api/pages/")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/style.css", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".reveal.active")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/missing.js", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
