// Package site renders the single page site and serves its static assets.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/wassat/website/internal/i18n"
	"github.com/wassat/website/internal/markup"
)

// Element ids the page views address.
const (
	IDBody            = "app-body"
	IDNav             = "main-nav"
	IDLangToggleLabel = "lang-toggle-label"
	IDMobileLangLabel = "mobile-lang-label"
	IDMobileMenu      = "mobile-menu"
	IDModal           = "modal-overlay"
	IDZoomModal       = "zoom-modal"
	IDZoomImage       = "zoom-img"
	IDChatPanel       = "chat-panel"
	IDChatMessages    = "chat-messages"
	IDChatInput       = "chat-input"
)

// Options selects what a render contains.
type Options struct {
	Language    i18n.Language
	PageID      string
	ChatEnabled bool
	// Contact is "sent" or "failed" after a form submission without
	// JavaScript, empty otherwise.
	Contact string
}

type pageData struct {
	Lang         string
	PageID       string
	ToggleLabel  string
	MobileLabel  string
	ChatEnabled  bool
	Contact      string
	Year         int
	Nav          []NavItem
	Lectures     []Lecture
	Media        []MediaLink
	Links        []ExternalLink
	Publications []Publication
}

// Renderer renders the page from a catalog of dictionaries.
type Renderer struct {
	catalog *i18n.Catalog
	tmpl    *template.Template
	now     func() time.Time
}

// NewRenderer compiles the page template.
func NewRenderer(catalog *i18n.Catalog) (*Renderer, error) {
	tmpl, err := template.New("page").Funcs(funcs(nil)).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Renderer{catalog: catalog, tmpl: tmpl, now: time.Now}, nil
}

// Render writes the page in opts.Language.
func (r *Renderer) Render(w io.Writer, opts Options) error {
	lang := opts.Language
	if lang == "" {
		lang = i18n.Default
	}
	dict, ok := r.catalog.Get(lang)
	if !ok {
		return fmt.Errorf("%w: %q", i18n.ErrUnknownLanguage, lang)
	}

	tmpl, err := r.tmpl.Clone()
	if err != nil {
		return fmt.Errorf("cloning page template: %w", err)
	}
	tmpl.Funcs(funcs(dict))

	data := pageData{
		Lang:         string(lang),
		PageID:       opts.PageID,
		ToggleLabel:  lang.Other().ShortLabel(),
		MobileLabel:  lang.Other().Name(),
		ChatEnabled:  opts.ChatEnabled,
		Contact:      opts.Contact,
		Year:         r.now().Year(),
		Nav:          Navigation,
		Lectures:     Lectures,
		Media:        MediaLinks,
		Links:        ExternalLinks,
		Publications: Publications,
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// NewDocument renders the page and parses it into a live document.
func (r *Renderer) NewDocument(opts Options) (*markup.Document, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, opts); err != nil {
		return nil, err
	}
	return markup.Parse(&buf)
}

// Keys returns every translation key the rendered page references.
func (r *Renderer) Keys() ([]string, error) {
	doc, err := r.NewDocument(Options{ChatEnabled: true})
	if err != nil {
		return nil, err
	}
	return doc.Keys(), nil
}

func funcs(dict *i18n.Dictionary) template.FuncMap {
	return template.FuncMap{
		"t": func(key string) string {
			return dict.Lookup(key, "")
		},
		"count": func(key string) int {
			return dict.Count(key)
		},
		"seq": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i
			}
			return out
		},
		"key": func(parts ...any) string {
			segs := make([]string, len(parts))
			for i, p := range parts {
				switch v := p.(type) {
				case int:
					segs[i] = strconv.Itoa(v)
				default:
					segs[i] = fmt.Sprint(v)
				}
			}
			return strings.Join(segs, ".")
		},
	}
}
