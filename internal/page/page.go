// Package page keeps one live page view per visit. A page view owns the
// server side document and the controllers that react to browser events.
package page

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/wassat/website/internal/chat"
	"github.com/wassat/website/internal/i18n"
	"github.com/wassat/website/internal/language"
	"github.com/wassat/website/internal/markup"
	"github.com/wassat/website/internal/overlay"
	"github.com/wassat/website/internal/scroll"
	"github.com/wassat/website/internal/site"
)

// Deps are shared by every page view.
type Deps struct {
	Renderer    *site.Renderer
	Fetcher     language.Fetcher
	Generator   chat.Generator
	Messages    *chat.Messages
	Scroll      scroll.Config
	Overlay     overlay.Options
	Temperature float64
	ChatEnabled bool
	Logger      *slog.Logger
}

// Patch is what the browser must change to catch up with the document.
type Patch struct {
	Lang         string            `json:"lang,omitempty"`
	Translations map[string]string `json:"translations,omitempty"`
	Changes      []markup.Change   `json:"changes,omitempty"`
	ScrollChat   bool              `json:"scroll_chat,omitempty"`
	// LanguageError is set when a language switch failed and the page
	// kept its current language.
	LanguageError string `json:"language_error,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Lang == "" && len(p.Translations) == 0 && len(p.Changes) == 0 && !p.ScrollChat && p.LanguageError == ""
}

// Page is one page view.
type Page struct {
	id      string
	created time.Time
	doc     *markup.Document
	store   *i18n.Store
	frames  *scroll.BatchFrames
	view    *view
	logger  *slog.Logger

	lang    *language.Controller
	scroll  *scroll.Controller
	overlay *overlay.Controller
	chat    *chat.Controller

	mu       sync.Mutex
	lastSeen time.Time
	pending  Patch
	subs     map[int]chan Patch
	nextSub  int
	closed   bool
	langErr  string
}

// NewOptions describes the page view to create.
type NewOptions struct {
	ID       string
	Language i18n.Language
	Contact  string
	Now      time.Time
}

// New renders the page in the default language, then loads opts.Language
// onto it as the browser would on load.
func New(ctx context.Context, deps Deps, opts NewOptions) (*Page, error) {
	doc, err := deps.Renderer.NewDocument(site.Options{
		Language:    i18n.Default,
		PageID:      opts.ID,
		ChatEnabled: deps.ChatEnabled,
		Contact:     opts.Contact,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering page %s: %w", opts.ID, err)
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("page", opts.ID)

	if opts.Language == "" {
		opts.Language = i18n.Default
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	p := &Page{
		id:       opts.ID,
		created:  now,
		lastSeen: now,
		doc:      doc,
		store:    i18n.NewStore(i18n.Default, nil),
		frames:   &scroll.BatchFrames{},
		logger:   logger,
		subs:     make(map[int]chan Patch),
	}
	v := &view{p: p}
	p.view = v

	p.lang = language.New(deps.Fetcher, p.store, v, logger)
	p.scroll = scroll.New(deps.Scroll, v, p.frames)

	overlayOpts := deps.Overlay
	overlayOpts.OnChange = p.publish
	p.overlay = overlay.New(v, overlayOpts)

	var chatView chat.View
	if doc.Has(site.IDChatMessages) {
		chatView = v
	}
	p.chat = chat.New(deps.Generator, chatView, deps.Messages, chat.Options{
		Temperature: deps.Temperature,
		Language:    p.store.Language,
		Logger:      logger,
	})

	p.lang.LoadLanguage(ctx, opts.Language)

	// The first response carries the document itself.
	doc.TakeChanges()
	p.pending = Patch{}

	return p, nil
}

// ID returns the page view id.
func (p *Page) ID() string { return p.id }

// Document returns the live document.
func (p *Page) Document() *markup.Document { return p.doc }

// Language returns the active language.
func (p *Page) Language() i18n.Language { return p.lang.Current() }

// Touch records activity at now.
func (p *Page) Touch(now time.Time) {
	p.mu.Lock()
	p.lastSeen = now
	p.mu.Unlock()
}

// LastSeen returns the time of the last activity.
func (p *Page) LastSeen() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastSeen
}

// SetLanguage loads lang onto the page.
func (p *Page) SetLanguage(ctx context.Context, lang i18n.Language) (language.Result, Patch) {
	res := p.lang.LoadLanguage(ctx, lang)
	p.recordLanguage(res)
	return res, p.Flush()
}

// recordLanguage keeps the outcome of the latest language switch for
// State and the next patch.
func (p *Page) recordLanguage(res language.Result) {
	if res.Stale {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if res.Err != nil {
		p.langErr = res.Err.Error()
		p.pending.LanguageError = p.langErr
		return
	}
	p.langErr = ""
}

func (p *Page) languageError() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.langErr
}

// SendChat sends prompt to the assistant.
func (p *Page) SendChat(ctx context.Context, prompt string) (chat.Outcome, Patch) {
	out := p.chat.SendMessage(ctx, prompt)
	return out, p.Flush()
}

// Flush returns the accumulated patch and starts a new one.
func (p *Page) Flush() Patch {
	changes := p.doc.TakeChanges()

	p.mu.Lock()
	defer p.mu.Unlock()
	patch := p.pending
	patch.Changes = changes
	p.pending = Patch{}
	return patch
}

// Subscribe registers a listener for patches produced outside of a
// request, such as deferred overlay steps and chat turns. The returned
// func unsubscribes.
func (p *Page) Subscribe() (<-chan Patch, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch := make(chan Patch, 32)
	if p.closed {
		close(ch)
		return ch, func() {}
	}
	id := p.nextSub
	p.nextSub++
	p.subs[id] = ch

	return ch, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if c, ok := p.subs[id]; ok {
			delete(p.subs, id)
			close(c)
		}
	}
}

// Close disconnects every listener.
func (p *Page) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	for id, ch := range p.subs {
		delete(p.subs, id)
		close(ch)
	}
}

// publish pushes the pending patch to the listeners, if there are any.
func (p *Page) publish() {
	p.mu.Lock()
	listening := len(p.subs) > 0 && !p.closed
	p.mu.Unlock()
	if !listening {
		return
	}

	patch := p.Flush()
	if patch.Empty() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, ch := range p.subs {
		select {
		case ch <- patch:
		default:
			p.logger.Warn("dropping patch for slow listener")
		}
	}
}

func (p *Page) setPending(fn func(*Patch)) {
	p.mu.Lock()
	fn(&p.pending)
	p.mu.Unlock()
}
