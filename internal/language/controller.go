// Package language switches the page between the supported languages.
package language

import (
	"context"
	"log/slog"
	"sync"

	"github.com/wassat/website/internal/i18n"
)

// View is the part of the page the controller paints.
type View interface {
	// ApplyAll binds dict onto every translatable element and returns how
	// many were written.
	ApplyAll(dict *i18n.Dictionary) int
	// SetLabels updates the toggle button, the mobile label and the
	// document language for the now active lang.
	SetLabels(lang i18n.Language)
	// MarkLoaded removes the initial loading state.
	MarkLoaded()
}

// Result describes how a LoadLanguage call settled.
type Result struct {
	Language i18n.Language `json:"language"`
	Applied  int           `json:"applied"`
	// Stale is set when a later load superseded this one and its
	// dictionary was discarded.
	Stale bool  `json:"stale"`
	Err   error `json:"-"`
}

// OK reports whether the dictionary was fetched and applied.
func (r Result) OK() bool { return r.Err == nil && !r.Stale }

// Controller owns language detection and switching for one page.
type Controller struct {
	fetcher Fetcher
	store   *i18n.Store
	view    View
	logger  *slog.Logger

	mu  sync.Mutex
	seq uint64
}

// New creates a controller. logger may be nil.
func New(fetcher Fetcher, store *i18n.Store, view View, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{fetcher: fetcher, store: store, view: view, logger: logger}
}

// DetectInitialLanguage picks the language for a new page from the
// visitor's preference string.
func DetectInitialLanguage(preference string) i18n.Language {
	return i18n.Detect(preference)
}

// Current returns the active language.
func (c *Controller) Current() i18n.Language {
	return c.store.Language()
}

// LoadLanguage fetches the dictionary for lang and paints the page with
// it. A failed fetch leaves the store and the page untouched. The page
// leaves its loading state either way.
func (c *Controller) LoadLanguage(ctx context.Context, lang i18n.Language) Result {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	dict, err := c.fetcher.Fetch(ctx, lang)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		c.logger.Debug("discarding superseded dictionary", "lang", lang)
		return Result{Language: lang, Stale: true}
	}

	if err != nil {
		c.logger.Warn("translation loading failed, keeping current content",
			"lang", lang, "error", err)
		c.view.MarkLoaded()
		return Result{Language: lang, Err: err}
	}

	c.store.Set(lang, dict)
	applied := c.view.ApplyAll(dict)
	c.view.SetLabels(lang)
	c.view.MarkLoaded()

	return Result{Language: lang, Applied: applied}
}

// ToggleLanguage loads the language opposite to the active one.
func (c *Controller) ToggleLanguage(ctx context.Context) Result {
	return c.LoadLanguage(ctx, c.Current().Other())
}
