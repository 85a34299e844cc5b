package page

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wassat/website/internal/i18n"
	"github.com/wassat/website/internal/language"
)

// ErrNotFound is returned for unknown or expired page views.
var ErrNotFound = errors.New("page not found")

// Builder creates a page view.
type Builder func(ctx context.Context, opts NewOptions) (*Page, error)

// NewBuilder returns a Builder sharing deps.
func NewBuilder(deps Deps) Builder {
	return func(ctx context.Context, opts NewOptions) (*Page, error) {
		return New(ctx, deps, opts)
	}
}

// RegistryOptions bounds the live page views.
type RegistryOptions struct {
	// TTL is how long an idle page view is kept.
	TTL time.Duration
	// MaxPages caps the live page views; the least recently seen is
	// evicted first.
	MaxPages int
	Now      func() time.Time
	Logger   *slog.Logger
}

// Registry holds the live page views.
type Registry struct {
	build  Builder
	opts   RegistryOptions
	logger *slog.Logger

	mu    sync.Mutex
	pages map[string]*Page
}

// NewRegistry creates an empty registry.
func NewRegistry(build Builder, opts RegistryOptions) *Registry {
	if opts.TTL <= 0 {
		opts.TTL = 30 * time.Minute
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = 1000
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{build: build, opts: opts, logger: logger, pages: make(map[string]*Page)}
}

// CreateOptions describes a new visit.
type CreateOptions struct {
	// Preference is the browser's language preference, such as "en-US".
	Preference string
	Contact    string
}

// Create starts a page view in the language detected from the visitor's
// preference.
func (r *Registry) Create(ctx context.Context, opts CreateOptions) (*Page, error) {
	lang := language.DetectInitialLanguage(opts.Preference)
	p, err := r.build(ctx, NewOptions{
		ID:       uuid.NewString(),
		Language: lang,
		Contact:  opts.Contact,
		Now:      r.opts.Now(),
	})
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	for len(r.pages) >= r.opts.MaxPages {
		r.evictOldestLocked()
	}
	r.pages[p.ID()] = p
	r.mu.Unlock()

	r.logger.Debug("page view created", "page", p.ID(), "lang", lang)
	return p, nil
}

// Get returns the page view and marks it as active.
func (r *Registry) Get(id string) (*Page, error) {
	r.mu.Lock()
	p, ok := r.pages[id]
	r.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	p.Touch(r.opts.Now())
	return p, nil
}

// Len returns the number of live page views.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pages)
}

// Sweep removes page views idle for longer than the TTL and returns how
// many were removed.
func (r *Registry) Sweep() int {
	cutoff := r.opts.Now().Add(-r.opts.TTL)

	r.mu.Lock()
	var expired []*Page
	for id, p := range r.pages {
		if p.LastSeen().Before(cutoff) {
			delete(r.pages, id)
			expired = append(expired, p)
		}
	}
	r.mu.Unlock()

	for _, p := range expired {
		p.Close()
	}
	if len(expired) > 0 {
		r.logger.Debug("expired page views", "count", len(expired))
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Languages counts live page views per active language.
func (r *Registry) Languages() map[i18n.Language]int {
	r.mu.Lock()
	pages := make([]*Page, 0, len(r.pages))
	for _, p := range r.pages {
		pages = append(pages, p)
	}
	r.mu.Unlock()

	out := make(map[i18n.Language]int)
	for _, p := range pages {
		out[p.Language()]++
	}
	return out
}

func (r *Registry) evictOldestLocked() {
	var oldest *Page
	for _, p := range r.pages {
		if oldest == nil || p.LastSeen().Before(oldest.LastSeen()) {
			oldest = p
		}
	}
	if oldest == nil {
		return
	}
	delete(r.pages, oldest.ID())
	oldest.Close()
}
