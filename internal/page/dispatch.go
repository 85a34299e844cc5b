package page

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wassat/website/internal/chat"
	"github.com/wassat/website/internal/i18n"
	"github.com/wassat/website/internal/overlay"
	"github.com/wassat/website/internal/scroll"
	"github.com/wassat/website/internal/site"
)

// Event types posted by the browser.
const (
	EventScroll    = "scroll"
	EventKey       = "key"
	EventToggle    = "toggle"
	EventCloseMenu = "close_menu"
	EventZoom      = "zoom"
	EventZoomClose = "zoom_close"
	EventInput     = "input"
	EventSend      = "send"
)

// Toggle targets.
const (
	TargetMenu     = "menu"
	TargetModal    = "modal"
	TargetChat     = "chat"
	TargetLanguage = "language"
)

// ErrInvalidEvent is returned for malformed event batches.
var ErrInvalidEvent = errors.New("invalid event")

// Event is one browser interaction.
type Event struct {
	Type   string           `json:"type"`
	Target string           `json:"target,omitempty"`
	Key    string           `json:"key,omitempty"`
	Value  string           `json:"value,omitempty"`
	Src    string           `json:"src,omitempty"`
	Scroll *scroll.Snapshot `json:"scroll,omitempty"`
}

func (e Event) validate() error {
	switch e.Type {
	case EventScroll:
		if e.Scroll == nil {
			return fmt.Errorf("%w: scroll event without snapshot", ErrInvalidEvent)
		}
	case EventToggle:
		switch e.Target {
		case TargetMenu, TargetModal, TargetChat, TargetLanguage:
		default:
			return fmt.Errorf("%w: unknown toggle target %q", ErrInvalidEvent, e.Target)
		}
	case EventZoom:
		if e.Src == "" {
			return fmt.Errorf("%w: zoom event without src", ErrInvalidEvent)
		}
	case EventKey, EventCloseMenu, EventZoomClose, EventInput, EventSend:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, e.Type)
	}
	return nil
}

// Dispatch handles a batch of events in order, runs one rendering frame
// and returns the resulting patch. A batch with an invalid event is
// rejected as a whole.
func (p *Page) Dispatch(ctx context.Context, events []Event) (Patch, error) {
	for i, e := range events {
		if err := e.validate(); err != nil {
			return Patch{}, fmt.Errorf("event %d: %w", i, err)
		}
	}

	for _, e := range events {
		p.handle(ctx, e)
	}
	p.frames.Flush()

	return p.Flush(), nil
}

func (p *Page) handle(ctx context.Context, e Event) {
	switch e.Type {
	case EventScroll:
		p.scroll.OnScroll(*e.Scroll)
	case EventKey:
		switch {
		case e.Key == "Escape":
			if kind := p.overlay.Escape(); kind != overlay.None {
				p.logger.Debug("escape closed overlay", "overlay", kind)
			}
		case e.Target == site.IDChatInput:
			if e.Value != "" {
				p.chat.SetInput(e.Value)
			}
			p.chat.HandleKey(ctx, e.Key)
		}
	case EventToggle:
		switch e.Target {
		case TargetMenu:
			p.overlay.ToggleMobileMenu()
		case TargetModal:
			p.overlay.ToggleModal()
		case TargetChat:
			open := p.chat.TogglePanel()
			p.view.SetChatPanel(open)
		case TargetLanguage:
			p.recordLanguage(p.lang.ToggleLanguage(ctx))
		}
	case EventCloseMenu:
		p.overlay.CloseMobileMenu()
	case EventZoom:
		p.overlay.OpenZoom(e.Src)
	case EventZoomClose:
		p.overlay.CloseZoom()
	case EventInput:
		if e.Target == "" || e.Target == site.IDChatInput {
			p.chat.SetInput(e.Value)
		}
	case EventSend:
		p.chat.SendMessage(ctx, e.Value)
	}
}

// State is a snapshot of every UI flag of the page view.
type State struct {
	ID       string        `json:"id"`
	Created  time.Time     `json:"created"`
	Language i18n.Language `json:"language"`
	// LanguageError is the failure of the latest language switch, if any.
	LanguageError string        `json:"language_error,omitempty"`
	Loaded        bool          `json:"loaded"`
	Scrolled      bool          `json:"scrolled"`
	Revealed      []string      `json:"revealed"`
	Overlay       overlay.State `json:"overlay"`
	ChatOpen      bool          `json:"chat_open"`
	ChatBusy      bool          `json:"chat_busy"`
	ChatInput     string        `json:"chat_input"`
	Turns         []chat.Turn   `json:"turns"`
}

// State returns the current flags.
func (p *Page) State() State {
	revealed := []string{}
	for _, el := range p.doc.ElementsByClass("reveal") {
		if p.scroll.Revealed(el.ID) {
			revealed = append(revealed, el.ID)
		}
	}
	return State{
		ID:            p.id,
		Created:       p.created,
		Language:      p.lang.Current(),
		LanguageError: p.languageError(),
		Loaded:        p.doc.HasClass(site.IDBody, classLoaded),
		Scrolled:      p.scroll.Scrolled(),
		Revealed:      revealed,
		Overlay:       p.overlay.State(),
		ChatOpen:      p.chat.PanelOpen(),
		ChatBusy:      p.chat.Busy(),
		ChatInput:     p.chat.Input(),
		Turns:         p.chat.Turns(),
	}
}
