// Package chat runs the assistant panel: the transcript, the prompt input
// and the round trip to the generation backend.
package chat

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/wassat/website/internal/i18n"
)

// View renders the transcript.
type View interface {
	AppendTurn(turn Turn)
	UpdateTurn(turn Turn)
	ScrollToLatest()
	ClearInput()
}

// Outcome describes how a SendMessage call settled.
type Outcome struct {
	Sent  bool `json:"sent"`
	User  Turn `json:"user"`
	Reply Turn `json:"reply"`
	// Err is the generation failure that was replaced by the fallback
	// text. It never escapes the chat flow otherwise.
	Err error `json:"-"`
}

// Options configures a Controller.
type Options struct {
	Temperature float64
	// Language returns the active page language.
	Language func() i18n.Language
	Logger   *slog.Logger
}

// Controller owns the transcript, the input field and the panel flag.
type Controller struct {
	gen      Generator
	view     View
	messages *Messages
	opts     Options

	transcript Transcript

	mu        sync.Mutex
	input     string
	panelOpen bool
	greeted   bool
}

// New creates a controller. A nil view means the transcript container is
// unavailable and SendMessage does nothing.
func New(gen Generator, view View, messages *Messages, opts Options) *Controller {
	if opts.Language == nil {
		opts.Language = func() i18n.Language { return i18n.Default }
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Controller{gen: gen, view: view, messages: messages, opts: opts}
}

// SendMessage appends the prompt and a pending reply, asks the generator
// and settles the reply with its text or a localized fallback.
func (c *Controller) SendMessage(ctx context.Context, prompt string) Outcome {
	if strings.TrimSpace(prompt) == "" || c.view == nil {
		return Outcome{}
	}
	lang := c.opts.Language()

	user := c.transcript.Append(RoleUser, prompt, false)
	c.view.AppendTurn(user)
	c.view.ScrollToLatest()

	c.mu.Lock()
	c.input = ""
	c.mu.Unlock()
	c.view.ClearInput()

	pending := c.transcript.Append(RoleAssistant, c.text(lang, MsgThinking), true)
	c.view.AppendTurn(pending)
	c.view.ScrollToLatest()

	var text string
	var genErr error
	if c.gen == nil {
		text = c.text(lang, MsgUnavailable)
	} else {
		reply, err := c.gen.Generate(ctx, Request{
			Prompt:            prompt,
			SystemInstruction: SystemInstruction(lang),
			Temperature:       c.opts.Temperature,
		})
		switch {
		case err != nil:
			c.opts.Logger.Warn("chat generation failed", "error", err)
			genErr = err
			text = c.text(lang, MsgUnavailable)
		case strings.TrimSpace(reply) == "":
			text = c.text(lang, MsgNoResponse)
		default:
			text = reply
		}
	}

	reply, _ := c.transcript.Settle(pending.ID, text)
	c.view.UpdateTurn(reply)
	c.view.ScrollToLatest()

	return Outcome{Sent: true, User: user, Reply: reply, Err: genErr}
}

// SetInput records the current value of the prompt input.
func (c *Controller) SetInput(value string) {
	c.mu.Lock()
	c.input = value
	c.mu.Unlock()
}

// Input returns the current value of the prompt input.
func (c *Controller) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// HandleKey sends the current input on Enter and ignores other keys.
func (c *Controller) HandleKey(ctx context.Context, key string) Outcome {
	if key != "Enter" {
		return Outcome{}
	}
	return c.SendMessage(ctx, c.Input())
}

// TogglePanel flips the chat panel. The first opening greets the visitor.
func (c *Controller) TogglePanel() bool {
	c.mu.Lock()
	c.panelOpen = !c.panelOpen
	open := c.panelOpen
	greet := open && !c.greeted && c.view != nil && c.messages != nil
	if greet {
		c.greeted = true
	}
	c.mu.Unlock()

	if greet {
		turn := c.transcript.Append(RoleAssistant, c.text(c.opts.Language(), MsgGreeting), false)
		c.view.AppendTurn(turn)
		c.view.ScrollToLatest()
	}
	return open
}

// PanelOpen reports the panel flag.
func (c *Controller) PanelOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.panelOpen
}

// Turns returns a copy of the transcript.
func (c *Controller) Turns() []Turn {
	return c.transcript.Turns()
}

// Busy reports whether a reply is outstanding.
func (c *Controller) Busy() bool {
	return c.transcript.Pending()
}

func (c *Controller) text(lang i18n.Language, id string) string {
	if c.messages == nil {
		return id
	}
	return c.messages.Text(lang, id)
}
