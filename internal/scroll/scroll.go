// Package scroll tracks the visitor's scroll position and drives the
// navigation density, entrance reveals and parallax offsets.
package scroll

import (
	"fmt"
	"sync"
)

// Config holds the scroll thresholds.
type Config struct {
	// NavThreshold is the offset in px beyond which the nav is "scrolled".
	NavThreshold float64
	// RevealFraction is the share of the viewport height an element's top
	// edge must rise above before it is revealed.
	RevealFraction float64
}

// DefaultConfig returns the thresholds used by the site.
func DefaultConfig() Config {
	return Config{NavThreshold: 40, RevealFraction: 0.95}
}

// Element is the measured position of one reveal or parallax element.
type Element struct {
	ID string `json:"id"`
	// Top is the distance of the element's top edge from the viewport top.
	Top float64 `json:"top"`
	// Speed is the parallax factor; zero disables parallax.
	Speed float64 `json:"speed,omitempty"`
}

// Snapshot is one scroll measurement reported by the browser.
type Snapshot struct {
	Offset         float64   `json:"offset"`
	ViewportHeight float64   `json:"viewport_height"`
	Elements       []Element `json:"elements,omitempty"`
}

// Target receives the visual changes.
type Target interface {
	SetScrolled(scrolled bool)
	Reveal(id string)
	SetParallax(id string, offset float64)
}

// Frames schedules work for the next rendering frame.
type Frames interface {
	Request(fn func())
}

// Controller owns the scrolled flag and the per-element revealed flags.
type Controller struct {
	cfg    Config
	target Target
	frames Frames

	mu       sync.Mutex
	scrolled bool
	revealed map[string]bool
	pending  bool
	latest   Snapshot
	passes   int
}

// New creates a controller. A zero Config is replaced by DefaultConfig.
func New(cfg Config, target Target, frames Frames) *Controller {
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	return &Controller{
		cfg:      cfg,
		target:   target,
		frames:   frames,
		revealed: make(map[string]bool),
	}
}

// OnScroll records a measurement. The nav flag is updated immediately and
// only on change; the reveal and parallax passes run at most once per
// frame with the newest snapshot.
func (c *Controller) OnScroll(s Snapshot) {
	c.mu.Lock()
	scrolled := s.Offset > c.cfg.NavThreshold
	changed := scrolled != c.scrolled
	c.scrolled = scrolled
	c.latest = s
	schedule := !c.pending
	c.pending = true
	c.mu.Unlock()

	if changed {
		c.target.SetScrolled(scrolled)
	}
	if schedule {
		c.frames.Request(c.runPass)
	}
}

func (c *Controller) runPass() {
	c.mu.Lock()
	c.pending = false
	c.passes++
	s := c.latest
	limit := s.ViewportHeight * c.cfg.RevealFraction
	var reveal []string
	for _, el := range s.Elements {
		if c.revealed[el.ID] || el.Top >= limit {
			continue
		}
		c.revealed[el.ID] = true
		reveal = append(reveal, el.ID)
	}
	c.mu.Unlock()

	for _, id := range reveal {
		c.target.Reveal(id)
	}
	for _, el := range s.Elements {
		if el.Speed != 0 {
			c.target.SetParallax(el.ID, s.Offset*el.Speed)
		}
	}
}

// Scrolled reports the nav flag.
func (c *Controller) Scrolled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scrolled
}

// Revealed reports whether the element has been revealed.
func (c *Controller) Revealed(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.revealed[id]
}

// Passes returns how many reveal passes have run.
func (c *Controller) Passes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.passes
}

// Transform formats a parallax offset as a CSS transform.
func Transform(offset float64) string {
	return fmt.Sprintf("translateY(%gpx)", offset)
}
