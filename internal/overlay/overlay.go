// Package overlay opens and closes the legal notice modal, the mobile
// menu and the image zoom, and keeps the body scroll lock consistent with
// them.
package overlay

import (
	"sync"
	"time"
)

// Kind names an overlay.
type Kind string

const (
	None  Kind = ""
	Menu  Kind = "menu"
	Modal Kind = "modal"
	Zoom  Kind = "zoom"
)

// Zoom transition timings.
const (
	DefaultZoomEnterDelay = 10 * time.Millisecond
	DefaultZoomExitDelay  = 400 * time.Millisecond
)

// Surface applies overlay state to the page.
type Surface interface {
	SetMenuOpen(open bool)
	SetModalOpen(open bool)
	SetScrollLock(locked bool)
	// ShowZoom sets the zoom image source and makes the overlay visible.
	ShowZoom(src string)
	// SetZoomActive toggles the transition class.
	SetZoomActive(active bool)
	HideZoom()
}

// Timer is a pending callback.
type Timer interface {
	Stop() bool
}

// Clock schedules deferred callbacks.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, fn func()) Timer { return time.AfterFunc(d, fn) }

// RealClock uses the runtime timers.
var RealClock Clock = realClock{}

// Options tunes a Controller.
type Options struct {
	Clock          Clock
	ZoomEnterDelay time.Duration
	ZoomExitDelay  time.Duration
	// OnChange is called after a deferred zoom step changed the surface.
	OnChange func()
}

// Controller owns the overlay flags. The body is locked iff at least one
// overlay is visible.
type Controller struct {
	surface Surface
	opts    Options

	mu          sync.Mutex
	menuOpen    bool
	modalOpen   bool
	zoomVisible bool
	zoomActive  bool
	zoomClosing bool
	zoomSrc     string
	locked      bool
	gen         uint64
	timer       Timer
}

// New creates a controller with every overlay closed.
func New(surface Surface, opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = RealClock
	}
	if opts.ZoomEnterDelay <= 0 {
		opts.ZoomEnterDelay = DefaultZoomEnterDelay
	}
	if opts.ZoomExitDelay <= 0 {
		opts.ZoomExitDelay = DefaultZoomExitDelay
	}
	return &Controller{surface: surface, opts: opts}
}

// ToggleModal flips the legal notice modal.
func (c *Controller) ToggleModal() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modalOpen = !c.modalOpen
	c.surface.SetModalOpen(c.modalOpen)
	c.syncLock()
	return c.modalOpen
}

// ToggleMobileMenu flips the mobile navigation panel.
func (c *Controller) ToggleMobileMenu() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.menuOpen = !c.menuOpen
	c.surface.SetMenuOpen(c.menuOpen)
	c.syncLock()
	return c.menuOpen
}

// CloseMobileMenu closes the menu if it is open, as a nav link click does.
func (c *Controller) CloseMobileMenu() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.menuOpen {
		return
	}
	c.menuOpen = false
	c.surface.SetMenuOpen(false)
	c.syncLock()
}

// OpenZoom shows src in the zoom overlay. The transition class follows
// after the enter delay. Opening during an exit cancels the pending hide.
func (c *Controller) OpenZoom(src string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTimer()
	c.gen++
	gen := c.gen

	c.zoomSrc = src
	c.zoomVisible = true
	c.zoomClosing = false
	c.surface.ShowZoom(src)
	c.syncLock()

	c.timer = c.opts.Clock.AfterFunc(c.opts.ZoomEnterDelay, func() {
		c.deferred(gen, func() {
			c.zoomActive = true
			c.surface.SetZoomActive(true)
		})
	})
}

// CloseZoom starts the exit transition. The overlay is hidden and the
// lock released only after the exit delay.
func (c *Controller) CloseZoom() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeZoomLocked()
}

func (c *Controller) closeZoomLocked() {
	if !c.zoomVisible || c.zoomClosing {
		return
	}
	c.stopTimer()
	c.gen++
	gen := c.gen

	c.zoomClosing = true
	c.zoomActive = false
	c.surface.SetZoomActive(false)

	c.timer = c.opts.Clock.AfterFunc(c.opts.ZoomExitDelay, func() {
		c.deferred(gen, func() {
			c.zoomVisible = false
			c.zoomClosing = false
			c.zoomSrc = ""
			c.surface.HideZoom()
			c.syncLock()
		})
	})
}

// Escape closes the first open overlay in the order zoom, modal, menu and
// returns which one it closed.
func (c *Controller) Escape() Kind {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.zoomVisible && !c.zoomClosing:
		c.closeZoomLocked()
		return Zoom
	case c.modalOpen:
		c.modalOpen = false
		c.surface.SetModalOpen(false)
		c.syncLock()
		return Modal
	case c.menuOpen:
		c.menuOpen = false
		c.surface.SetMenuOpen(false)
		c.syncLock()
		return Menu
	}
	return None
}

// State is a snapshot of the overlay flags.
type State struct {
	MenuOpen   bool   `json:"menu_open"`
	ModalOpen  bool   `json:"modal_open"`
	ZoomOpen   bool   `json:"zoom_open"`
	ZoomActive bool   `json:"zoom_active"`
	ZoomSrc    string `json:"zoom_src,omitempty"`
	Locked     bool   `json:"scroll_locked"`
}

// State returns the current flags.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		MenuOpen:   c.menuOpen,
		ModalOpen:  c.modalOpen,
		ZoomOpen:   c.zoomVisible,
		ZoomActive: c.zoomActive,
		ZoomSrc:    c.zoomSrc,
		Locked:     c.locked,
	}
}

// deferred runs fn for the zoom generation it was scheduled in.
func (c *Controller) deferred(gen uint64, fn func()) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	fn()
	c.mu.Unlock()

	if c.opts.OnChange != nil {
		c.opts.OnChange()
	}
}

func (c *Controller) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) syncLock() {
	locked := c.menuOpen || c.modalOpen || c.zoomVisible
	if locked == c.locked {
		return
	}
	c.locked = locked
	c.surface.SetScrollLock(locked)
}
