package overlay

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	mu         sync.Mutex
	menu       bool
	modal      bool
	locked     bool
	zoomShown  bool
	zoomActive bool
	zoomSrc    string
	lockCalls  int
}

func (s *fakeSurface) SetMenuOpen(open bool)  { s.mu.Lock(); s.menu = open; s.mu.Unlock() }
func (s *fakeSurface) SetModalOpen(open bool) { s.mu.Lock(); s.modal = open; s.mu.Unlock() }
func (s *fakeSurface) SetScrollLock(locked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked = locked
	s.lockCalls++
}
func (s *fakeSurface) ShowZoom(src string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.zoomShown = true
	s.zoomSrc = src
}
func (s *fakeSurface) SetZoomActive(active bool) { s.mu.Lock(); s.zoomActive = active; s.mu.Unlock() }
func (s *fakeSurface) HideZoom()                 { s.mu.Lock(); s.zoomShown = false; s.mu.Unlock() }

// manualClock fires timers only when advanced.
type manualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

func (c *manualClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{at: c.now + d, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*manualTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.fn()
	}
}

func newController() (*Controller, *fakeSurface, *manualClock) {
	s := &fakeSurface{}
	clock := &manualClock{}
	return New(s, Options{Clock: clock}), s, clock
}

func TestToggleModalLocksScroll(t *testing.T) {
	c, s, _ := newController()

	assert.True(t, c.ToggleModal())
	assert.True(t, s.modal)
	assert.True(t, s.locked)

	assert.False(t, c.ToggleModal())
	assert.False(t, s.modal)
	assert.False(t, s.locked)
}

func TestLockIsCountedAcrossOverlays(t *testing.T) {
	c, s, _ := newController()

	c.ToggleMobileMenu()
	c.ToggleModal()
	assert.True(t, s.locked)

	c.ToggleModal()
	assert.True(t, s.locked, "closing the modal must not unlock while the menu is open")
	assert.True(t, c.State().Locked)

	c.ToggleMobileMenu()
	assert.False(t, s.locked)
	assert.Equal(t, 2, s.lockCalls)
}

func TestCloseMobileMenu(t *testing.T) {
	c, s, _ := newController()

	c.CloseMobileMenu()
	assert.Equal(t, 0, s.lockCalls)

	c.ToggleMobileMenu()
	c.CloseMobileMenu()
	assert.False(t, s.menu)
	assert.False(t, s.locked)
}

func TestEscapePriority(t *testing.T) {
	c, s, clock := newController()

	assert.Equal(t, None, c.Escape())

	c.ToggleMobileMenu()
	c.ToggleModal()
	c.OpenZoom("/assets/certificate.jpg")
	clock.Advance(DefaultZoomEnterDelay)

	assert.Equal(t, Zoom, c.Escape())
	assert.True(t, s.modal)
	assert.True(t, s.menu)

	assert.Equal(t, Modal, c.Escape(), "a closing zoom no longer counts as open")
	assert.True(t, s.menu)

	assert.Equal(t, Menu, c.Escape())
	assert.True(t, s.locked, "zoom still fading out")

	clock.Advance(DefaultZoomExitDelay)
	assert.False(t, s.locked)
	assert.Equal(t, None, c.Escape())
}

func TestZoomTransitions(t *testing.T) {
	c, s, clock := newController()

	c.OpenZoom("/assets/a.jpg")
	assert.True(t, s.zoomShown)
	assert.Equal(t, "/assets/a.jpg", s.zoomSrc)
	assert.True(t, s.locked)
	assert.False(t, s.zoomActive, "active class is deferred")

	clock.Advance(DefaultZoomEnterDelay)
	assert.True(t, s.zoomActive)

	c.CloseZoom()
	assert.False(t, s.zoomActive)
	assert.True(t, s.zoomShown, "hide waits for the exit transition")
	assert.True(t, s.locked)

	clock.Advance(DefaultZoomExitDelay - time.Millisecond)
	assert.True(t, s.zoomShown)

	clock.Advance(time.Millisecond)
	assert.False(t, s.zoomShown)
	assert.False(t, s.locked)
	assert.Equal(t, State{}, c.State())
}

func TestReopenDuringExitCancelsHide(t *testing.T) {
	c, s, clock := newController()

	c.OpenZoom("/assets/a.jpg")
	clock.Advance(DefaultZoomEnterDelay)
	c.CloseZoom()
	clock.Advance(100 * time.Millisecond)

	c.OpenZoom("/assets/b.jpg")
	clock.Advance(DefaultZoomExitDelay)

	require.True(t, s.zoomShown)
	assert.True(t, s.zoomActive)
	assert.Equal(t, "/assets/b.jpg", s.zoomSrc)
	assert.True(t, s.locked)
}

func TestCloseZoomWhenClosedIsNoop(t *testing.T) {
	c, s, clock := newController()

	c.CloseZoom()
	clock.Advance(time.Second)
	assert.Equal(t, 0, s.lockCalls)
}

func TestOnChangeFiresForDeferredSteps(t *testing.T) {
	s := &fakeSurface{}
	clock := &manualClock{}
	changes := 0
	c := New(s, Options{Clock: clock, OnChange: func() { changes++ }})

	c.OpenZoom("/assets/a.jpg")
	clock.Advance(DefaultZoomEnterDelay)
	c.CloseZoom()
	clock.Advance(DefaultZoomExitDelay)

	assert.Equal(t, 2, changes)
}

func TestRealClockFires(t *testing.T) {
	s := &fakeSurface{}
	done := make(chan struct{}, 2)
	c := New(s, Options{
		ZoomEnterDelay: time.Millisecond,
		ZoomExitDelay:  time.Millisecond,
		OnChange:       func() { done <- struct{}{} },
	})

	c.OpenZoom("/assets/a.jpg")
	<-done
	c.CloseZoom()
	<-done

	assert.False(t, c.State().ZoomOpen)
}
