package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	scrolled []bool
	revealed []string
	parallax map[string]float64
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{parallax: make(map[string]float64)}
}

func (f *fakeTarget) SetScrolled(s bool)                 { f.scrolled = append(f.scrolled, s) }
func (f *fakeTarget) Reveal(id string)                   { f.revealed = append(f.revealed, id) }
func (f *fakeTarget) SetParallax(id string, off float64) { f.parallax[id] = off }

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 40.0, cfg.NavThreshold)
	assert.Equal(t, 0.95, cfg.RevealFraction)
}

func TestScrolledFlagIsIdempotent(t *testing.T) {
	target := newFakeTarget()
	frames := &BatchFrames{}
	c := New(Config{}, target, frames)

	c.OnScroll(Snapshot{Offset: 10, ViewportHeight: 800})
	c.OnScroll(Snapshot{Offset: 40, ViewportHeight: 800})
	assert.Empty(t, target.scrolled, "offset at the threshold is not scrolled")

	c.OnScroll(Snapshot{Offset: 41, ViewportHeight: 800})
	c.OnScroll(Snapshot{Offset: 41, ViewportHeight: 800})
	c.OnScroll(Snapshot{Offset: 300, ViewportHeight: 800})
	assert.Equal(t, []bool{true}, target.scrolled)
	assert.True(t, c.Scrolled())

	c.OnScroll(Snapshot{Offset: 0, ViewportHeight: 800})
	assert.Equal(t, []bool{true, false}, target.scrolled)
}

func TestScrollEventsCollapseIntoOnePassPerFrame(t *testing.T) {
	target := newFakeTarget()
	frames := &BatchFrames{}
	c := New(Config{}, target, frames)

	for i := 0; i < 5; i++ {
		c.OnScroll(Snapshot{Offset: float64(i * 10), ViewportHeight: 800})
	}
	assert.Equal(t, 1, frames.Pending())
	assert.Equal(t, 1, frames.Flush())
	assert.Equal(t, 1, c.Passes())

	c.OnScroll(Snapshot{Offset: 60, ViewportHeight: 800})
	assert.Equal(t, 1, frames.Flush())
	assert.Equal(t, 2, c.Passes())
}

func TestRevealIsMonotonic(t *testing.T) {
	target := newFakeTarget()
	frames := &BatchFrames{}
	c := New(Config{}, target, frames)

	// 0.95 * 1000 = 950
	c.OnScroll(Snapshot{Offset: 0, ViewportHeight: 1000, Elements: []Element{
		{ID: "a", Top: 200},
		{ID: "b", Top: 950},
		{ID: "c", Top: 1400},
	}})
	frames.Flush()
	assert.Equal(t, []string{"a"}, target.revealed)
	assert.True(t, c.Revealed("a"))
	assert.False(t, c.Revealed("b"))

	c.OnScroll(Snapshot{Offset: 600, ViewportHeight: 1000, Elements: []Element{
		{ID: "a", Top: -400},
		{ID: "b", Top: 350},
		{ID: "c", Top: 800},
	}})
	frames.Flush()
	assert.Equal(t, []string{"a", "b", "c"}, target.revealed)

	c.OnScroll(Snapshot{Offset: 0, ViewportHeight: 1000, Elements: []Element{
		{ID: "a", Top: 200},
		{ID: "b", Top: 950},
		{ID: "c", Top: 1400},
	}})
	frames.Flush()
	assert.Len(t, target.revealed, 3, "scrolling back does not reveal again")
	assert.True(t, c.Revealed("c"))
}

func TestParallaxOffset(t *testing.T) {
	target := newFakeTarget()
	frames := &BatchFrames{}
	c := New(Config{}, target, frames)

	c.OnScroll(Snapshot{Offset: 250, ViewportHeight: 800, Elements: []Element{
		{ID: "hero-bg", Top: 0, Speed: 0.4},
		{ID: "plain", Top: 0},
	}})
	frames.Flush()

	require.Contains(t, target.parallax, "hero-bg")
	assert.InDelta(t, 100.0, target.parallax["hero-bg"], 1e-9)
	assert.NotContains(t, target.parallax, "plain")
	assert.Equal(t, "translateY(100px)", Transform(100))
	assert.Equal(t, "translateY(-12.5px)", Transform(-12.5))
}

func TestFlushDefersCallbacksRequestedDuringFlush(t *testing.T) {
	frames := &BatchFrames{}
	ran := 0
	frames.Request(func() {
		ran++
		frames.Request(func() { ran++ })
	})

	assert.Equal(t, 1, frames.Flush())
	assert.Equal(t, 1, ran)
	assert.Equal(t, 1, frames.Flush())
	assert.Equal(t, 2, ran)
}
