package scroll

import "sync"

// BatchFrames collects frame callbacks until Flush. The page flushes once
// per posted event batch, so one batch is one rendering frame.
type BatchFrames struct {
	mu    sync.Mutex
	queue []func()
}

func (f *BatchFrames) Request(fn func()) {
	f.mu.Lock()
	f.queue = append(f.queue, fn)
	f.mu.Unlock()
}

// Flush runs the queued callbacks and returns how many ran. Callbacks
// requested while flushing wait for the next frame.
func (f *BatchFrames) Flush() int {
	f.mu.Lock()
	queue := f.queue
	f.queue = nil
	f.mu.Unlock()

	for _, fn := range queue {
		fn()
	}
	return len(queue)
}

// Pending returns the number of queued callbacks.
func (f *BatchFrames) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}
